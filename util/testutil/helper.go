package testutil

import (
	"net/http"
	"net/http/httptest"

	// chdir to the repo root so tests can read files next to go.mod
	_ "github.com/flashlabs/rootpath"
)

func StartWebServer() *httptest.Server {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return httptest.NewServer(handler)
}

func StartWebServerWithHandler(handler http.Handler) *httptest.Server {
	return httptest.NewServer(handler)
}
