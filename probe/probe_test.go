package probe

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tatterwing/lootkit/util/errors"
	"github.com/tatterwing/lootkit/util/netutil"
	"github.com/tatterwing/lootkit/util/testutil"
)

func TestCheck(t *testing.T) {
	server := testutil.StartWebServer()
	defer server.Close()

	report, err := Check(context.Background(), server.URL, Options{Timeout: 5 * time.Second})
	assert.Nil(t, err)
	assert.True(t, report.Reachable())
	assert.True(t, report.Healthy())
	assert.Equal(t, http.StatusNoContent, report.StatusCode)
	assert.Greater(t, report.Latency, time.Duration(0))
}

func TestCheckSkipPrivateRefusesLoopback(t *testing.T) {
	server := testutil.StartWebServer()
	defer server.Close()

	// httptest binds to 127.0.0.1, which is inside the refused ranges
	report, err := Check(context.Background(), server.URL, Options{SkipPrivate: true})
	assert.True(t, errors.Is(err, ErrPrivateAddress))
	assert.Nil(t, report)
}

func TestCheckInvalidURL(t *testing.T) {
	report, err := Check(context.Background(), "http://\x7f", Options{})
	assert.NotNil(t, err)
	assert.Nil(t, report)
}

func TestCheckUnreachableTarget(t *testing.T) {
	server := testutil.StartWebServer()
	url := server.URL
	server.Close()

	report, err := Check(context.Background(), url, Options{Timeout: time.Second})
	assert.NotNil(t, err)
	assert.Nil(t, report)
}

func TestLatestVersion(t *testing.T) {
	server := testutil.StartWebServerWithHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v1.4.0"}`))
	}))
	defer server.Close()

	latest, err := LatestVersion(netutil.HTTPClient(&http.Transport{}), server.URL)
	assert.Nil(t, err)
	assert.Equal(t, "v1.4.0", latest)
}

func TestUpdateAvailable(t *testing.T) {
	tests := []struct {
		current   string
		latest    string
		expected  bool
		expectErr bool
	}{
		{"v1.0.0", "v1.1.0", true, false},
		{"v1.1.0", "v1.1.0", false, false},
		{"v2.0.0", "v1.9.9", false, false},
		{"(unknown version)", "v1.0.0", false, true},
		{"v1.0.0", "latest", false, true},
	}
	for _, tt := range tests {
		got, err := UpdateAvailable(tt.current, tt.latest)
		if tt.expectErr {
			assert.NotNil(t, err, tt)
		} else {
			assert.Nil(t, err, tt)
		}
		assert.Equal(t, tt.expected, got, tt)
	}
}
