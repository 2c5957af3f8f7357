package main

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tatterwing/lootkit/conf"
	"github.com/tatterwing/lootkit/persist"
	"github.com/tatterwing/lootkit/util/netutil"
	"github.com/tatterwing/lootkit/util/testutil"
)

func TestListSlots(t *testing.T) {
	dir := t.TempDir()
	indexFile := filepath.Join(dir, "rolls.db")
	index, err := persist.OpenIndex(indexFile)
	assert.Nil(t, err)

	snap, err := persist.Save(filepath.Join(dir, "rolls.sav"),
		map[string][]int{"chest-gold": {40, 35, 20, 5}}, nil)
	assert.Nil(t, err)
	assert.Nil(t, index.Record(snap, "rolls.sav"))
	index.Close()

	assert.Nil(t, listSlots(&conf.Snapshot{File: "rolls.sav", IndexFile: indexFile}))
}

func TestListSlotsEmptyIndex(t *testing.T) {
	indexFile := filepath.Join(t.TempDir(), "rolls.db")
	index, err := persist.OpenIndex(indexFile)
	assert.Nil(t, err)
	index.Close()

	assert.Nil(t, listSlots(&conf.Snapshot{File: "rolls.sav", IndexFile: indexFile}))
}

func TestListSlotsWithoutIndexConfigured(t *testing.T) {
	assert.NotNil(t, listSlots(nil))
	assert.NotNil(t, listSlots(&conf.Snapshot{File: "rolls.sav"}))
}

func TestCheckForUpdate(t *testing.T) {
	server := testutil.StartWebServerWithHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v1.4.0"}`))
	}))
	defer server.Close()
	client := netutil.HTTPClient(&http.Transport{})

	newer, latest, err := checkForUpdate(client, "v1.0.0", server.URL)
	assert.Nil(t, err)
	assert.True(t, newer)
	assert.Equal(t, "v1.4.0", latest)

	newer, _, err = checkForUpdate(client, "v2.0.0", server.URL)
	assert.Nil(t, err)
	assert.False(t, newer)

	// the dev build's placeholder version skips the check with an error
	_, _, err = checkForUpdate(client, "(unknown version)", server.URL)
	assert.NotNil(t, err)
}
