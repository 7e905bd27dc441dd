package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	a := newApp()
	out := &bytes.Buffer{}
	a.Writer = out
	require.NoError(t, a.RunContext(context.Background(), append([]string{"activity"}, args...)))
	return out.String()
}

func TestNewAndListCommands(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"activity":"Bake pastries","type":"cooking","participants":1,"price":0.4,"accessibility":0.3}`))
	}))
	defer srv.Close()

	dbPath := filepath.Join(t.TempDir(), "activities.db")
	t.Setenv("ACTIVITY_DB", dbPath)
	t.Setenv("LOG_LEVEL", "error")

	out := run(t, "--endpoint", srv.URL, "new", "--type", "music")
	assert.Equal(t, "Activity does not match the filters.\n", out)

	out = run(t, "--endpoint", srv.URL, "new", "--participants", "2")
	assert.Equal(t, "Activity does not match the filters.\n", out)

	out = run(t, "--endpoint", srv.URL, "new", "--price_min", "0.5")
	assert.Equal(t, "Activity does not match the filters.\n", out)

	out = run(t, "--endpoint", srv.URL, "new", "--type", "cooking", "--price_max", "0.5", "--accessibility_min", "0.1")
	assert.Equal(t, "Activity saved to the database.\n", out)

	out = run(t, "list")
	assert.Contains(t, out, "Latest Activities:\n")
	assert.Contains(t, out, "Bake pastries")
}

func TestNewCommandUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	t.Setenv("LOG_LEVEL", "error")

	out := run(t, "--db", filepath.Join(t.TempDir(), "a.db"), "--endpoint", srv.URL, "new")
	assert.Equal(t, "Failed to retrieve an activity.\n", out)
}

func TestNewCommandRejectsInvertedRange(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	a := newApp()
	a.Writer = &bytes.Buffer{}
	err := a.RunContext(context.Background(), []string{
		"activity", "--db", filepath.Join(t.TempDir(), "a.db"), "--endpoint", "http://127.0.0.1:1",
		"new", "--price_min", "0.8", "--price_max", "0.2",
	})
	require.Error(t, err)
}
