package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", "json")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("endpoint", "http://example").Msg("fetching")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"fetching"`)
	assert.Contains(t, out, `"endpoint":"http://example"`)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "WARN", "text")
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Msg("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	require.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "неподдерживаемый формат логов")
}
