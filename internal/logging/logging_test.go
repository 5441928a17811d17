package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithScope(t *testing.T) {
	var buf bytes.Buffer
	logger := WithScope(New(&buf, zerolog.InfoLevel), "TREE")

	logger.Info().Int("key", 42).Msg("inserted")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "[TREE]")
	assert.Contains(t, out, "inserted")
	assert.Contains(t, out, "key")
	assert.Contains(t, out, "42")
	assert.NotContains(t, out, "hidden")
}

func TestDefaultScope(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.DebugLevel)
	logger.Debug().Msg("hello")

	assert.Contains(t, buf.String(), "[app]")
	assert.Contains(t, buf.String(), "hello")
}
