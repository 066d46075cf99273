// internal/util/util_test.go
package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsError(t *testing.T) {
	wrapped := fmt.Errorf("get owner: %w", ErrNotFound)

	assert.True(t, IsError(wrapped, ErrInvalidInput, ErrNotFound))
	assert.False(t, IsError(wrapped, ErrDuplicateEntry))
	assert.False(t, IsError(nil, ErrNotFound))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info", LogFormatJSON)

	logger.Debug("hidden")
	logger.Info("Owner created", "id", "42")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Owner created", entry["msg"])
	assert.Equal(t, "42", entry["id"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug", LogFormatText)

	logger.Debug("Property listed", "count", 3)

	assert.Contains(t, buf.String(), "Property listed")
	assert.Contains(t, buf.String(), "count")
}
