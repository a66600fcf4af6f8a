package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log := New()
	assert.NotEqual(t, zerolog.Disabled, log.GetLevel())
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestNewFromConfig_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewFromConfig("warn", "json", buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("year", "FY2025").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "warn", rec["level"])
	assert.Equal(t, "shown", rec["message"])
	assert.Equal(t, "FY2025", rec["year"])
}

func TestNewFromConfig_Console(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewFromConfig("", "", buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log.Debug().Msg("quiet")
	log.Info().Msg("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.NotContains(t, buf.String(), "{", "console output is not JSON")
}

func TestNewFromConfig_Errors(t *testing.T) {
	_, err := NewFromConfig("chatty", "json", &bytes.Buffer{})
	require.Error(t, err)

	_, err = NewFromConfig("info", "xml", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestWithContext(t *testing.T) {
	ctx := WithContext(context.Background(), New())
	assert.NotNil(t, ctx.Value(LoggerKey))
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	retrieved := FromContext(ctx)
	retrieved.Info().Msg("test")

	assert.NotZero(t, buf.Len())
}

func TestFromContext_DefaultLogger(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotEqual(t, zerolog.Disabled, log.GetLevel())
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := WithFields(NewWithWriter(buf), map[string]interface{}{"batch": "abc", "rows": 3})

	log.Info().Msg("imported")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "abc", rec["batch"])
	assert.InDelta(t, 3, rec["rows"], 0)
}
