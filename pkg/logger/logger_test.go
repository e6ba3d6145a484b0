package logger

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := Discard()
		ctx := ContextWithLogger(t.Context(), expected)

		assert.Same(t, expected, FromContext(ctx))
	})

	t.Run("Should return default logger when no logger in context", func(t *testing.T) {
		l := FromContext(t.Context())
		require.NotNil(t, l)
		l.Debug("default logger")
	})

	t.Run("Should return default logger after SetDefault", func(t *testing.T) {
		prev := FromContext(t.Context())
		defer SetDefault(prev)

		l := Discard()
		SetDefault(l)
		SetDefault(nil)
		assert.Same(t, l, FromContext(t.Context()))
	})
}

func TestLevel_charm(t *testing.T) {
	t.Run("Should convert all log levels", func(t *testing.T) {
		cases := map[Level]int{
			DebugLevel:       -4,
			InfoLevel:        0,
			WarnLevel:        4,
			ErrorLevel:       8,
			DisabledLevel:    1000,
			Level("unknown"): 0,
		}
		for level, want := range cases {
			assert.Equal(t, want, int(level.charm()), string(level))
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should filter by level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(Config{Level: WarnLevel, Output: &buf})
		l.Info("info message")
		l.Warn("warn message")

		assert.NotContains(t, buf.String(), "info message")
		assert.Contains(t, buf.String(), "warn message")
	})

	t.Run("Should write JSON when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(Config{Level: InfoLevel, Output: &buf, JSON: true})
		l.Info("resolved", "key", "window-width")

		assert.Contains(t, buf.String(), `"msg":"resolved"`)
		assert.Contains(t, buf.String(), `"key":"window-width"`)
	})

	t.Run("Should discard everything when disabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(Config{Level: DisabledLevel, Output: &buf})
		l.Error("error message")
		assert.Empty(t, buf.String())
	})
}

func TestGetLoggerConfig(t *testing.T) {
	t.Run("Should read the logging flags", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.Flags().String("log-level", "info", "")
		cmd.Flags().Bool("log-json", false, "")
		cmd.Flags().Bool("log-source", false, "")
		require.NoError(t, cmd.Flags().Parse([]string{"--log-level", "debug", "--log-json"}))

		level, json, source, err := GetLoggerConfig(cmd)
		require.NoError(t, err)
		assert.Equal(t, "debug", level)
		assert.True(t, json)
		assert.False(t, source)
	})

	t.Run("Should fail without the flags", func(t *testing.T) {
		_, _, _, err := GetLoggerConfig(&cobra.Command{})
		assert.Error(t, err)
	})
}
