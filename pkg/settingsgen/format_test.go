package settingsgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascalStyle(t *testing.T) {
	t.Run("Should split words at separators", func(t *testing.T) {
		cases := map[string]string{
			"window-width":   "WindowWidth",
			"recent_files":   "RecentFiles",
			"foo.bar":        "FooBar",
			"prefer dark":    "PreferDark",
			"x11":            "X11",
			"io.example.App": "IoExampleApp",
			"--":             "",
		}
		for in, want := range cases {
			assert.Equal(t, want, PascalStyle.Format(in), in)
		}
	})
}

func TestSnakeStyle(t *testing.T) {
	t.Run("Should keep digits with their word", func(t *testing.T) {
		cases := map[string]string{
			"window-width": "window_width",
			"WindowWidth":  "window_width",
			"x11":          "x11",
			"X11":          "x11",
			"abc123def":    "abc123def",
			"version2Beta": "version2_beta",
			"JSONData":     "json_data",
			"foo.bar":      "foo_bar",
			"a--b":         "a_b",
		}
		for in, want := range cases {
			assert.Equal(t, want, SnakeStyle.Format(in), in)
		}
	})
}
