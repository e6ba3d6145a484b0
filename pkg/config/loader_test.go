package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gsgen/pkg/settingsgen"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gsgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("gsgen", pflag.ContinueOnError)
	flags.String("schema", "", "")
	flags.String("id", "", "")
	flags.String("output", "", "")
	flags.String("package", "", "")
	flags.String("type", "", "")
	flags.String("log-level", "info", "")
	flags.Bool("log-json", false, "")
	return flags
}

func TestLoader_Load(t *testing.T) {
	t.Run("Should load the sample configuration", func(t *testing.T) {
		cfg, err := NewLoader().Load("../../testdata/gsgen.yaml", nil)
		require.NoError(t, err)

		want := &Config{
			Schema: SchemaConfig{File: "testdata/io.example.test.gschema.xml", ID: "io.example.test"},
			Output: OutputConfig{File: "internal/testsettings/settings_gen.go", Package: "testsettings", Type: "TestSettings"},
			Default: true,
			Globals: true,
			Defines: []settingsgen.Directive{
				{KeyName: "autosave-interval", ArgType: "time.Duration", RetType: "time.Duration"},
			},
			Skips: []settingsgen.Directive{{Signature: "ay"}},
			Log:   LogConfig{Level: "info"},
		}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Should fall back to defaults", func(t *testing.T) {
		cfg, err := NewLoader().Load(writeConfig(t, "schema:\n  file: app.gschema.xml\n"), nil)
		require.NoError(t, err)

		assert.Equal(t, "settings", cfg.Output.Package)
		assert.Equal(t, "settings_gen.go", cfg.Output.File)
		assert.True(t, cfg.Default)
		assert.True(t, cfg.Globals)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("Should let environment override the file", func(t *testing.T) {
		t.Setenv("GSGEN_OUTPUT_PACKAGE", "fromenv")
		t.Setenv("GSGEN_GLOBALS", "false")

		cfg, err := NewLoader().Load(writeConfig(t, "schema:\n  file: a.xml\noutput:\n  package: fromfile\n"), nil)
		require.NoError(t, err)
		assert.Equal(t, "fromenv", cfg.Output.Package)
		assert.False(t, cfg.Globals)
	})

	t.Run("Should let flags override everything", func(t *testing.T) {
		t.Setenv("GSGEN_OUTPUT_PACKAGE", "fromenv")
		flags := testFlags()
		require.NoError(t, flags.Parse([]string{"--package", "fromflag", "--schema", "b.xml", "--log-json"}))

		cfg, err := NewLoader().Load(writeConfig(t, "schema:\n  file: a.xml\n"), flags)
		require.NoError(t, err)
		assert.Equal(t, "fromflag", cfg.Output.Package)
		assert.Equal(t, "b.xml", cfg.Schema.File)
		assert.True(t, cfg.Log.JSON)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("Should reject invalid configurations", func(t *testing.T) {
		cases := []string{
			"output:\n  package: settings\n",
			"schema:\n  file: a.xml\noutput:\n  package: my-settings\n",
			"schema:\n  file: a.xml\noutput:\n  type: 1Settings\n",
			"schema:\n  file: a.xml\nlog:\n  level: loud\n",
		}
		for _, content := range cases {
			_, err := NewLoader().Load(writeConfig(t, content), nil)
			assert.Error(t, err, content)
		}
	})

	t.Run("Should fail on unreadable files", func(t *testing.T) {
		_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
		assert.Error(t, err)

		_, err = NewLoader().Load(writeConfig(t, "schema: [\n"), nil)
		assert.Error(t, err)
	})
}

func TestConfig_Options(t *testing.T) {
	t.Run("Should mark skips and keep defines first", func(t *testing.T) {
		cfg := Default()
		cfg.Schema.ID = "io.example.test"
		cfg.Output.Type = "TestSettings"
		cfg.Defines = []settingsgen.Directive{{Signature: "s", ArgType: "string", RetType: "string"}}
		cfg.Skips = []settingsgen.Directive{{KeyName: "thumbnail-data"}}

		opts := cfg.Options()
		assert.Equal(t, "io.example.test", opts.SchemaID)
		assert.Equal(t, "TestSettings", opts.TypeName)
		assert.True(t, opts.Default)
		assert.Equal(t, []settingsgen.Directive{
			{Signature: "s", ArgType: "string", RetType: "string"},
			{KeyName: "thumbnail-data", Skip: true},
		}, opts.Directives)
		assert.False(t, cfg.Skips[0].Skip)
	})
}

func TestTransformEnvKey(t *testing.T) {
	t.Run("Should map variables to paths", func(t *testing.T) {
		cases := map[string]string{
			"GSGEN_OUTPUT_PACKAGE": "output.package",
			"GSGEN_LOG_LEVEL":      "log.level",
			"GSGEN_DEFAULT":        "default",
			"GSGEN_SCHEMA__FILE":   "schema.file",
			"GSGEN_":               "",
		}
		for in, want := range cases {
			assert.Equal(t, want, transformEnvKey(in), in)
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return the stored configuration", func(t *testing.T) {
		cfg := Default()
		cfg.Output.Package = "stored"
		ctx := ContextWithConfig(t.Context(), cfg)
		assert.Same(t, cfg, FromContext(ctx))
	})

	t.Run("Should fall back to defaults", func(t *testing.T) {
		assert.Equal(t, Default(), FromContext(t.Context()))
	})
}
