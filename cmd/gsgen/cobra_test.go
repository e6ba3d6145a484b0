package gsgen

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gsgen/pkg/config"
	"gsgen/pkg/logger"
)

const (
	sampleSchema = "../../testdata/io.example.test.gschema.xml"
	sampleConfig = "../../testdata/gsgen.yaml"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "disabled"))
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	t.Run("Should write a parseable accessor file", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "gen", "settings_gen.go")
		_, err := run(t, "generate", "--config", sampleConfig, "--schema", sampleSchema, "--output", output)
		require.NoError(t, err)

		src, err := os.ReadFile(output)
		require.NoError(t, err)
		file, err := parser.ParseFile(token.NewFileSet(), output, src, parser.ParseComments)
		require.NoError(t, err)
		assert.Equal(t, "testsettings", file.Name.Name)
		assert.True(t, strings.HasPrefix(string(src), "// Code generated by gsgen. DO NOT EDIT."))
		assert.Contains(t, string(src), "type TestSettings struct {\n\t*gsettings.Settings\n}")
		assert.Contains(t, string(src), "func (s *TestSettings) AutosaveInterval() time.Duration {")
	})

	t.Run("Should honour package and type flags", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "settings_gen.go")
		_, err := run(t, "generate", "--schema", sampleSchema, "--output", output,
			"--package", "prefs", "--type", "Prefs")
		require.Error(t, err, "the sample needs its overrides")

		_, err = run(t, "generate", "--config", sampleConfig, "--schema", sampleSchema, "--output", output,
			"--package", "prefs", "--type", "Prefs")
		require.NoError(t, err)
		src, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(src), "package prefs")
		assert.Contains(t, string(src), "func NewPrefs(store gsettings.Store) *Prefs {")
	})

	t.Run("Should leave the output untouched on failure", func(t *testing.T) {
		dir := t.TempDir()
		output := filepath.Join(dir, "settings_gen.go")
		require.NoError(t, os.WriteFile(output, []byte("package keep\n"), 0o644))

		_, err := run(t, "generate", "--config", sampleConfig, "--schema", sampleSchema, "--output", output,
			"--id", "io.example.missing")
		require.Error(t, err)

		src, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "package keep\n", string(src))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Should reject invalid configuration", func(t *testing.T) {
		_, err := run(t, "generate", "--config", sampleConfig, "--package", "not-a-package")
		assert.Error(t, err)

		_, err = run(t, "generate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestDescribeCommand(t *testing.T) {
	t.Run("Should print the unit as yaml", func(t *testing.T) {
		out, err := run(t, "describe", "--config", sampleConfig, "--schema", sampleSchema, "--signatures")
		require.NoError(t, err)

		var got struct {
			Signatures []string `yaml:"signatures"`
			Unit       struct {
				SchemaID  string `yaml:"schema_id"`
				TypeName  string `yaml:"type_name"`
				Accessors []struct {
					Key    string `yaml:"key"`
					Name   string `yaml:"name"`
					Ident  string `yaml:"ident"`
					Ret    string `yaml:"ret"`
					Origin string `yaml:"origin"`
				} `yaml:"accessors"`
				AuxTypes []struct {
					Kind string `yaml:"kind"`
					Name string `yaml:"name"`
				} `yaml:"aux_types"`
			} `yaml:"unit"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))

		assert.Equal(t, "io.example.test", got.Unit.SchemaID)
		assert.Equal(t, "TestSettings", got.Unit.TypeName)
		require.NotEmpty(t, got.Unit.Accessors)
		first := got.Unit.Accessors[0]
		assert.Equal(t, "window-width", first.Key)
		assert.Equal(t, "WindowWidth", first.Name)
		assert.Equal(t, "window_width", first.Ident)
		assert.Equal(t, "int32", first.Ret)
		assert.Equal(t, "builtin", first.Origin)
		assert.Contains(t, got.Signatures, "i")
		assert.Contains(t, got.Signatures, "ay")
		require.NotEmpty(t, got.Unit.AuxTypes)
		assert.Equal(t, "enum", got.Unit.AuxTypes[0].Kind)
	})
}

func TestWatch(t *testing.T) {
	t.Run("Should regenerate when the schema changes", func(t *testing.T) {
		dir := t.TempDir()
		schema, err := os.ReadFile(sampleSchema)
		require.NoError(t, err)
		schemaPath := filepath.Join(dir, "app.gschema.xml")
		require.NoError(t, os.WriteFile(schemaPath, schema, 0o644))

		cfg, err := config.NewLoader().Load(sampleConfig, nil)
		require.NoError(t, err)
		cfg.Schema.File = schemaPath
		cfg.Output.File = filepath.Join(dir, "settings_gen.go")

		ctx, cancel := context.WithCancel(logger.ContextWithLogger(t.Context(), logger.Discard()))
		defer cancel()
		done := make(chan error, 1)
		go func() {
			done <- watch(ctx, cfg, "", func() (*config.Config, error) { return cfg, nil })
		}()

		read := func() string {
			src, _ := os.ReadFile(cfg.Output.File)
			return string(src)
		}
		require.Eventually(t, func() bool {
			return strings.Contains(read(), "Window width")
		}, 5*time.Second, 20*time.Millisecond)

		changed := strings.Replace(string(schema), "<summary>Window width</summary>", "<summary>Window breadth</summary>", 1)
		require.NoError(t, os.WriteFile(schemaPath, []byte(changed), 0o644))
		require.Eventually(t, func() bool {
			return strings.Contains(read(), "Window breadth")
		}, 5*time.Second, 20*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("watch did not stop")
		}
	})
}
