package config

import (
	"gsgen/pkg/settingsgen"
)

// Config is everything one generation run needs.
type Config struct {
	Schema  SchemaConfig            `koanf:"schema"`
	Output  OutputConfig            `koanf:"output"`
	Default bool                    `koanf:"default"`
	Globals bool                    `koanf:"globals"`
	Defines []settingsgen.Directive `koanf:"defines" validate:"dive"`
	Skips   []settingsgen.Directive `koanf:"skips" validate:"dive"`
	Log     LogConfig               `koanf:"log"`
}

type SchemaConfig struct {
	File string `koanf:"file" validate:"required"`
	ID   string `koanf:"id"`
}

type OutputConfig struct {
	File    string `koanf:"file" validate:"required"`
	Package string `koanf:"package" validate:"required,goident"`
	Type    string `koanf:"type" validate:"omitempty,goident"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON   bool   `koanf:"json"`
	Source bool   `koanf:"source"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			File:    "settings_gen.go",
			Package: "settings",
		},
		Default: true,
		Globals: true,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Directives returns defines followed by skips. Skips are marked as such
// whatever the file says.
func (c *Config) Directives() []settingsgen.Directive {
	directives := make([]settingsgen.Directive, 0, len(c.Defines)+len(c.Skips))
	directives = append(directives, c.Defines...)
	for _, s := range c.Skips {
		s.Skip = true
		directives = append(directives, s)
	}
	return directives
}

// Options converts the configuration into generator options.
func (c *Config) Options() settingsgen.Options {
	return settingsgen.Options{
		SchemaID:   c.Schema.ID,
		TypeName:   c.Output.Type,
		Default:    c.Default,
		Globals:    c.Globals,
		Directives: c.Directives(),
	}
}
