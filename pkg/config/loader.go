package config

import (
	"go/token"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/thorn-jmh/errorst"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "GSGEN_"

// FlagKeys maps CLI flag names to configuration paths.
var FlagKeys = map[string]string{
	"schema":     "schema.file",
	"id":         "schema.id",
	"output":     "output.file",
	"package":    "output.package",
	"type":       "output.type",
	"log-level":  "log.level",
	"log-json":   "log.json",
	"log-source": "log.source",
}

// Loader layers defaults, a YAML file, GSGEN_ environment variables and
// CLI flags, later layers winning.
type Loader struct {
	koanf    *koanf.Koanf
	validate *validator.Validate
}

func NewLoader() *Loader {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	})
	return &Loader{
		koanf:    koanf.New("."),
		validate: v,
	}
}

// Load builds the configuration. An empty path skips the file layer and a
// nil flag set skips the flag layer; only flags that were set are applied.
func (l *Loader) Load(path string, flags *pflag.FlagSet) (*Config, error) {
	l.koanf = koanf.New(".")

	if err := l.koanf.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, errorst.Wrap(err, "failed to load defaults")
	}
	if path != "" {
		if err := l.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := l.loadEnvironment(); err != nil {
		return nil, err
	}
	if flags != nil {
		if err := l.loadFlags(flags); err != nil {
			return nil, err
		}
	}
	return l.unmarshalAndValidate()
}

func (l *Loader) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errorst.Wrap(err, "failed to read config file <%s>", path)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return errorst.Wrap(err, "failed to parse config file <%s>", path)
	}
	if err := l.koanf.Load(rawMap(m), nil); err != nil {
		return errorst.Wrap(err, "failed to load config file <%s>", path)
	}
	return nil
}

// transformEnvKey converts GSGEN_OUTPUT_PACKAGE into output.package.
func transformEnvKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_'
	})
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + "." + strings.Join(parts[1:], "_")
	}
}

func (l *Loader) loadEnvironment() error {
	err := l.koanf.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(key), value
		},
	}), nil)
	if err != nil {
		return errorst.Wrap(err, "failed to load environment variables")
	}
	return nil
}

func (l *Loader) loadFlags(flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		key, ok := FlagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		if setErr := l.koanf.Set(key, f.Value.String()); setErr != nil {
			err = errorst.Wrap(setErr, "failed to apply flag --%s", f.Name)
		}
	})
	return err
}

func (l *Loader) unmarshalAndValidate() (*Config, error) {
	var cfg Config
	if err := l.koanf.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}); err != nil {
		return nil, errorst.Wrap(err, "failed to unmarshal configuration")
	}

	if err := l.validate.Struct(&cfg); err != nil {
		return nil, errorst.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// rawMap is a koanf.Provider over an already decoded map.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) {
	return r, nil
}

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, errorst.NewError("ReadBytes not implemented")
}
