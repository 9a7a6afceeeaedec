package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/userenv/pkg/errors"
	"github.com/arthur-debert/userenv/pkg/paths"
	"github.com/arthur-debert/userenv/pkg/store"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read as configuration.
const EnvPrefix = "USERENV_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the complete userenv configuration.
type Config struct {
	Backend string       `koanf:"backend"`
	File    FileConfig   `koanf:"file"`
	Notify  NotifyConfig `koanf:"notify"`
	Log     LogConfig    `koanf:"log"`
}

// FileConfig configures the file store.
type FileConfig struct {
	Path string `koanf:"path"`
	Lock bool   `koanf:"lock"`
}

// NotifyConfig configures the change broadcast.
type NotifyConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Timeout  time.Duration `koanf:"timeout"`
	Category string        `koanf:"category"`
}

// LogConfig configures the log file.
type LogConfig struct {
	File string `koanf:"file"`
}

// LoadOptions controls which sources Load reads.
type LoadOptions struct {
	// ConfigFile is an explicit user file. It must exist when set.
	// Empty means paths.ConfigFile(), skipped when missing.
	ConfigFile string
	// SkipUserFile ignores the user file entirely.
	SkipUserFile bool
	// Overrides are dotted keys applied last, e.g. "notify.enabled".
	Overrides map[string]interface{}
	// SkipEnv ignores USERENV_* variables.
	SkipEnv bool
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "raw bytes provider requires a parser")
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserFile: true, SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary.
		panic(err)
	}
	return cfg
}

// Load builds the configuration from all sources.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := loadDefaults(k, defaultConfig); err != nil {
		return nil, err
	}

	// 2. User file
	if !opts.SkipUserFile {
		if err := loadUserFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDefaults loads the built-in TOML. A failure is a defect in the binary,
// not in the user's setup.
func loadDefaults(k *koanf.Koanf, data []byte) error {
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to load built-in defaults")
	}
	return nil
}

func loadUserFile(k *koanf.Koanf, path string) error {
	explicit := path != ""
	if !explicit {
		path = paths.ConfigFile()
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && stderrors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// StoreKind returns the configured backend as a store.Kind.
func (c *Config) StoreKind() store.Kind {
	k, err := store.ParseKind(c.Backend)
	if err != nil {
		return store.KindAuto
	}
	return k
}

// Validate checks values that the decoder accepts but userenv cannot use.
func (c *Config) Validate() error {
	if _, err := store.ParseKind(c.Backend); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid backend").
			WithDetail("key", "backend")
	}
	if c.Notify.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigValid, "notify.timeout must be positive, got %s", c.Notify.Timeout).
			WithDetail("key", "notify.timeout")
	}
	if c.Notify.Enabled && c.Notify.Category == "" {
		return errors.New(errors.ErrConfigValid, "notify.category must not be empty").
			WithDetail("key", "notify.category")
	}
	return nil
}
