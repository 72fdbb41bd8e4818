package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override configuration keys.
// A double underscore separates section and key:
// SLIDESHOW_DEFAULTS__HEADER_LEVEL=2 sets defaults.header_level.
const EnvPrefix = "SLIDESHOW_"

// Layout names the directories a Config remembers
type Layout interface {
	ConfigDir() string
	Root() string
}

// Source adds the user configuration file to a Layout
type Source interface {
	Layout
	ConfigFilePath() string
}

// Load builds the Config for one run
func Load(src Source) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	userPath := src.ConfigFilePath()
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userPath).
				WithDetail("path", userPath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	return unmarshal(k, src)
}

// Default returns the embedded configuration without user overrides
func Default(src Layout) *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	cfg, err := unmarshal(k, src)
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

func unmarshal(k *koanf.Koanf, src Layout) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Defaults.HeaderLevel != 1 && cfg.Defaults.HeaderLevel != 2 {
		return nil, errors.Newf(errors.ErrConfigParse, "header_level must be 1 or 2, got %d", cfg.Defaults.HeaderLevel)
	}

	cfg.configDir = src.ConfigDir()
	cfg.root = src.Root()
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
