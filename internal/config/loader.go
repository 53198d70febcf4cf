package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "MACBENCH"

var (
	// ErrConfigFileNotFound is returned when the given config path does not exist.
	ErrConfigFileNotFound = errors.New("config: file not found")
	// ErrConfigParseError is returned when the config file is not valid YAML.
	ErrConfigParseError = errors.New("config: parse error")
)

// newViper builds a pre-configured Viper instance: YAML file type, MACBENCH_
// env prefix, automatic env binding, and a key replacer that maps "." → "_"
// so that nested keys like "advisor.api_key" resolve to
// "MACBENCH_ADVISOR_API_KEY".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerDefaults(v)
	return v
}

// Load reads the YAML file at configPath, merges any MACBENCH_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.  An empty configPath is equivalent to LoadFromEnv.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return LoadFromEnv()
	}

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrConfigFileNotFound, configPath)
		}
		return nil, fmt.Errorf("config: failed to stat %q: %w", configPath, err)
	}

	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrConfigParseError, configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from MACBENCH_* environment variables,
// with no config file required.
//
// Environment variable naming convention:
//
//	MACBENCH_<SECTION>_<FIELD>   e.g.  MACBENCH_SERVER_PORT, MACBENCH_ADVISOR_API_KEY
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  Callers apply only
// the safe subset at runtime (the log level).
//
// Watch is non-blocking; viper runs the fsnotify loop in the background.  If
// the changed file fails to parse or validate, onError (when non-nil) is
// called instead of onChange.
func Watch(configPath string, onChange func(*Config), onError func(error)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; callers should call Load first.
	_ = v.ReadInConfig()

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}

//Personal.AI order the ending
