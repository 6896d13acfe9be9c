// Package config resolves CLI settings from flags, CALM_* environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/RACSolutions/calm-compass-autism-support/internal/storage"
)

const (
	EnvPrefix      = "CALM"
	configName     = "calmcompass"
	defaultLogName = "calmcompass.log"
)

type Config struct {
	DB      string `mapstructure:"db"`
	Backend string `mapstructure:"backend"`
	LogFile string `mapstructure:"log_file"`
	Verbose bool   `mapstructure:"verbose"`
}

// New returns a viper instance with env binding and defaults in place.
// Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("backend", string(storage.BackendSQLite))
	v.SetDefault("verbose", false)
	// AutomaticEnv only reaches keys viper knows about.
	v.SetDefault("db", "")
	v.SetDefault("log_file", "")
	return v
}

// Load reads the config file, if any, and resolves defaults. An explicit
// file must exist; otherwise calmcompass.yaml is looked up in the user
// config dir and the working directory and may be absent.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "calmcompass"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolve() error {
	backend, err := storage.ParseBackend(c.Backend)
	if err != nil {
		return err
	}
	c.Backend = string(backend)

	if c.DB == "" {
		switch backend {
		case storage.BackendBadger:
			c.DB, err = storage.DefaultBadgerPath()
		case storage.BackendSQLite:
			c.DB, err = storage.DefaultDBPath()
		}
		if err != nil {
			return err
		}
	}

	if c.LogFile == "" {
		dir := ""
		if c.DB != "" {
			dir = filepath.Dir(c.DB)
		} else if home, err := os.UserHomeDir(); err == nil {
			dir = home
		}
		if dir != "" {
			c.LogFile = filepath.Join(dir, defaultLogName)
		}
	}
	return nil
}

// StorageOptions maps the config onto storage.Open options.
func (c Config) StorageOptions() storage.Options {
	return storage.Options{Backend: storage.Backend(c.Backend), Path: c.DB}
}
