// Package config resolves promptlib settings from flags, environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds the resolved settings for one promptlib invocation.
type Config struct {
	// LibraryPath is the location of the JSON library file.
	LibraryPath string `mapstructure:"library"`

	// NoColor disables styled terminal output.
	NoColor bool `mapstructure:"no_color"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultLibraryPath returns the library location used when nothing is
// configured.
func DefaultLibraryPath() string {
	return filepath.Join(xdg.DataHome, "promptlib", "library.json")
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "promptlib")
}

// Load resolves configuration with the usual precedence: values already
// set on v (flag overrides) win over PROMPTLIB_* environment variables,
// which win over the config file, which wins over defaults. Passing nil
// uses a fresh viper instance.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetDefault("library", DefaultLibraryPath())
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("PROMPTLIB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(DefaultConfigDir())
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.LibraryPath == "" {
		cfg.LibraryPath = DefaultLibraryPath()
	}
	return &cfg, nil
}
