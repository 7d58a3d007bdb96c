package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds kupo's settings.
//
// Sources, highest precedence first:
//  1. Environment variables (KUPO_*), e.g. KUPO_PREVIEW_MAX_BYTES=4096
//  2. Configuration file
//  3. Defaults
type Config struct {
	Preview PreviewConfig `mapstructure:"preview"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type PreviewConfig struct {
	// MaxBytes caps how much of a file is read for a text preview.
	MaxBytes int `mapstructure:"max_bytes" validate:"gte=1,lte=16777216"`

	// Style is a chroma style name.
	Style string `mapstructure:"style" validate:"required"`
}

type FilterConfig struct {
	Syntax string `mapstructure:"syntax" validate:"required,oneof=regex glob"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`

	// Output is a log file path; "-" discards logs.
	Output string `mapstructure:"output" validate:"required"`
}

var osUserHomeDir = os.UserHomeDir

// Load reads configuration from configPath, or from the default location
// when configPath is empty. A missing default file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("KUPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range []string{
		"preview.max_bytes", "preview.style",
		"filter.syntax",
		"logging.level", "logging.format", "logging.output",
	} {
		_ = v.BindEnv(key)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(getConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// getConfigDir uses XDG_CONFIG_HOME, then ~/.config, then the current directory.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "kupo")
	}
	home, err := osUserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "kupo")
}

func DefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
