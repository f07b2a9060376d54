// Package config provides Viper-based configuration for catfeed.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"catfeed/internal/catapi"
	"catfeed/internal/feed"
)

// EnvPrefix is prepended to every environment override, e.g. CATFEED_API_KEY.
const EnvPrefix = "CATFEED"

// Config is the complete catfeed configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Feed    FeedConfig    `mapstructure:"feed"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig points at the image search service.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Key     string        `mapstructure:"key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// FeedConfig bounds the requested counts and shapes the grid.
type FeedConfig struct {
	DefaultCount int `mapstructure:"default_count"`
	MaxCount     int `mapstructure:"max_count"`
	Columns      int `mapstructure:"columns"`
}

// LoggingConfig controls the debug log. The TUI owns the terminal, so logs
// only ever go to a file.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Limits converts the feed settings into controller limits.
func (c *Config) Limits() feed.Limits {
	return feed.Limits{Default: c.Feed.DefaultCount, Max: c.Feed.MaxCount}
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"api-key":   "api.key",
	"base-url":  "api.base_url",
	"timeout":   "api.timeout",
	"log-file":  "logging.file",
	"log-level": "logging.level",
	"columns":   "feed.columns",
}

// Load reads configuration from an optional file, CATFEED_* environment
// variables and any of the known flags present in fs. Later sources win.
func Load(cfgFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".catfeed")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/catfeed")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", catapi.DefaultBaseURL)
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", catapi.DefaultTimeout)

	v.SetDefault("feed.default_count", feed.DefaultCount)
	v.SetDefault("feed.max_count", feed.DefaultMax)
	v.SetDefault("feed.columns", 2)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url %q must be an absolute http(s) URL", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", cfg.API.Timeout)
	}
	if cfg.Feed.MaxCount < feed.MinCount || cfg.Feed.MaxCount > feed.DefaultMax {
		return fmt.Errorf("feed.max_count must be between %d and %d, got %d",
			feed.MinCount, feed.DefaultMax, cfg.Feed.MaxCount)
	}
	if cfg.Feed.DefaultCount < feed.MinCount || cfg.Feed.DefaultCount > cfg.Feed.MaxCount {
		return fmt.Errorf("feed.default_count must be between %d and %d, got %d",
			feed.MinCount, cfg.Feed.MaxCount, cfg.Feed.DefaultCount)
	}
	if cfg.Feed.Columns < 1 {
		return fmt.Errorf("feed.columns must be at least 1, got %d", cfg.Feed.Columns)
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}
	return nil
}
