package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Config holds all application configuration.
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	OMDB    OMDBConfig    `mapstructure:"omdb"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds TMDB API client configuration.
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Timeout      int    `mapstructure:"timeout"` // seconds
	MaxRetries   int    `mapstructure:"max_retries"`
}

// OMDBConfig holds OMDb API client configuration.
type OMDBConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	Timeout    int    `mapstructure:"timeout"` // seconds
	MaxRetries int    `mapstructure:"max_retries"`
}

// CacheConfig holds lookup cache configuration.
type CacheConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes"`
	MaxItems   int `mapstructure:"max_items"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.screenscout")
	}

	v.SetEnvPrefix("SCREENSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bare TMDB_API_KEY / OMDB_API_KEY are accepted as well, since that is
	// how the keys usually appear in MCP client configs.
	_ = v.BindEnv("tmdb.api_key", "SCREENSCOUT_TMDB_API_KEY", "TMDB_API_KEY")
	_ = v.BindEnv("omdb.api_key", "SCREENSCOUT_OMDB_API_KEY", "OMDB_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults + env vars
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p")
	v.SetDefault("tmdb.timeout", 10)
	v.SetDefault("tmdb.max_retries", 3)

	v.SetDefault("omdb.api_key", "")
	v.SetDefault("omdb.base_url", "https://www.omdbapi.com/")
	v.SetDefault("omdb.timeout", 10)
	v.SetDefault("omdb.max_retries", 3)

	v.SetDefault("cache.ttl_minutes", 15)
	v.SetDefault("cache.max_items", 1000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.path", "")
}
