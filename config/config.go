package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server     ServerConfig
	Nutrition  NutritionConfig
	Dictionary DictionaryConfig
	Cache      CacheConfig
	Log        LogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// NutritionConfig holds the external nutrition API configuration. An empty
// APIKey disables the external lookup path; dictionary matching still works.
type NutritionConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// DictionaryConfig points at the bundled food dictionary file.
type DictionaryConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig holds lookup-cache configuration.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from an optional config file and RECIPEAPP_
// environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/recipeapp/")

	v.SetEnvPrefix("RECIPEAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; environment variables and defaults apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	normalize(&config)
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("nutrition.base_url", "https://api.api-ninjas.com/v1/")

	v.SetDefault("dictionary.path", "data/dictionary.json")

	v.SetDefault("cache.ttl", "24h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/recipeapp.log")
}

// normalize fixes up values that have a canonical form.
func normalize(config *Config) {
	base := strings.TrimSpace(config.Nutrition.BaseURL)
	if base == "" {
		base = "https://api.api-ninjas.com/v1/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	config.Nutrition.BaseURL = base
}

// validate validates the configuration. A missing nutrition API key is
// deliberately not an error: the dictionary path keeps working without it.
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", config.Cache.TTL)
	}
	return nil
}
