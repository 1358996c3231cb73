package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. SRCAPI_API_TIMEOUT
const EnvPrefix = "SRCAPI"

// Load loads the configuration. A config file is optional unless configPath is
// given explicitly; environment variables override file values.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load(".env") // init env from .env (if found)

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".srcapi"))
		}

		// Check /etc
		v.AddConfigPath("/etc/srcapi/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", "https://www.speedrun.com/api/v1/")
	v.SetDefault("api.user_agent", "srcapi")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.concurrency", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	// Update defaults
	v.SetDefault("update.repository", "s0up4200/srcapi")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api.base_url: %s", cfg.API.BaseURL)
	}

	timeout, err := str2duration.ParseDuration(cfg.API.Timeout)
	if err != nil || timeout <= 0 {
		return fmt.Errorf("invalid api.timeout: %s", cfg.API.Timeout)
	}

	if cfg.API.Concurrency < 1 {
		return fmt.Errorf("api.concurrency must be at least 1, got %d", cfg.API.Concurrency)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	if owner, name, ok := strings.Cut(cfg.Update.Repository, "/"); !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid update.repository: %s (must be 'owner/name')", cfg.Update.Repository)
	}

	return nil
}
