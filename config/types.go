package config

import (
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
}

// APIConfig holds speedrun.com API connection details
type APIConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
	// Timeout is a human duration such as "30s", "1m" or "1m30s"
	Timeout     string `mapstructure:"timeout"`
	Concurrency int    `mapstructure:"concurrency"`
}

// TimeoutDuration parses Timeout. Load has already validated it.
func (c APIConfig) TimeoutDuration() time.Duration {
	d, err := str2duration.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// FilterConfig maps preset names to filter expressions. Names are
// case-insensitive and stored lowercase.
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig controls self-update
type UpdateConfig struct {
	// Repository is the GitHub "owner/name" releases are fetched from
	Repository string `mapstructure:"repository"`
}
