// Package config loads wearsum configuration from config files, environment
// variables, and flags via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the wearsum configuration.
type Config struct {
	TargetSleepHours float64 `mapstructure:"targetSleepHours"`
	Format           string  `mapstructure:"format"`
	Output           string  `mapstructure:"output"`
	Strict           bool    `mapstructure:"strict"`
	Quiet            bool    `mapstructure:"quiet"`
	Verbose          bool    `mapstructure:"verbose"`
	Validate         bool    `mapstructure:"validate"`
}

// Output format names accepted by the renderers.
const (
	FormatConsole = "console"
	FormatHTML    = "html"
	FormatJSON    = "json"
)

// Load builds a Config from viper state: defaults, any discovered config
// file, WEARSUM_* environment variables, and bound flags.
func Load() (*Config, error) {
	viper.SetDefault("targetSleepHours", 8.0)
	viper.SetDefault("format", FormatConsole)
	viper.SetDefault("strict", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("validate", true)

	configPaths := []string{".wearsumrc.json", ".wearsumrc.yaml", ".wearsumrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("WEARSUM")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Format {
	case FormatConsole, FormatHTML, FormatJSON:
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'html', or 'json'", cfg.Format)
	}
	if cfg.TargetSleepHours <= 0 {
		return fmt.Errorf("targetSleepHours must be positive, got %v", cfg.TargetSleepHours)
	}
	return nil
}
