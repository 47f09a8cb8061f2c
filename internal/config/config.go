// Package config loads solver settings from config files and AOC_* environment
// variables through viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/papapumpkin/aoc2023/internal/almanac"
)

// Config holds runtime settings for a solver run.
// Values are populated from .aoc.yaml/.aoc.toml and AOC_* env vars.
type Config struct {
	Debug       bool   `mapstructure:"debug"`
	Watch       bool   `mapstructure:"watch"`
	Journal     string `mapstructure:"journal"`
	AnswersFile string `mapstructure:"answers_file"`
	Strategy    string `mapstructure:"strategy"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file or environment.
func Load() (Config, error) {
	viper.SetDefault("debug", false)
	viper.SetDefault("watch", false)
	viper.SetDefault("journal", "")
	viper.SetDefault("answers_file", "answers.toml")
	viper.SetDefault("strategy", string(almanac.StrategyIntervals))

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no solver can act on.
func (c Config) Validate() error {
	if _, err := almanac.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("config strategy: %w", err)
	}
	return nil
}
