package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/aoc2023/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2023 puzzle solvers",
	Long: `Each subcommand solves one day's puzzle. It reads the input file given as
its only argument (default input.txt) and prints one answer per line.

Settings come from .aoc.yaml or .aoc.toml in the working or home directory
and from AOC_* environment variables (AOC_DEBUG, AOC_WATCH, AOC_JOURNAL,
AOC_ANSWERS_FILE, AOC_STRATEGY).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
}

// configErr holds a config file that exists but could not be read.
var configErr error

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.New().Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetConfigName(".aoc")
	viper.AddConfigPath(".")
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("AOC")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}
