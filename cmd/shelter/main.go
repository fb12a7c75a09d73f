package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/ShelterSim_Go/internal/config"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

var (
	seed    int64
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "shelter",
		Short:         "Headless driver for the animal shelter simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed (0 uses SHELTER_SEED or a random source)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newScenarioCmd())
	rootCmd.AddCommand(newCatalogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment, applies command-line overrides and
// installs the logger on the returned context
func loadConfig(ctx context.Context) (context.Context, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return ctx, nil, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if verbose {
		cfg.LogLevel = logger.LogLevelDebug
	}

	initLogger(cfg)
	return logger.WithSessionID(ctx, logger.GenerateSessionID()), cfg, nil
}
