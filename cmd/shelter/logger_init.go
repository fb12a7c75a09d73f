package main

import (
	"os"

	"github.com/osse101/ShelterSim_Go/internal/config"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// initLogger sends logs to stderr so command output on stdout stays parseable
func initLogger(cfg *config.Config) {
	logger.InitLoggerWithWriter(cfg.LoggerConfig(), os.Stderr)
}
