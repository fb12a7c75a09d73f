package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
	"github.com/osse101/ShelterSim_Go/internal/validation"
)

// ErrInvalidConfig is returned when a loaded value fails validation
var ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

// Config holds the simulation configuration
type Config struct {
	Seed              int64   // 0 means seed from the clock
	Capacity          int     `validate:"min=1,max=50"`
	StartingBudget    int     `validate:"min=0"`
	RandomEventChance float64 `validate:"min=0,max=1"`
	FeedbackCacheSize int     `validate:"min=1,max=10000"`
	JournalSize       int     `validate:"min=1"`
	Rules             domain.Rules

	LogLevel    string `validate:"required,oneof=debug info warn warning error"`
	LogFormat   string `validate:"required,oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Capacity:          DefaultCapacity,
		StartingBudget:    DefaultStartingBudget,
		RandomEventChance: DefaultRandomEventChance,
		FeedbackCacheSize: DefaultFeedbackCacheSize,
		JournalSize:       DefaultJournalSize,
		LogLevel:          logger.LogLevelInfo,
		LogFormat:         logger.LogFormatText,
		Environment:       logger.EnvironmentDev,
		ServiceName:       logger.DefaultServiceName,
		Version:           logger.DefaultVersion,
	}
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	d := Default()
	cfg := &Config{
		Seed:              getEnvAsInt64(EnvSeed, 0),
		Capacity:          getEnvAsInt(EnvCapacity, d.Capacity),
		StartingBudget:    getEnvAsInt(EnvStartingBudget, d.StartingBudget),
		RandomEventChance: getEnvAsFloat(EnvRandomEventChance, d.RandomEventChance),
		FeedbackCacheSize: getEnvAsInt(EnvFeedbackCacheSize, d.FeedbackCacheSize),
		JournalSize:       getEnvAsInt(EnvJournalSize, d.JournalSize),
		Rules: domain.Rules{
			EnforceActionRequirements: getEnvAsBool(EnvEnforceActionRequirements, false),
			TrackAdoptionGoals:        getEnvAsBool(EnvTrackAdoptionGoals, false),
			CarryOverLevels:           getEnvAsBool(EnvCarryOverLevels, false),
		},
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, d.LogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, d.LogFormat)),
		Environment: getEnv(EnvEnvironment, d.Environment),
		ServiceName: getEnv(EnvServiceName, d.ServiceName),
		Version:     getEnv(EnvVersion, d.Version),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, validation.Summary(err))
	}
	return nil
}

// LoggerConfig derives the logger configuration
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.LogLevel == logger.LogLevelDebug)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
