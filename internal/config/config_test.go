package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvVars = []string{
	EnvSeed, EnvCapacity, EnvStartingBudget, EnvRandomEventChance, EnvFeedbackCacheSize,
	EnvJournalSize, EnvEnforceActionRequirements, EnvTrackAdoptionGoals, EnvCarryOverLevels,
	EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
}

// clearEnvVars unsets every variable Load reads and restores them afterwards
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.False(t, cfg.Rules.EnforceActionRequirements)
		assert.False(t, cfg.Rules.TrackAdoptionGoals)
		assert.False(t, cfg.Rules.CarryOverLevels)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvSeed, "42")
		t.Setenv(EnvCapacity, "5")
		t.Setenv(EnvStartingBudget, "1000")
		t.Setenv(EnvRandomEventChance, "0.5")
		t.Setenv(EnvFeedbackCacheSize, "10")
		t.Setenv(EnvEnforceActionRequirements, "true")
		t.Setenv(EnvTrackAdoptionGoals, "1")
		t.Setenv(EnvCarryOverLevels, "TRUE")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 5, cfg.Capacity)
		assert.Equal(t, 1000, cfg.StartingBudget)
		assert.InDelta(t, 0.5, cfg.RandomEventChance, 1e-9)
		assert.Equal(t, 10, cfg.FeedbackCacheSize)
		assert.True(t, cfg.Rules.EnforceActionRequirements)
		assert.True(t, cfg.Rules.TrackAdoptionGoals)
		assert.True(t, cfg.Rules.CarryOverLevels)
		assert.Equal(t, "debug", cfg.LogLevel)

		lc := cfg.LoggerConfig()
		assert.True(t, lc.IsJSON())
		assert.True(t, lc.AddSource)
	})

	t.Run("invalid numbers fall back to defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvCapacity, "lots")
		t.Setenv(EnvEnforceActionRequirements, "maybe")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultCapacity, cfg.Capacity)
		assert.False(t, cfg.Rules.EnforceActionRequirements)
	})

	t.Run("out of range values fail validation", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvRandomEventChance, "1.5")
		t.Setenv(EnvCapacity, "0")

		_, err := Load()

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), "capacity")
		assert.Contains(t, err.Error(), "randomeventchance")
	})

	t.Run("unknown log format fails validation", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogFormat, "xml")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logformat")
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT_VAR", "-10")
	assert.Equal(t, -10, getEnvAsInt("TEST_INT_VAR", 42))
	assert.Equal(t, 42, getEnvAsInt("TEST_MISSING_VAR", 42))

	t.Setenv("TEST_FLOAT_VAR", "0.25")
	assert.InDelta(t, 0.25, getEnvAsFloat("TEST_FLOAT_VAR", 1), 1e-9)

	t.Setenv("TEST_BOOL_VAR", "false")
	assert.False(t, getEnvAsBool("TEST_BOOL_VAR", true))
	assert.True(t, getEnvAsBool("TEST_MISSING_VAR", true))
}
