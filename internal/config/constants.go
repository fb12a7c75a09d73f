package config

// Environment variable names
const (
	EnvSeed                      = "SHELTER_SEED"
	EnvCapacity                  = "SHELTER_CAPACITY"
	EnvStartingBudget            = "SHELTER_STARTING_BUDGET"
	EnvRandomEventChance         = "SHELTER_RANDOM_EVENT_CHANCE"
	EnvFeedbackCacheSize         = "SHELTER_FEEDBACK_CACHE_SIZE"
	EnvJournalSize               = "SHELTER_JOURNAL_SIZE"
	EnvEnforceActionRequirements = "SHELTER_ENFORCE_ACTION_REQUIREMENTS"
	EnvTrackAdoptionGoals        = "SHELTER_TRACK_ADOPTION_GOALS"
	EnvCarryOverLevels           = "SHELTER_CARRY_OVER_LEVELS"
	EnvLogLevel                  = "LOG_LEVEL"
	EnvLogFormat                 = "LOG_FORMAT"
	EnvEnvironment               = "ENVIRONMENT"
	EnvServiceName               = "SERVICE_NAME"
	EnvVersion                   = "VERSION"
)

// Defaults
const (
	DefaultCapacity          = 3
	DefaultStartingBudget    = 500
	DefaultRandomEventChance = 0.3
	DefaultFeedbackCacheSize = 50
	DefaultJournalSize       = 500
)

// Error messages
const (
	ErrMsgInvalidConfig = "invalid configuration"
)
