package catalog

// Action defaults
const (
	// DefaultActionExperience is granted when an action declares no experience
	DefaultActionExperience = 1
)

// Goal template identifiers used by daily goal generation
const (
	GoalBasicCare        = "basic_care"
	GoalAdoptionReady    = "adoption_ready"
	GoalEfficiencyMaster = "efficiency_master"
)
