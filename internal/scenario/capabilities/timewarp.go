package capabilities

import (
	"github.com/osse101/ShelterSim_Go/internal/scenario"
)

// MaxAdvanceDays bounds a single advance_days step
const MaxAdvanceDays = 60

// TimeWarpCapabilityInfo returns the capability info for time warping
func TimeWarpCapabilityInfo() scenario.CapabilityInfo {
	return scenario.CapabilityInfo{
		Type:        scenario.CapabilityTimeWarp,
		Name:        "Time Warp",
		Description: "Closes and opens days on the simulated clock so multi-day behavior can be exercised",
		Actions: []scenario.ActionInfo{
			{
				Action:      scenario.ActionEndDay,
				Name:        "End Day",
				Description: "Closes the current day and runs nightly maintenance",
			},
			{
				Action:      scenario.ActionStartNewDay,
				Name:        "Start New Day",
				Description: "Moves the clock to the next morning and opens the next day",
			},
			{
				Action:      scenario.ActionAdvanceDays,
				Name:        "Advance Days",
				Description: "Ends and starts the given number of days without any care in between",
				Parameters: []scenario.ParameterInfo{
					{
						Name:        "days",
						Type:        "number",
						Required:    true,
						Description: "Number of full days to skip (1 to 60)",
					},
				},
				Example: map[string]interface{}{
					"days": 3,
				},
			},
		},
	}
}

// AdvanceDaysParams represents parameters for an advance_days action
type AdvanceDaysParams struct {
	Days int
}

// ParseAdvanceDaysParams extracts advance_days parameters from a step
func ParseAdvanceDaysParams(params map[string]interface{}) (*AdvanceDaysParams, error) {
	raw, ok := params["days"]
	if !ok {
		return nil, scenario.NewParameterError("days", "is required")
	}
	days, ok := toInt(raw)
	if !ok {
		return nil, scenario.NewParameterError("days", "must be a number")
	}
	if days < 1 || days > MaxAdvanceDays {
		return nil, scenario.NewParameterError("days", "must be between 1 and 60")
	}
	return &AdvanceDaysParams{Days: days}, nil
}
