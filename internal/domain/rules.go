package domain

// Rules switches gameplay behaviours that are not settled. The zero value
// keeps the classic behaviour: declared item, money and skill costs are not
// checked, the adoption goal never completes and a single experience grant
// advances at most one level.
type Rules struct {
	EnforceActionRequirements bool `json:"enforce_action_requirements" yaml:"enforce_action_requirements"`
	TrackAdoptionGoals        bool `json:"track_adoption_goals" yaml:"track_adoption_goals"`
	CarryOverLevels           bool `json:"carry_over_levels" yaml:"carry_over_levels"`
}
