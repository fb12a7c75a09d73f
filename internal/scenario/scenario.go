package scenario

import (
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/shelter"
)

// CapabilityType defines the type of capability a provider supports
type CapabilityType string

const (
	// CapabilityTimeWarp indicates the provider can close and open days
	CapabilityTimeWarp CapabilityType = "time_warp"
	// CapabilityEventInjector indicates the provider can inject animals and state
	CapabilityEventInjector CapabilityType = "event_injector"
)

// ActionType defines the type of action in a scenario step
type ActionType string

const (
	// Common actions
	ActionAssert ActionType = "assert"

	// Care actions
	ActionPerformAction ActionType = "perform_action"
	ActionAdopt         ActionType = "adopt"
	ActionRescue        ActionType = "rescue"
	ActionImproveSkill  ActionType = "improve_skill"

	// Shop actions
	ActionPurchase ActionType = "purchase"
	ActionSell     ActionType = "sell"
	ActionUseItem  ActionType = "use_item"

	// Time warp actions
	ActionEndDay      ActionType = "end_day"
	ActionStartNewDay ActionType = "start_new_day"
	ActionAdvanceDays ActionType = "advance_days"

	// Event injector actions
	ActionAdmit ActionType = "admit"
)

// AssertionType defines the type of assertion
type AssertionType string

const (
	AssertEquals        AssertionType = "equals"
	AssertGreaterThan   AssertionType = "greater_than"
	AssertLessThan      AssertionType = "less_than"
	AssertContains      AssertionType = "contains"
	AssertNotEmpty      AssertionType = "not_empty"
	AssertEmpty         AssertionType = "empty"
	AssertTrue          AssertionType = "true"
	AssertFalse         AssertionType = "false"
	AssertBetween       AssertionType = "between"
	AssertLength        AssertionType = "length"
	AssertErrorContains AssertionType = "error_contains"
)

// Scenario defines a scripted shelter session
type Scenario struct {
	ID          string `yaml:"id" json:"id" validate:"required"`
	Name        string `yaml:"name" json:"name" validate:"required"`
	Description string `yaml:"description" json:"description"`
	Feature     string `yaml:"feature" json:"feature"`
	Setup       Setup  `yaml:"setup" json:"setup"`
	Steps       []Step `yaml:"steps" json:"steps" validate:"required,min=1,dive"`
}

// Setup describes the game a scenario starts from. Zero values fall back to
// the default configuration, except RandomEventChance which stays 0 so
// scripted sessions are not disturbed by random events. FixedRoll, when set,
// replaces the random source with a constant so critical successes,
// sickness and optional goals are decided up front.
type Setup struct {
	Seed              int64        `yaml:"seed" json:"seed"`
	FixedRoll         *float64     `yaml:"fixed_roll" json:"fixed_roll,omitempty" validate:"omitempty,gte=0,lt=1"`
	Capacity          int          `yaml:"capacity" json:"capacity" validate:"min=0,max=50"`
	StartingBudget    *int         `yaml:"starting_budget" json:"starting_budget,omitempty" validate:"omitempty,min=0"`
	StartingAnimals   int          `yaml:"starting_animals" json:"starting_animals" validate:"min=0"`
	RandomEventChance float64      `yaml:"random_event_chance" json:"random_event_chance" validate:"min=0,max=1"`
	Rules             domain.Rules `yaml:"rules" json:"rules"`
}

// Step defines a single step within a scenario
type Step struct {
	Name        string                 `yaml:"name" json:"name" validate:"required"`
	Description string                 `yaml:"description" json:"description"`
	Action      ActionType             `yaml:"action" json:"action" validate:"required"`
	Parameters  map[string]interface{} `yaml:"parameters" json:"parameters"`
	Assertions  []Assertion            `yaml:"assertions" json:"assertions" validate:"dive"`
}

// Assertion defines an expected outcome for a step
type Assertion struct {
	Type   AssertionType `yaml:"type" json:"type" validate:"required"`
	Path   string        `yaml:"path" json:"path" validate:"required"` // dotted path, list indices allowed
	Value  interface{}   `yaml:"value" json:"value,omitempty"`
	Min    interface{}   `yaml:"min" json:"min,omitempty"` // For between assertions
	Max    interface{}   `yaml:"max" json:"max,omitempty"` // For between assertions
	Reason string        `yaml:"reason" json:"reason,omitempty"`
}

// ExecutionState holds the state during scenario execution
type ExecutionState struct {
	Clock   *SimulatedClock
	Game    *shelter.Game
	Animals map[string]string // alias -> animal id
	Results map[string]interface{}
	Errors  []error
}

// NewExecutionState creates a new execution state with a simulated clock
func NewExecutionState() *ExecutionState {
	return &ExecutionState{
		Clock:   NewSimulatedClock(DefaultStartTime),
		Animals: make(map[string]string),
		Results: make(map[string]interface{}),
		Errors:  make([]error, 0),
	}
}

// SetResult stores a result under the given key
func (s *ExecutionState) SetResult(key string, value interface{}) {
	s.Results[key] = value
}

// GetResult retrieves a result by key
func (s *ExecutionState) GetResult(key string) (interface{}, bool) {
	v, ok := s.Results[key]
	return v, ok
}

// AddError appends an error to the state
func (s *ExecutionState) AddError(err error) {
	s.Errors = append(s.Errors, err)
}

// HasErrors returns true if there are any errors
func (s *ExecutionState) HasErrors() bool {
	return len(s.Errors) > 0
}

// ResolveAnimal maps an alias registered by admit or rescue onto an animal
// id. Unknown aliases are returned unchanged so raw ids work too.
func (s *ExecutionState) ResolveAnimal(ref string) string {
	if id, ok := s.Animals[ref]; ok {
		return id
	}
	return ref
}

// CapabilityInfo provides metadata about a capability
type CapabilityInfo struct {
	Type        CapabilityType `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Actions     []ActionInfo   `json:"actions"`
}

// ActionInfo provides metadata about an action
type ActionInfo struct {
	Action      ActionType             `json:"action"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  []ParameterInfo        `json:"parameters"`
	Example     map[string]interface{} `json:"example,omitempty"`
}

// ParameterInfo describes a parameter for an action
type ParameterInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// Summary provides a brief overview of a scenario for listing
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Feature     string `json:"feature"`
	StepCount   int    `json:"step_count"`
}

// ToSummary converts a Scenario to a Summary
func (s *Scenario) ToSummary() Summary {
	return Summary{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Feature:     s.Feature,
		StepCount:   len(s.Steps),
	}
}
