package scenario

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExecutionResult represents the complete result of a scenario execution
type ExecutionResult struct {
	ScenarioID   string                 `json:"scenario_id"`
	ScenarioName string                 `json:"scenario_name"`
	Success      bool                   `json:"success"`
	DurationMS   int64                  `json:"duration_ms"`
	StartedAt    time.Time              `json:"started_at"`
	CompletedAt  time.Time              `json:"completed_at"`
	Steps        []StepResult           `json:"steps"`
	Error        string                 `json:"error,omitempty"`
	FinalDay     int                    `json:"final_day"`
	FinalState   map[string]interface{} `json:"final_state,omitempty"`
}

// StepResult represents the result of a single step execution
type StepResult struct {
	StepName   string                 `json:"step_name"`
	StepIndex  int                    `json:"step_index"`
	Action     ActionType             `json:"action"`
	Success    bool                   `json:"success"`
	DurationMS int64                  `json:"duration_ms"`
	Output     map[string]interface{} `json:"output,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Assertions []AssertionResult      `json:"assertions,omitempty"`
}

// AssertionResult represents the result of a single assertion
type AssertionResult struct {
	Type     AssertionType `json:"type"`
	Path     string        `json:"path"`
	Expected interface{}   `json:"expected,omitempty"`
	Actual   interface{}   `json:"actual,omitempty"`
	Passed   bool          `json:"passed"`
	Reason   string        `json:"reason,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// NewExecutionResult creates a new ExecutionResult with initialized values
func NewExecutionResult(scenarioID, scenarioName string) *ExecutionResult {
	return &ExecutionResult{
		ScenarioID:   scenarioID,
		ScenarioName: scenarioName,
		Success:      true,
		StartedAt:    time.Now(),
		Steps:        make([]StepResult, 0),
		FinalState:   make(map[string]interface{}),
	}
}

// Complete marks the execution as complete and calculates duration
func (r *ExecutionResult) Complete() {
	r.CompletedAt = time.Now()
	r.DurationMS = r.CompletedAt.Sub(r.StartedAt).Milliseconds()
}

// AddStepResult adds a step result and updates overall success
func (r *ExecutionResult) AddStepResult(step StepResult) {
	r.Steps = append(r.Steps, step)
	if !step.Success {
		r.Success = false
	}
}

// SetError marks the execution as failed with an error
func (r *ExecutionResult) SetError(err error) {
	r.Success = false
	r.Error = err.Error()
}

// NewStepResult creates a new StepResult with initialized values
func NewStepResult(stepName string, stepIndex int, action ActionType) *StepResult {
	return &StepResult{
		StepName:   stepName,
		StepIndex:  stepIndex,
		Action:     action,
		Success:    true,
		Output:     make(map[string]interface{}),
		Assertions: make([]AssertionResult, 0),
	}
}

// SetDuration sets the duration from start to now
func (r *StepResult) SetDuration(start time.Time) {
	r.DurationMS = time.Since(start).Milliseconds()
}

// SetError marks the step as failed with an error
func (r *StepResult) SetError(err error) {
	r.Success = false
	r.Error = err.Error()
}

// AddOutput adds a key-value pair to the output
func (r *StepResult) AddOutput(key string, value interface{}) {
	r.Output[key] = value
}

// AddAssertionResult adds an assertion result and updates step success
func (r *StepResult) AddAssertionResult(assertion AssertionResult) {
	r.Assertions = append(r.Assertions, assertion)
	if !assertion.Passed {
		r.Success = false
	}
}

// ToPrettyJSON converts the result to indented JSON bytes
func (r *ExecutionResult) ToPrettyJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Tally counts passed steps and assertions of a run
type Tally struct {
	Steps            int
	PassedSteps      int
	Assertions       int
	PassedAssertions int
}

func (r *ExecutionResult) Tally() Tally {
	t := Tally{Steps: len(r.Steps)}
	for _, step := range r.Steps {
		if step.Success {
			t.PassedSteps++
		}
		t.Assertions += len(step.Assertions)
		for _, a := range step.Assertions {
			if a.Passed {
				t.PassedAssertions++
			}
		}
	}
	return t
}

// Failures lists what went wrong, one line per run error, step error or
// failed assertion, in step order
func (r *ExecutionResult) Failures() []string {
	var out []string
	if r.Error != "" {
		out = append(out, r.Error)
	}
	for _, step := range r.Steps {
		if step.Error != "" {
			out = append(out, fmt.Sprintf("step %q: %s", step.StepName, step.Error))
		}
		for _, a := range step.Assertions {
			if a.Passed {
				continue
			}
			msg := a.Error
			if msg == "" {
				msg = fmt.Sprintf("expected %v, got %v", a.Expected, a.Actual)
			}
			out = append(out, fmt.Sprintf("step %q: %s %s: %s", step.StepName, a.Type, a.Path, msg))
		}
	}
	return out
}
