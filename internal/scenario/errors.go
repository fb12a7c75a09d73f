package scenario

import (
	"errors"
	"fmt"
)

// Common errors for the scenario engine
var (
	// ErrProviderNotFound indicates the requested provider was not found
	ErrProviderNotFound = errors.New("scenario provider not found")

	// ErrScenarioNotFound indicates the requested scenario was not found
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrInvalidScenario indicates a scenario document failed to parse or validate
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrInvalidAction indicates an invalid or unsupported action
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidParameter indicates a parameter has an invalid value
	ErrInvalidParameter = errors.New("invalid parameter value")

	// ErrGameNotInitialized indicates a step ran before the provider set up a game
	ErrGameNotInitialized = errors.New("game not initialized for scenario")
)

// ParameterError represents an error with a specific parameter
type ParameterError struct {
	Parameter string
	Message   string
	Err       error
}

func (e *ParameterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parameter '%s': %s: %v", e.Parameter, e.Message, e.Err)
	}
	return fmt.Sprintf("parameter '%s': %s", e.Parameter, e.Message)
}

func (e *ParameterError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidParameter
}

// NewParameterError creates a new ParameterError
func NewParameterError(param, message string) *ParameterError {
	return &ParameterError{
		Parameter: param,
		Message:   message,
	}
}

// NewParameterErrorWithCause creates a new ParameterError with a cause
func NewParameterErrorWithCause(param, message string, err error) *ParameterError {
	return &ParameterError{
		Parameter: param,
		Message:   message,
		Err:       err,
	}
}

// StepError represents an error that occurred during step execution
type StepError struct {
	StepName  string
	StepIndex int
	Action    ActionType
	Message   string
	Err       error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("step %d '%s' (action: %s): %s: %v",
			e.StepIndex, e.StepName, e.Action, e.Message, e.Err)
	}
	return fmt.Sprintf("step %d '%s' (action: %s): %s",
		e.StepIndex, e.StepName, e.Action, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepErrorWithCause creates a new StepError with a cause
func NewStepErrorWithCause(step Step, index int, message string, err error) *StepError {
	return &StepError{
		StepName:  step.Name,
		StepIndex: index,
		Action:    step.Action,
		Message:   message,
		Err:       err,
	}
}

// WrapProviderError wraps an error from a provider with context
func WrapProviderError(provider string, action ActionType, err error) error {
	return fmt.Errorf("provider '%s' action '%s': %w", provider, action, err)
}
