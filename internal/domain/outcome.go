package domain

import "fmt"

// FailureReason is a machine readable code explaining why a command failed
type FailureReason string

const (
	ReasonNone                     FailureReason = ""
	ReasonAnimalNotFound           FailureReason = "animal_not_found"
	ReasonGoalNotFound             FailureReason = "goal_not_found"
	ReasonItemNotFound             FailureReason = "item_not_found"
	ReasonInvalidAction            FailureReason = "invalid_action"
	ReasonInsufficientPlayerEnergy FailureReason = "insufficient_player_energy"
	ReasonInsufficientAnimalEnergy FailureReason = "insufficient_animal_energy"
	ReasonInsufficientFunds        FailureReason = "insufficient_funds"
	ReasonMissingRequiredItem      FailureReason = "missing_required_item"
	ReasonInsufficientSkill        FailureReason = "insufficient_skill"
	ReasonInsufficientQuantity     FailureReason = "insufficient_quantity"
	ReasonNotReadyForAdoption      FailureReason = "not_ready_for_adoption"
	ReasonShelterFull              FailureReason = "shelter_full"
	ReasonLevelTooLow              FailureReason = "level_too_low"
	ReasonItemLocked               FailureReason = "item_locked"
	ReasonMaxQuantityReached       FailureReason = "max_quantity_reached"
	ReasonItemNotUsable            FailureReason = "item_not_usable"
	ReasonInvalidInput             FailureReason = "invalid_input"
	ReasonInvalidPhase             FailureReason = "invalid_phase"
	ReasonNoSkillPoints            FailureReason = "no_skill_points"
)

// Err maps a failure reason onto the matching sentinel error
func (r FailureReason) Err() error {
	switch r {
	case ReasonNone:
		return nil
	case ReasonAnimalNotFound:
		return ErrAnimalNotFound
	case ReasonGoalNotFound:
		return ErrGoalNotFound
	case ReasonItemNotFound:
		return ErrItemNotFound
	case ReasonInvalidAction:
		return ErrInvalidAction
	case ReasonInsufficientPlayerEnergy:
		return ErrInsufficientPlayerEnergy
	case ReasonInsufficientAnimalEnergy:
		return ErrInsufficientAnimalEnergy
	case ReasonInsufficientFunds:
		return ErrInsufficientFunds
	case ReasonMissingRequiredItem:
		return ErrMissingRequiredItem
	case ReasonInsufficientSkill:
		return ErrInsufficientSkill
	case ReasonInsufficientQuantity:
		return ErrInsufficientQuantity
	case ReasonNotReadyForAdoption:
		return ErrNotReadyForAdoption
	case ReasonShelterFull:
		return ErrShelterFull
	case ReasonLevelTooLow:
		return ErrLevelTooLow
	case ReasonItemLocked:
		return ErrItemLocked
	case ReasonMaxQuantityReached:
		return ErrMaxQuantityReached
	case ReasonItemNotUsable:
		return ErrItemNotUsable
	case ReasonInvalidInput:
		return ErrInvalidInput
	case ReasonInvalidPhase:
		return ErrInvalidPhase
	case ReasonNoSkillPoints:
		return ErrNoSkillPoints
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, string(r))
}

// Shortfall explains an insufficient resource: how much was needed vs. available
type Shortfall struct {
	Resource  string `json:"resource"`
	Needed    int    `json:"needed"`
	Available int    `json:"available"`
}

// ActionOutcome is the result of applying one care action to one animal
type ActionOutcome struct {
	Success          bool          `json:"success"`
	Reason           FailureReason `json:"reason,omitempty"`
	Shortfall        *Shortfall    `json:"shortfall,omitempty"`
	Action           ActionType    `json:"action"`
	AnimalID         string        `json:"animal_id"`
	Effects          StatDelta     `json:"effects"`
	CriticalSuccess  bool          `json:"critical_success"`
	ExperienceGained int           `json:"experience_gained"`
	Message          string        `json:"message"`
}

// Err returns nil on success, otherwise the wrapped sentinel for the failure reason
func (o ActionOutcome) Err() error {
	if o.Success {
		return nil
	}
	return wrapReason(o.Reason, o.Shortfall)
}

func wrapReason(reason FailureReason, shortfall *Shortfall) error {
	err := reason.Err()
	if err == nil || shortfall == nil {
		return err
	}
	return fmt.Errorf("%w: %s needed %d, available %d", err, shortfall.Resource, shortfall.Needed, shortfall.Available)
}

// FailureError builds an error for a failure reason with optional shortfall context
func FailureError(reason FailureReason, shortfall *Shortfall) error {
	return wrapReason(reason, shortfall)
}
