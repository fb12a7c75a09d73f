package shelter

import (
	"errors"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/event"
)

// Rewards lists what completed goals and experience grants produced during a command
type Rewards struct {
	CompletedGoals []domain.DailyGoal   `json:"completed_goals,omitempty"`
	LevelUps       []domain.LevelResult `json:"level_ups,omitempty"`
	Events         []event.Event        `json:"events,omitempty"`
}

// LeveledUp reports whether any grant crossed a level threshold
func (r Rewards) LeveledUp() bool {
	return len(r.LevelUps) > 0
}

// ActionResult is the outcome of PerformAction
type ActionResult struct {
	domain.ActionOutcome
	Rewards

	PlayerEnergyCost int `json:"player_energy_cost"`
}

// AdoptionOutcome is the outcome of Adopt
type AdoptionOutcome struct {
	Success          bool                 `json:"success"`
	Reason           domain.FailureReason `json:"reason,omitempty"`
	AnimalID         string               `json:"animal_id"`
	AnimalName       string               `json:"animal_name,omitempty"`
	AdoptionFee      int                  `json:"adoption_fee"`
	ReputationGained int                  `json:"reputation_gained"`
	Rewards
}

func (o AdoptionOutcome) Err() error {
	if o.Success {
		return nil
	}
	return domain.FailureError(o.Reason, nil)
}

// RescueOutcome is the outcome of RescueAnimal and AdmitAnimal
type RescueOutcome struct {
	Success   bool                 `json:"success"`
	Reason    domain.FailureReason `json:"reason,omitempty"`
	Shortfall *domain.Shortfall    `json:"shortfall,omitempty"`
	Animal    *domain.Animal       `json:"animal,omitempty"`
}

func (o RescueOutcome) Err() error {
	if o.Success {
		return nil
	}
	return domain.FailureError(o.Reason, o.Shortfall)
}

// ShopOutcome is the outcome of PurchaseItem, SellItem and UseItem
type ShopOutcome struct {
	Success   bool                 `json:"success"`
	Reason    domain.FailureReason `json:"reason,omitempty"`
	Shortfall *domain.Shortfall    `json:"shortfall,omitempty"`
	ItemID    string               `json:"item_id"`
	Quantity  int                  `json:"quantity"`
	Amount    int                  `json:"amount"`
	Budget    int                  `json:"budget"`
	Message   string               `json:"message,omitempty"`
}

func (o ShopOutcome) Err() error {
	if o.Success {
		return nil
	}
	return domain.FailureError(o.Reason, o.Shortfall)
}

// DayStart is the outcome of StartNewDay
type DayStart struct {
	Day          int                `json:"day"`
	Goals        []domain.DailyGoal `json:"goals"`
	Event        *domain.DayEvent   `json:"event,omitempty"`
	PlayerEnergy int                `json:"player_energy"`
	NewAnimal    *domain.Animal     `json:"new_animal,omitempty"`
}

// reasonFor maps a store error onto the failure reason callers see
func reasonFor(err error) domain.FailureReason {
	switch {
	case err == nil:
		return domain.ReasonNone
	case errors.Is(err, domain.ErrAnimalNotFound):
		return domain.ReasonAnimalNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return domain.ReasonItemNotFound
	case errors.Is(err, domain.ErrGoalNotFound):
		return domain.ReasonGoalNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return domain.ReasonInsufficientFunds
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return domain.ReasonInsufficientQuantity
	case errors.Is(err, domain.ErrMaxQuantityReached):
		return domain.ReasonMaxQuantityReached
	case errors.Is(err, domain.ErrItemNotUsable):
		return domain.ReasonItemNotUsable
	case errors.Is(err, domain.ErrShelterFull):
		return domain.ReasonShelterFull
	case errors.Is(err, domain.ErrNoSkillPoints):
		return domain.ReasonNoSkillPoints
	case errors.Is(err, domain.ErrDayAlreadyEnded), errors.Is(err, domain.ErrDayNotEnded),
		errors.Is(err, domain.ErrDayNotInitialized), errors.Is(err, domain.ErrInvalidPhase):
		return domain.ReasonInvalidPhase
	}
	return domain.ReasonInvalidInput
}
