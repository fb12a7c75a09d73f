package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Animal errors
	ErrMsgAnimalNotFound       = "animal not found"
	ErrMsgNotReadyForAdoption  = "animal is not ready for adoption"
	ErrMsgInsufficientAnimalEn = "insufficient animal energy"
	ErrMsgShelterFull          = "shelter is at capacity"

	// Player errors
	ErrMsgInsufficientPlayerEn = "insufficient player energy"
	ErrMsgInsufficientSkill    = "insufficient skill"
	ErrMsgNoSkillPoints        = "no skill points available"
	ErrMsgUnknownSkill         = "unknown skill"

	// Action errors
	ErrMsgInvalidAction       = "invalid action"
	ErrMsgMissingRequiredItem = "missing required item"

	// Goal errors
	ErrMsgGoalNotFound = "goal not found"

	// Item errors
	ErrMsgItemNotFound         = "item not found"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgLevelTooLow          = "player level too low"
	ErrMsgItemLocked           = "item is not available yet"
	ErrMsgMaxQuantityReached   = "maximum quantity reached"
	ErrMsgItemNotUsable        = "item cannot be used"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "amount must be positive"

	// Day cycle errors
	ErrMsgInvalidPhase      = "invalid day phase"
	ErrMsgDayAlreadyEnded   = "day has already ended"
	ErrMsgDayNotEnded       = "current day has not ended"
	ErrMsgDayNotInitialized = "day cycle not initialized"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "transaction already closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Animal errors
	ErrAnimalNotFound           = errors.New(ErrMsgAnimalNotFound)
	ErrNotReadyForAdoption      = errors.New(ErrMsgNotReadyForAdoption)
	ErrInsufficientAnimalEnergy = errors.New(ErrMsgInsufficientAnimalEn)
	ErrShelterFull              = errors.New(ErrMsgShelterFull)

	// Player errors
	ErrInsufficientPlayerEnergy = errors.New(ErrMsgInsufficientPlayerEn)
	ErrInsufficientSkill        = errors.New(ErrMsgInsufficientSkill)
	ErrNoSkillPoints            = errors.New(ErrMsgNoSkillPoints)
	ErrUnknownSkill             = errors.New(ErrMsgUnknownSkill)

	// Action errors
	ErrInvalidAction       = errors.New(ErrMsgInvalidAction)
	ErrMissingRequiredItem = errors.New(ErrMsgMissingRequiredItem)

	// Goal errors
	ErrGoalNotFound = errors.New(ErrMsgGoalNotFound)

	// Item errors
	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrLevelTooLow          = errors.New(ErrMsgLevelTooLow)
	ErrItemLocked           = errors.New(ErrMsgItemLocked)
	ErrMaxQuantityReached   = errors.New(ErrMsgMaxQuantityReached)
	ErrItemNotUsable        = errors.New(ErrMsgItemNotUsable)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	// Day cycle errors
	ErrInvalidPhase      = errors.New(ErrMsgInvalidPhase)
	ErrDayAlreadyEnded   = errors.New(ErrMsgDayAlreadyEnded)
	ErrDayNotEnded       = errors.New(ErrMsgDayNotEnded)
	ErrDayNotInitialized = errors.New(ErrMsgDayNotInitialized)

	// Catalog errors
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Transaction errors
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)
