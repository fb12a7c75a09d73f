package inventory

// Neutral modifiers when no equipment applies
const (
	NoReduction  = 0
	NoMultiplier = 1.0
)

// Error messages
const (
	ErrMsgItemNotFoundFmt    = "item %s: %w"
	ErrMsgInvalidQuantityFmt = "invalid quantity %d for %s: %w"
	ErrMsgNotEnoughFmt       = "%s: have %d, need %d: %w"
	ErrMsgNotEquipmentFmt    = "%s has no passive effects: %w"
)

// Log messages
const (
	LogMsgItemAdded          = "Item added to inventory"
	LogMsgItemRemoved        = "Item removed from inventory"
	LogMsgEquipmentInstalled = "Equipment installed"
	LogMsgEquipmentRemoved   = "Equipment uninstalled"
)
