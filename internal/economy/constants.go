package economy

// ==================== Limits ====================

// MaxTransactionQuantity caps the quantity of a single shop transaction
const MaxTransactionQuantity = 99

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgInvalidQuantityFmt    = "invalid quantity: %d: %w"
	ErrMsgQuantityExceedsMaxFmt = "quantity %d exceeds maximum allowed (%d): %w"
	ErrMsgInvalidAmountFmt      = "invalid amount %d from %s: %w"
)

// ==================== Log Messages ====================

// Ledger log messages
const (
	LogMsgMoneyAdded    = "Money added"
	LogMsgMoneySpent    = "Money spent"
	LogMsgSpendRejected = "Spend rejected"
)
