package stats

// Percent scale for occupancy
const percentScale = 100.0

// Log messages
const (
	LogMsgDecodeFailed = "Failed to decode event payload for stats"
	LogMsgRefreshed    = "Shelter statistics refreshed"
)

// Error messages
const (
	ErrMsgDecodePayloadFormat = "failed to decode %s payload: %w"
)
