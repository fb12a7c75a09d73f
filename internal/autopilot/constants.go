package autopilot

// MaxActionsPerDay stops the care loop if nothing ever runs out of energy
const MaxActionsPerDay = 64

// fullOccupancy is the occupancy percentage at which rescues stop
const fullOccupancy = 100.0

// criticalHealth sends an animal to medical care before anything else
const criticalHealth = 30

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDayPlayed      = "Autopilot day played"
	LogMsgRescued        = "Autopilot rescued an animal"
	LogMsgAdopted        = "Autopilot placed an animal"
	LogMsgActionRejected = "Autopilot action rejected"
	LogMsgRunCompleted   = "Autopilot run completed"
)
