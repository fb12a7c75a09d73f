package eventlog

// Journal defaults
const (
	DefaultJournalSize   = 500
	DefaultRetentionDays = 30
	DefaultQueryLimit    = 20
)

// Log messages - service events
const (
	LogMsgFailedToLogEvent = "Failed to record event in journal"
	LogMsgEventLogged      = "Event recorded in journal"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting journal cleanup"
	LogMsgCleanupJobFailed    = "Journal cleanup failed"
	LogMsgCleanupJobCompleted = "Journal cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldDay           = "day"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retention_days"
	LogFieldDeletedCount  = "deleted_count"
)
