package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgPoolStopped is logged once every queued job has been processed
const LogMsgPoolStopped = "Worker pool stopped"

// ============================================================================
// Defaults
// ============================================================================

// DefaultQueueFactor sizes the queue relative to the worker count
const DefaultQueueFactor = 4
