package eventlog

import (
	"context"

	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// CleanupJob prunes old journal entries when a new day starts
type CleanupJob struct {
	service       Service
	retentionDays int
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{
		service:       service,
		retentionDays: retentionDays,
	}
}

// Process executes the cleanup job for the given current day
func (j *CleanupJob) Process(ctx context.Context, currentDay int) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCleanupJobStarting, LogFieldRetentionDays, j.retentionDays, LogFieldDay, currentDay)

	count, err := j.service.CleanupOldEvents(ctx, j.retentionDays, currentDay)
	if err != nil {
		log.Error(LogMsgCleanupJobFailed, LogFieldError, err)
		return err
	}

	log.Debug(LogMsgCleanupJobCompleted, LogFieldDeletedCount, count)
	return nil
}
