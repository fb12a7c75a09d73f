package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	job := NewCleanupJob(service, 10)
	ctx := context.Background()

	// Day 25 with 10 days of retention keeps days 15 and later
	mockRepo.On("CleanupOldEvents", mock.Anything, 15).Return(int64(100), nil)

	err := job.Process(ctx, 25)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_ProcessError(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), 5)

	mockRepo.On("CleanupOldEvents", mock.Anything, 1).Return(int64(0), errors.New("boom"))

	assert.Error(t, job.Process(context.Background(), 6))
}
