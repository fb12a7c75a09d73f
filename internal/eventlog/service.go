package eventlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// Service keeps the activity journal
type Service interface {
	// Subscribe registers the journal to listen to all events
	Subscribe(bus event.Bus) error

	Recent(ctx context.Context, limit int) ([]Entry, error)
	ByType(ctx context.Context, eventType event.Type, limit int) ([]Entry, error)
	ForDay(ctx context.Context, day int) ([]Entry, error)

	// CleanupOldEvents removes entries older than retentionDays relative to currentDay
	CleanupOldEvents(ctx context.Context, retentionDays, currentDay int) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new journal service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Subscribe registers the journal handler for all event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent records one event in the journal
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	entry := Entry{
		ID:        uuid.NewString(),
		EventType: string(evt.Type),
		Day:       evt.Day(),
		Payload:   evt.Payload,
		Metadata:  evt.Metadata,
		CreatedAt: s.now(),
	}
	if sid, ok := logger.SessionIDFromContext(ctx); ok {
		entry.SessionID = sid
	}

	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldDay, entry.Day)
	return nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return s.repo.GetEvents(ctx, EventFilter{Limit: limit})
}

func (s *service) ByType(ctx context.Context, eventType event.Type, limit int) ([]Entry, error) {
	return s.repo.GetEventsByType(ctx, string(eventType), limit)
}

func (s *service) ForDay(ctx context.Context, day int) ([]Entry, error) {
	return s.repo.GetEvents(ctx, EventFilter{Day: &day})
}

// CleanupOldEvents removes entries older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays, currentDay int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, currentDay-retentionDays)
}
