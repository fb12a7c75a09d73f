package eventlog

import (
	"context"
	"time"
)

// Entry represents a journaled event
type Entry struct {
	ID        string      `json:"id"`
	EventType string      `json:"event_type"`
	Day       int         `json:"day"`
	SessionID string      `json:"session_id,omitempty"`
	Payload   interface{} `json:"payload"`
	Metadata  interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// EventFilter filters entries for queries
type EventFilter struct {
	EventType *string
	Day       *int
	Limit     int
}

// Repository defines the interface for journal storage
type Repository interface {
	// LogEvent stores an entry
	LogEvent(ctx context.Context, entry Entry) error

	// GetEvents retrieves entries matching the filter, newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Entry, error)

	// GetEventsByType retrieves entries of a specific type, newest first
	GetEventsByType(ctx context.Context, eventType string, limit int) ([]Entry, error)

	// CleanupOldEvents removes entries from days before the given day
	CleanupOldEvents(ctx context.Context, beforeDay int) (int64, error)
}
