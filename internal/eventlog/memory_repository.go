package eventlog

import (
	"context"
	"sync"
)

// MemoryRepository is a bounded in-memory journal. The oldest entries are
// dropped once the capacity is reached.
type MemoryRepository struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
}

// NewMemoryRepository creates a journal holding at most capacity entries
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = DefaultJournalSize
	}
	return &MemoryRepository{capacity: capacity}
}

func (r *MemoryRepository) LogEvent(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if over := len(r.entries) - r.capacity; over > 0 {
		r.entries = append([]Entry(nil), r.entries[over:]...)
	}
	return nil
}

func (r *MemoryRepository) GetEvents(_ context.Context, filter EventFilter) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if filter.EventType != nil && e.EventType != *filter.EventType {
			continue
		}
		if filter.Day != nil && e.Day != *filter.Day {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetEventsByType(ctx context.Context, eventType string, limit int) ([]Entry, error) {
	return r.GetEvents(ctx, EventFilter{EventType: &eventType, Limit: limit})
}

func (r *MemoryRepository) CleanupOldEvents(_ context.Context, beforeDay int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	var removed int64
	for _, e := range r.entries {
		if e.Day < beforeDay {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return removed, nil
}

// Len reports the number of stored entries
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
