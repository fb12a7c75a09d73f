package stats

import (
	"context"
	"maps"
	"sync"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// Service keeps the derived shelter-wide statistics
type Service interface {
	Refresh(ctx context.Context, animals []domain.Animal, capacity int)
	Current() domain.ShelterStats
	Lifetime() domain.LifetimeStats

	// Lifetime counters, fed by the EventHandler
	RecordAction(action domain.ActionType, critical bool)
	RecordFailedAction()
	RecordGoalCompleted()
	RecordAdoption(fee int)
	RecordAdmission()
	RecordSickness()
	RecordRandomEvent()
	RecordDayEnded(careStreak int)
}

// service implements the Service interface
type service struct {
	mu       sync.RWMutex
	current  domain.ShelterStats
	lifetime domain.LifetimeStats
}

// NewService creates a new stats service
func NewService() Service {
	return &service{
		current:  Shelter(nil, 0),
		lifetime: domain.LifetimeStats{ActionCounts: map[domain.ActionType]int{}},
	}
}

// Refresh recomputes the population statistics
func (s *service) Refresh(ctx context.Context, animals []domain.Animal, capacity int) {
	next := Shelter(animals, capacity)

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Debug(LogMsgRefreshed, "occupancy", next.Occupancy, "average_health", next.AverageHealth)
}

// Current returns the last refreshed statistics together with lifetime counters
func (s *service) Current() domain.ShelterStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.current
	out.StatusCounts = maps.Clone(s.current.StatusCounts)
	out.Lifetime = s.lifetimeLocked()
	return out
}

func (s *service) Lifetime() domain.LifetimeStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lifetimeLocked()
}

func (s *service) lifetimeLocked() domain.LifetimeStats {
	out := s.lifetime
	out.ActionCounts = maps.Clone(s.lifetime.ActionCounts)
	return out
}

// update applies fn to the lifetime counters under the write lock
func (s *service) update(fn func(l *domain.LifetimeStats)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.lifetime)
}

func (s *service) RecordAction(action domain.ActionType, critical bool) {
	s.update(func(l *domain.LifetimeStats) {
		l.ActionsPerformed++
		l.ActionCounts[action]++
		if critical {
			l.CriticalSuccesses++
		}
	})
}

func (s *service) RecordFailedAction() {
	s.update(func(l *domain.LifetimeStats) { l.ActionsFailed++ })
}

func (s *service) RecordGoalCompleted() {
	s.update(func(l *domain.LifetimeStats) { l.GoalsCompleted++ })
}

func (s *service) RecordAdoption(fee int) {
	s.update(func(l *domain.LifetimeStats) {
		l.Adoptions++
		l.AdoptionFees += fee
	})
}

func (s *service) RecordAdmission() {
	s.update(func(l *domain.LifetimeStats) { l.AnimalsAdmitted++ })
}

func (s *service) RecordSickness() {
	s.update(func(l *domain.LifetimeStats) { l.AnimalsFellSick++ })
}

func (s *service) RecordRandomEvent() {
	s.update(func(l *domain.LifetimeStats) { l.RandomEvents++ })
}

// RecordDayEnded counts a closed day and keeps the best care streak
func (s *service) RecordDayEnded(careStreak int) {
	s.update(func(l *domain.LifetimeStats) {
		l.DaysCompleted++
		l.BestCareStreak = max(l.BestCareStreak, careStreak)
	})
}
