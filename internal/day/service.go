package day

import (
	"context"
	"time"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/stats"
	"github.com/osse101/ShelterSim_Go/internal/utils"
)

// Service runs the day cycle: goals, today's counters, grading and history
type Service interface {
	// Cycle
	InitializeFirstDay(ctx context.Context) StartResult
	StartNewDay(ctx context.Context) (StartResult, error)
	EndDay(ctx context.Context, dc domain.DayContext) (domain.DayEndSummary, error)
	IsActive() bool

	// Goals
	GenerateDailyGoals(day int) []domain.DailyGoal
	Goal(id string) (domain.DailyGoal, bool)
	IsGoalComplete(id string) bool
	CheckAllGoals(ctx context.Context) []string
	CompleteGoal(ctx context.Context, id string) (bool, error)

	// Recording
	RecordAction(ctx context.Context, action domain.ActionType, animalID string) []string
	RecordMoney(amount int, direction domain.TransactionDirection)
	RecordAdoption(ctx context.Context, animalID string, fee int) []string
	RecordExperience(amount int)
	RecordNewAnimal()
	RecordEvent(ev domain.DayEvent)

	// Queries
	State() domain.DayState
	Stats() Stats
	History() []domain.DayHistory
	HistoryFor(day int) (domain.DayHistory, bool)
	WeeklyStats() domain.WeeklyStats

	// Transactions
	Snapshot() State
	Restore(st State)
}

// StartResult describes a freshly started day
type StartResult struct {
	Day   int
	Goals []domain.DailyGoal
	Event *domain.DayEvent
}

// Stats are today's headline figures
type Stats struct {
	Efficiency     float64 `json:"efficiency"`
	AnimalsHelped  int     `json:"animals_helped"`
	GoalsCompleted int     `json:"goals_completed"`
	TotalActions   int     `json:"total_actions"`
}

// State is the full day cycle state, used for snapshots
type State struct {
	CurrentDay int
	Phase      domain.DayPhase
	Goals      []domain.DailyGoal
	Completed  []string
	Actions    int
	Breakdown  map[domain.ActionType]int
	Helped     []string
	Earned     int
	Spent      int
	Adoptions  int
	NewAnimals int
	Experience int
	Events     []domain.DayEvent
	History    []domain.DayHistory
	Tomorrow   []domain.DailyGoal
}

func (st State) clone() State {
	c := st
	c.Goals = cloneGoals(st.Goals)
	c.Completed = append([]string(nil), st.Completed...)
	c.Breakdown = make(map[domain.ActionType]int, len(st.Breakdown))
	for k, v := range st.Breakdown {
		c.Breakdown[k] = v
	}
	c.Helped = append([]string(nil), st.Helped...)
	c.Events = append([]domain.DayEvent(nil), st.Events...)
	c.History = append([]domain.DayHistory(nil), st.History...)
	c.Tomorrow = cloneGoals(st.Tomorrow)
	return c
}

func cloneGoals(goals []domain.DailyGoal) []domain.DailyGoal {
	if goals == nil {
		return nil
	}
	out := make([]domain.DailyGoal, len(goals))
	for i, g := range goals {
		out[i] = g
		if g.Requirements.SpecificActions != nil {
			m := make(map[domain.ActionType]int, len(g.Requirements.SpecificActions))
			for k, v := range g.Requirements.SpecificActions {
				m[k] = v
			}
			out[i].Requirements.SpecificActions = m
		}
		out[i].Rewards.Items = append([]string(nil), g.Rewards.Items...)
	}
	return out
}

type service struct {
	catalog        *catalog.Catalog
	st             State
	trackAdoptions bool
	eventChance    float64
	rnd            func() float64 // For RNG
	now            func() time.Time
}

// Option configures the day service
type Option func(*service)

// WithRandom injects the random source used for goals and events
func WithRandom(rnd func() float64) Option {
	return func(s *service) { s.rnd = rnd }
}

// WithClock injects the clock used to timestamp events
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithEventChance sets the probability of a random event at day start
func WithEventChance(chance float64) Option {
	return func(s *service) { s.eventChance = chance }
}

// WithAdoptionTracking wires adoptions into the adoption goal predicate
func WithAdoptionTracking(enabled bool) Option {
	return func(s *service) { s.trackAdoptions = enabled }
}

// NewService creates a day cycle that has not started yet; call InitializeFirstDay
func NewService(cat *catalog.Catalog, opts ...Option) Service {
	s := &service{
		catalog:     cat,
		eventChance: DefaultRandomEventChance,
		rnd:         utils.RandomFloat,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.st.Breakdown = map[domain.ActionType]int{}
	return s
}

func (s *service) IsActive() bool {
	return s.st.CurrentDay >= FirstDay && s.st.Phase == domain.DayPhaseActive
}

func (s *service) Snapshot() State {
	return s.st.clone()
}

func (s *service) Restore(st State) {
	s.st = st.clone()
}

// State returns a copy of the day cycle state
func (s *service) State() domain.DayState {
	c := s.st.clone()
	return domain.DayState{
		CurrentDay:            c.CurrentDay,
		Phase:                 c.Phase,
		IsNightTime:           c.Phase == domain.DayPhaseEnded,
		Goals:                 c.Goals,
		CompletedGoals:        c.Completed,
		ActionsPerformedToday: c.Actions,
		ActionBreakdown:       c.Breakdown,
		AnimalsHelpedToday:    c.Helped,
		MoneyEarnedToday:      c.Earned,
		MoneySpentToday:       c.Spent,
		AdoptionsToday:        c.Adoptions,
		NewAnimalsToday:       c.NewAnimals,
		ExperienceToday:       c.Experience,
		ActiveEvents:          c.Events,
		History:               c.History,
	}
}

func (s *service) Stats() Stats {
	return Stats{
		Efficiency:     efficiency(s.st.Actions),
		AnimalsHelped:  len(s.st.Helped),
		GoalsCompleted: len(s.st.Completed),
		TotalActions:   s.st.Actions,
	}
}

func (s *service) History() []domain.DayHistory {
	return append([]domain.DayHistory(nil), s.st.History...)
}

// HistoryFor returns the record of a closed day
func (s *service) HistoryFor(day int) (domain.DayHistory, bool) {
	for _, h := range s.st.History {
		if h.Day == day {
			return h, true
		}
	}
	return domain.DayHistory{}, false
}

// WeeklyStats aggregates the most recent closed days
func (s *service) WeeklyStats() domain.WeeklyStats {
	h := s.st.History
	if len(h) > WeeklyWindow {
		h = h[len(h)-WeeklyWindow:]
	}
	return stats.Weekly(h)
}

func efficiency(actions int) float64 {
	return float64(actions) / EfficiencyBaseline
}
