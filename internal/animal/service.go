package animal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
	"github.com/osse101/ShelterSim_Go/internal/utils"
	"github.com/osse101/ShelterSim_Go/internal/validation"
)

// Modifiers adjusts one ApplyAction call
type Modifiers struct {
	// EffectMultiplier scales the stat deltas before critical scaling; 0 means 1
	EffectMultiplier float64
	// Day is the current game day, stamped on feed and preventive care
	Day int
}

// MaintenanceReport lists what daily maintenance changed
type MaintenanceReport struct {
	Day        int
	FellSick   []domain.Animal
	Maintained int
}

// State is a deep copy of the population used for rollback
type State struct {
	Animals        []domain.Animal
	MaxEnergyBonus int
}

// Service owns the animal collection
type Service interface {
	// Collection
	Add(ctx context.Context, draft domain.AnimalDraft) (domain.Animal, error)
	Remove(ctx context.Context, id string) error
	Get(id string) (domain.Animal, bool)
	List() []domain.Animal
	Count() int

	// Actions
	ApplyAction(ctx context.Context, id string, action domain.ActionType, mods Modifiers) domain.ActionOutcome
	CanApplyAction(id string, action domain.ActionType) domain.Eligibility
	DebitEnergy(id string, amount int) error
	MutateStats(id string, delta domain.StatDelta) (domain.Animal, error)

	// Adoption
	AdoptionReadinessScore(id string) (int, bool)
	Adopt(ctx context.Context, id string) domain.AdoptionResult

	// Daily cycle
	DailyMaintenance(ctx context.Context, day int) MaintenanceReport
	ResetDailyEnergy(ctx context.Context)
	RestoreEnergy(id string, amount int) (domain.Animal, error)
	BoostMaxEnergy(ctx context.Context, amount int)

	// Queries
	ByStatus(status domain.AnimalStatus) []domain.Animal
	Adoptable() []domain.Animal
	NeedingCare() []domain.Animal

	// Generation
	NewRandomDraft() domain.AnimalDraft

	// Transactions
	Snapshot() State
	Restore(state State)
}

type service struct {
	animals        []domain.Animal
	maxEnergyBonus int
	catalog        *catalog.Catalog
	rnd            func() float64 // For RNG
	now            func() time.Time
	newID          func() string
}

// Option configures the animal service
type Option func(*service)

// WithRandom injects the random source used for criticals, sickness and generation
func WithRandom(rnd func() float64) Option {
	return func(s *service) { s.rnd = rnd }
}

// WithClock injects the time source for arrival and care timestamps
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a new animal population service
func NewService(cat *catalog.Catalog, opts ...Option) Service {
	s := &service{
		catalog: cat,
		rnd:     utils.RandomFloat,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add admits an animal built from a draft
func (s *service) Add(ctx context.Context, draft domain.AnimalDraft) (domain.Animal, error) {
	if err := validation.ValidateStruct(draft); err != nil {
		return domain.Animal{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validation.Summary(err))
	}

	a := domain.Animal{
		ID:                s.newID(),
		Name:              draft.Name,
		Type:              draft.Type,
		Breed:             draft.Breed,
		Size:              draft.Size,
		Age:               draft.Age,
		Health:            draft.Health,
		Happiness:         draft.Happiness,
		AdoptionReadiness: draft.AdoptionReadiness,
		Energy:            draft.Energy + s.maxEnergyBonus,
		MaxEnergy:         draft.MaxEnergy + s.maxEnergyBonus,
		NeedsMedical:      draft.NeedsMedical,
		AdoptionFee:       draft.AdoptionFee,
		Status:            draft.Status,
		SpecialNeeds:      append([]string{}, draft.SpecialNeeds...),
		Temperament:       append([]string{}, draft.Temperament...),
		Backstory:         draft.Backstory,
		ArrivalDate:       s.now(),
	}
	if a.Type == "" {
		a.Type = domain.AnimalTypeDog
	}
	// intake is the only status a draft may pin; anything else follows the stats
	if a.Status != domain.StatusIntake {
		a.Status = DeriveStatus(a.Health, a.Happiness, a.AdoptionReadiness, a.NeedsMedical)
	}

	s.animals = append(s.animals, a)

	log := logger.FromContext(ctx)
	log.Info(LogMsgAnimalAdded, "animal_id", a.ID, "name", a.Name, "breed", a.Breed, "status", a.Status)
	return a.Clone(), nil
}

// Remove deletes an animal from the collection
func (s *service) Remove(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrAnimalNotFound, id)
	}
	s.animals = append(s.animals[:i], s.animals[i+1:]...)

	log := logger.FromContext(ctx)
	log.Debug(LogMsgAnimalRemoved, "animal_id", id)
	return nil
}

// Get returns a copy of one animal
func (s *service) Get(id string) (domain.Animal, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Animal{}, false
	}
	return s.animals[i].Clone(), true
}

// List returns copies of every animal in arrival order
func (s *service) List() []domain.Animal {
	return s.filter(func(domain.Animal) bool { return true })
}

// Count returns the population size
func (s *service) Count() int {
	return len(s.animals)
}

// Snapshot returns a deep copy of the population
func (s *service) Snapshot() State {
	return State{
		Animals:        s.List(),
		MaxEnergyBonus: s.maxEnergyBonus,
	}
}

// Restore replaces the population with a snapshot
func (s *service) Restore(state State) {
	s.animals = make([]domain.Animal, 0, len(state.Animals))
	for _, a := range state.Animals {
		s.animals = append(s.animals, a.Clone())
	}
	s.maxEnergyBonus = state.MaxEnergyBonus
}

func (s *service) indexOf(id string) int {
	for i := range s.animals {
		if s.animals[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *service) filter(keep func(domain.Animal) bool) []domain.Animal {
	out := make([]domain.Animal, 0, len(s.animals))
	for _, a := range s.animals {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}
	return out
}
