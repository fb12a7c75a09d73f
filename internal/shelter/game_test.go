package shelter

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShelterSim_Go/internal/config"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/metrics"
)

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// noLuck never triggers random events, criticals or sickness
func noLuck() float64 { return 0.99 }

func testConfig(rules domain.Rules) *config.Config {
	cfg := config.Default()
	cfg.Rules = rules
	return cfg
}

func newTestGame(t *testing.T, rules domain.Rules, opts ...Option) *Game {
	t.Helper()
	base := []Option{
		WithRandom(noLuck),
		WithClock(func() time.Time { return fixedNow }),
		WithStartingAnimals(0),
	}
	g, err := NewGame(context.Background(), testConfig(rules), append(base, opts...)...)
	require.NoError(t, err)
	return g
}

func createTestDraft(name string, health, happiness, readiness int) domain.AnimalDraft {
	return domain.AnimalDraft{
		Name:              name,
		Breed:             "beagle",
		Size:              domain.SizeMedium,
		Age:               domain.AgeAdult,
		Health:            health,
		Happiness:         happiness,
		AdoptionReadiness: readiness,
		Energy:            8,
		MaxEnergy:         8,
		AdoptionFee:       150,
	}
}

func admit(t *testing.T, g *Game, draft domain.AnimalDraft) domain.Animal {
	t.Helper()
	out := g.AdmitAnimal(context.Background(), draft)
	require.True(t, out.Success, "admission failed: %s", out.Reason)
	return *out.Animal
}

func eventTypes(evts []event.Event) []event.Type {
	types := make([]event.Type, 0, len(evts))
	for _, e := range evts {
		types = append(types, e.Type)
	}
	return types
}

func TestNewGame(t *testing.T) {
	t.Run("opens day one with defaults", func(t *testing.T) {
		g, err := NewGame(context.Background(), nil, WithRandom(noLuck), WithClock(func() time.Time { return fixedNow }))
		require.NoError(t, err)

		st := g.Status()
		assert.Equal(t, 1, st.Day.CurrentDay)
		assert.Equal(t, domain.DayPhaseActive, st.Day.Phase)
		assert.Len(t, st.Animals, StartingAnimals)
		assert.Equal(t, config.DefaultStartingBudget, st.Economy.Budget)
		assert.Equal(t, 10, st.Player.Energy)
		assert.Equal(t, 5, st.Inventory.Items[domain.ItemBasicFood])
		assert.Equal(t, StartingAnimals, st.Shelter.Occupancy)
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		cfg := config.Default()
		cfg.Capacity = 0
		_, err := NewGame(context.Background(), cfg)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("seeded games are reproducible", func(t *testing.T) {
		cfg := config.Default()
		cfg.Seed = 42
		a, err := NewGame(context.Background(), cfg, WithClock(func() time.Time { return fixedNow }))
		require.NoError(t, err)
		b, err := NewGame(context.Background(), cfg, WithClock(func() time.Time { return fixedNow }))
		require.NoError(t, err)

		an, bn := a.Animals(), b.Animals()
		require.Len(t, an, 1)
		require.Len(t, bn, 1)
		assert.Equal(t, an[0].Name, bn[0].Name)
		assert.Equal(t, an[0].Breed, bn[0].Breed)
		assert.Equal(t, an[0].Health, bn[0].Health)
	})

	t.Run("first day donation is credited", func(t *testing.T) {
		always := func() float64 { return 0 }
		g := newTestGame(t, domain.Rules{}, WithRandom(always))

		st := g.Status()
		require.Len(t, st.Day.ActiveEvents, 1)
		assert.Equal(t, domain.DayEventDonation, st.Day.ActiveEvents[0].Type)
		assert.Equal(t, config.DefaultStartingBudget+100, st.Economy.Budget)
		assert.Equal(t, 100, st.Day.MoneyEarnedToday)
		assert.Equal(t, 1, st.Shelter.Lifetime.RandomEvents)
	})
}

// Scenario 1
func TestStatusDerivedOnAdmission(t *testing.T) {
	g := newTestGame(t, domain.Rules{})
	a := admit(t, g, createTestDraft("Buddy", 50, 50, 50))

	got, ok := g.Animal(a.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StatusNeedsCare, got.Status)
}

func TestAdmitAnimal_StatusFollowsStats(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, domain.Rules{})

	draft := createTestDraft("Patch", 10, 5, 90)
	draft.NeedsMedical = true
	draft.Status = domain.StatusReadyForAdoption
	a := admit(t, g, draft)
	assert.Equal(t, domain.StatusSick, a.Status)

	out := g.Adopt(ctx, a.ID)
	assert.False(t, out.Success)
	assert.Equal(t, domain.ReasonNotReadyForAdoption, out.Reason)
	_, ok := g.Animal(a.ID)
	assert.True(t, ok)
}

func TestSubscribersCanQueryTheGame(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, domain.Rules{})
	a := admit(t, g, createTestDraft("Buddy", 50, 50, 50))

	seen := make(chan int, 1)
	g.Bus().Subscribe(event.ActionPerformed, func(ctx context.Context, evt event.Event) error {
		seen <- g.Player().Energy
		return nil
	})

	done := make(chan ActionResult, 1)
	go func() { done <- g.PerformAction(ctx, a.ID, domain.ActionFeed) }()

	select {
	case res := <-done:
		require.True(t, res.Success)
	case <-time.After(2 * time.Second):
		t.Fatal("PerformAction blocked on a subscriber reading the game")
	}
	assert.Equal(t, 9, <-seen, "handler sees the energy after the action")
}

func TestRescueAnimal(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, domain.Rules{})

	for i := 0; i < config.DefaultCapacity; i++ {
		out := g.RescueAnimal(ctx)
		require.True(t, out.Success)
		assert.Equal(t, domain.StatusIntake, out.Animal.Status)
	}
	assert.InDelta(t, 100.0, g.Occupancy(), 1e-9)
	assert.Equal(t, config.DefaultCapacity, g.DayState().NewAnimalsToday)

	out := g.RescueAnimal(ctx)
	assert.False(t, out.Success)
	assert.Equal(t, domain.ReasonShelterFull, out.Reason)
	require.NotNil(t, out.Shortfall)
	assert.Equal(t, config.DefaultCapacity, out.Shortfall.Available)
	assert.ErrorIs(t, out.Err(), domain.ErrShelterFull)
	assert.Len(t, g.Animals(), config.DefaultCapacity)

	draft := createTestDraft("Extra", 50, 50, 50)
	assert.Equal(t, domain.ReasonShelterFull, g.AdmitAnimal(ctx, draft).Reason)
}

func TestAdmitAnimal_InvalidDraft(t *testing.T) {
	g := newTestGame(t, domain.Rules{})
	draft := createTestDraft("", 50, 50, 50)

	out := g.AdmitAnimal(context.Background(), draft)
	assert.False(t, out.Success)
	assert.Equal(t, domain.ReasonInvalidInput, out.Reason)
	assert.Empty(t, g.Animals())
}

func TestQueries(t *testing.T) {
	g := newTestGame(t, domain.Rules{})
	admit(t, g, createTestDraft("Ready", 90, 90, 90))
	admit(t, g, createTestDraft("Sickly", 20, 50, 10))

	assert.InDelta(t, 55.0, g.AverageHealth(), 1e-9)
	assert.InDelta(t, 70.0, g.AverageHappiness(), 1e-9)
	assert.Len(t, g.AdoptableAnimals(), 1)
	assert.Len(t, g.AnimalsNeedingCare(), 1)

	stats := g.ShelterStats()
	assert.Equal(t, 2, stats.Occupancy)
	assert.Equal(t, 1, stats.StatusCounts[domain.StatusSick])
	assert.Equal(t, 2, stats.Lifetime.AnimalsAdmitted)

	cost, ok := g.ActionCost(domain.ActionExercise)
	require.True(t, ok)
	assert.Equal(t, 4, cost)
	_, ok = g.ActionCost(domain.ActionType("juggle"))
	assert.False(t, ok)
	assert.True(t, g.CanAfford(500))
	assert.False(t, g.CanAfford(501))
}

func TestMetricsAndJournal(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, domain.Rules{})
	a := admit(t, g, createTestDraft("Buddy", 50, 50, 50))

	require.True(t, g.PerformAction(ctx, a.ID, domain.ActionFeed).Success)
	assert.False(t, g.PerformAction(ctx, "missing", domain.ActionFeed).Success)

	m := g.Metrics()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Actions.WithLabelValues("feed", metrics.ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Actions.WithLabelValues("feed", metrics.ResultFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnimalsAdmitted.WithLabelValues(SourceAdmitted)))

	entries, err := g.JournalByType(ctx, event.ActionPerformed, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Day)

	recent, err := g.Journal(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, string(event.ActionFailed), recent[0].EventType)
}
