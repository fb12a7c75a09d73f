package autopilot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShelterSim_Go/internal/config"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/shelter"
)

var fixedNow = time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, capacity int) *shelter.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Capacity = capacity
	g, err := shelter.NewGame(context.Background(), cfg,
		shelter.WithRandom(func() float64 { return 0.99 }),
		shelter.WithClock(func() time.Time { return fixedNow }),
		shelter.WithStartingAnimals(0))
	require.NoError(t, err)
	return g
}

func admit(t *testing.T, g *shelter.Game, name string, stat int) domain.Animal {
	t.Helper()
	out := g.AdmitAnimal(context.Background(), domain.AnimalDraft{
		Name:              name,
		Breed:             "beagle",
		Size:              domain.SizeMedium,
		Age:               domain.AgeAdult,
		Health:            stat,
		Happiness:         stat,
		AdoptionReadiness: stat,
		Energy:            8,
		MaxEnergy:         8,
		AdoptionFee:       150,
	})
	require.True(t, out.Success, out.Reason)
	return *out.Animal
}

func TestPlayDay(t *testing.T) {
	ctx := context.Background()

	t.Run("feeds once then spends the rest of the energy", func(t *testing.T) {
		g := newTestGame(t, 1)
		admit(t, g, "Buddy", 50)

		report, err := NewCaretaker(g).PlayDay(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, report.Day)
		assert.Zero(t, report.Rescues)
		assert.Zero(t, report.Adoptions)
		assert.Equal(t, 5, report.Actions)
		assert.Equal(t, 1, report.Summary.Day)
		assert.Equal(t, 5, report.Summary.History.ActionsPerformed)

		ds := g.DayState()
		assert.True(t, ds.IsNightTime)
		assert.Equal(t, 1, ds.ActionBreakdown[domain.ActionFeed])
		assert.Equal(t, 4, ds.ActionBreakdown[domain.ActionWalk])
	})

	t.Run("rescues and places animals", func(t *testing.T) {
		g := newTestGame(t, 3)
		admit(t, g, "Ready", 90)
		admit(t, g, "Needy", 40)

		report, err := NewCaretaker(g).PlayDay(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, report.Rescues)
		assert.GreaterOrEqual(t, report.Adoptions, 1)
		assert.Positive(t, report.Actions)
		assert.Equal(t, report.Adoptions, g.Player().TotalAdoptions)
	})

	t.Run("fails when the day already ended", func(t *testing.T) {
		g := newTestGame(t, 1)
		_, err := g.EndDay(ctx)
		require.NoError(t, err)

		_, err = NewCaretaker(g).PlayDay(ctx)
		assert.ErrorIs(t, err, domain.ErrDayAlreadyEnded)
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, 3)

	reports, err := NewCaretaker(g).Run(ctx, 3)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for i, r := range reports {
		assert.Equal(t, i+1, r.Day)
		assert.NotEmpty(t, r.Summary.Grade)
	}

	ds := g.DayState()
	assert.Equal(t, 3, ds.CurrentDay)
	assert.True(t, ds.IsNightTime)
	assert.Len(t, ds.History, 3)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := NewCaretaker(newTestGame(t, 1)).Run(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reports)
}
