package animal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/utils"
)

func TestApplyAction_FeedClampsHealth(t *testing.T) {
	s := newTestService(noLuck)
	a := addAnimal(t, s, createTestDraft("Buddy", 95, 50, 50))

	outcome := s.ApplyAction(context.Background(), a.ID, domain.ActionFeed, Modifiers{Day: 2})

	require.True(t, outcome.Success)
	assert.Equal(t, domain.StatDelta{Health: 10, Happiness: 5}, outcome.Effects)
	assert.Equal(t, 1, outcome.ExperienceGained)
	assert.Equal(t, "Successfully fed Buddy", outcome.Message)

	got, _ := s.Get(a.ID)
	assert.Equal(t, 100, got.Health, "clamped, not 105")
	assert.Equal(t, 55, got.Happiness)
	require.NotNil(t, got.LastFed)
	assert.Equal(t, fixedNow, *got.LastFed)
	assert.Equal(t, 2, got.LastFedDay)
	assert.Equal(t, 8, got.Energy, "feeding costs no animal energy")
}

func TestApplyAction_InsufficientAnimalEnergy(t *testing.T) {
	s := newTestService(noLuck)
	d := createTestDraft("Buddy", 50, 50, 50)
	d.Energy = 1
	a := addAnimal(t, s, d)

	elig := s.CanApplyAction(a.ID, domain.ActionWalk)
	assert.False(t, elig.Allowed)
	assert.Equal(t, domain.ReasonInsufficientAnimalEnergy, elig.Reason)
	require.NotNil(t, elig.Shortfall)
	assert.Equal(t, 2, elig.Shortfall.Needed)
	assert.Equal(t, 1, elig.Shortfall.Available)

	outcome := s.ApplyAction(context.Background(), a.ID, domain.ActionWalk, Modifiers{})
	assert.False(t, outcome.Success)
	assert.Equal(t, domain.ReasonInsufficientAnimalEnergy, outcome.Reason)
	assert.ErrorIs(t, outcome.Err(), domain.ErrInsufficientAnimalEnergy)

	got, _ := s.Get(a.ID)
	assert.Equal(t, a, got, "no mutation on failure")
}

func TestApplyAction_NotFoundAndInvalid(t *testing.T) {
	s := newTestService(noLuck)
	a := addAnimal(t, s, createTestDraft("Buddy", 50, 50, 50))

	outcome := s.ApplyAction(context.Background(), "missing", domain.ActionFeed, Modifiers{})
	assert.Equal(t, domain.ReasonAnimalNotFound, outcome.Reason)

	outcome = s.ApplyAction(context.Background(), a.ID, domain.ActionType("juggle"), Modifiers{})
	assert.Equal(t, domain.ReasonInvalidAction, outcome.Reason)

	got, _ := s.Get(a.ID)
	assert.Equal(t, a, got)
}

func TestApplyAction_CriticalSuccess(t *testing.T) {
	s := newTestService(allLuck)
	a := addAnimal(t, s, createTestDraft("Luna", 80, 50, 50))

	outcome := s.ApplyAction(context.Background(), a.ID, domain.ActionPlay, Modifiers{})

	require.True(t, outcome.Success)
	assert.True(t, outcome.CriticalSuccess)
	// happiness 20*1.5, readiness 5*1.5 rounded
	assert.Equal(t, domain.StatDelta{Happiness: 30, AdoptionReadiness: 8}, outcome.Effects)
	assert.Equal(t, "Successfully played with Luna (Critical Success!)", outcome.Message)

	got, _ := s.Get(a.ID)
	assert.Equal(t, 80, got.Happiness)
	assert.Equal(t, 58, got.AdoptionReadiness)
}

func TestApplyAction_NoCriticalWithoutChance(t *testing.T) {
	s := newTestService(allLuck)
	a := addAnimal(t, s, createTestDraft("Luna", 50, 50, 50))

	outcome := s.ApplyAction(context.Background(), a.ID, domain.ActionWalk, Modifiers{})
	assert.False(t, outcome.CriticalSuccess)
	assert.Equal(t, domain.StatDelta{Health: 5, Happiness: 15, AdoptionReadiness: 3}, outcome.Effects)
}

func TestApplyAction_EffectMultiplier(t *testing.T) {
	s := newTestService(noLuck)
	a := addAnimal(t, s, createTestDraft("Rocky", 50, 50, 50))

	outcome := s.ApplyAction(context.Background(), a.ID, domain.ActionGroom, Modifiers{EffectMultiplier: 1.5})

	require.True(t, outcome.Success)
	assert.Equal(t, domain.StatDelta{Health: 8, Happiness: 15, AdoptionReadiness: 23}, outcome.Effects)
	got, _ := s.Get(a.ID)
	assert.NotNil(t, got.LastGroomed)
	assert.Equal(t, 7, got.Energy)
	assert.Equal(t, 1, got.EnergySpentToday)
}

func TestApplyAction_MedicalCuresAndProtects(t *testing.T) {
	s := newTestService(noLuck)
	d := createTestDraft("Daisy", 70, 70, 50)
	d.NeedsMedical = true
	a := addAnimal(t, s, d)
	require.Equal(t, domain.StatusSick, a.Status)

	outcome := s.ApplyAction(context.Background(), a.ID, domain.ActionMedical, Modifiers{Day: 4})
	require.True(t, outcome.Success)

	got, _ := s.Get(a.ID)
	assert.False(t, got.NeedsMedical)
	assert.Equal(t, 95, got.Health)
	assert.Equal(t, 4, got.ProtectedDay)
	assert.Equal(t, domain.StatusHealthy, got.Status)
}

func TestApplyAction_TrainAddsTemperamentOnce(t *testing.T) {
	s := newTestService(noLuck)
	a := addAnimal(t, s, createTestDraft("Cooper", 80, 80, 10))

	s.ApplyAction(context.Background(), a.ID, domain.ActionTrain, Modifiers{})
	s.ApplyAction(context.Background(), a.ID, domain.ActionTrain, Modifiers{})

	got, _ := s.Get(a.ID)
	assert.Equal(t, []string{TemperamentWellTrained}, got.Temperament)
	assert.Equal(t, 50, got.AdoptionReadiness)
	assert.Equal(t, 2, got.Energy)
}

func TestApplyAction_SocializeAddsTemperament(t *testing.T) {
	s := newTestService(noLuck)
	a := addAnimal(t, s, createTestDraft("Pepper", 80, 60, 10))

	require.True(t, s.ApplyAction(context.Background(), a.ID, domain.ActionSocialize, Modifiers{}).Success)
	require.True(t, s.ApplyAction(context.Background(), a.ID, domain.ActionTrain, Modifiers{}).Success)

	got, _ := s.Get(a.ID)
	assert.Equal(t, []string{TemperamentSocialized, TemperamentWellTrained}, got.Temperament)
}

func TestApplyAction_IdleCostsNothing(t *testing.T) {
	s := newTestService(noLuck)
	a := addAnimal(t, s, createTestDraft("Ruby", 50, 50, 50))

	outcome := s.ApplyAction(context.Background(), a.ID, domain.ActionIdle, Modifiers{})
	require.True(t, outcome.Success)
	assert.True(t, outcome.Effects.IsZero())
	assert.Equal(t, 1, outcome.ExperienceGained)
}

func TestDebitEnergy_NeverRecomputesStatus(t *testing.T) {
	s := newTestService(noLuck)
	d := createTestDraft("Buddy", 90, 90, 90)
	d.Status = domain.StatusIntake
	a := addAnimal(t, s, d)

	require.NoError(t, s.DebitEnergy(a.ID, 3))
	got, _ := s.Get(a.ID)
	assert.Equal(t, domain.StatusIntake, got.Status)
	assert.Equal(t, 5, got.Energy)
	assert.Equal(t, 3, got.EnergySpentToday)

	assert.ErrorIs(t, s.DebitEnergy(a.ID, 6), domain.ErrInsufficientAnimalEnergy)
	assert.ErrorIs(t, s.DebitEnergy("missing", 1), domain.ErrAnimalNotFound)

	updated, err := s.MutateStats(a.ID, domain.StatDelta{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReadyForAdoption, updated.Status, "MutateStats always recomputes")
}

func TestMutateStats_Clamps(t *testing.T) {
	s := newTestService(noLuck)
	a := addAnimal(t, s, createTestDraft("Buddy", 10, 95, 50))

	got, err := s.MutateStats(a.ID, domain.StatDelta{Health: -50, Happiness: 50, AdoptionReadiness: -1})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Health)
	assert.Equal(t, 100, got.Happiness)
	assert.Equal(t, 49, got.AdoptionReadiness)
	assert.Equal(t, domain.StatusSick, got.Status)
}

func TestApplyAction_StatsStayInBounds(t *testing.T) {
	rnd := utils.SeededFloat(7)
	s := NewService(catalog.MustDefault(), WithRandom(rnd))
	ctx := context.Background()
	a := addAnimal(t, s, createTestDraft("Buddy", 50, 50, 50))

	for i := 0; i < 500; i++ {
		action := domain.AllActionTypes[utils.PickIndex(rnd, len(domain.AllActionTypes))]
		s.ApplyAction(ctx, a.ID, action, Modifiers{Day: i / 20, EffectMultiplier: 1.4})
		if i%20 == 19 {
			s.DailyMaintenance(ctx, i/20)
			s.ResetDailyEnergy(ctx)
		}

		got, _ := s.Get(a.ID)
		require.GreaterOrEqual(t, got.Health, domain.StatMin)
		require.LessOrEqual(t, got.Health, domain.StatMax)
		require.GreaterOrEqual(t, got.Happiness, domain.StatMin)
		require.LessOrEqual(t, got.Happiness, domain.StatMax)
		require.GreaterOrEqual(t, got.AdoptionReadiness, domain.StatMin)
		require.LessOrEqual(t, got.AdoptionReadiness, domain.StatMax)
		require.GreaterOrEqual(t, got.Energy, 0)
		require.LessOrEqual(t, got.Energy, got.MaxEnergy)
		require.Equal(t, statusOf(got), got.Status)
	}
}
