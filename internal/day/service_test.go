package day

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
)

const (
	noLuck  = 0.99
	allLuck = 0.0
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, luck float64, opts ...Option) *service {
	t.Helper()
	opts = append([]Option{
		WithRandom(func() float64 { return luck }),
		WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	return NewService(catalog.MustDefault(), opts...).(*service)
}

func startedService(t *testing.T, luck float64, opts ...Option) *service {
	t.Helper()
	s := newTestService(t, luck, opts...)
	s.InitializeFirstDay(context.Background())
	return s
}

func TestInitializeFirstDay(t *testing.T) {
	s := newTestService(t, noLuck)
	assert.False(t, s.IsActive())

	res := s.InitializeFirstDay(context.Background())

	assert.Equal(t, 1, res.Day)
	require.Len(t, res.Goals, 1)
	assert.Equal(t, "basic_care_day1", res.Goals[0].ID)
	assert.Nil(t, res.Event)
	assert.True(t, s.IsActive())

	st := s.State()
	assert.Equal(t, 1, st.CurrentDay)
	assert.Equal(t, domain.DayPhaseActive, st.Phase)
	assert.False(t, st.IsNightTime)
	assert.Empty(t, st.History)
}

func TestGenerateDailyGoals(t *testing.T) {
	tests := []struct {
		name string
		luck float64
		day  int
		want []string
	}{
		{"day 1 care only", allLuck, 1, []string{"basic_care_day1"}},
		{"day 2 care only", allLuck, 2, []string{"basic_care_day2"}},
		{"day 3 adds adoption", noLuck, 3, []string{"basic_care_day3", "adoption_ready_day3"}},
		{"day 5 unlucky skips efficiency", noLuck, 5, []string{"basic_care_day5", "adoption_ready_day5"}},
		{"day 5 lucky adds efficiency", allLuck, 5, []string{"basic_care_day5", "adoption_ready_day5", "efficiency_master_day5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, tt.luck)
			goals := s.GenerateDailyGoals(tt.day)

			var ids []string
			for _, g := range goals {
				ids = append(ids, g.ID)
				assert.Equal(t, tt.day, g.Day)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRecordAction_CompletesCareGoalOnce(t *testing.T) {
	s := startedService(t, noLuck)
	ctx := context.Background()

	assert.Empty(t, s.RecordAction(ctx, domain.ActionFeed, "a1"))
	completed := s.RecordAction(ctx, domain.ActionWalk, "a1")
	assert.Equal(t, []string{"basic_care_day1"}, completed)

	assert.Empty(t, s.RecordAction(ctx, domain.ActionFeed, "a2"), "completed goals are not re-evaluated")

	st := s.State()
	assert.Equal(t, []string{"basic_care_day1"}, st.CompletedGoals)
	assert.Equal(t, 3, st.ActionsPerformedToday)
	assert.Equal(t, 2, st.ActionBreakdown[domain.ActionFeed])
	assert.Equal(t, []string{"a1", "a2"}, st.AnimalsHelpedToday)
	assert.Equal(t, 50, st.MoneyEarnedToday, "goal money is recorded as earned today")
}

func TestCompleteGoal(t *testing.T) {
	s := startedService(t, noLuck)
	ctx := context.Background()

	ok, err := s.CompleteGoal(ctx, "basic_care_day1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CompleteGoal(ctx, "basic_care_day1")
	require.NoError(t, err)
	assert.False(t, ok, "idempotent")
	assert.Equal(t, 50, s.State().MoneyEarnedToday)

	_, err = s.CompleteGoal(ctx, "missing_day1")
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestEfficiencyGoal(t *testing.T) {
	s := newTestService(t, allLuck, WithEventChance(0))
	s.Restore(State{
		CurrentDay: 5,
		Phase:      domain.DayPhaseActive,
		Goals:      s.GenerateDailyGoals(5),
		Breakdown:  map[domain.ActionType]int{},
	})
	ctx := context.Background()

	// 12 actions meet the count but efficiency 1.5 needs 15
	var completed []string
	for i := 0; i < 14; i++ {
		completed = append(completed, s.RecordAction(ctx, domain.ActionIdle, "a1")...)
	}
	assert.NotContains(t, completed, "efficiency_master_day5")

	completed = s.RecordAction(ctx, domain.ActionIdle, "a1")
	assert.Contains(t, completed, "efficiency_master_day5")
}

func TestAdoptionGoal(t *testing.T) {
	ctx := context.Background()
	atDay3 := func(s *service) {
		s.Restore(State{
			CurrentDay: 3,
			Phase:      domain.DayPhaseActive,
			Goals:      s.GenerateDailyGoals(3),
			Breakdown:  map[domain.ActionType]int{},
		})
	}

	t.Run("untracked never completes", func(t *testing.T) {
		s := newTestService(t, noLuck)
		atDay3(s)
		assert.Empty(t, s.RecordAdoption(ctx, "a1", 150))
		assert.Equal(t, 1, s.State().AdoptionsToday)
		assert.Equal(t, 150, s.State().MoneyEarnedToday)
	})

	t.Run("tracked completes on adoption", func(t *testing.T) {
		s := newTestService(t, noLuck, WithAdoptionTracking(true))
		atDay3(s)
		assert.Equal(t, []string{"adoption_ready_day3"}, s.RecordAdoption(ctx, "a1", 150))
		assert.Equal(t, 250, s.State().MoneyEarnedToday)
	})
}

func TestGrade(t *testing.T) {
	tests := []struct {
		eff    float64
		helped int
		goals  int
		want   domain.Grade
	}{
		{1.2, 3, 2, domain.GradeA},
		{1.2, 3, 1, domain.GradeB},
		{1.0, 2, 1, domain.GradeB},
		{1.0, 2, 0, domain.GradeC},
		{0.8, 1, 0, domain.GradeC},
		{0.7, 1, 5, domain.GradeD},
		{2.0, 0, 3, domain.GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.eff, tt.helped, tt.goals), "%v/%d/%d", tt.eff, tt.helped, tt.goals)
	}
}

func TestEndDay_GradeA(t *testing.T) {
	s := newTestService(t, noLuck)
	s.Restore(State{
		CurrentDay: 1,
		Phase:      domain.DayPhaseActive,
		Goals: []domain.DailyGoal{
			{ID: "g1_day1", Type: domain.GoalTypeCare},
			{ID: "g2_day1", Type: domain.GoalTypeCare},
		},
		Completed: []string{"g1_day1", "g2_day1"},
		Actions:   12,
		Breakdown: map[domain.ActionType]int{domain.ActionIdle: 12},
		Helped:    []string{"a", "b", "c"},
	})

	summary, err := s.EndDay(context.Background(), domain.DayContext{PlayerEnergyUsed: 9, PlayerMaxEnergy: 10, AnimalEnergyUsed: 14})

	require.NoError(t, err)
	assert.InDelta(t, 1.2, summary.Efficiency, 1e-9)
	assert.Equal(t, domain.GradeA, summary.Grade)
	assert.Equal(t, PerformanceMsgA, summary.PerformanceMessage)
	assert.Len(t, summary.CompletedGoals, 2)
	assert.Equal(t, 2, summary.TotalGoals)
	assert.Equal(t, 9, summary.History.PlayerEnergyUsed)
	assert.Equal(t, 14, summary.History.AnimalEnergyUsed)
	assert.Equal(t, []domain.DailyGoal{s.GenerateDailyGoals(2)[0]}, summary.TomorrowGoals)

	st := s.State()
	assert.True(t, st.IsNightTime)
	assert.Equal(t, domain.DayPhaseEnded, st.Phase)
	require.Len(t, st.History, 1)
	assert.Equal(t, summary.History, st.History[0])
}

func TestDayStateMachine(t *testing.T) {
	ctx := context.Background()

	t.Run("uninitialized", func(t *testing.T) {
		s := newTestService(t, noLuck)
		_, err := s.EndDay(ctx, domain.DayContext{})
		assert.ErrorIs(t, err, domain.ErrDayNotInitialized)
		_, err = s.StartNewDay(ctx)
		assert.ErrorIs(t, err, domain.ErrDayNotInitialized)
	})

	t.Run("cannot start while active", func(t *testing.T) {
		s := startedService(t, noLuck)
		_, err := s.StartNewDay(ctx)
		assert.ErrorIs(t, err, domain.ErrDayNotEnded)
	})

	t.Run("cannot end twice", func(t *testing.T) {
		s := startedService(t, noLuck)
		_, err := s.EndDay(ctx, domain.DayContext{})
		require.NoError(t, err)
		_, err = s.EndDay(ctx, domain.DayContext{})
		assert.ErrorIs(t, err, domain.ErrDayAlreadyEnded)
		assert.Len(t, s.History(), 1)
	})
}

func TestHistoryAppendOnly(t *testing.T) {
	s := startedService(t, noLuck)
	ctx := context.Background()

	for day := 1; day <= 4; day++ {
		assert.Len(t, s.History(), day-1)
		s.RecordAction(ctx, domain.ActionFeed, "a1")

		before := s.History()
		_, err := s.EndDay(ctx, domain.DayContext{})
		require.NoError(t, err)

		after := s.History()
		require.Len(t, after, len(before)+1)
		assert.Equal(t, before, after[:len(before)])

		res, err := s.StartNewDay(ctx)
		require.NoError(t, err)
		assert.Equal(t, day+1, res.Day)
	}

	h, ok := s.HistoryFor(2)
	require.True(t, ok)
	assert.Equal(t, 2, h.Day)
	_, ok = s.HistoryFor(9)
	assert.False(t, ok)
}

func TestStartNewDay_ResetsCountersAndUsesTomorrowGoals(t *testing.T) {
	s := startedService(t, noLuck)
	ctx := context.Background()
	s.RecordAction(ctx, domain.ActionFeed, "a1")
	s.RecordMoney(20, domain.TransactionSpent)

	summary, err := s.EndDay(ctx, domain.DayContext{})
	require.NoError(t, err)
	res, err := s.StartNewDay(ctx)
	require.NoError(t, err)

	assert.Equal(t, summary.TomorrowGoals, res.Goals)
	st := s.State()
	assert.Equal(t, 2, st.CurrentDay)
	assert.Zero(t, st.ActionsPerformedToday)
	assert.Zero(t, st.MoneySpentToday)
	assert.Empty(t, st.CompletedGoals)
	assert.Empty(t, st.AnimalsHelpedToday)
	assert.Len(t, st.History, 1)
}

func TestRandomEvent(t *testing.T) {
	s := newTestService(t, allLuck)

	res := s.InitializeFirstDay(context.Background())

	require.NotNil(t, res.Event)
	assert.Equal(t, catalog.MustDefault().RandomEvents[0].Type, res.Event.Type)
	assert.Equal(t, 1, res.Event.Day)
	assert.Equal(t, fixedNow, res.Event.Timestamp)
	assert.NotEmpty(t, res.Event.ID)
	assert.Len(t, s.State().ActiveEvents, 1)

	quiet := newTestService(t, allLuck, WithEventChance(0))
	assert.Nil(t, quiet.InitializeFirstDay(context.Background()).Event)
}

func TestCareStreak(t *testing.T) {
	good := domain.DayHistory{AnimalsHelped: 2, ActionsPerformed: 6}
	bad := domain.DayHistory{AnimalsHelped: 1, ActionsPerformed: 9}

	assert.Equal(t, 0, CareStreak(nil))
	assert.Equal(t, 2, CareStreak([]domain.DayHistory{bad, good, good}))
	assert.Equal(t, 0, CareStreak([]domain.DayHistory{good, bad}))
}

func TestEndDay_StreakExcludesClosingDay(t *testing.T) {
	s := startedService(t, noLuck)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "a", "b", "a", "b"} {
		s.RecordAction(ctx, domain.ActionIdle, id)
	}
	summary, err := s.EndDay(ctx, domain.DayContext{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CareStreak)

	_, err = s.StartNewDay(ctx)
	require.NoError(t, err)
	summary, err = s.EndDay(ctx, domain.DayContext{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CareStreak)
}

func TestSnapshotRestore_DeepCopy(t *testing.T) {
	s := startedService(t, noLuck)
	ctx := context.Background()
	snap := s.Snapshot()

	s.RecordAction(ctx, domain.ActionFeed, "a1")
	s.RecordAction(ctx, domain.ActionWalk, "a1")
	s.RecordExperience(5)
	s.RecordNewAnimal()
	require.NotEmpty(t, s.State().CompletedGoals)

	s.Restore(snap)

	st := s.State()
	assert.Empty(t, st.CompletedGoals)
	assert.Zero(t, st.ActionsPerformedToday)
	assert.Zero(t, st.ActionBreakdown[domain.ActionFeed])
	assert.Zero(t, st.ExperienceToday)
	assert.Zero(t, st.NewAnimalsToday)
}

func TestStatsAndWeekly(t *testing.T) {
	s := startedService(t, noLuck)
	ctx := context.Background()
	s.RecordAction(ctx, domain.ActionFeed, "a1")
	s.RecordAction(ctx, domain.ActionWalk, "a2")

	st := s.Stats()
	assert.InDelta(t, 0.2, st.Efficiency, 1e-9)
	assert.Equal(t, 2, st.AnimalsHelped)
	assert.Equal(t, 1, st.GoalsCompleted)
	assert.Equal(t, 2, st.TotalActions)

	_, err := s.EndDay(ctx, domain.DayContext{})
	require.NoError(t, err)
	weekly := s.WeeklyStats()
	assert.Equal(t, 1, weekly.Days)
	assert.Equal(t, 2, weekly.TotalActions)
}
