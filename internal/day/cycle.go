package day

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
	"github.com/osse101/ShelterSim_Go/internal/utils"
)

// InitializeFirstDay resets the cycle to an active day 1
func (s *service) InitializeFirstDay(ctx context.Context) StartResult {
	s.st = State{}
	s.beginDay(FirstDay, s.GenerateDailyGoals(FirstDay))
	res := s.startResult(ctx)

	log := logger.FromContext(ctx)
	log.Info(LogMsgFirstDay, "goals", len(res.Goals), "random_event", res.Event != nil)
	return res
}

// StartNewDay advances an ended day to the next active one
func (s *service) StartNewDay(ctx context.Context) (StartResult, error) {
	if s.st.CurrentDay < FirstDay {
		return StartResult{}, domain.ErrDayNotInitialized
	}
	if s.st.Phase != domain.DayPhaseEnded {
		return StartResult{}, fmt.Errorf("%w: day %d is still active", domain.ErrDayNotEnded, s.st.CurrentDay)
	}

	next := s.st.CurrentDay + 1
	goals := s.st.Tomorrow
	if len(goals) == 0 || goals[0].Day != next {
		goals = s.GenerateDailyGoals(next)
	}
	s.beginDay(next, goals)
	res := s.startResult(ctx)

	log := logger.FromContext(ctx)
	log.Info(LogMsgDayStarted, "day", res.Day, "goals", len(res.Goals), "random_event", res.Event != nil)
	return res, nil
}

func (s *service) beginDay(day int, goals []domain.DailyGoal) {
	history := s.st.History
	s.st = State{
		CurrentDay: day,
		Phase:      domain.DayPhaseActive,
		Goals:      goals,
		Breakdown:  map[domain.ActionType]int{},
		History:    history,
	}
}

func (s *service) startResult(ctx context.Context) StartResult {
	res := StartResult{Day: s.st.CurrentDay, Goals: cloneGoals(s.st.Goals)}
	if ev, ok := s.rollRandomEvent(); ok {
		s.RecordEvent(ev)
		res.Event = &ev

		log := logger.FromContext(ctx)
		log.Info(LogMsgRandomEvent, "day", ev.Day, "type", ev.Type)
	}
	return res
}

// rollRandomEvent draws an event from the catalog table with eventChance
func (s *service) rollRandomEvent() (domain.DayEvent, bool) {
	table := s.catalog.RandomEvents
	if len(table) == 0 || s.rnd() >= s.eventChance {
		return domain.DayEvent{}, false
	}
	tmpl := table[utils.PickIndex(s.rnd, len(table))]
	return domain.DayEvent{
		ID:          uuid.NewString(),
		Day:         s.st.CurrentDay,
		Type:        tmpl.Type,
		Title:       tmpl.Title,
		Description: tmpl.Description,
		Effects:     tmpl.Effects,
		Timestamp:   s.now(),
	}, true
}

// EndDay grades the active day, freezes it into history and pre-generates
// tomorrow's goals
func (s *service) EndDay(ctx context.Context, dc domain.DayContext) (domain.DayEndSummary, error) {
	if s.st.CurrentDay < FirstDay {
		return domain.DayEndSummary{}, domain.ErrDayNotInitialized
	}
	if s.st.Phase != domain.DayPhaseActive {
		return domain.DayEndSummary{}, fmt.Errorf("%w: day %d", domain.ErrDayAlreadyEnded, s.st.CurrentDay)
	}

	eff := efficiency(s.st.Actions)
	helped := len(s.st.Helped)
	goalsDone := len(s.st.Completed)
	grade := Grade(eff, helped, goalsDone)

	record := domain.DayHistory{
		Day:              s.st.CurrentDay,
		ActionsPerformed: s.st.Actions,
		AnimalsHelped:    helped,
		GoalsCompleted:   goalsDone,
		GoalsTotal:       len(s.st.Goals),
		MoneyEarned:      s.st.Earned,
		MoneySpent:       s.st.Spent,
		Adoptions:        s.st.Adoptions,
		NewAnimals:       s.st.NewAnimals,
		PlayerEnergyUsed: dc.PlayerEnergyUsed,
		PlayerMaxEnergy:  dc.PlayerMaxEnergy,
		AnimalEnergyUsed: dc.AnimalEnergyUsed,
		ExperienceGained: s.st.Experience,
		Efficiency:       eff,
		Grade:            grade,
	}

	var completed []domain.DailyGoal
	for _, g := range s.st.Goals {
		if s.IsGoalComplete(g.ID) {
			completed = append(completed, g)
		}
	}

	streak := CareStreak(s.st.History)
	tomorrow := s.GenerateDailyGoals(s.st.CurrentDay + 1)

	s.st.History = append(s.st.History, record)
	s.st.Phase = domain.DayPhaseEnded
	s.st.Tomorrow = tomorrow

	summary := domain.DayEndSummary{
		Day:                record.Day,
		History:            record,
		Grade:              grade,
		PerformanceMessage: PerformanceMessage(grade),
		Efficiency:         eff,
		CompletedGoals:     cloneGoals(completed),
		TotalGoals:         record.GoalsTotal,
		ExperienceGained:   record.ExperienceGained,
		CareStreak:         streak,
		TomorrowGoals:      cloneGoals(tomorrow),
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgDayEnded, "day", record.Day, "grade", grade, "actions", record.ActionsPerformed,
		"animals_helped", helped, "goals_completed", goalsDone, "care_streak", streak)
	return summary, nil
}

// Grade maps a day's efficiency, helped animals and completed goals to a letter
func Grade(efficiency float64, helped, goals int) domain.Grade {
	switch {
	case efficiency >= GradeAEfficiency && helped >= GradeAHelped && goals >= GradeAGoals:
		return domain.GradeA
	case efficiency >= GradeBEfficiency && helped >= GradeBHelped && goals >= GradeBGoals:
		return domain.GradeB
	case efficiency >= GradeCEfficiency && helped >= GradeCHelped:
		return domain.GradeC
	case helped >= GradeDHelped:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}

// PerformanceMessage is the day-end line shown for a grade
func PerformanceMessage(grade domain.Grade) string {
	switch grade {
	case domain.GradeA:
		return PerformanceMsgA
	case domain.GradeB:
		return PerformanceMsgB
	case domain.GradeC:
		return PerformanceMsgC
	case domain.GradeD:
		return PerformanceMsgD
	case domain.GradeF:
		return PerformanceMsgF
	}
	return PerformanceMsgDefault
}

// CareStreak counts trailing history days with good care
func CareStreak(history []domain.DayHistory) int {
	streak := 0
	for i := len(history) - 1; i >= 0; i-- {
		h := history[i]
		if h.AnimalsHelped < StreakMinAnimalsHelped || h.ActionsPerformed < StreakMinActions {
			break
		}
		streak++
	}
	return streak
}
