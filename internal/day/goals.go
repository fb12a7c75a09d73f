package day

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// GenerateDailyGoals builds the goal set for a day. Basic care is always
// present, adoption joins from day 3 and efficiency may join from day 5.
func (s *service) GenerateDailyGoals(day int) []domain.DailyGoal {
	var goals []domain.DailyGoal
	add := func(templateID string) {
		tmpl, ok := s.catalog.GoalTemplate(templateID)
		if !ok {
			return
		}
		goals = append(goals, instantiate(tmpl, day))
	}

	add(catalog.GoalBasicCare)
	if day >= AdoptionGoalFromDay {
		add(catalog.GoalAdoptionReady)
	}
	if day >= EfficiencyGoalFromDay && s.rnd() < EfficiencyGoalChance {
		add(catalog.GoalEfficiencyMaster)
	}
	return goals
}

func instantiate(tmpl domain.GoalTemplate, day int) domain.DailyGoal {
	g := domain.DailyGoal{
		ID:           fmt.Sprintf(GoalIDFormat, tmpl.ID, day),
		TemplateID:   tmpl.ID,
		Day:          day,
		Title:        tmpl.Title,
		Description:  tmpl.Description,
		Type:         tmpl.Type,
		Requirements: tmpl.Requirements,
		Rewards:      tmpl.Rewards,
		Difficulty:   tmpl.Difficulty,
		Optional:     tmpl.Optional,
	}
	return cloneGoals([]domain.DailyGoal{g})[0]
}

func (s *service) Goal(id string) (domain.DailyGoal, bool) {
	for _, g := range s.st.Goals {
		if g.ID == id {
			return cloneGoals([]domain.DailyGoal{g})[0], true
		}
	}
	return domain.DailyGoal{}, false
}

func (s *service) IsGoalComplete(id string) bool {
	return slices.Contains(s.st.Completed, id)
}

// goalMet evaluates a goal's completion predicate against today's counters
func (s *service) goalMet(g domain.DailyGoal) bool {
	req := g.Requirements
	switch g.Type {
	case domain.GoalTypeCare:
		if len(req.SpecificActions) == 0 {
			return false
		}
		for action, count := range req.SpecificActions {
			if s.st.Breakdown[action] < count {
				return false
			}
		}
		return true
	case domain.GoalTypeEfficiency:
		if req.ActionsRequired == 0 || req.EnergyEfficiency == 0 {
			return false
		}
		return s.st.Actions >= req.ActionsRequired && efficiency(s.st.Actions) >= req.EnergyEfficiency
	case domain.GoalTypeAdoption:
		if !s.trackAdoptions || req.AdoptionsNeeded == 0 {
			return false
		}
		return s.st.Adoptions >= req.AdoptionsNeeded
	}
	return false
}

// CheckAllGoals completes every goal whose predicate now holds and returns
// the ids that just transitioned
func (s *service) CheckAllGoals(ctx context.Context) []string {
	var completed []string
	for _, g := range s.st.Goals {
		if s.IsGoalComplete(g.ID) || !s.goalMet(g) {
			continue
		}
		if ok, _ := s.CompleteGoal(ctx, g.ID); ok {
			completed = append(completed, g.ID)
		}
	}
	return completed
}

// CompleteGoal marks a goal complete and records its money reward as earned
// today. It reports false when the goal was already complete.
func (s *service) CompleteGoal(ctx context.Context, id string) (bool, error) {
	g, ok := s.Goal(id)
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrGoalNotFound, id)
	}
	if s.IsGoalComplete(id) {
		return false, nil
	}
	s.st.Completed = append(s.st.Completed, id)
	if g.Rewards.Money > 0 {
		s.RecordMoney(g.Rewards.Money, domain.TransactionEarned)
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgGoalCompleted, "goal_id", id, "day", s.st.CurrentDay)
	return true, nil
}
