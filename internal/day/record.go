package day

import (
	"context"
	"slices"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

// RecordAction counts one performed action and returns newly completed goals
func (s *service) RecordAction(ctx context.Context, action domain.ActionType, animalID string) []string {
	s.st.Actions++
	s.st.Breakdown[action]++
	if animalID != "" && !slices.Contains(s.st.Helped, animalID) {
		s.st.Helped = append(s.st.Helped, animalID)
	}
	return s.CheckAllGoals(ctx)
}

// RecordMoney adds to today's earned or spent totals
func (s *service) RecordMoney(amount int, direction domain.TransactionDirection) {
	if amount <= 0 {
		return
	}
	switch direction {
	case domain.TransactionEarned:
		s.st.Earned += amount
	case domain.TransactionSpent:
		s.st.Spent += amount
	}
}

// RecordAdoption counts an adoption and its fee and returns newly completed goals
func (s *service) RecordAdoption(ctx context.Context, animalID string, fee int) []string {
	s.st.Adoptions++
	s.RecordMoney(fee, domain.TransactionEarned)
	return s.CheckAllGoals(ctx)
}

func (s *service) RecordExperience(amount int) {
	if amount > 0 {
		s.st.Experience += amount
	}
}

func (s *service) RecordNewAnimal() {
	s.st.NewAnimals++
}

func (s *service) RecordEvent(ev domain.DayEvent) {
	s.st.Events = append(s.st.Events, ev)
}
