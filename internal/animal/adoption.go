package animal

import (
	"context"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

// Adopt removes an animal that is ready for adoption and returns its fee
func (s *service) Adopt(ctx context.Context, id string) domain.AdoptionResult {
	result := domain.AdoptionResult{AnimalID: id}

	a, ok := s.Get(id)
	if !ok {
		result.Reason = domain.ReasonAnimalNotFound
		return result
	}
	if a.Status != domain.StatusReadyForAdoption {
		result.Reason = domain.ReasonNotReadyForAdoption
		return result
	}
	if err := s.Remove(ctx, id); err != nil {
		result.Reason = domain.ReasonAnimalNotFound
		return result
	}

	result.Success = true
	result.AnimalName = a.Name
	result.AdoptionFee = a.AdoptionFee
	return result
}

// ByStatus returns every animal with the given status
func (s *service) ByStatus(status domain.AnimalStatus) []domain.Animal {
	return s.filter(func(a domain.Animal) bool { return a.Status == status })
}

// Adoptable returns every animal ready for adoption
func (s *service) Adoptable() []domain.Animal {
	return s.ByStatus(domain.StatusReadyForAdoption)
}

// NeedingCare returns animals that are sick, flagged for care, or low on health or happiness
func (s *service) NeedingCare() []domain.Animal {
	return s.filter(func(a domain.Animal) bool {
		return a.Status == domain.StatusNeedsCare ||
			a.Status == domain.StatusSick ||
			a.Health < NeedingCareHealthBelow ||
			a.Happiness < NeedingCareHappinessBelow
	})
}
