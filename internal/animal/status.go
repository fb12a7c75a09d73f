package animal

import (
	"math"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

// DeriveStatus maps an animal's stats onto its status. The first matching
// rule wins:
//
//  1. health < 30 or needs medical      -> sick
//  2. health < 60 or happiness < 40     -> needs_care
//  3. readiness >= 80, health >= 80 and happiness >= 70 -> ready_for_adoption
//  4. health >= 70 and happiness >= 60  -> healthy
//  5. otherwise                         -> needs_care
func DeriveStatus(health, happiness, adoptionReadiness int, needsMedical bool) domain.AnimalStatus {
	switch {
	case health < SickHealthBelow || needsMedical:
		return domain.StatusSick
	case health < CareHealthBelow || happiness < CareHappinessBelow:
		return domain.StatusNeedsCare
	case adoptionReadiness >= ReadyReadinessAtLeast && health >= ReadyHealthAtLeast && happiness >= ReadyHappinessAtLeast:
		return domain.StatusReadyForAdoption
	case health >= HealthyHealthAtLeast && happiness >= HealthyHappinessAtLeast:
		return domain.StatusHealthy
	default:
		return domain.StatusNeedsCare
	}
}

func statusOf(a domain.Animal) domain.AnimalStatus {
	return DeriveStatus(a.Health, a.Happiness, a.AdoptionReadiness, a.NeedsMedical)
}

// ReadinessScore is the informational adoption score of an animal. It never
// changes the stored readiness.
func ReadinessScore(a domain.Animal) int {
	timeScore := math.Min(100, float64(a.DaysInShelter)/ScoreFullTimeDays*100)
	return int(math.Round(
		float64(a.Health)*ScoreHealthWeight +
			float64(a.Happiness)*ScoreHappinessWeight +
			timeScore*ScoreTimeWeight,
	))
}

// AdoptionReadinessScore computes ReadinessScore for a stored animal
func (s *service) AdoptionReadinessScore(id string) (int, bool) {
	a, ok := s.Get(id)
	if !ok {
		return 0, false
	}
	return ReadinessScore(a), true
}
