package animal

import (
	"fmt"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/utils"
)

// MaxEnergyFor derives max energy from a breed's base energy and an age bracket
func MaxEnergyFor(baseEnergy int, age domain.AnimalAge) int {
	if baseEnergy <= 0 {
		baseEnergy = DefaultBaseEnergy
	}
	switch age {
	case domain.AgePuppy:
		baseEnergy += PuppyEnergyBonus
	case domain.AgeSenior:
		baseEnergy -= SeniorEnergyPenalty
	case domain.AgeAdult:
	}
	return utils.ClampInt(baseEnergy, MinMaxEnergy, MaxMaxEnergy)
}

// NewRandomDraft rolls a random adult animal from the breed and name tables
func (s *service) NewRandomDraft() domain.AnimalDraft {
	breed := s.catalog.Breeds[utils.PickIndex(s.rnd, len(s.catalog.Breeds))]
	name := s.catalog.Names[utils.PickIndex(s.rnd, len(s.catalog.Names))]
	maxEnergy := MaxEnergyFor(breed.BaseEnergy, domain.AgeAdult)

	draft := domain.AnimalDraft{
		Name:              name,
		Type:              breed.Type,
		Breed:             breed.Name,
		Size:              breed.Size,
		Age:               domain.AgeAdult,
		Health:            utils.IntFrom(s.rnd, GenHealthMin, GenHealthMax),
		Happiness:         utils.IntFrom(s.rnd, GenHappinessMin, GenHappinessMax),
		AdoptionReadiness: utils.IntFrom(s.rnd, GenReadinessMin, GenReadinessMax),
		Energy:            maxEnergy,
		MaxEnergy:         maxEnergy,
		NeedsMedical:      s.rnd() < GenNeedsMedicalChance,
		AdoptionFee:       utils.IntFrom(s.rnd, GenFeeMin, GenFeeMax),
		Temperament:       append([]string{}, breed.SpecialTraits...),
		Backstory:         fmt.Sprintf(BackstoryFormat, name, breed.Name),
	}
	draft.Status = DeriveStatus(draft.Health, draft.Happiness, draft.AdoptionReadiness, draft.NeedsMedical)
	return draft
}
