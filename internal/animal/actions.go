package animal

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
	"github.com/osse101/ShelterSim_Go/internal/utils"
)

// CanApplyAction mirrors the preconditions of ApplyAction without mutating.
// Item, money and skill requirements are not checked here.
func (s *service) CanApplyAction(id string, action domain.ActionType) domain.Eligibility {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Eligibility{Reason: domain.ReasonAnimalNotFound}
	}
	def, ok := catalog.Definition(action)
	if !ok {
		return domain.Eligibility{Reason: domain.ReasonInvalidAction}
	}
	a := s.animals[i]
	if a.Energy < def.Cost.AnimalEnergy {
		return domain.Eligibility{
			Reason: domain.ReasonInsufficientAnimalEnergy,
			Shortfall: &domain.Shortfall{
				Resource:  ResourceAnimalEnergy,
				Needed:    def.Cost.AnimalEnergy,
				Available: a.Energy,
			},
		}
	}
	return domain.Eligibility{Allowed: true}
}

// ApplyAction debits the animal's energy and applies the action's effects.
// A failed precondition leaves the animal untouched.
func (s *service) ApplyAction(ctx context.Context, id string, action domain.ActionType, mods Modifiers) domain.ActionOutcome {
	log := logger.FromContext(ctx)

	outcome := domain.ActionOutcome{Action: action, AnimalID: id}

	elig := s.CanApplyAction(id, action)
	if !elig.Allowed {
		outcome.Reason = elig.Reason
		outcome.Shortfall = elig.Shortfall
		outcome.Message = failureMessage(elig.Reason)
		log.Debug(LogMsgActionRejected, "animal_id", id, "action", action, "reason", elig.Reason)
		return outcome
	}

	def, _ := catalog.Definition(action)
	if err := s.DebitEnergy(id, def.Cost.AnimalEnergy); err != nil {
		outcome.Reason = domain.ReasonInsufficientAnimalEnergy
		outcome.Message = MsgAnimalTooTired
		return outcome
	}

	critical := def.Effect.CriticalSuccessChance > 0 && s.rnd() < def.Effect.CriticalSuccessChance
	factor := mods.EffectMultiplier
	if factor <= 0 {
		factor = 1
	}
	if critical {
		factor *= CriticalMultiplier
	}
	delta := scaleDelta(def.Effect.Delta(), factor)

	a := &s.animals[s.indexOf(id)]
	s.stampCare(a, action, mods.Day)
	if def.Effect.CuresSickness {
		a.NeedsMedical = false
	}
	if def.Effect.PreventsIllness {
		a.ProtectedDay = mods.Day
	}
	if tag := temperamentTag(action); def.Effect.ImprovesTemperament && !slices.Contains(a.Temperament, tag) {
		a.Temperament = append(a.Temperament, tag)
	}

	updated, _ := s.MutateStats(id, delta)

	outcome.Success = true
	outcome.Effects = delta
	outcome.CriticalSuccess = critical
	outcome.ExperienceGained = def.Effect.ExperienceOrDefault()
	outcome.Message = fmt.Sprintf(MsgActionSuccessFormat, action.PastTense(), updated.Name)
	if critical {
		outcome.Message += MsgCriticalSuffix
	}

	log.Debug(LogMsgActionApplied,
		"animal_id", id,
		"action", action,
		"critical", critical,
		"health", updated.Health,
		"happiness", updated.Happiness,
		"readiness", updated.AdoptionReadiness,
		"status", updated.Status)
	return outcome
}

// DebitEnergy removes animal energy. It never recomputes status.
func (s *service) DebitEnergy(id string, amount int) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrAnimalNotFound, id)
	}
	a := &s.animals[i]
	if amount < 0 || a.Energy < amount {
		return fmt.Errorf("%w: needed %d, available %d", domain.ErrInsufficientAnimalEnergy, amount, a.Energy)
	}
	a.Energy -= amount
	a.EnergySpentToday += amount
	return nil
}

// MutateStats applies a clamped stat delta and always recomputes status
func (s *service) MutateStats(id string, delta domain.StatDelta) (domain.Animal, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Animal{}, fmt.Errorf("%w: %s", domain.ErrAnimalNotFound, id)
	}
	a := &s.animals[i]
	a.Health = utils.ClampInt(a.Health+delta.Health, domain.StatMin, domain.StatMax)
	a.Happiness = utils.ClampInt(a.Happiness+delta.Happiness, domain.StatMin, domain.StatMax)
	a.AdoptionReadiness = utils.ClampInt(a.AdoptionReadiness+delta.AdoptionReadiness, domain.StatMin, domain.StatMax)
	a.Status = statusOf(*a)
	return a.Clone(), nil
}

func (s *service) stampCare(a *domain.Animal, action domain.ActionType, day int) {
	now := s.now()
	switch action {
	case domain.ActionFeed:
		a.LastFed = &now
		a.LastFedDay = day
	case domain.ActionWalk, domain.ActionExercise:
		a.LastWalked = &now
	case domain.ActionGroom:
		a.LastGroomed = &now
	case domain.ActionPlay, domain.ActionMedical, domain.ActionTrain, domain.ActionSocialize, domain.ActionIdle:
	}
}

func scaleDelta(d domain.StatDelta, factor float64) domain.StatDelta {
	if factor == 1 {
		return d
	}
	return domain.StatDelta{
		Health:            utils.ScaleRound(d.Health, factor),
		Happiness:         utils.ScaleRound(d.Happiness, factor),
		AdoptionReadiness: utils.ScaleRound(d.AdoptionReadiness, factor),
	}
}

func failureMessage(reason domain.FailureReason) string {
	switch reason {
	case domain.ReasonAnimalNotFound:
		return MsgAnimalNotFound
	case domain.ReasonInsufficientAnimalEnergy:
		return MsgAnimalTooTired
	case domain.ReasonInvalidAction:
		return MsgUnknownAction
	}
	return string(reason)
}

// temperamentTag maps a temperament-improving action to the tag it grants
func temperamentTag(action domain.ActionType) string {
	if action == domain.ActionSocialize {
		return TemperamentSocialized
	}
	return TemperamentWellTrained
}
