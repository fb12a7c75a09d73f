package shelter

import (
	"context"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// Adopt sends a ready animal home. The fee goes through the ledger and the
// day's earnings, the player gains reputation and adoption goals are checked.
func (g *Game) Adopt(ctx context.Context, animalID string) AdoptionOutcome {
	g.mu.Lock()
	defer g.unlock(ctx)

	log := logger.FromContext(ctx)
	out := AdoptionOutcome{AnimalID: animalID}
	reject := func(reason domain.FailureReason) AdoptionOutcome {
		log.Warn(LogMsgAdoptionRejected, "animal_id", animalID, "reason", reason)
		return AdoptionOutcome{AnimalID: animalID, Reason: reason}
	}

	if !g.days.IsActive() {
		return reject(domain.ReasonInvalidPhase)
	}
	a, ok := g.animals.Get(animalID)
	if !ok {
		return reject(domain.ReasonAnimalNotFound)
	}

	t := g.begin()
	defer safeRollback(ctx, t)

	res := g.animals.Adopt(ctx, animalID)
	if !res.Success {
		return reject(res.Reason)
	}
	day := g.currentDay()

	if res.AdoptionFee > 0 {
		if err := g.economy.AddMoney(ctx, res.AdoptionFee, domain.MoneySourceAdoption); err != nil {
			return reject(reasonFor(err))
		}
	}
	g.player.IncrementAdoptions()
	before := g.player.Get().Reputation
	out.ReputationGained = g.player.UpdateReputation(AdoptionReputationGain) - before

	t.emit(event.NewAnimalAdoptedEvent(day, a, res.AdoptionFee))

	completed := g.days.RecordAdoption(ctx, animalID, res.AdoptionFee)
	if err := g.grantGoalRewards(ctx, t, day, completed, &out.Rewards); err != nil {
		return reject(reasonFor(err))
	}

	if err := t.Commit(ctx); err != nil {
		return reject(reasonFor(err))
	}
	g.feedback.Invalidate(animalID)
	g.refreshStats(ctx)

	out.Success = true
	out.AnimalName = res.AnimalName
	out.AdoptionFee = res.AdoptionFee
	out.Events = t.events
	log.Info(LogMsgAdopted, "animal_id", animalID, "name", res.AnimalName, "fee", res.AdoptionFee,
		"reputation", g.player.Get().Reputation)
	return out
}
