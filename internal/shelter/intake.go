package shelter

import (
	"context"
	"fmt"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// RescueAnimal takes in a random animal when there is room. Rescues arrive
// with the intake status until they are first cared for.
func (g *Game) RescueAnimal(ctx context.Context) RescueOutcome {
	g.mu.Lock()
	defer g.unlock(ctx)
	return g.intake(ctx, g.intakeDraft(), SourceRescue)
}

// AdmitAnimal admits an animal described by the caller
func (g *Game) AdmitAnimal(ctx context.Context, draft domain.AnimalDraft) RescueOutcome {
	g.mu.Lock()
	defer g.unlock(ctx)
	return g.intake(ctx, draft, SourceAdmitted)
}

func (g *Game) intake(ctx context.Context, draft domain.AnimalDraft, source string) RescueOutcome {
	log := logger.FromContext(ctx)

	t := g.begin()
	defer safeRollback(ctx, t)

	a, err := g.admit(ctx, t, draft, source)
	if err != nil {
		out := RescueOutcome{Reason: reasonFor(err)}
		if out.Reason == domain.ReasonShelterFull {
			out.Shortfall = &domain.Shortfall{Resource: ResourceCapacity, Needed: g.animals.Count() + 1, Available: g.capacity}
		}
		log.Warn(LogMsgIntakeRejected, "source", source, "reason", out.Reason, "error", err)
		return out
	}

	if err := t.Commit(ctx); err != nil {
		return RescueOutcome{Reason: reasonFor(err)}
	}
	g.refreshStats(ctx)

	log.Info(LogMsgRescued, "animal_id", a.ID, "name", a.Name, "source", source)
	return RescueOutcome{Success: true, Animal: &a}
}

// admit adds an animal inside an open transaction, enforcing capacity
func (g *Game) admit(ctx context.Context, t *tx, draft domain.AnimalDraft, source string) (domain.Animal, error) {
	if g.animals.Count() >= g.capacity {
		return domain.Animal{}, fmt.Errorf("%w: %d of %d", domain.ErrShelterFull, g.animals.Count(), g.capacity)
	}
	a, err := g.animals.Add(ctx, draft)
	if err != nil {
		return domain.Animal{}, err
	}
	g.days.RecordNewAnimal()
	t.emit(event.NewAnimalAdmittedEvent(g.currentDay(), a, source))
	return a, nil
}

func (g *Game) intakeDraft() domain.AnimalDraft {
	draft := g.animals.NewRandomDraft()
	draft.Status = domain.StatusIntake
	return draft
}
