package shelter

import (
	"context"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// EndDay closes the current day, then runs the nightly maintenance on every
// animal. The summary carries tomorrow's goals and the player's tips.
func (g *Game) EndDay(ctx context.Context) (domain.DayEndSummary, error) {
	g.mu.Lock()
	defer g.unlock(ctx)

	t := g.begin()
	defer safeRollback(ctx, t)

	p := g.player.Get()
	animalUsed := 0
	for _, a := range g.animals.List() {
		animalUsed += a.EnergySpentToday
	}

	summary, err := g.days.EndDay(ctx, domain.DayContext{
		PlayerEnergyUsed: p.EnergySpentToday,
		PlayerMaxEnergy:  p.MaxEnergy,
		AnimalEnergyUsed: animalUsed,
	})
	if err != nil {
		return domain.DayEndSummary{}, err
	}
	summary.Tips = g.player.EfficiencyTips()

	report := g.animals.DailyMaintenance(ctx, summary.Day)
	for _, a := range report.FellSick {
		t.emit(event.NewAnimalFellSickEvent(summary.Day, a))
	}
	t.emit(event.NewDayEndedEvent(summary))

	if err := t.Commit(ctx); err != nil {
		return domain.DayEndSummary{}, err
	}
	g.refreshStats(ctx)
	return summary, nil
}

// StartNewDay opens the next day: energy pools refill, the random event of
// the day takes effect and old journal entries are pruned
func (g *Game) StartNewDay(ctx context.Context) (DayStart, error) {
	g.mu.Lock()
	defer g.unlock(ctx)

	t := g.begin()
	defer safeRollback(ctx, t)

	res, err := g.days.StartNewDay(ctx)
	if err != nil {
		return DayStart{}, err
	}
	g.player.ResetDailyEnergy(ctx, g.inventory.DailyEnergyBonus())
	g.animals.ResetDailyEnergy(ctx)

	newAnimal, err := g.applyDayEvent(ctx, t, res.Event)
	if err != nil {
		return DayStart{}, err
	}

	energy := g.player.Get().Energy
	t.emit(event.NewDayStartedEvent(res.Day, res.Goals, energy))

	if err := t.Commit(ctx); err != nil {
		return DayStart{}, err
	}
	g.refreshStats(ctx)

	if err := g.cleanup.Process(ctx, res.Day); err != nil {
		logger.FromContext(ctx).Warn(LogMsgCleanupFailed, "day", res.Day, "error", err)
	}

	return DayStart{
		Day:          res.Day,
		Goals:        res.Goals,
		Event:        res.Event,
		PlayerEnergy: energy,
		NewAnimal:    newAnimal,
	}, nil
}

// applyDayEvent turns a random event into ledger, reputation and intake changes
func (g *Game) applyDayEvent(ctx context.Context, t *tx, ev *domain.DayEvent) (*domain.Animal, error) {
	if ev == nil {
		return nil, nil
	}
	t.emit(event.NewRandomEvent(*ev))

	fx := ev.Effects
	if fx.Money > 0 {
		if err := g.economy.AddMoney(ctx, fx.Money, domain.MoneySourceDonation); err != nil {
			return nil, err
		}
		g.days.RecordMoney(fx.Money, domain.TransactionEarned)
	}
	if fx.Reputation != 0 {
		g.player.UpdateReputation(fx.Reputation)
	}

	var admitted *domain.Animal
	for i := 0; i < fx.NewAnimals; i++ {
		if g.animals.Count() >= g.capacity {
			logger.FromContext(ctx).Info(LogMsgIntakeSkipped, "day", ev.Day, "capacity", g.capacity)
			break
		}
		a, err := g.admit(ctx, t, g.intakeDraft(), SourceEvent)
		if err != nil {
			return nil, err
		}
		admitted = &a
	}
	return admitted, nil
}
