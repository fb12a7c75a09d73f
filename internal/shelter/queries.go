package shelter

import (
	"context"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/eventlog"
)

// Status is a one-call snapshot of the whole game
type Status struct {
	Day       domain.DayState       `json:"day"`
	Player    domain.Player         `json:"player"`
	Economy   domain.EconomyState   `json:"economy"`
	Inventory domain.InventoryState `json:"inventory"`
	Animals   []domain.Animal       `json:"animals"`
	Shelter   domain.ShelterStats   `json:"shelter"`
}

// Animal returns one animal by id
func (g *Game) Animal(id string) (domain.Animal, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.animals.Get(id)
}

// Animals returns every animal in admission order
func (g *Game) Animals() []domain.Animal {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.animals.List()
}

// Player returns the player state
func (g *Game) Player() domain.Player {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.player.Get()
}

// DayState returns the current day, its goals and the history
func (g *Game) DayState() domain.DayState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.days.State()
}

// EconomyState returns the budget and the day's money flow
func (g *Game) EconomyState() domain.EconomyState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.economy.State()
}

// Inventory returns held items and installed equipment
func (g *Game) Inventory() domain.InventoryState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inventory.State()
}

// Occupancy returns the share of capacity in use, in percent
func (g *Game) Occupancy() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stats.Current().OccupancyPercent
}

// AverageHealth is 0 for an empty shelter
func (g *Game) AverageHealth() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stats.Current().AverageHealth
}

// AverageHappiness is the mean happiness of the animals in care
func (g *Game) AverageHappiness() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stats.Current().AverageHappiness
}

// AdoptableAnimals returns animals whose status is ready_for_adoption
func (g *Game) AdoptableAnimals() []domain.Animal {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.animals.Adoptable()
}

// AnimalsNeedingCare returns animals that are sick or low on health or happiness
func (g *Game) AnimalsNeedingCare() []domain.Animal {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.animals.NeedingCare()
}

// ShelterStats returns the derived shelter statistics with lifetime counters
func (g *Game) ShelterStats() domain.ShelterStats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stats.Current()
}

// WeeklyStats aggregates the last seven closed days
func (g *Game) WeeklyStats() domain.WeeklyStats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.days.WeeklyStats()
}

// RecentActionResults returns the latest action results for an animal, oldest first
func (g *Game) RecentActionResults(animalID string) []ActionFeedback {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.feedback.Get(animalID)
}

// CanAfford reports whether the budget covers an amount
func (g *Game) CanAfford(amount int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.economy.CanAfford(amount)
}

// ActionCost returns the player energy an action would cost right now
func (g *Game) ActionCost(action domain.ActionType) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	def, ok := catalog.Definition(action)
	if !ok {
		return 0, false
	}
	return g.effectiveCost(def), true
}

// CanPerformAction answers whether PerformAction would pass every gate
func (g *Game) CanPerformAction(animalID string, action domain.ActionType) domain.Eligibility {
	g.mu.RLock()
	defer g.mu.RUnlock()

	def, ok := catalog.Definition(action)
	if !ok {
		return domain.Eligibility{Reason: domain.ReasonInvalidAction}
	}
	if !g.days.IsActive() {
		return domain.Eligibility{Reason: domain.ReasonInvalidPhase}
	}
	cost := g.effectiveCost(def)
	if !g.player.CanUseEnergy(cost) {
		return domain.Eligibility{
			Reason:    domain.ReasonInsufficientPlayerEnergy,
			Shortfall: &domain.Shortfall{Resource: ResourcePlayerEnergy, Needed: cost, Available: g.player.Get().Energy},
		}
	}
	if elig := g.animals.CanApplyAction(animalID, action); !elig.Allowed {
		return elig
	}
	if g.rules.EnforceActionRequirements {
		if reason, shortfall := g.checkRequirements(def); reason != domain.ReasonNone {
			return domain.Eligibility{Reason: reason, Shortfall: shortfall}
		}
	}
	return domain.Eligibility{Allowed: true}
}

// Journal returns the most recent journal entries, newest first
func (g *Game) Journal(ctx context.Context, limit int) ([]eventlog.Entry, error) {
	return g.journal.Recent(ctx, limit)
}

// JournalByType returns recent journal entries of one event type
func (g *Game) JournalByType(ctx context.Context, t event.Type, limit int) ([]eventlog.Entry, error) {
	return g.journal.ByType(ctx, t, limit)
}

// Status returns every read model at once, consistent with each other
func (g *Game) Status() Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Status{
		Day:       g.days.State(),
		Player:    g.player.Get(),
		Economy:   g.economy.State(),
		Inventory: g.inventory.State(),
		Animals:   g.animals.List(),
		Shelter:   g.stats.Current(),
	}
}
