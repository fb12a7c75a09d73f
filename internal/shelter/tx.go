package shelter

import (
	"context"
	"errors"

	"github.com/osse101/ShelterSim_Go/internal/animal"
	"github.com/osse101/ShelterSim_Go/internal/day"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/economy"
	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/inventory"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// Tx is one unit of work across the game's stores
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// tx snapshots every store a command can touch. Rollback restores all of
// them; Commit queues the buffered events for delivery once the game lock
// is released. Either call closes the tx.
type tx struct {
	game *Game

	player    domain.Player
	animals   animal.State
	day       day.State
	ledger    economy.Ledger
	inventory inventory.State

	events []event.Event
	closed bool
}

// begin opens a transaction. The caller must hold the write lock.
func (g *Game) begin() *tx {
	return &tx{
		game:      g,
		player:    g.player.Snapshot(),
		animals:   g.animals.Snapshot(),
		day:       g.days.Snapshot(),
		ledger:    g.economy.Snapshot(),
		inventory: g.inventory.Snapshot(),
	}
}

// emit buffers an event until commit
func (t *tx) emit(evts ...event.Event) {
	t.events = append(t.events, evts...)
}

func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	t.game.publish(ctx, t.events...)
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	g := t.game
	g.player.Restore(t.player)
	g.animals.Restore(t.animals)
	g.days.Restore(t.day)
	g.economy.Restore(t.ledger)
	g.inventory.Restore(t.inventory)
	t.events = nil
	return nil
}

// safeRollback rolls back a transaction and logs any error
func safeRollback(ctx context.Context, t Tx) {
	if err := t.Rollback(ctx); err != nil {
		// A committed transaction reports closed; that is the normal path
		if !errors.Is(err, domain.ErrTxClosed) {
			logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
		}
	}
}
