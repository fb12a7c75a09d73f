package shelter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/ShelterSim_Go/internal/animal"
	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/config"
	"github.com/osse101/ShelterSim_Go/internal/day"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/economy"
	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/eventlog"
	"github.com/osse101/ShelterSim_Go/internal/inventory"
	"github.com/osse101/ShelterSim_Go/internal/logger"
	"github.com/osse101/ShelterSim_Go/internal/metrics"
	"github.com/osse101/ShelterSim_Go/internal/player"
	"github.com/osse101/ShelterSim_Go/internal/stats"
	"github.com/osse101/ShelterSim_Go/internal/utils"
)

// Game owns every store of one shelter session and is the only place that
// mutates them. Commands take the write lock and run as one transaction;
// queries take the read lock.
type Game struct {
	mu sync.RWMutex

	catalog  *catalog.Catalog
	rules    domain.Rules
	capacity int
	now      func() time.Time

	player    player.Service
	animals   animal.Service
	days      day.Service
	economy   economy.Service
	inventory inventory.Service
	stats     stats.Service
	journal   eventlog.Service
	cleanup   *eventlog.CleanupJob
	metrics   *metrics.Metrics
	bus       *event.MemoryBus
	feedback  *feedbackCache

	// events waiting for the write lock to be released
	pending []event.Event
}

type options struct {
	catalog         *catalog.Catalog
	rnd             func() float64
	now             func() time.Time
	startingAnimals int
	animals         animal.Service
	economy         economy.Service
}

// Option configures a Game
type Option func(*options)

// WithCatalog replaces the embedded catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithRandom injects the random source shared by every store
func WithRandom(rnd func() float64) Option {
	return func(o *options) { o.rnd = rnd }
}

// WithClock injects the time source shared by every store
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithStartingAnimals sets how many random rescues the shelter opens with
func WithStartingAnimals(n int) Option {
	return func(o *options) { o.startingAnimals = n }
}

// WithAnimalService replaces the animal population store
func WithAnimalService(s animal.Service) Option {
	return func(o *options) { o.animals = s }
}

// WithEconomyService replaces the money ledger
func WithEconomyService(s economy.Service) Option {
	return func(o *options) { o.economy = s }
}

// NewGame builds a shelter from configuration, admits the starting animals
// and opens day 1
func NewGame(ctx context.Context, cfg *config.Config, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{now: time.Now, startingAnimals: StartingAnimals}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		c, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		o.catalog = c
	}
	if o.rnd == nil {
		if cfg.Seed != 0 {
			o.rnd = utils.SeededFloat(cfg.Seed)
		} else {
			o.rnd = utils.RandomFloat
		}
	}
	if o.animals == nil {
		o.animals = animal.NewService(o.catalog, animal.WithRandom(o.rnd), animal.WithClock(o.now))
	}
	if o.economy == nil {
		o.economy = economy.NewService(cfg.StartingBudget, economy.WithClock(o.now))
	}

	feedback, err := newFeedbackCache(cfg.FeedbackCacheSize, RecentResultsPerAnimal)
	if err != nil {
		return nil, fmt.Errorf("%w: feedback cache: %v", domain.ErrInvalidInput, err)
	}

	journal := eventlog.NewService(eventlog.NewMemoryRepository(cfg.JournalSize))
	g := &Game{
		catalog:  o.catalog,
		rules:    cfg.Rules,
		capacity: cfg.Capacity,
		now:      o.now,

		player:  player.NewService(cfg.Rules.CarryOverLevels),
		animals: o.animals,
		days: day.NewService(o.catalog,
			day.WithRandom(o.rnd),
			day.WithClock(o.now),
			day.WithEventChance(cfg.RandomEventChance),
			day.WithAdoptionTracking(cfg.Rules.TrackAdoptionGoals)),
		economy:   o.economy,
		inventory: inventory.NewService(o.catalog, inventory.WithClock(o.now)),
		stats:     stats.NewService(),
		journal:   journal,
		cleanup:   eventlog.NewCleanupJob(journal, eventlog.DefaultRetentionDays),
		metrics:   metrics.New(),
		bus:       event.NewMemoryBus(),
		feedback:  feedback,
	}

	if err := metrics.NewEventMetricsCollector(g.metrics).Register(g.bus); err != nil {
		return nil, err
	}
	stats.NewEventHandler(g.stats).Register(g.bus)
	if err := g.journal.Subscribe(g.bus); err != nil {
		return nil, err
	}

	if err := g.open(ctx, o.startingAnimals); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgGameCreated,
		"capacity", g.capacity,
		"budget", g.economy.Budget(),
		"animals", g.animals.Count(),
		"rules", fmt.Sprintf("%+v", g.rules))
	return g, nil
}

// open admits the first rescues and starts day 1
func (g *Game) open(ctx context.Context, startingAnimals int) error {
	g.mu.Lock()
	defer g.unlock(ctx)

	t := g.begin()
	defer safeRollback(ctx, t)

	for i := 0; i < min(startingAnimals, g.capacity); i++ {
		a, err := g.animals.Add(ctx, g.animals.NewRandomDraft())
		if err != nil {
			return err
		}
		t.emit(event.NewAnimalAdmittedEvent(day.FirstDay, a, SourceRescue))
	}

	res := g.days.InitializeFirstDay(ctx)
	if _, err := g.applyDayEvent(ctx, t, res.Event); err != nil {
		return err
	}
	t.emit(event.NewDayStartedEvent(res.Day, res.Goals, g.player.Get().Energy))

	if err := t.Commit(ctx); err != nil {
		return err
	}
	g.refreshStats(ctx)
	return nil
}

// Bus exposes the event bus so callers can subscribe to game events.
// Handlers run after the command that raised the event has released the
// game, so they may call queries but see the state after the whole command.
func (g *Game) Bus() event.Bus {
	return g.bus
}

// Metrics exposes the game's private metrics registry
func (g *Game) Metrics() *metrics.Metrics {
	return g.metrics
}

// Catalog returns the static tables the game was built from
func (g *Game) Catalog() *catalog.Catalog {
	return g.catalog
}

// Rules returns the gameplay switches in effect
func (g *Game) Rules() domain.Rules {
	return g.rules
}

// publish queues events while the write lock is held; unlock delivers them
func (g *Game) publish(_ context.Context, evts ...event.Event) {
	g.pending = append(g.pending, evts...)
}

// unlock releases the write lock and then hands the queued events to the
// bus, so subscribers are free to query the game
func (g *Game) unlock(ctx context.Context) {
	evts := g.pending
	g.pending = nil
	g.mu.Unlock()

	for _, evt := range evts {
		if err := g.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}

func (g *Game) refreshStats(ctx context.Context) {
	g.stats.Refresh(ctx, g.animals.List(), g.capacity)
}

func (g *Game) currentDay() int {
	return g.days.State().CurrentDay
}
