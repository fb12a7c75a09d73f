package inventory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// Service holds the player's items, installed equipment and purchase history
type Service interface {
	Add(ctx context.Context, itemID string, quantity int) error
	Remove(ctx context.Context, itemID string, quantity int) error
	Quantity(itemID string) int
	Has(itemID string, quantity int) bool

	Install(ctx context.Context, itemID string) error
	Uninstall(ctx context.Context, itemID string)
	IsInstalled(itemID string) bool

	RecordPurchase(itemID string, quantity, totalCost, day int)

	// Equipment effects
	ActionCostReduction(action domain.ActionType) int
	ActionEffectMultiplier(action domain.ActionType) float64
	DailyEnergyBonus() int
	MaxAnimalEnergyBonus() int

	Value() int
	State() domain.InventoryState

	Snapshot() State
	Restore(st State)
}

// State is the full inventory state, used for snapshots
type State struct {
	Items     map[string]int
	Equipment []string
	Purchases []domain.PurchaseRecord
}

func (st State) clone() State {
	return State{
		Items:     maps.Clone(st.Items),
		Equipment: slices.Clone(st.Equipment),
		Purchases: slices.Clone(st.Purchases),
	}
}

type service struct {
	catalog *catalog.Catalog
	st      State
	now     func() time.Time
}

// Option configures the inventory service
type Option func(*service)

// WithClock injects the clock used to timestamp purchases
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates an inventory holding the catalog's starting items
func NewService(cat *catalog.Catalog, opts ...Option) Service {
	s := &service{
		catalog: cat,
		st:      State{Items: maps.Clone(cat.StartingInventory)},
		now:     time.Now,
	}
	if s.st.Items == nil {
		s.st.Items = map[string]int{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) item(itemID string) (domain.ShopItem, error) {
	item, ok := s.catalog.ShopItem(itemID)
	if !ok {
		return domain.ShopItem{}, fmt.Errorf(ErrMsgItemNotFoundFmt, itemID, domain.ErrItemNotFound)
	}
	return item, nil
}

// Add puts items into the inventory, respecting the item's max quantity
func (s *service) Add(ctx context.Context, itemID string, quantity int) error {
	item, err := s.item(itemID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, itemID, domain.ErrInvalidInput)
	}
	next := s.st.Items[itemID] + quantity
	if item.MaxQuantity > 0 && next > item.MaxQuantity {
		return fmt.Errorf(ErrMsgNotEnoughFmt, itemID, item.MaxQuantity, next, domain.ErrMaxQuantityReached)
	}
	s.st.Items[itemID] = next

	log := logger.FromContext(ctx)
	log.Debug(LogMsgItemAdded, "item_id", itemID, "quantity", quantity, "total", next)
	return nil
}

// Remove takes items out; the whole quantity must be present. Equipment
// whose last unit is removed is uninstalled.
func (s *service) Remove(ctx context.Context, itemID string, quantity int) error {
	if _, err := s.item(itemID); err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, itemID, domain.ErrInvalidInput)
	}
	have := s.st.Items[itemID]
	if have < quantity {
		return fmt.Errorf(ErrMsgNotEnoughFmt, itemID, have, quantity, domain.ErrInsufficientQuantity)
	}
	if have == quantity {
		delete(s.st.Items, itemID)
		s.Uninstall(ctx, itemID)
	} else {
		s.st.Items[itemID] = have - quantity
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgItemRemoved, "item_id", itemID, "quantity", quantity, "total", have-quantity)
	return nil
}

func (s *service) Quantity(itemID string) int {
	return s.st.Items[itemID]
}

func (s *service) Has(itemID string, quantity int) bool {
	return s.st.Items[itemID] >= quantity
}

// Install activates an owned equipment item
func (s *service) Install(ctx context.Context, itemID string) error {
	item, err := s.item(itemID)
	if err != nil {
		return err
	}
	if !item.IsEquipment() {
		return fmt.Errorf(ErrMsgNotEquipmentFmt, itemID, domain.ErrItemNotUsable)
	}
	if !s.Has(itemID, 1) {
		return fmt.Errorf(ErrMsgNotEnoughFmt, itemID, 0, 1, domain.ErrInsufficientQuantity)
	}
	if s.IsInstalled(itemID) {
		return nil
	}
	s.st.Equipment = append(s.st.Equipment, itemID)

	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipmentInstalled, "item_id", itemID)
	return nil
}

func (s *service) Uninstall(ctx context.Context, itemID string) {
	i := slices.Index(s.st.Equipment, itemID)
	if i < 0 {
		return
	}
	s.st.Equipment = slices.Delete(s.st.Equipment, i, i+1)

	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipmentRemoved, "item_id", itemID)
}

func (s *service) IsInstalled(itemID string) bool {
	return slices.Contains(s.st.Equipment, itemID)
}

func (s *service) RecordPurchase(itemID string, quantity, totalCost, day int) {
	s.st.Purchases = append(s.st.Purchases, domain.PurchaseRecord{
		ItemID:    itemID,
		Quantity:  quantity,
		TotalCost: totalCost,
		Day:       day,
		Timestamp: s.now(),
	})
}

// installed calls fn for every installed item known to the catalog
func (s *service) installed(fn func(item domain.ShopItem)) {
	for _, id := range s.st.Equipment {
		if item, ok := s.catalog.ShopItem(id); ok {
			fn(item)
		}
	}
}

// ActionCostReduction sums the player energy reductions of installed equipment
func (s *service) ActionCostReduction(action domain.ActionType) int {
	total := NoReduction
	s.installed(func(item domain.ShopItem) {
		for _, m := range item.Effects.ReduceActionCost {
			if m.Action == action {
				total += m.Reduction
			}
		}
	})
	return total
}

// ActionEffectMultiplier multiplies the effect boosts of installed equipment
func (s *service) ActionEffectMultiplier(action domain.ActionType) float64 {
	mult := NoMultiplier
	s.installed(func(item domain.ShopItem) {
		for _, m := range item.Effects.ImproveActionEffect {
			if m.Action == action && m.Multiplier > 0 {
				mult *= m.Multiplier
			}
		}
	})
	return mult
}

func (s *service) DailyEnergyBonus() int {
	total := 0
	s.installed(func(item domain.ShopItem) { total += item.Effects.DailyEnergyBonus })
	return total
}

func (s *service) MaxAnimalEnergyBonus() int {
	total := 0
	s.installed(func(item domain.ShopItem) { total += item.Effects.IncreaseMaxAnimalEnergy })
	return total
}

// Value is the list price of everything held
func (s *service) Value() int {
	total := 0
	for id, qty := range s.st.Items {
		if item, ok := s.catalog.ShopItem(id); ok {
			total += item.Price * qty
		}
	}
	return total
}

func (s *service) State() domain.InventoryState {
	c := s.st.clone()
	equipment := c.Equipment
	sort.Strings(equipment)
	return domain.InventoryState{
		Items:     c.Items,
		Equipment: equipment,
		Purchases: c.Purchases,
	}
}

func (s *service) Snapshot() State {
	return s.st.clone()
}

func (s *service) Restore(st State) {
	s.st = st.clone()
	if s.st.Items == nil {
		s.st.Items = map[string]int{}
	}
}
