package shelter

import (
	"context"
	"fmt"

	"github.com/osse101/ShelterSim_Go/internal/domain"
	"github.com/osse101/ShelterSim_Go/internal/economy"
	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// PurchaseItem buys items from the shop. Equipment is installed on arrival.
func (g *Game) PurchaseItem(ctx context.Context, itemID string, quantity int) ShopOutcome {
	g.mu.Lock()
	defer g.unlock(ctx)

	log := logger.FromContext(ctx)
	out := ShopOutcome{ItemID: itemID, Quantity: quantity}
	reject := func(reason domain.FailureReason, shortfall *domain.Shortfall) ShopOutcome {
		log.Warn(LogMsgShopRejected, "op", "buy", "item_id", itemID, "quantity", quantity, "reason", reason)
		out.Reason = reason
		out.Shortfall = shortfall
		out.Budget = g.economy.Budget()
		out.Message = failureMessage(reason, shortfall)
		return out
	}

	item, ok := g.catalog.ShopItem(itemID)
	if !ok {
		return reject(domain.ReasonItemNotFound, nil)
	}
	day := g.currentDay()
	reason, shortfall := economy.CheckPurchase(item, economy.PurchaseCheck{
		Quantity:    quantity,
		PlayerLevel: g.player.Get().Level,
		Day:         day,
		Owned:       g.inventory.Quantity(itemID),
		Budget:      g.economy.Budget(),
	})
	if reason != domain.ReasonNone {
		return reject(reason, shortfall)
	}

	t := g.begin()
	defer safeRollback(ctx, t)

	cost := economy.BuyCost(item, quantity)
	if !g.economy.SpendMoney(ctx, cost, domain.MoneySourcePurchase+itemID) {
		return reject(domain.ReasonInsufficientFunds, &domain.Shortfall{Resource: ResourceMoney, Needed: cost, Available: g.economy.Budget()})
	}
	g.days.RecordMoney(cost, domain.TransactionSpent)

	if err := g.inventory.Add(ctx, itemID, quantity); err != nil {
		return reject(reasonFor(err), nil)
	}
	g.inventory.RecordPurchase(itemID, quantity, cost, day)

	out.Message = fmt.Sprintf(MsgBoughtFmt, quantity, item.Name, cost)
	if item.IsEquipment() && !g.inventory.IsInstalled(itemID) {
		if err := g.inventory.Install(ctx, itemID); err != nil {
			return reject(reasonFor(err), nil)
		}
		if boost := item.Effects.IncreaseMaxAnimalEnergy; boost > 0 {
			g.animals.BoostMaxEnergy(ctx, boost)
		}
		out.Message += ". " + fmt.Sprintf(MsgInstalledFmt, item.Name)
	}

	t.emit(event.NewItemEvent(event.ItemBought, day, event.ItemPayloadV1{ItemID: itemID, Quantity: quantity, Amount: cost}))
	if err := t.Commit(ctx); err != nil {
		return reject(reasonFor(err), nil)
	}
	g.refreshStats(ctx)

	out.Success = true
	out.Amount = cost
	out.Budget = g.economy.Budget()
	log.Info(LogMsgItemBought, "item_id", itemID, "quantity", quantity, "cost", cost, "budget", out.Budget)
	return out
}

// SellItem sells items back to the shop at 70% of the list price
func (g *Game) SellItem(ctx context.Context, itemID string, quantity int) ShopOutcome {
	g.mu.Lock()
	defer g.unlock(ctx)

	log := logger.FromContext(ctx)
	out := ShopOutcome{ItemID: itemID, Quantity: quantity}
	reject := func(reason domain.FailureReason, shortfall *domain.Shortfall) ShopOutcome {
		log.Warn(LogMsgShopRejected, "op", "sell", "item_id", itemID, "quantity", quantity, "reason", reason)
		out.Reason = reason
		out.Shortfall = shortfall
		out.Budget = g.economy.Budget()
		out.Message = failureMessage(reason, shortfall)
		return out
	}

	item, ok := g.catalog.ShopItem(itemID)
	if !ok {
		return reject(domain.ReasonItemNotFound, nil)
	}
	if err := economy.ValidateQuantity(quantity); err != nil {
		return reject(domain.ReasonInvalidInput, nil)
	}
	if have := g.inventory.Quantity(itemID); have < quantity {
		return reject(domain.ReasonInsufficientQuantity, &domain.Shortfall{Resource: ResourceQuantity, Needed: quantity, Available: have})
	}

	t := g.begin()
	defer safeRollback(ctx, t)

	if err := g.inventory.Remove(ctx, itemID, quantity); err != nil {
		return reject(reasonFor(err), nil)
	}
	value := economy.SellValue(item, quantity)
	if value > 0 {
		if err := g.economy.AddMoney(ctx, value, domain.MoneySourceSale+itemID); err != nil {
			return reject(reasonFor(err), nil)
		}
		g.days.RecordMoney(value, domain.TransactionEarned)
	}

	day := g.currentDay()
	t.emit(event.NewItemEvent(event.ItemSold, day, event.ItemPayloadV1{ItemID: itemID, Quantity: quantity, Amount: value}))
	if err := t.Commit(ctx); err != nil {
		return reject(reasonFor(err), nil)
	}

	out.Success = true
	out.Amount = value
	out.Budget = g.economy.Budget()
	out.Message = fmt.Sprintf(MsgSoldFmt, quantity, item.Name, value)
	log.Info(LogMsgItemSold, "item_id", itemID, "quantity", quantity, "value", value, "budget", out.Budget)
	return out
}

// UseItem consumes one unit of a consumable. Animal energy items need an
// animal id; player energy items ignore it.
func (g *Game) UseItem(ctx context.Context, itemID, animalID string) ShopOutcome {
	g.mu.Lock()
	defer g.unlock(ctx)

	log := logger.FromContext(ctx)
	out := ShopOutcome{ItemID: itemID, Quantity: 1}
	reject := func(reason domain.FailureReason, shortfall *domain.Shortfall) ShopOutcome {
		log.Warn(LogMsgShopRejected, "op", "use", "item_id", itemID, "animal_id", animalID, "reason", reason)
		out.Reason = reason
		out.Shortfall = shortfall
		out.Budget = g.economy.Budget()
		out.Message = failureMessage(reason, shortfall)
		return out
	}

	item, ok := g.catalog.ShopItem(itemID)
	if !ok {
		return reject(domain.ReasonItemNotFound, nil)
	}
	fx := item.Effects
	if !item.Consumable || (fx.RestorePlayerEnergy <= 0 && fx.RestoreAnimalEnergy <= 0) {
		return reject(domain.ReasonItemNotUsable, nil)
	}
	if have := g.inventory.Quantity(itemID); have < 1 {
		return reject(domain.ReasonInsufficientQuantity, &domain.Shortfall{Resource: itemID, Needed: 1, Available: have})
	}
	if fx.RestoreAnimalEnergy > 0 {
		if _, ok := g.animals.Get(animalID); !ok {
			return reject(domain.ReasonAnimalNotFound, nil)
		}
	}

	t := g.begin()
	defer safeRollback(ctx, t)

	if fx.RestorePlayerEnergy > 0 {
		g.player.RestoreEnergy(fx.RestorePlayerEnergy)
	}
	if fx.RestoreAnimalEnergy > 0 {
		if _, err := g.animals.RestoreEnergy(animalID, fx.RestoreAnimalEnergy); err != nil {
			return reject(reasonFor(err), nil)
		}
	}
	if err := g.inventory.Remove(ctx, itemID, 1); err != nil {
		return reject(reasonFor(err), nil)
	}

	t.emit(event.NewItemEvent(event.ItemUsed, g.currentDay(), event.ItemPayloadV1{ItemID: itemID, Quantity: 1, AnimalID: animalID}))
	if err := t.Commit(ctx); err != nil {
		return reject(reasonFor(err), nil)
	}

	out.Success = true
	out.Budget = g.economy.Budget()
	out.Message = fmt.Sprintf(MsgUsedFmt, item.Name)
	log.Debug(LogMsgItemUsed, "item_id", itemID, "animal_id", animalID)
	return out
}

// ImproveSkill spends one skill point on a skill
func (g *Game) ImproveSkill(ctx context.Context, skill domain.Skill) error {
	g.mu.Lock()
	defer g.unlock(ctx)

	if err := g.player.SpendSkillPoint(ctx, skill); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSkillImproved, "skill", skill, "level", g.player.SkillLevel(skill))
	return nil
}
