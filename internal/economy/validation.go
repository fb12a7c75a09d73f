package economy

import (
	"fmt"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

// ValidateQuantity validates the transaction quantity
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidInput)
	}
	if quantity > MaxTransactionQuantity {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, quantity, MaxTransactionQuantity, domain.ErrInvalidInput)
	}
	return nil
}

// PurchaseCheck is the context a purchase is checked against
type PurchaseCheck struct {
	Quantity    int
	PlayerLevel int
	Day         int
	Owned       int
	Budget      int
}

// CheckPurchase validates if an item can be purchased. It returns the
// failure reason and, for resource failures, the shortfall.
func CheckPurchase(item domain.ShopItem, c PurchaseCheck) (domain.FailureReason, *domain.Shortfall) {
	if ValidateQuantity(c.Quantity) != nil {
		return domain.ReasonInvalidInput, nil
	}
	if item.RequiresLevel > 0 && c.PlayerLevel < item.RequiresLevel {
		return domain.ReasonLevelTooLow, &domain.Shortfall{Resource: "level", Needed: item.RequiresLevel, Available: c.PlayerLevel}
	}
	if item.UnlockDay > 0 && c.Day < item.UnlockDay {
		return domain.ReasonItemLocked, &domain.Shortfall{Resource: "day", Needed: item.UnlockDay, Available: c.Day}
	}
	if item.MaxQuantity > 0 && c.Owned+c.Quantity > item.MaxQuantity {
		return domain.ReasonMaxQuantityReached, &domain.Shortfall{Resource: "quantity", Needed: c.Owned + c.Quantity, Available: item.MaxQuantity}
	}
	if cost := BuyCost(item, c.Quantity); c.Budget < cost {
		return domain.ReasonInsufficientFunds, &domain.Shortfall{Resource: "money", Needed: cost, Available: c.Budget}
	}
	return domain.ReasonNone, nil
}
