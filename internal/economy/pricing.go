package economy

import "github.com/osse101/ShelterSim_Go/internal/domain"

// BuyCost is the total list price of a purchase
func BuyCost(item domain.ShopItem, quantity int) int {
	return item.Price * quantity
}

// SellValue is what the shop pays back; the 70% is floored per unit
func SellValue(item domain.ShopItem, quantity int) int {
	return item.SellPrice() * quantity
}

// AffordableQuantity determines how many items can be purchased with the available money
func AffordableQuantity(desired, unitPrice, balance int) (quantity, cost int) {
	if unitPrice == 0 {
		return desired, 0
	}
	if balance < unitPrice {
		return 0, 0
	}
	maxAffordable := balance / unitPrice
	if desired <= maxAffordable {
		return desired, desired * unitPrice
	}
	return maxAffordable, maxAffordable * unitPrice
}
