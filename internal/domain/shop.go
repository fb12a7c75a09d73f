package domain

import "time"

// ItemCategory groups shop items
type ItemCategory string

const (
	CategorySupplies   ItemCategory = "supplies"
	CategoryEnergy     ItemCategory = "energy"
	CategoryEquipment  ItemCategory = "equipment"
	CategoryAutomation ItemCategory = "automation"
	CategoryComfort    ItemCategory = "comfort"
	CategoryMedical    ItemCategory = "medical"
)

// ActionModifier adjusts one action while an equipment item is installed
type ActionModifier struct {
	Action     ActionType `yaml:"action" json:"action"`
	Reduction  int        `yaml:"reduction" json:"reduction,omitempty"`
	Multiplier float64    `yaml:"multiplier" json:"multiplier,omitempty"`
}

// ItemEffects are the effects of using or owning an item
type ItemEffects struct {
	RestorePlayerEnergy     int              `yaml:"restore_player_energy" json:"restore_player_energy,omitempty"`
	RestoreAnimalEnergy     int              `yaml:"restore_animal_energy" json:"restore_animal_energy,omitempty"`
	DailyEnergyBonus        int              `yaml:"daily_energy_bonus" json:"daily_energy_bonus,omitempty"`
	IncreaseMaxAnimalEnergy int              `yaml:"increase_max_animal_energy" json:"increase_max_animal_energy,omitempty"`
	ReduceActionCost        []ActionModifier `yaml:"reduce_action_cost" json:"reduce_action_cost,omitempty"`
	ImproveActionEffect     []ActionModifier `yaml:"improve_action_effect" json:"improve_action_effect,omitempty"`
}

// ShopItem is a catalog entry of the shelter shop
type ShopItem struct {
	ID            string       `yaml:"id" json:"id" validate:"required"`
	Name          string       `yaml:"name" json:"name" validate:"required"`
	Description   string       `yaml:"description" json:"description"`
	Category      ItemCategory `yaml:"category" json:"category" validate:"required,oneof=supplies energy equipment automation comfort medical"`
	Price         int          `yaml:"price" json:"price" validate:"gt=0"`
	Consumable    bool         `yaml:"consumable" json:"consumable"`
	MaxQuantity   int          `yaml:"max_quantity" json:"max_quantity,omitempty" validate:"min=0"`
	RequiresLevel int          `yaml:"requires_level" json:"requires_level,omitempty" validate:"min=0"`
	UnlockDay     int          `yaml:"unlock_day" json:"unlock_day,omitempty" validate:"min=0"`
	Effects       ItemEffects  `yaml:"effects" json:"effects"`
}

// SellPrice is what the shop pays back for one unit
func (i ShopItem) SellPrice() int {
	return i.Price * SellPricePercent / 100
}

// IsEquipment reports whether the item is a durable item with passive effects
func (i ShopItem) IsEquipment() bool {
	e := i.Effects
	return !i.Consumable && (e.DailyEnergyBonus > 0 || e.IncreaseMaxAnimalEnergy > 0 ||
		len(e.ReduceActionCost) > 0 || len(e.ImproveActionEffect) > 0)
}

// InventoryState is a read-only view of the player's items
type InventoryState struct {
	Items     map[string]int   `json:"items"`
	Equipment []string         `json:"equipment"`
	Purchases []PurchaseRecord `json:"purchases"`
}

// PurchaseRecord is one shop purchase
type PurchaseRecord struct {
	ItemID    string    `json:"item_id"`
	Quantity  int       `json:"quantity"`
	TotalCost int       `json:"total_cost"`
	Day       int       `json:"day"`
	Timestamp time.Time `json:"timestamp"`
}

// TransactionDirection marks a ledger entry as a credit or a debit
type TransactionDirection string

const (
	TransactionEarned TransactionDirection = "earned"
	TransactionSpent  TransactionDirection = "spent"
)

// Transaction is one ledger entry
type Transaction struct {
	Amount    int                  `json:"amount"`
	Direction TransactionDirection `json:"direction"`
	Source    string               `json:"source"`
	Timestamp time.Time            `json:"timestamp"`
}

// EconomyState is a read-only view of the ledger
type EconomyState struct {
	Budget           int           `json:"budget"`
	TotalMoneyEarned int           `json:"total_money_earned"`
	TotalMoneySpent  int           `json:"total_money_spent"`
	Transactions     []Transaction `json:"transactions,omitempty"`
}
