package domain

// Action requirement item identifiers
const (
	ItemToys             = "toys"
	ItemMedicalSupplies  = "medical_supplies"
	ItemGroomingSupplies = "grooming_supplies"
	ItemBasicFood        = "basic_food"
	ItemEnergyDrink      = "energy_drink"
)

// Shop pricing
const (
	// SellPricePercent is the share of the list price paid back when selling
	SellPricePercent = 70
)

// Money sources recorded on the ledger
const (
	MoneySourceAdoption     = "adoption"
	MoneySourceGoalPrefix   = "goal:"
	MoneySourceDonation     = "donation"
	MoneySourcePurchase     = "purchase_"
	MoneySourceSale         = "sell_"
	MoneySourceActionPrefix = "action:"
)
