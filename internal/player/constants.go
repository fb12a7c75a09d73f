package player

// Starting values
const (
	BaseMaxEnergy              = 10
	StartingLevel              = 1
	StartingExperienceToLevel  = 100
	StartingReputation         = 50
	ExperiencePerLevel         = 100
	SkillPointsPerLevel        = 1
	MaxActionEnergyDiscount    = 2
	ShelterManagementPerEnergy = 2
)

// Discount divisors per skill category
const (
	VeterinaryDiscountDivisor = 3
	ExerciseDiscountDivisor   = 3
	PsychologyDiscountDivisor = 4
	ManagementDiscountDivisor = 5
)

// Efficiency tip thresholds
const (
	TipManagementBelow       = 3
	TipVeterinaryBelow       = 5
	TipVeterinaryEnergyBelow = 5
	TipLowEnergyAtMost       = 3
	TipEfficientSpendShare   = 0.8
)

// Efficiency tips
const (
	TipImproveManagement = "Improve Shelter Management skill to increase max energy"
	TipImproveVeterinary = "Level up Veterinary skill to reduce medical action costs"
	TipLowEnergy         = "Consider using an energy drink or ending the day"
	TipEfficientDay      = "You're being very efficient with your energy today!"
)

// Log messages
const (
	LogMsgLevelUp        = "Player leveled up"
	LogMsgEnergyReset    = "Player energy reset for new day"
	LogMsgSkillImproved  = "Player skill improved"
	LogMsgSkillPointUsed = "Player spent skill point"
)
