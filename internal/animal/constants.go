package animal

// Status thresholds, evaluated in precedence order by DeriveStatus
const (
	SickHealthBelow         = 30
	CareHealthBelow         = 60
	CareHappinessBelow      = 40
	ReadyReadinessAtLeast   = 80
	ReadyHealthAtLeast      = 80
	ReadyHappinessAtLeast   = 70
	HealthyHealthAtLeast    = 70
	HealthyHappinessAtLeast = 60
)

// Care thresholds for NeedingCare
const (
	NeedingCareHealthBelow    = 60
	NeedingCareHappinessBelow = 50
)

// Daily maintenance
const (
	FedHealthDecay      = 5
	HungryHealthDecay   = 15
	HappinessDecay      = 3
	SicknessDivisor     = 1000.0
	SicknessHealthLoss  = 20
	SicknessHealthFloor = 10
)

// Critical success
const (
	CriticalMultiplier = 1.5
)

// Adoption readiness score weights
const (
	ScoreHealthWeight    = 0.4
	ScoreHappinessWeight = 0.4
	ScoreTimeWeight      = 0.2
	ScoreFullTimeDays    = 14.0
)

// Random generation
const (
	DefaultBaseEnergy     = 6
	PuppyEnergyBonus      = 2
	SeniorEnergyPenalty   = 2
	MinMaxEnergy          = 3
	MaxMaxEnergy          = 12
	GenHealthMin          = 40
	GenHealthMax          = 79
	GenHappinessMin       = 30
	GenHappinessMax       = 59
	GenReadinessMin       = 10
	GenReadinessMax       = 29
	GenFeeMin             = 100
	GenFeeMax             = 199
	GenNeedsMedicalChance = 0.3
	BackstoryFormat       = "%s is a lovely %s looking for a forever home."
)

// Temperament tags granted by actions that improve temperament
const (
	TemperamentWellTrained = "well_trained"
	TemperamentSocialized  = "socialized"
)

// Shortfall resource names
const ResourceAnimalEnergy = "animal_energy"

// Messages
const (
	MsgActionSuccessFormat = "Successfully %s %s"
	MsgCriticalSuffix      = " (Critical Success!)"
	MsgAnimalNotFound      = "Animal not found"
	MsgAnimalTooTired      = "Animal is too tired"
	MsgUnknownAction       = "Unknown action"
)

// Log messages
const (
	LogMsgAnimalAdded      = "Animal added"
	LogMsgAnimalRemoved    = "Animal removed"
	LogMsgActionApplied    = "Action applied to animal"
	LogMsgActionRejected   = "Action rejected"
	LogMsgAnimalFellSick   = "Animal fell sick during maintenance"
	LogMsgMaintenanceDone  = "Daily animal maintenance complete"
	LogMsgMaxEnergyBoosted = "Animal max energy boosted"
)
