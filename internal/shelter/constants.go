package shelter

// Gameplay constants owned by the orchestrator
const (
	// AdoptionReputationGain is added to the player's reputation per adoption
	AdoptionReputationGain = 5

	// RecentResultsPerAnimal bounds the action feedback kept for one animal
	RecentResultsPerAnimal = 5

	// StartingAnimals is how many random rescues a new shelter opens with
	StartingAnimals = 1
)

// Shortfall resource names
const (
	ResourcePlayerEnergy = "player_energy"
	ResourceMoney        = "money"
	ResourceSkill        = "skill"
	ResourceCapacity     = "capacity"
	ResourceQuantity     = "quantity"
)

// Event sources
const (
	SourceAction   = "action"
	SourceGoal     = "goal"
	SourceRescue   = "rescue"
	SourceAdmitted = "admission"
	SourceEvent    = "random_event"
)

// Error messages
const (
	ErrMsgEnergyInvariantFmt = "player energy debit of %d failed after the energy gate passed"
	ErrMsgGoalRewardFmt      = "failed to grant rewards of goal %s: %w"
)

// Player facing messages
const (
	MsgShortfallFmt = "You need %d %s but only have %d"
	MsgFailedFmt    = "Could not complete the request: %s"
	MsgBoughtFmt    = "Bought %d x %s for $%d"
	MsgSoldFmt      = "Sold %d x %s for $%d"
	MsgUsedFmt      = "Used %s"
	MsgInstalledFmt = "Installed %s"
)

// Log messages
const (
	LogMsgGameCreated      = "Shelter game created"
	LogMsgActionRejected   = "Action rejected"
	LogMsgActionCompleted  = "Action completed"
	LogMsgAdoptionRejected = "Adoption rejected"
	LogMsgAdopted          = "Animal adopted"
	LogMsgRescued          = "Animal rescued"
	LogMsgIntakeSkipped    = "Shelter full, new rescue turned away"
	LogMsgIntakeRejected   = "Intake rejected"
	LogMsgItemBought       = "Item purchased"
	LogMsgItemSold         = "Item sold"
	LogMsgItemUsed         = "Item used"
	LogMsgShopRejected     = "Shop request rejected"
	LogMsgRewardItemCapped = "Goal reward item skipped, quantity cap reached"
	LogMsgRollbackFailed   = "Failed to rollback transaction"
	LogMsgPublishFailed    = "Failed to publish event"
	LogMsgCleanupFailed    = "Journal cleanup failed"
	LogMsgSkillImproved    = "Skill point spent"
)
