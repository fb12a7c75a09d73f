package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "animal.adopted")
const (
	// EventTypeActionPerformed is published after a care action succeeds
	EventTypeActionPerformed = "action.performed"

	// EventTypeActionFailed is published when a care action is rejected
	EventTypeActionFailed = "action.failed"

	// EventTypeGoalCompleted is published when a daily goal completes
	EventTypeGoalCompleted = "goal.completed"

	// EventTypeLevelUp is published when the player gains a level
	EventTypeLevelUp = "player.leveled_up"

	// EventTypeAnimalAdopted is published when an animal leaves for a home
	EventTypeAnimalAdopted = "animal.adopted"

	// EventTypeAnimalAdmitted is published when an animal joins the shelter
	EventTypeAnimalAdmitted = "animal.admitted"

	// EventTypeAnimalFellSick is published when daily maintenance makes an animal sick
	EventTypeAnimalFellSick = "animal.fell_sick"

	// EventTypeDayEnded is published when the player closes a day
	EventTypeDayEnded = "day.ended"

	// EventTypeDayStarted is published when a new day begins
	EventTypeDayStarted = "day.started"

	// EventTypeRandomEvent is published when a random day event fires
	EventTypeRandomEvent = "day.random_event"

	// EventTypeItemBought is published when an item is bought from the shop
	EventTypeItemBought = "item.bought"

	// EventTypeItemSold is published when an item is sold back to the shop
	EventTypeItemSold = "item.sold"

	// EventTypeItemUsed is published when a consumable item is used
	EventTypeItemUsed = "item.used"
)
