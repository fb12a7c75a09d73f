package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Day returns the game day stamped on the event, or 0
func (e Event) Day() int {
	if d, ok := e.GetMetadataValue(MetadataKeyDay).(int); ok {
		return d
	}
	return 0
}

// Shelter event types
const (
	ActionPerformed Type = domain.EventTypeActionPerformed
	ActionFailed    Type = domain.EventTypeActionFailed
	GoalCompleted   Type = domain.EventTypeGoalCompleted
	PlayerLeveledUp Type = domain.EventTypeLevelUp
	AnimalAdopted   Type = domain.EventTypeAnimalAdopted
	AnimalAdmitted  Type = domain.EventTypeAnimalAdmitted
	AnimalFellSick  Type = domain.EventTypeAnimalFellSick
	DayEnded        Type = domain.EventTypeDayEnded
	DayStarted      Type = domain.EventTypeDayStarted
	RandomEvent     Type = domain.EventTypeRandomEvent
	ItemBought      Type = domain.EventTypeItemBought
	ItemSold        Type = domain.EventTypeItemSold
	ItemUsed        Type = domain.EventTypeItemUsed
)

// AllTypes lists every shelter event type
var AllTypes = []Type{
	ActionPerformed, ActionFailed, GoalCompleted, PlayerLeveledUp,
	AnimalAdopted, AnimalAdmitted, AnimalFellSick,
	DayEnded, DayStarted, RandomEvent,
	ItemBought, ItemSold, ItemUsed,
}

// Typed event payloads for type safety

// ActionPerformedPayloadV1 is the typed payload for a successful care action
type ActionPerformedPayloadV1 struct {
	AnimalID         string            `json:"animal_id"`
	AnimalName       string            `json:"animal_name"`
	Action           domain.ActionType `json:"action"`
	PlayerEnergyCost int               `json:"player_energy_cost"`
	AnimalEnergyCost int               `json:"animal_energy_cost"`
	Effects          domain.StatDelta  `json:"effects"`
	CriticalSuccess  bool              `json:"critical_success"`
	Experience       int               `json:"experience"`
}

// ActionFailedPayloadV1 is the typed payload for a rejected care action
type ActionFailedPayloadV1 struct {
	AnimalID string               `json:"animal_id"`
	Action   domain.ActionType    `json:"action"`
	Reason   domain.FailureReason `json:"reason"`
}

// GoalCompletedPayloadV1 is the typed payload for goal completion events
type GoalCompletedPayloadV1 struct {
	GoalID     string             `json:"goal_id"`
	TemplateID string             `json:"template_id"`
	Title      string             `json:"title"`
	Type       domain.GoalType    `json:"type"`
	Rewards    domain.GoalRewards `json:"rewards"`
}

// LevelUpPayloadV1 is the typed payload for player level up events
type LevelUpPayloadV1 struct {
	OldLevel          int    `json:"old_level"`
	NewLevel          int    `json:"new_level"`
	SkillPointsEarned int    `json:"skill_points_earned"`
	Source            string `json:"source,omitempty"`
}

// AnimalPayloadV1 is the typed payload for animal lifecycle events
type AnimalPayloadV1 struct {
	AnimalID    string              `json:"animal_id"`
	Name        string              `json:"name"`
	Breed       string              `json:"breed"`
	Status      domain.AnimalStatus `json:"status"`
	Health      int                 `json:"health"`
	AdoptionFee int                 `json:"adoption_fee,omitempty"`
	Source      string              `json:"source,omitempty"`
}

// DayEndedPayloadV1 is the typed payload for day end events
type DayEndedPayloadV1 struct {
	History    domain.DayHistory `json:"history"`
	CareStreak int               `json:"care_streak"`
}

// DayStartedPayloadV1 is the typed payload for day start events
type DayStartedPayloadV1 struct {
	Day          int      `json:"day"`
	GoalIDs      []string `json:"goal_ids"`
	PlayerEnergy int      `json:"player_energy"`
}

// RandomEventPayloadV1 is the typed payload for random day events
type RandomEventPayloadV1 struct {
	EventID string                 `json:"event_id"`
	Type    domain.DayEventType    `json:"type"`
	Title   string                 `json:"title"`
	Effects domain.DayEventEffects `json:"effects"`
}

// ItemPayloadV1 is the typed payload for shop and inventory events
type ItemPayloadV1 struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Amount   int    `json:"amount,omitempty"`
	AnimalID string `json:"animal_id,omitempty"`
}

// Type-safe event constructors

func dayMetadata(day int) map[string]interface{} {
	return map[string]interface{}{
		MetadataKeyDay: day,
	}
}

// NewActionPerformedEvent creates a new action performed event
func NewActionPerformedEvent(day int, payload ActionPerformedPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     ActionPerformed,
		Payload:  payload,
		Metadata: dayMetadata(day),
	}
}

// NewActionFailedEvent creates a new action failed event
func NewActionFailedEvent(day int, animalID string, action domain.ActionType, reason domain.FailureReason) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActionFailed,
		Payload: ActionFailedPayloadV1{
			AnimalID: animalID,
			Action:   action,
			Reason:   reason,
		},
		Metadata: dayMetadata(day),
	}
}

// NewGoalCompletedEvent creates a new goal completed event
func NewGoalCompletedEvent(goal domain.DailyGoal) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GoalCompleted,
		Payload: GoalCompletedPayloadV1{
			GoalID:     goal.ID,
			TemplateID: goal.TemplateID,
			Title:      goal.Title,
			Type:       goal.Type,
			Rewards:    goal.Rewards,
		},
		Metadata: dayMetadata(goal.Day),
	}
}

// NewLevelUpEvent creates a new player level up event
func NewLevelUpEvent(day int, result domain.LevelResult, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLeveledUp,
		Payload: LevelUpPayloadV1{
			OldLevel:          result.OldLevel,
			NewLevel:          result.NewLevel,
			SkillPointsEarned: result.SkillPointsEarned,
			Source:            source,
		},
		Metadata: dayMetadata(day),
	}
}

func newAnimalEvent(t Type, day int, a domain.Animal, fee int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: AnimalPayloadV1{
			AnimalID:    a.ID,
			Name:        a.Name,
			Breed:       a.Breed,
			Status:      a.Status,
			Health:      a.Health,
			AdoptionFee: fee,
			Source:      source,
		},
		Metadata: dayMetadata(day),
	}
}

// NewAnimalAdoptedEvent creates a new animal adopted event
func NewAnimalAdoptedEvent(day int, a domain.Animal, fee int) Event {
	return newAnimalEvent(AnimalAdopted, day, a, fee, "")
}

// NewAnimalAdmittedEvent creates a new animal admitted event
func NewAnimalAdmittedEvent(day int, a domain.Animal, source string) Event {
	return newAnimalEvent(AnimalAdmitted, day, a, 0, source)
}

// NewAnimalFellSickEvent creates a new animal fell sick event
func NewAnimalFellSickEvent(day int, a domain.Animal) Event {
	return newAnimalEvent(AnimalFellSick, day, a, 0, "")
}

// NewDayEndedEvent creates a new day ended event
func NewDayEndedEvent(summary domain.DayEndSummary) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayEnded,
		Payload: DayEndedPayloadV1{
			History:    summary.History,
			CareStreak: summary.CareStreak,
		},
		Metadata: dayMetadata(summary.Day),
	}
}

// NewDayStartedEvent creates a new day started event
func NewDayStartedEvent(day int, goals []domain.DailyGoal, playerEnergy int) Event {
	ids := make([]string, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    DayStarted,
		Payload: DayStartedPayloadV1{
			Day:          day,
			GoalIDs:      ids,
			PlayerEnergy: playerEnergy,
		},
		Metadata: dayMetadata(day),
	}
}

// NewRandomEvent creates a new random day event
func NewRandomEvent(e domain.DayEvent) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RandomEvent,
		Payload: RandomEventPayloadV1{
			EventID: e.ID,
			Type:    e.Type,
			Title:   e.Title,
			Effects: e.Effects,
		},
		Metadata: dayMetadata(e.Day),
	}
}

// NewItemEvent creates a bought, sold or used item event
func NewItemEvent(t Type, day int, payload ItemPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: dayMetadata(day),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers, synchronously and in
// subscription order
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every shelter event type
func (b *MemoryBus) SubscribeAll(handler Handler) {
	for _, t := range AllTypes {
		b.Subscribe(t, handler)
	}
}
