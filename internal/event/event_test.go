package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShelterSim_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlersInOrder(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	var order []int

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		order = append(order, 1)
		return nil
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		order = append(order, 2)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, []int{1, 2}, order)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	calls := 0

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 1 errors")
	assert.Equal(t, 2, calls, "later handlers still run after a failure")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewActionFailedEvent(1, "a", domain.ActionWalk, domain.ReasonAnimalNotFound)))
}

func TestMemoryBus_SubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}
	bus.SubscribeAll(func(ctx context.Context, e Event) error {
		seen[e.Type]++
		return nil
	})

	for _, typ := range AllTypes {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: typ}))
	}
	assert.Len(t, seen, len(AllTypes))
}

func TestConstructors(t *testing.T) {
	goal := domain.DailyGoal{ID: "basic_care_day3", TemplateID: "basic_care", Day: 3, Title: "Basic Care Day"}
	e := NewGoalCompletedEvent(goal)
	assert.Equal(t, EventSchemaVersion, e.Version)
	assert.Equal(t, GoalCompleted, e.Type)
	assert.Equal(t, 3, e.Day())

	payload, err := DecodePayload[GoalCompletedPayloadV1](e.Payload)
	require.NoError(t, err)
	assert.Equal(t, "basic_care_day3", payload.GoalID)

	lv := NewLevelUpEvent(2, domain.LevelResult{LeveledUp: true, OldLevel: 1, NewLevel: 2, SkillPointsEarned: 1}, "action")
	lp, err := DecodePayload[LevelUpPayloadV1](lv.Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, lp.NewLevel)

	started := NewDayStartedEvent(4, []domain.DailyGoal{{ID: "a"}, {ID: "b"}}, 10)
	sp, err := DecodePayload[DayStartedPayloadV1](started.Payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sp.GoalIDs)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"item_id": "toys", "quantity": 2}
	p, err := DecodePayload[ItemPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "toys", p.ItemID)
	assert.Equal(t, 2, p.Quantity)
}

func TestDecodePayload_PointerAndRaw(t *testing.T) {
	p, err := DecodePayload[ItemPayloadV1](&ItemPayloadV1{ItemID: "toys", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "toys", p.ItemID)

	p, err = DecodePayload[ItemPayloadV1](json.RawMessage(`{"item_id":"basic_food","quantity":3}`))
	require.NoError(t, err)
	assert.Equal(t, "basic_food", p.ItemID)
	assert.Equal(t, 3, p.Quantity)

	_, err = DecodePayload[ItemPayloadV1]([]byte(`{not json`))
	assert.Error(t, err)
}

func TestEvent_DayWithoutMetadata(t *testing.T) {
	assert.Equal(t, 0, Event{}.Day())
}
