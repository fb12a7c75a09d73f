package metrics

import (
	"context"

	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct {
	m *Metrics
}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector(m *Metrics) *EventMetricsCollector {
	return &EventMetricsCollector{m: m}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	e.m.EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ActionPerformed:
		var p event.ActionPerformedPayloadV1
		if p, err = event.DecodePayload[event.ActionPerformedPayloadV1](evt.Payload); err == nil {
			e.m.Actions.WithLabelValues(string(p.Action), ResultSuccess).Inc()
			if p.CriticalSuccess {
				e.m.CriticalSuccesses.WithLabelValues(string(p.Action)).Inc()
			}
		}

	case event.ActionFailed:
		var p event.ActionFailedPayloadV1
		if p, err = event.DecodePayload[event.ActionFailedPayloadV1](evt.Payload); err == nil {
			e.m.Actions.WithLabelValues(string(p.Action), ResultFailed).Inc()
		}

	case event.GoalCompleted:
		var p event.GoalCompletedPayloadV1
		if p, err = event.DecodePayload[event.GoalCompletedPayloadV1](evt.Payload); err == nil {
			e.m.GoalsCompleted.WithLabelValues(p.TemplateID).Inc()
		}

	case event.PlayerLeveledUp:
		var p event.LevelUpPayloadV1
		if p, err = event.DecodePayload[event.LevelUpPayloadV1](evt.Payload); err == nil {
			e.m.LevelUps.Inc()
			e.m.PlayerLevel.Set(float64(p.NewLevel))
		}

	case event.AnimalAdopted:
		var p event.AnimalPayloadV1
		if p, err = event.DecodePayload[event.AnimalPayloadV1](evt.Payload); err == nil {
			e.m.Adoptions.Inc()
			e.m.MoneyEarned.Add(float64(p.AdoptionFee))
		}

	case event.AnimalAdmitted:
		var p event.AnimalPayloadV1
		if p, err = event.DecodePayload[event.AnimalPayloadV1](evt.Payload); err == nil {
			e.m.AnimalsAdmitted.WithLabelValues(p.Source).Inc()
		}

	case event.AnimalFellSick:
		e.m.AnimalsSick.Inc()

	case event.DayEnded:
		var p event.DayEndedPayloadV1
		if p, err = event.DecodePayload[event.DayEndedPayloadV1](evt.Payload); err == nil {
			e.m.DaysEnded.WithLabelValues(string(p.History.Grade)).Inc()
		}

	case event.RandomEvent:
		var p event.RandomEventPayloadV1
		if p, err = event.DecodePayload[event.RandomEventPayloadV1](evt.Payload); err == nil {
			e.m.RandomEvents.WithLabelValues(string(p.Type)).Inc()
		}

	case event.ItemBought, event.ItemSold, event.ItemUsed:
		var p event.ItemPayloadV1
		if p, err = event.DecodePayload[event.ItemPayloadV1](evt.Payload); err == nil {
			e.recordItem(evt.Type, p)
		}
	}

	if err != nil {
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) recordItem(t event.Type, p event.ItemPayloadV1) {
	qty := float64(p.Quantity)
	switch t {
	case event.ItemBought:
		e.m.ItemsBought.WithLabelValues(p.ItemID).Add(qty)
		e.m.MoneySpent.Add(float64(p.Amount))
	case event.ItemSold:
		e.m.ItemsSold.WithLabelValues(p.ItemID).Add(qty)
		e.m.MoneyEarned.Add(float64(p.Amount))
	case event.ItemUsed:
		e.m.ItemsUsed.WithLabelValues(p.ItemID).Add(qty)
	}
}
