package stats

import (
	"context"
	"fmt"

	"github.com/osse101/ShelterSim_Go/internal/event"
	"github.com/osse101/ShelterSim_Go/internal/logger"
)

// EventHandler feeds lifetime counters from bus events
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.ActionPerformed, h.HandleActionPerformed)
	bus.Subscribe(event.ActionFailed, h.simple(h.service.RecordFailedAction))
	bus.Subscribe(event.GoalCompleted, h.simple(h.service.RecordGoalCompleted))
	bus.Subscribe(event.AnimalAdopted, h.HandleAnimalAdopted)
	bus.Subscribe(event.AnimalAdmitted, h.simple(h.service.RecordAdmission))
	bus.Subscribe(event.AnimalFellSick, h.simple(h.service.RecordSickness))
	bus.Subscribe(event.RandomEvent, h.simple(h.service.RecordRandomEvent))
	bus.Subscribe(event.DayEnded, h.HandleDayEnded)
}

func (h *EventHandler) simple(record func()) event.Handler {
	return func(_ context.Context, _ event.Event) error {
		record()
		return nil
	}
}

// HandleActionPerformed counts a successful action
func (h *EventHandler) HandleActionPerformed(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ActionPerformedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "event_type", evt.Type, "error", err)
		return fmt.Errorf(ErrMsgDecodePayloadFormat, evt.Type, err)
	}
	h.service.RecordAction(payload.Action, payload.CriticalSuccess)
	return nil
}

// HandleAnimalAdopted counts an adoption and its fee
func (h *EventHandler) HandleAnimalAdopted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.AnimalPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "event_type", evt.Type, "error", err)
		return fmt.Errorf(ErrMsgDecodePayloadFormat, evt.Type, err)
	}
	h.service.RecordAdoption(payload.AdoptionFee)
	return nil
}

// HandleDayEnded counts a closed day
func (h *EventHandler) HandleDayEnded(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.DayEndedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "event_type", evt.Type, "error", err)
		return fmt.Errorf(ErrMsgDecodePayloadFormat, evt.Type, err)
	}
	h.service.RecordDayEnded(payload.CareStreak)
	return nil
}
