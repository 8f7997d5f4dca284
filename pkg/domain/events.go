package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventHandoverExecute EventType = "handover_execute"
	EventHandoverReturn  EventType = "handover_return"
)

// HandoverEvent describes one application of a handover's mapper.
type HandoverEvent struct {
	Timestamp  time.Time            `json:"timestamp"`
	Type       EventType            `json:"type"`
	HandoverID string               `json:"handover_id"`
	Protocol   PreservationProtocol `json:"protocol"`
	Input      any                  `json:"input,omitempty"`
	Output     any                  `json:"output,omitempty"`
	// Duration is only set on EventHandoverReturn.
	Duration time.Duration `json:"duration,omitempty"`
}

// HandoverHooks defines callbacks fired around a mapper call.
// Nil callbacks are skipped.
type HandoverHooks struct {
	OnExecute func(*HandoverEvent)
	OnReturn  func(*HandoverEvent)
}
