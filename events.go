package birdloader

import "time"

// PhaseEvent describes a lifecycle step of a loader's animation cycle.
type PhaseEvent struct {
	LoaderID uint32
	Counter  int
	Phase    Phase
	// BeardPulse is true when this phase fades the beard out and back in.
	BeardPulse bool
	// Delay is the wait before the phase starts moving.
	Delay time.Duration
	// Stopped is set on the single event emitted when the loader stops.
	Stopped bool
}

// EventSink receives phase events. Events are emitted synchronously on the
// update goroutine; implementations must not call back into the loader.
type EventSink interface {
	EmitPhase(event PhaseEvent)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(PhaseEvent)

// EmitPhase calls f(event).
func (f EventSinkFunc) EmitPhase(event PhaseEvent) {
	f(event)
}
