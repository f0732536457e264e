package ecs

import (
	"github.com/phanxgames/birdloader"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PhaseEventType is the Donburi event type for birdloader phase events.
var PhaseEventType = events.NewEventType[birdloader.PhaseEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Phase events are published to PhaseEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) birdloader.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitPhase(event birdloader.PhaseEvent) {
	PhaseEventType.Publish(s.world, event)
}
