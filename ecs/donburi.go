package ecs

import (
	"github.com/phanxgames/camgesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for camgesture gesture events.
// Subscribe to this in your ECS systems to receive taps and pans.
var GestureEventType = events.NewEventType[camgesture.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) camgesture.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event camgesture.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
