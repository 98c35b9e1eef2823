package ecs

import (
	"github.com/metarract/gamelib"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType receives every event the scene emits: pointer
// down/up, clicks and node timers.
var InteractionEventType = events.NewEventType[gamelib.InteractionEvent]()

// TimerEventType receives only gamelib.EventTimer events.
var TimerEventType = events.NewEventType[gamelib.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued and delivered by ProcessEvents / ProcessAllEvents.
func NewDonburiStore(world donburi.World) gamelib.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gamelib.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
	if event.Type == gamelib.EventTimer {
		TimerEventType.Publish(s.world, event)
	}
}
