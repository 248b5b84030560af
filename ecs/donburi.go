package ecs

import (
	"github.com/phanxgames/tabletop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PickEventType is the Donburi event type for tabletop pick results.
var PickEventType = events.NewEventType[tabletop.PickResult]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a PickStore backed by a Donburi world. Pick results
// are published to PickEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiStore(world donburi.World) tabletop.PickStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitPick(result tabletop.PickResult) {
	PickEventType.Publish(s.world, result)
}
