// Package ecs bridges tabletop pick results into a [Donburi] world.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetPickStore(store)
//
// Subscribe to [PickEventType] in your ECS systems to receive them.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
