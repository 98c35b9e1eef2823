// Package ecs bridges gamelib scene events into a [Donburi] world.
//
// [NewDonburiStore] publishes every event to [InteractionEventType]; timer
// events are additionally published to [TimerEventType] so systems that only
// care about node timers can subscribe to those alone.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
