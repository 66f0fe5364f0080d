// Package ecs provides ECS adapters for camgesture's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges gesture events
// emitted by accepted recognizers (taps and pans) into a [Donburi] world as
// typed events. Subscribe to [GestureEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	ctrl.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
