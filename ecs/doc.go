// Package ecs provides ECS adapters for birdloader's phase events.
//
// The primary adapter is [NewDonburiSink], which bridges loader phase events
// (each scheduled phase and the final stop) into a [Donburi] world as typed
// events. Subscribe to [PhaseEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	loader.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
