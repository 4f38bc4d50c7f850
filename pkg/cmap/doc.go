// Package cmap provides a sharded concurrent map.
//
// Keys are spread over a power-of-two number of shards by a murmur3 hash,
// each shard guarded by its own RWMutex:
//
//	m := cmap.New[int, fiber.Mutator]()
//	m.Set(0, queue)
//	v, ok := m.Get(0)
//
// All operations are safe for concurrent use. Iteration locks one shard at
// a time, so it does not observe a single consistent view of the map.
package cmap
