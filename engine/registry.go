package engine

import (
	"github.com/lixenwraith/nongravitar/core"
)

// Registry is a scene-local entity registry
// Component stores are owned by the scene and registered here for lifecycle operations
// Not safe for concurrent use, a registry is only touched by its scene's Update
type Registry struct {
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}
	stores       []AnyStore
}

// NewRegistry creates an empty registry, entity ids start at 1
func NewRegistry() *Registry {
	return &Registry{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
	}
}

// Register adds stores whose components are dropped on DestroyEntity and Clear
func (r *Registry) Register(stores ...AnyStore) {
	r.stores = append(r.stores, stores...)
}

// Track creates a typed store and registers it in one step
func Track[T any](r *Registry) *Store[T] {
	s := NewStore[T]()
	r.Register(s)
	return s
}

// CreateEntity reserves a new entity id
func (r *Registry) CreateEntity() core.Entity {
	id := r.nextEntityID
	r.nextEntityID++
	r.alive[id] = struct{}{}
	return id
}

// DestroyEntity removes the entity and all its components
// Destroying an unknown or already destroyed entity is a no-op
func (r *Registry) DestroyEntity(e core.Entity) {
	if _, ok := r.alive[e]; !ok {
		return
	}
	delete(r.alive, e)
	for _, s := range r.stores {
		s.Remove(e)
	}
}

// DestroyBatch removes several entities with one compaction pass per store
// Unknown or already destroyed entities are skipped
func (r *Registry) DestroyBatch(entities []core.Entity) {
	live := make([]core.Entity, 0, len(entities))
	for _, e := range entities {
		if _, ok := r.alive[e]; ok {
			delete(r.alive, e)
			live = append(live, e)
		}
	}
	if len(live) == 0 {
		return
	}
	for _, s := range r.stores {
		s.RemoveBatch(live)
	}
}

// Alive reports whether the entity was created and not yet destroyed
func (r *Registry) Alive(e core.Entity) bool {
	_, ok := r.alive[e]
	return ok
}

// Count returns the number of live entities
func (r *Registry) Count() int {
	return len(r.alive)
}

// Clear destroys every entity, ids keep increasing so old handles stay dead
func (r *Registry) Clear() {
	r.alive = make(map[core.Entity]struct{})
	for _, s := range r.stores {
		s.Clear()
	}
}
