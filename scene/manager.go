package scene

import (
	"fmt"

	"github.com/lixenwraith/nongravitar/core"
)

// Manager owns every scene of a game, ids are assigned sequentially from 1 and never reused
type Manager struct {
	scenes map[core.SceneID]Scene
	order  []core.SceneID
	nextID core.SceneID
}

// NewManager creates an empty manager
func NewManager() *Manager {
	return &Manager{
		scenes: make(map[core.SceneID]Scene),
		nextID: 1,
	}
}

// Emplace builds a scene with the next id and stores it
// The concrete scene is returned so the caller can keep initializing it
func Emplace[S Scene](m *Manager, build func(id core.SceneID) S) S {
	id := m.nextID
	m.nextID++

	s := build(id)
	m.scenes[id] = s
	m.order = append(m.order, id)
	return s
}

// Get returns the scene with id, panics if it was never emplaced
func (m *Manager) Get(id core.SceneID) Scene {
	s, ok := m.scenes[id]
	if !ok {
		panic(fmt.Sprintf("scene: unknown id %d", id))
	}
	return s
}

// Has reports whether id was emplaced
func (m *Manager) Has(id core.SceneID) bool {
	_, ok := m.scenes[id]
	return ok
}

// IDs returns the scene ids in emplacement order
func (m *Manager) IDs() []core.SceneID {
	out := make([]core.SceneID, len(m.order))
	copy(out, m.order)
	return out
}
