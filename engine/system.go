package engine

import (
	"time"
)

// System is one per-frame pass over the entities of a registry
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(dt time.Duration)
}

// SystemFunc adapts a plain function into a System
type SystemFunc struct {
	name     string
	priority int
	fn       func(dt time.Duration)
}

// NewSystemFunc wraps fn as a named system with the given priority
func NewSystemFunc(name string, priority int, fn func(dt time.Duration)) *SystemFunc {
	return &SystemFunc{name: name, priority: priority, fn: fn}
}

func (s *SystemFunc) Name() string            { return s.name }
func (s *SystemFunc) Priority() int           { return s.priority }
func (s *SystemFunc) Update(dt time.Duration) { s.fn(dt) }

// Pipeline runs systems in fixed priority order
type Pipeline struct {
	systems []System
}

// NewPipeline creates a pipeline from systems, sorted by priority
func NewPipeline(systems ...System) *Pipeline {
	p := &Pipeline{}
	for _, s := range systems {
		p.AddSystem(s)
	}
	return p
}

// AddSystem adds a system and keeps the pipeline sorted by priority
// Equal priorities keep insertion order
func (p *Pipeline) AddSystem(system System) {
	p.systems = append(p.systems, system)

	// Insertion sort, small N
	for i := len(p.systems) - 1; i > 0 && p.systems[i-1].Priority() > p.systems[i].Priority(); i-- {
		p.systems[i-1], p.systems[i] = p.systems[i], p.systems[i-1]
	}
}

// Names returns the system names in execution order
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.systems))
	for i, s := range p.systems {
		names[i] = s.Name()
	}
	return names
}

// Update runs all systems sequentially
func (p *Pipeline) Update(dt time.Duration) {
	for _, s := range p.systems {
		s.Update(dt)
	}
}
