package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/nongravitar/core"
	"github.com/stretchr/testify/assert"
)

func TestRegistryIdsAreMonotonic(t *testing.T) {
	r := NewRegistry()
	a := r.CreateEntity()
	b := r.CreateEntity()
	assert.NotZero(t, a)
	assert.Greater(t, b, a)

	r.Clear()
	c := r.CreateEntity()
	assert.Greater(t, c, b, "ids are never reused after Clear")
}

func TestRegistryDestroyRemovesFromAllStores(t *testing.T) {
	r := NewRegistry()
	ints := Track[int](r)
	strs := Track[string](r)

	e := r.CreateEntity()
	other := r.CreateEntity()
	ints.Set(e, 1)
	strs.Set(e, "x")
	ints.Set(other, 2)

	r.DestroyEntity(e)

	assert.False(t, r.Alive(e))
	assert.True(t, r.Alive(other))
	assert.False(t, ints.Has(e))
	assert.False(t, strs.Has(e))
	assert.True(t, ints.Has(other))
	assert.Equal(t, 1, r.Count())

	// Stale handle stays detectable
	r.DestroyEntity(e)
	assert.False(t, r.Alive(e))
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	ints := Track[int](r)
	e := r.CreateEntity()
	ints.Set(e, 7)

	r.Clear()
	assert.Zero(t, r.Count())
	assert.Zero(t, ints.Count())
	assert.False(t, r.Alive(e))
}

func TestPipelineRunsInPriorityOrder(t *testing.T) {
	var order []string
	record := func(name string) func(time.Duration) {
		return func(time.Duration) { order = append(order, name) }
	}

	p := NewPipeline(
		NewSystemFunc("liveness", 60, record("liveness")),
		NewSystemFunc("input", 10, record("input")),
		NewSystemFunc("motion", 20, record("motion")),
		NewSystemFunc("motion-late", 20, record("motion-late")),
	)

	assert.Equal(t, []string{"input", "motion", "motion-late", "liveness"}, p.Names())

	p.Update(time.Millisecond)
	assert.Equal(t, []string{"input", "motion", "motion-late", "liveness"}, order)
}

func TestRegistryDestroyBatch(t *testing.T) {
	r := NewRegistry()
	ints := Track[int](r)
	var es []core.Entity
	for i := 0; i < 5; i++ {
		e := r.CreateEntity()
		ints.Set(e, i)
		es = append(es, e)
	}

	// Unknown and repeated ids are skipped
	r.DestroyBatch([]core.Entity{es[1], es[3], es[3], 999})

	assert.Equal(t, 3, r.Count())
	assert.False(t, r.Alive(es[1]))
	assert.False(t, r.Alive(es[3]))
	assert.Equal(t, []core.Entity{es[0], es[2], es[4]}, ints.Entities())

	r.DestroyBatch(nil)
	assert.Equal(t, 3, ints.Count())
}
