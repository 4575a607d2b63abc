package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	b := NewBus(nil)
	var got []GameOver
	Subscribe(b, func(m GameOver) { got = append(got, m) })

	assert.NotPanics(t, func() { Publish(b, PlanetDestroyed{Scene: 3}) })
	assert.Empty(t, got)
	assert.Zero(t, b.Count(KindPlanetDestroyed))
}

func TestPublishInvokesInRegistrationOrder(t *testing.T) {
	b := NewBus(nil)
	var order []string
	Subscribe(b, func(m GameOver) { order = append(order, "first") })
	Subscribe(b, func(m GameOver) { order = append(order, "second") })
	Subscribe(b, func(m GameOver) { order = append(order, "third") })

	Publish(b, GameOver{Score: 1})
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestPublishDeliversByKind(t *testing.T) {
	b := NewBus(nil)
	var overs []GameOver
	var entered []PlanetEntered
	Subscribe(b, func(m GameOver) { overs = append(overs, m) })
	Subscribe(b, func(m PlanetEntered) { entered = append(entered, m) })

	Publish(b, PlanetEntered{Scene: 4, Score: 10})
	Publish(b, GameOver{Score: 150})

	require.Len(t, overs, 1)
	assert.Equal(t, 150, overs[0].Score)
	require.Len(t, entered, 1)
	assert.EqualValues(t, 4, entered[0].Scene)
}

func TestSubscribeDuringDispatchAppliesNextPublish(t *testing.T) {
	b := NewBus(nil)
	late := 0
	Subscribe(b, func(m GameOver) {
		Subscribe(b, func(m GameOver) { late++ })
	})

	Publish(b, GameOver{})
	assert.Zero(t, late, "handler added during dispatch must not run in the same dispatch")

	Publish(b, GameOver{})
	assert.Equal(t, 1, late)
}

func TestCancel(t *testing.T) {
	b := NewBus(nil)
	calls := 0
	var sub *Subscription
	sub = Subscribe(b, func(m GameOver) {
		calls++
		sub.Cancel()
	})
	other := 0
	Subscribe(b, func(m GameOver) { other++ })

	Publish(b, GameOver{})
	Publish(b, GameOver{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other, "cancel during dispatch keeps the rest of the snapshot")
	assert.Equal(t, 1, b.Count(KindGameOver))

	assert.NotPanics(t, sub.Cancel)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "GameOver", KindGameOver.String())
	assert.Equal(t, "PlanetEntered", PlanetEntered{}.Kind().String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
