package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHullDamageSaturates(t *testing.T) {
	tests := []struct {
		name   string
		health int
		dmg    int
		want   int
	}{
		{"partial", 3, 1, 2},
		{"exact", 2, 2, 0},
		{"overkill", 1, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HullComponent{Health: tt.health}
			assert.Equal(t, tt.want, h.Damage(tt.dmg))
			assert.Equal(t, tt.want, h.Health)
		})
	}
}

func TestTerrainDamage(t *testing.T) {
	soft := TerrainComponent{Destructible: true, Health: 2}
	assert.Equal(t, 1, soft.Damage(1))
	assert.Equal(t, 0, soft.Damage(3))

	rock := TerrainComponent{Destructible: false, Health: 1}
	assert.Equal(t, 1, rock.Damage(10))
}

func TestWeaponReady(t *testing.T) {
	assert.True(t, WeaponComponent{}.Ready())
	assert.False(t, WeaponComponent{Remaining: time.Millisecond}.Ready())
}
