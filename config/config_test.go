package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second/60, cfg.FrameDuration())
}

func TestLoadEmptyYieldsDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	src := `
fps: 30
seed: 42
input:
  hold: 250ms
assault:
  ship_health: 5
planets:
  - name: Solo
    x: 10
    y: 10
    radius: 2
`
	cfg, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Input.Hold)
	assert.Equal(t, 5, cfg.Assault.ShipHealth)
	// Untouched fields keep defaults
	assert.Equal(t, Default().Assault.Segments, cfg.Assault.Segments)
	require.Len(t, cfg.Planets, 1)
	assert.Equal(t, "Solo", cfg.Planets[0].Name)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("fpss: 30\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny window", func(c *Config) { c.Window.Width = 10 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"no planets", func(c *Config) { c.Planets = nil }},
		{"duplicate planet", func(c *Config) { c.Planets = append(c.Planets, c.Planets[0]) }},
		{"planet outside", func(c *Config) { c.Planets[0].X = 1000 }},
		{"fire chance", func(c *Config) { c.Assault.EnemyFireChance = 1.5 }},
		{"one segment", func(c *Config) { c.Assault.Segments = 1 }},
		{"no hold", func(c *Config) { c.Input.Hold = 0 }},
		{"negative max enemies", func(c *Config) { c.Assault.MaxEnemies = -1 }},
		{"negative enemy range", func(c *Config) { c.Assault.EnemyRange = -1 }},
		{"negative enemy reload", func(c *Config) { c.Assault.EnemyReload = -time.Second }},
		{"negative reload", func(c *Config) { c.Assault.ReloadTime = -time.Millisecond }},
		{"negative immunity", func(c *Config) { c.Assault.Immunity = -time.Millisecond }},
		{"negative segment score", func(c *Config) { c.Assault.SegmentScore = -10 }},
		{"negative segment bonus", func(c *Config) { c.Assault.SegmentBonus = -1 }},
		{"negative enemy score", func(c *Config) { c.Assault.EnemyScore = -100 }},
		{"planet on spawn", func(c *Config) {
			c.Planets[0].X, c.Planets[0].Y = float64(c.Window.Width)/2+2, float64(c.Window.Height)/2
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Planets = append([]Planet(nil), cfg.Planets...)
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadRejectsNegativeMaxEnemies(t *testing.T) {
	_, err := Load(strings.NewReader("assault:\n  max_enemies: -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestZeroMaxEnemiesIsValid(t *testing.T) {
	cfg := Default()
	cfg.Assault.MaxEnemies = 0
	assert.NoError(t, cfg.Validate())
}

func TestSpawnIsWindowCentre(t *testing.T) {
	cfg := Default()
	assert.Equal(t, [2]float64{50, 15}, cfg.Spawn())
}
