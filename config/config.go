// Package config holds the immutable game configuration passed to the driver at startup
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete set of tunables, treated as a value once loaded
type Config struct {
	Window  Window        `yaml:"window"`
	FPS     int           `yaml:"fps"`
	Debug   bool          `yaml:"debug"`
	Seed    uint64        `yaml:"seed"`
	Input   Input         `yaml:"input"`
	Ship    Ship          `yaml:"ship"`
	Assault Assault       `yaml:"assault"`
	Planets []Planet      `yaml:"planets"`
	Blink   time.Duration `yaml:"blink"`
}

// Window is the fixed world size in terminal cells
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Input tunes the held-key emulation, terminals only report presses
type Input struct {
	Hold time.Duration `yaml:"hold"`
}

// Ship kinematics shared by the overworld and the assault levels
type Ship struct {
	Thrust   float64 `yaml:"thrust"`    // cells/s²
	TurnRate float64 `yaml:"turn_rate"` // rad/s
	MaxSpeed float64 `yaml:"max_speed"` // cells/s
	Radius   float64 `yaml:"radius"`
}

// Assault tunes the planet levels
type Assault struct {
	Gravity      float64       `yaml:"gravity"`
	BulletSpeed  float64       `yaml:"bullet_speed"`
	BulletDamage int           `yaml:"bullet_damage"`
	ReloadTime   time.Duration `yaml:"reload_time"`
	ShipHealth   int           `yaml:"ship_health"`
	Immunity     time.Duration `yaml:"immunity"`

	Segments      int `yaml:"segments"`
	SegmentHealth int `yaml:"segment_health"`
	SegmentScore  int `yaml:"segment_score"`
	SegmentBonus  int `yaml:"segment_bonus"`

	MaxEnemies       int           `yaml:"max_enemies"`
	EnemyHealth      int           `yaml:"enemy_health"`
	EnemyScore       int           `yaml:"enemy_score"`
	EnemyRange       float64       `yaml:"enemy_range"`
	EnemyFireChance  float64       `yaml:"enemy_fire_chance"` // per frame
	EnemyReload      time.Duration `yaml:"enemy_reload"`
	EnemyBulletSpeed float64       `yaml:"enemy_bullet_speed"`
}

// Planet places one overworld planet, each gets its own assault level
type Planet struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Window: Window{Width: 100, Height: 30},
		FPS:    60,
		Seed:   0x6e6f6e67,
		Input:  Input{Hold: 180 * time.Millisecond},
		Blink:  70 * time.Millisecond,
		Ship: Ship{
			Thrust:   40,
			TurnRate: 4.5,
			MaxSpeed: 30,
			Radius:   0.8,
		},
		Assault: Assault{
			Gravity:      4,
			BulletSpeed:  45,
			BulletDamage: 1,
			ReloadTime:   250 * time.Millisecond,
			ShipHealth:   3,
			Immunity:     800 * time.Millisecond,

			Segments:      12,
			SegmentHealth: 3,
			SegmentScore:  10,
			SegmentBonus:  50,

			MaxEnemies:       4,
			EnemyHealth:      2,
			EnemyScore:       100,
			EnemyRange:       40,
			EnemyFireChance:  0.03,
			EnemyReload:      1200 * time.Millisecond,
			EnemyBulletSpeed: 18,
		},
		Planets: []Planet{
			{Name: "Xylos", X: 18, Y: 7, Radius: 2.5},
			{Name: "Borealis", X: 78, Y: 8, Radius: 3},
			{Name: "Karst", X: 30, Y: 22, Radius: 2},
			{Name: "Omicron", X: 82, Y: 23, Radius: 2.5},
		},
	}
}

// Load decodes YAML over the defaults and validates the result
// An empty document yields the defaults
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FrameDuration is the target duration of one frame
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Spawn is the overworld ship spawn point, the window centre
func (c Config) Spawn() [2]float64 {
	return [2]float64{float64(c.Window.Width) / 2, float64(c.Window.Height) / 2}
}

// Validate reports the first inconsistency found, wrapping ErrInvalid
func (c Config) Validate() error {
	switch {
	case c.Window.Width < 40 || c.Window.Height < 16:
		return fmt.Errorf("%w: window %dx%d is smaller than 40x16", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.FPS < 1 || c.FPS > 240:
		return fmt.Errorf("%w: fps %d out of range [1,240]", ErrInvalid, c.FPS)
	case c.Input.Hold <= 0:
		return fmt.Errorf("%w: input hold must be positive", ErrInvalid)
	case c.Blink <= 0:
		return fmt.Errorf("%w: blink period must be positive", ErrInvalid)
	case c.Ship.MaxSpeed <= 0 || c.Ship.Radius <= 0:
		return fmt.Errorf("%w: ship max speed and radius must be positive", ErrInvalid)
	case c.Assault.Segments < 2:
		return fmt.Errorf("%w: at least 2 terrain segments required", ErrInvalid)
	case c.Assault.SegmentHealth < 1 || c.Assault.ShipHealth < 1 || c.Assault.EnemyHealth < 1:
		return fmt.Errorf("%w: health values must be at least 1", ErrInvalid)
	case c.Assault.BulletDamage < 1:
		return fmt.Errorf("%w: bullet damage must be at least 1", ErrInvalid)
	case c.Assault.MaxEnemies < 0:
		return fmt.Errorf("%w: max enemies %d is negative", ErrInvalid, c.Assault.MaxEnemies)
	case c.Assault.EnemyRange < 0:
		return fmt.Errorf("%w: enemy range %v is negative", ErrInvalid, c.Assault.EnemyRange)
	case c.Assault.ReloadTime < 0 || c.Assault.EnemyReload < 0 || c.Assault.Immunity < 0:
		return fmt.Errorf("%w: reload and immunity durations must not be negative", ErrInvalid)
	case c.Assault.SegmentScore < 0 || c.Assault.SegmentBonus < 0 || c.Assault.EnemyScore < 0:
		return fmt.Errorf("%w: score and bonus values must not be negative", ErrInvalid)
	case c.Assault.EnemyFireChance < 0 || c.Assault.EnemyFireChance > 1:
		return fmt.Errorf("%w: enemy fire chance %v out of range [0,1]", ErrInvalid, c.Assault.EnemyFireChance)
	case len(c.Planets) == 0:
		return fmt.Errorf("%w: at least one planet required", ErrInvalid)
	}

	spawn := c.Spawn()
	seen := make(map[string]struct{}, len(c.Planets))
	for _, p := range c.Planets {
		if p.Name == "" {
			return fmt.Errorf("%w: planet without name", ErrInvalid)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate planet %q", ErrInvalid, p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.Radius <= 0 {
			return fmt.Errorf("%w: planet %q radius must be positive", ErrInvalid, p.Name)
		}
		if p.X < 0 || p.Y < 0 || p.X >= float64(c.Window.Width) || p.Y >= float64(c.Window.Height) {
			return fmt.Errorf("%w: planet %q outside the window", ErrInvalid, p.Name)
		}
		if math.Hypot(p.X-spawn[0], p.Y-spawn[1]) < p.Radius+c.Ship.Radius {
			return fmt.Errorf("%w: planet %q covers the ship spawn point", ErrInvalid, p.Name)
		}
	}
	return nil
}
