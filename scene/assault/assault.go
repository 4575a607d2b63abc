// Package assault is the planet level: fly over the terrain, destroy it, survive the bunkers
package assault

import (
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/component"
	"github.com/lixenwraith/nongravitar/config"
	"github.com/lixenwraith/nongravitar/constant"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/engine"
	"github.com/lixenwraith/nongravitar/event"
	"github.com/lixenwraith/nongravitar/render"
	"github.com/lixenwraith/nongravitar/scene"
	"go.uber.org/zap"
)

// Scene is one planet's level, rebuilt every time the planet is entered
type Scene struct {
	id          core.SceneID
	solar       core.SceneID
	leaderBoard core.SceneID
	planet      string
	seed        uint64

	bus    *event.Bus
	assets *asset.Assets
	cfg    config.Config
	log    *zap.Logger
	rng    *rand.Rand

	registry    *engine.Registry
	players     *engine.Store[component.PlayerComponent]
	positions   *engine.Store[component.PositionComponent]
	velocities  *engine.Store[component.VelocityComponent]
	rotations   *engine.Store[component.RotationComponent]
	wraps       *engine.Store[component.WrapComponent]
	hulls       *engine.Store[component.HullComponent]
	weapons     *engine.Store[component.WeaponComponent]
	bullets     *engine.Store[component.BulletComponent]
	terrains    *engine.Store[component.TerrainComponent]
	enemies     *engine.Store[component.EnemyComponent]
	rewards     *engine.Store[component.RewardComponent]
	deaths      *engine.Store[component.DeathComponent]
	renderables *engine.Store[component.RenderableComponent]
	pipeline    *engine.Pipeline

	ship  core.Entity
	color tcell.Color
	built bool

	// Per-frame state
	frame *scene.Frame
	next  core.SceneID

	score  int
	bonus  int
	report string
}

// New creates the assault scene for planet and subscribes it to PlanetEntered
func New(id, solar, leaderBoard core.SceneID, bus *event.Bus, assets *asset.Assets, cfg config.Config, log *zap.Logger, planet string) *Scene {
	s := &Scene{
		id:          id,
		solar:       solar,
		leaderBoard: leaderBoard,
		planet:      planet,
		seed:        cfg.Seed ^ xxhash.Sum64String(planet),
		bus:         bus,
		assets:      assets,
		cfg:         cfg,
		log:         log.Named("assault").With(zap.String("planet", planet)),
		registry:    engine.NewRegistry(),
	}

	s.players = engine.Track[component.PlayerComponent](s.registry)
	s.positions = engine.Track[component.PositionComponent](s.registry)
	s.velocities = engine.Track[component.VelocityComponent](s.registry)
	s.rotations = engine.Track[component.RotationComponent](s.registry)
	s.wraps = engine.Track[component.WrapComponent](s.registry)
	s.hulls = engine.Track[component.HullComponent](s.registry)
	s.weapons = engine.Track[component.WeaponComponent](s.registry)
	s.bullets = engine.Track[component.BulletComponent](s.registry)
	s.terrains = engine.Track[component.TerrainComponent](s.registry)
	s.enemies = engine.Track[component.EnemyComponent](s.registry)
	s.rewards = engine.Track[component.RewardComponent](s.registry)
	s.deaths = engine.Track[component.DeathComponent](s.registry)
	s.renderables = engine.Track[component.RenderableComponent](s.registry)

	s.pipeline = engine.NewPipeline(
		engine.NewSystemFunc("input", constant.PriorityInput, s.inputSystem),
		engine.NewSystemFunc("motion", constant.PriorityMotion, s.motionSystem),
		engine.NewSystemFunc("collision", constant.PriorityCollision, s.collisionSystem),
		engine.NewSystemFunc("reload", constant.PriorityReload, s.reloadSystem),
		engine.NewSystemFunc("ai", constant.PriorityAI, s.aiSystem),
		engine.NewSystemFunc("liveness", constant.PriorityLiveness, s.livenessSystem),
		engine.NewSystemFunc("report", constant.PriorityReport, s.reportSystem),
	)

	event.Subscribe(bus, s.onPlanetEntered)
	return s
}

func (s *Scene) onPlanetEntered(msg event.PlanetEntered) {
	if msg.Scene != s.id {
		return
	}
	s.build(msg.Color, msg.Score)
}

// build resets the level, terrain and enemy placement depend only on the planet seed
func (s *Scene) build(color tcell.Color, score int) {
	s.registry.Clear()
	s.rng = rand.New(rand.NewPCG(s.seed, s.seed>>1|1))
	s.color = color
	s.score = score
	s.bonus = 0

	s.spawnShip()
	s.generateTerrain()
	s.built = true
	s.updateReport()

	s.log.Debug("level built",
		zap.Int("segments", s.terrains.Count()),
		zap.Int("enemies", s.enemies.Count()),
		zap.Int("score", score))
}

func (s *Scene) spawnShip() {
	s.ship = s.registry.CreateEntity()
	s.players.Set(s.ship, component.PlayerComponent{Radius: s.cfg.Ship.Radius})
	s.positions.Set(s.ship, component.PositionComponent{Vec2: mgl64.Vec2{float64(s.cfg.Window.Width) / 2, 2}})
	s.velocities.Set(s.ship, component.VelocityComponent{})
	s.rotations.Set(s.ship, component.RotationComponent{})
	s.wraps.Set(s.ship, component.WrapComponent{})
	s.hulls.Set(s.ship, component.HullComponent{Health: s.cfg.Assault.ShipHealth})
	s.weapons.Set(s.ship, component.WeaponComponent{Cooldown: s.cfg.Assault.ReloadTime})
	s.renderables.Set(s.ship, component.RenderableComponent{
		Shape: component.Sprite{Sheet: s.assets.SpriteSheet(asset.SpriteSheetSpaceShip), Directional: true},
		Style: s.style(constant.RgbShip),
	})
}

// spawnBullet fires a projectile of faction from pos with velocity vel
func (s *Scene) spawnBullet(faction component.Faction, pos, vel mgl64.Vec2) core.Entity {
	e := s.registry.CreateEntity()
	s.bullets.Set(e, component.BulletComponent{Faction: faction, Damage: s.cfg.Assault.BulletDamage})
	s.positions.Set(e, component.PositionComponent{Vec2: pos})
	s.velocities.Set(e, component.VelocityComponent{Vec2: vel})

	frame, color := 0, constant.RgbBullet
	if faction == component.FactionEnemy {
		frame, color = 1, constant.RgbEnemyShot
	}
	s.renderables.Set(e, component.RenderableComponent{
		Shape: component.Sprite{Sheet: s.assets.SpriteSheet(asset.SpriteSheetBullet), Frame: frame},
		Style: s.style(color),
	})
	return e
}

func (s *Scene) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(constant.RgbBackground).Foreground(fg)
}

func (s *Scene) ID() core.SceneID { return s.id }

// Update runs one simulation step and returns the next active scene
func (s *Scene) Update(f *scene.Frame) core.SceneID {
	f.PlayTrack(asset.SoundTrackAmbientStarfield)
	if !s.built {
		return s.id
	}

	s.frame = f
	s.next = s.id
	s.pipeline.Update(f.Elapsed)
	s.frame = nil

	if s.next != s.id {
		s.log.Debug("transition", zap.Uint32("to", uint32(s.next)))
	}
	return s.next
}

// Render draws terrain first, then enemies and bullets, the ship last
func (s *Scene) Render(c *render.Canvas) {
	for _, e := range s.terrains.Entities() {
		s.draw(c, e)
	}
	for _, e := range s.renderables.Entities() {
		if e == s.ship || s.terrains.Has(e) {
			continue
		}
		s.draw(c, e)
	}
	s.draw(c, s.ship)

	c.Text(1, 0, s.report, c.Style())
}

func (s *Scene) draw(c *render.Canvas, e core.Entity) {
	rc, ok := s.renderables.Get(e)
	if !ok {
		return
	}
	pos, _ := s.positions.Get(e)
	rot, _ := s.rotations.Get(e)
	c.Draw(rc, pos.Vec2, rot.Angle)
}

func (s *Scene) OnEvent(*tcell.EventKey) core.SceneID { return s.id }

// Planet returns the name of the planet this level belongs to
func (s *Scene) Planet() string { return s.planet }

// TerrainColor returns the color destructible terrain is drawn with
func (s *Scene) TerrainColor() tcell.Color { return s.color }

func (s *Scene) Score() int { return s.score }

func (s *Scene) Bonus() int { return s.bonus }

// Hull returns the ship health
func (s *Scene) Hull() int {
	h, _ := s.hulls.Get(s.ship)
	return h.Health
}

// Report returns the status line
func (s *Scene) Report() string { return s.report }

// DestructibleLeft counts the destructible segments still standing
func (s *Scene) DestructibleLeft() int {
	n := 0
	for _, e := range s.terrains.Entities() {
		if t, _ := s.terrains.Get(e); t.Destructible {
			n++
		}
	}
	return n
}

func (s *Scene) updateReport() {
	s.report = fmt.Sprintf("SCORE %05d  BONUS %05d  HULL %d", s.score, s.bonus, s.Hull())
}
