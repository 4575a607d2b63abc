// Package solarsystem is the overworld where the ship flies between planets
package solarsystem

import (
	"fmt"
	"math"
	"math/rand/v2"

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
	"github.com/lixenwraith/nongravitar/scene/assault"
	"go.uber.org/zap"
)

const starCount = 48

// Scene is the overworld simulation
type Scene struct {
	id          core.SceneID
	youWon      core.SceneID
	leaderBoard core.SceneID

	bus    *event.Bus
	assets *asset.Assets
	cfg    config.Config
	log    *zap.Logger

	registry    *engine.Registry
	players     *engine.Store[component.PlayerComponent]
	positions   *engine.Store[component.PositionComponent]
	velocities  *engine.Store[component.VelocityComponent]
	rotations   *engine.Store[component.RotationComponent]
	renderables *engine.Store[component.RenderableComponent]
	planets     *engine.Store[component.PlanetComponent]
	pipeline    *engine.Pipeline

	ship  core.Entity
	spawn mgl64.Vec2
	stars []mgl64.Vec2

	// Per-frame state
	frame *scene.Frame
	next  core.SceneID

	score  int
	report string
}

// New creates the overworld with the player ship, planets are added by Initialize or AddPlanet
func New(id, youWon, leaderBoard core.SceneID, bus *event.Bus, assets *asset.Assets, cfg config.Config, log *zap.Logger) *Scene {
	s := &Scene{
		id:          id,
		youWon:      youWon,
		leaderBoard: leaderBoard,
		bus:         bus,
		assets:      assets,
		cfg:         cfg,
		log:         log.Named("solarsystem"),
		registry:    engine.NewRegistry(),
		spawn:       mgl64.Vec2(cfg.Spawn()),
	}

	s.players = engine.Track[component.PlayerComponent](s.registry)
	s.positions = engine.Track[component.PositionComponent](s.registry)
	s.velocities = engine.Track[component.VelocityComponent](s.registry)
	s.rotations = engine.Track[component.RotationComponent](s.registry)
	s.renderables = engine.Track[component.RenderableComponent](s.registry)
	s.planets = engine.Track[component.PlanetComponent](s.registry)

	s.pipeline = engine.NewPipeline(
		engine.NewSystemFunc("input", constant.PriorityInput, s.inputSystem),
		engine.NewSystemFunc("motion", constant.PriorityMotion, s.motionSystem),
		engine.NewSystemFunc("collision", constant.PriorityCollision, s.collisionSystem),
		engine.NewSystemFunc("liveness", constant.PriorityLiveness, s.livenessSystem),
		engine.NewSystemFunc("report", constant.PriorityReport, s.reportSystem),
	)

	s.spawnShip()
	s.stars = scatterStars(cfg)
	s.updateReport()

	event.Subscribe(bus, s.onPlanetDestroyed)
	return s
}

// Initialize emplaces one assault scene per configured planet and places the planets
func (s *Scene) Initialize(m *scene.Manager) *Scene {
	for _, p := range s.cfg.Planets {
		a := scene.Emplace(m, func(id core.SceneID) *assault.Scene {
			return assault.New(id, s.id, s.leaderBoard, s.bus, s.assets, s.cfg, s.log, p.Name)
		})
		s.AddPlanet(a.ID(), p)
	}
	s.updateReport()
	return s
}

// AddPlanet places a planet leading to the assault scene
func (s *Scene) AddPlanet(assaultID core.SceneID, p config.Planet) core.Entity {
	e := s.registry.CreateEntity()
	s.planets.Set(e, component.PlanetComponent{Name: p.Name, Assault: assaultID, Radius: p.Radius})
	s.positions.Set(e, component.PositionComponent{Vec2: mgl64.Vec2{p.X, p.Y}})
	s.renderables.Set(e, component.RenderableComponent{
		Shape: component.Circle{Radius: p.Radius, Rune: constant.GlyphPlanet},
		Style: tcell.StyleDefault.Background(constant.RgbBackground).Foreground(constant.RgbPlanet),
	})
	s.log.Debug("planet", zap.String("name", p.Name), zap.Uint32("assault", uint32(assaultID)))
	return e
}

func (s *Scene) spawnShip() {
	s.ship = s.registry.CreateEntity()
	s.players.Set(s.ship, component.PlayerComponent{Radius: s.cfg.Ship.Radius})
	s.positions.Set(s.ship, component.PositionComponent{Vec2: s.spawn})
	s.velocities.Set(s.ship, component.VelocityComponent{})
	s.rotations.Set(s.ship, component.RotationComponent{})
	s.renderables.Set(s.ship, component.RenderableComponent{
		Shape: component.Sprite{Sheet: s.assets.SpriteSheet(asset.SpriteSheetSpaceShip), Directional: true},
		Style: tcell.StyleDefault.Background(constant.RgbBackground).Foreground(constant.RgbShip),
	})
}

// scatterStars places the decorative background, fixed by the configured seed
func scatterStars(cfg config.Config) []mgl64.Vec2 {
	rng := rand.New(rand.NewPCG(cfg.Seed, math.MaxUint32))
	stars := make([]mgl64.Vec2, starCount)
	for i := range stars {
		stars[i] = mgl64.Vec2{
			rng.Float64() * float64(cfg.Window.Width),
			rng.Float64() * float64(cfg.Window.Height),
		}
	}
	return stars
}

// onPlanetDestroyed flags the planet, the liveness system removes it on the next update
func (s *Scene) onPlanetDestroyed(msg event.PlanetDestroyed) {
	s.score = msg.Score
	for _, e := range s.planets.Entities() {
		p, _ := s.planets.Get(e)
		if p.Assault == msg.Scene {
			p.Destroyed = true
			s.planets.Set(e, p)
			s.log.Info("planet destroyed", zap.String("name", p.Name), zap.Int("score", msg.Score))
		}
	}
}

func (s *Scene) ID() core.SceneID { return s.id }

// Update runs one simulation step and returns the next active scene
func (s *Scene) Update(f *scene.Frame) core.SceneID {
	f.PlayTrack(asset.SoundTrackMainTheme)

	s.frame = f
	s.next = s.id
	s.pipeline.Update(f.Elapsed)
	s.frame = nil

	if s.next != s.id {
		s.log.Debug("transition", zap.Uint32("to", uint32(s.next)))
	}
	return s.next
}

func (s *Scene) Render(c *render.Canvas) {
	starStyle := c.Style().Foreground(constant.RgbStar)
	for _, p := range s.stars {
		c.Put(int(p[0]), int(p[1]), constant.GlyphStar, starStyle)
	}

	for _, e := range s.renderables.Entities() {
		if e == s.ship {
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

// Score returns the session score as of the last destroyed planet
func (s *Scene) Score() int { return s.score }

// Remaining returns the number of planets still on the map
func (s *Scene) Remaining() int { return s.planets.Count() }

// Report returns the status line
func (s *Scene) Report() string { return s.report }

// Ship returns the player entity
func (s *Scene) Ship() core.Entity { return s.ship }

func (s *Scene) updateReport() {
	s.report = fmt.Sprintf("PLANETS %d  SCORE %05d", s.planets.Count(), s.score)
}
