package solarsystem

import (
	"time"

	"github.com/lixenwraith/nongravitar/component"
	"github.com/lixenwraith/nongravitar/constant"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/event"
	"github.com/lixenwraith/nongravitar/geom"
	"github.com/lixenwraith/nongravitar/input"
	"go.uber.org/zap"
)

func (s *Scene) inputSystem(dt time.Duration) {
	if s.frame == nil || s.frame.Keys == nil {
		return
	}
	keys := s.frame.Keys
	sec := dt.Seconds()

	rot, _ := s.rotations.Get(s.ship)
	if keys.Held(input.ActionLeft) {
		rot.Angle -= s.cfg.Ship.TurnRate * sec
	}
	if keys.Held(input.ActionRight) {
		rot.Angle += s.cfg.Ship.TurnRate * sec
	}
	s.rotations.Set(s.ship, rot)

	if keys.Held(input.ActionThrust) {
		vel, _ := s.velocities.Get(s.ship)
		vel.Vec2 = geom.ClampLen(vel.Add(geom.Heading(rot.Angle).Mul(s.cfg.Ship.Thrust*sec)), s.cfg.Ship.MaxSpeed)
		s.velocities.Set(s.ship, vel)
	}
}

// motionSystem integrates velocities, the overworld wraps on every edge
func (s *Scene) motionSystem(dt time.Duration) {
	w, h := float64(s.cfg.Window.Width), float64(s.cfg.Window.Height)
	for _, e := range s.velocities.Entities() {
		pos, ok := s.positions.Get(e)
		if !ok {
			continue
		}
		vel, _ := s.velocities.Get(e)
		pos.Vec2 = pos.Add(vel.Mul(dt.Seconds()))
		pos.Vec2[0] = geom.Wrap(pos.X(), w)
		pos.Vec2[1] = geom.Wrap(pos.Y(), h)
		s.positions.Set(e, pos)
	}
}

// collisionSystem enters the first planet the ship overlaps
func (s *Scene) collisionSystem(time.Duration) {
	player, _ := s.players.Get(s.ship)
	shipPos, _ := s.positions.Get(s.ship)

	for _, e := range s.planets.Entities() {
		planet, _ := s.planets.Get(e)
		if planet.Destroyed {
			continue
		}
		pos, _ := s.positions.Get(e)
		if !geom.CirclesOverlap(shipPos.Vec2, player.Radius, pos.Vec2, planet.Radius) {
			continue
		}

		s.log.Info("planet entered", zap.String("name", planet.Name))
		event.Publish(s.bus, event.PlanetEntered{
			Scene: planet.Assault,
			Color: constant.TerrainColor(s.remaining()),
			Score: s.score,
		})

		s.positions.Set(s.ship, component.PositionComponent{Vec2: s.spawn})
		s.velocities.Set(s.ship, component.VelocityComponent{})
		s.rotations.Set(s.ship, component.RotationComponent{})
		if s.frame != nil && s.frame.Keys != nil {
			s.frame.Keys.Reset()
		}

		s.next = planet.Assault
		return
	}
}

// livenessSystem removes destroyed planets and ends the game once none remain
func (s *Scene) livenessSystem(time.Duration) {
	var destroyed []core.Entity
	for _, e := range s.planets.Entities() {
		if p, _ := s.planets.Get(e); p.Destroyed {
			destroyed = append(destroyed, e)
		}
	}
	s.registry.DestroyBatch(destroyed)

	if s.planets.Count() == 0 {
		s.next = s.youWon
	}
}

func (s *Scene) reportSystem(time.Duration) {
	s.updateReport()
}

func (s *Scene) remaining() int {
	n := 0
	for _, e := range s.planets.Entities() {
		if p, _ := s.planets.Get(e); !p.Destroyed {
			n++
		}
	}
	return n
}
