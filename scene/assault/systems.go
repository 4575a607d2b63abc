package assault

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/nongravitar/component"
	"github.com/lixenwraith/nongravitar/event"
	"github.com/lixenwraith/nongravitar/geom"
	"github.com/lixenwraith/nongravitar/input"
	"go.uber.org/zap"
)

const (
	bulletRadius = 0.3
	// Upward speed after touching the ground
	bounceSpeed = 6.0
	// Ship hull damage per terrain contact
	contactDamage = 1
)

// inputSystem steers the ship under gravity and fires the ship weapon
func (s *Scene) inputSystem(dt time.Duration) {
	sec := dt.Seconds()
	rot, _ := s.rotations.Get(s.ship)
	vel, _ := s.velocities.Get(s.ship)

	var keys *input.Keyboard
	if s.frame != nil {
		keys = s.frame.Keys
	}
	held := func(a input.Action) bool { return keys != nil && keys.Held(a) }

	if held(input.ActionLeft) {
		rot.Angle -= s.cfg.Ship.TurnRate * sec
	}
	if held(input.ActionRight) {
		rot.Angle += s.cfg.Ship.TurnRate * sec
	}
	heading := geom.Heading(rot.Angle)
	if held(input.ActionThrust) {
		vel.Vec2 = vel.Add(heading.Mul(s.cfg.Ship.Thrust * sec))
	}
	vel.Vec2 = geom.ClampLen(vel.Add(mgl64.Vec2{0, s.cfg.Assault.Gravity * sec}), s.cfg.Ship.MaxSpeed)

	s.rotations.Set(s.ship, rot)
	s.velocities.Set(s.ship, vel)

	weapon, _ := s.weapons.Get(s.ship)
	if held(input.ActionFire) && weapon.Ready() {
		player, _ := s.players.Get(s.ship)
		pos, _ := s.positions.Get(s.ship)
		nose := pos.Add(heading.Mul(player.Radius + bulletRadius))
		s.spawnBullet(component.FactionPlayer, nose, heading.Mul(s.cfg.Assault.BulletSpeed).Add(vel.Vec2))
		weapon.Remaining = weapon.Cooldown
		s.weapons.Set(s.ship, weapon)
	}
}

// motionSystem integrates velocities, leaving the world kills everything but wrapping entities
func (s *Scene) motionSystem(dt time.Duration) {
	w, h := float64(s.cfg.Window.Width), float64(s.cfg.Window.Height)
	for _, e := range s.velocities.Entities() {
		pos, ok := s.positions.Get(e)
		if !ok {
			continue
		}
		vel, _ := s.velocities.Get(e)
		pos.Vec2 = pos.Add(vel.Mul(dt.Seconds()))

		if s.wraps.Has(e) {
			pos.Vec2[0] = geom.Wrap(pos.X(), w)
			if pos.Y() < 0 {
				pos.Vec2[1] = 0
				vel.Vec2[1] = math.Max(vel.Y(), 0)
			} else if pos.Y() > h-1 {
				pos.Vec2[1] = h - 1
				vel.Vec2[1] = math.Min(vel.Y(), 0)
			}
			s.velocities.Set(e, vel)
		} else if pos.X() < 0 || pos.Y() < 0 || pos.X() >= w || pos.Y() >= h {
			s.deaths.Set(e, component.DeathComponent{})
		}
		s.positions.Set(e, pos)
	}
}

// collisionSystem resolves bullet hits and ship contact with the ground
// A bullet is consumed by its first hit, health never drops below zero
func (s *Scene) collisionSystem(time.Duration) {
	shipPos, _ := s.positions.Get(s.ship)
	player, _ := s.players.Get(s.ship)
	hull, _ := s.hulls.Get(s.ship)

	for _, b := range s.bullets.Entities() {
		if s.deaths.Has(b) {
			continue
		}
		bullet, _ := s.bullets.Get(b)
		pos, _ := s.positions.Get(b)

		if s.hitTerrain(bullet, pos.Vec2) {
			s.deaths.Set(b, component.DeathComponent{})
			continue
		}

		switch bullet.Faction {
		case component.FactionEnemy:
			if geom.CirclesOverlap(pos.Vec2, bulletRadius, shipPos.Vec2, player.Radius) {
				hull.Damage(bullet.Damage)
				s.deaths.Set(b, component.DeathComponent{})
			}
		case component.FactionPlayer:
			if s.hitEnemy(bullet, pos.Vec2) {
				s.deaths.Set(b, component.DeathComponent{})
			}
		}
	}

	for _, e := range s.terrains.Entities() {
		if s.deaths.Has(e) {
			continue
		}
		t, _ := s.terrains.Get(e)
		if !geom.CircleTouchesPolygon(t.Polygon, shipPos.Vec2, player.Radius) {
			continue
		}
		if hull.Immunity <= 0 {
			hull.Damage(contactDamage)
			hull.Immunity = s.cfg.Assault.Immunity
			s.log.Debug("ground contact", zap.Int("hull", hull.Health))
		}
		vel, _ := s.velocities.Get(s.ship)
		vel.Vec2 = mgl64.Vec2{vel.X() * 0.5, -math.Max(math.Abs(vel.Y()), bounceSpeed)}
		s.velocities.Set(s.ship, vel)
		break
	}

	s.hulls.Set(s.ship, hull)
}

// hitTerrain reports whether the bullet is inside a segment, player bullets damage destructible ones
func (s *Scene) hitTerrain(bullet component.BulletComponent, pos mgl64.Vec2) bool {
	for _, e := range s.terrains.Entities() {
		if s.deaths.Has(e) {
			continue
		}
		t, _ := s.terrains.Get(e)
		if !geom.Contains(t.Polygon, pos) {
			continue
		}
		if bullet.Faction == component.FactionPlayer && t.Destructible {
			if t.Damage(bullet.Damage) == 0 {
				s.deaths.Set(e, component.DeathComponent{})
			}
			s.terrains.Set(e, t)
		}
		return true
	}
	return false
}

func (s *Scene) hitEnemy(bullet component.BulletComponent, pos mgl64.Vec2) bool {
	for _, e := range s.enemies.Entities() {
		if s.deaths.Has(e) {
			continue
		}
		enemy, _ := s.enemies.Get(e)
		epos, _ := s.positions.Get(e)
		if !geom.CirclesOverlap(pos, bulletRadius, epos.Vec2, enemy.Radius) {
			continue
		}
		enemy.Health = max(enemy.Health-bullet.Damage, 0)
		if enemy.Health == 0 {
			s.deaths.Set(e, component.DeathComponent{})
		}
		s.enemies.Set(e, enemy)
		return true
	}
	return false
}

// reloadSystem counts weapon cooldowns and hull immunity down to zero
func (s *Scene) reloadSystem(dt time.Duration) {
	for _, e := range s.weapons.Entities() {
		w, _ := s.weapons.Get(e)
		if w.Remaining > 0 {
			w.Remaining = max(w.Remaining-dt, 0)
			s.weapons.Set(e, w)
		}
	}
	for _, e := range s.hulls.Entities() {
		h, _ := s.hulls.Get(e)
		if h.Immunity > 0 {
			h.Immunity = max(h.Immunity-dt, 0)
			s.hulls.Set(e, h)
		}
	}
}

// aiSystem lets every ready bunker with a clear shot fire at the ship
func (s *Scene) aiSystem(time.Duration) {
	shipPos, _ := s.positions.Get(s.ship)

	for _, e := range s.enemies.Entities() {
		if s.deaths.Has(e) {
			continue
		}
		w, _ := s.weapons.Get(e)
		if !w.Ready() {
			continue
		}
		pos, _ := s.positions.Get(e)
		if pos.Sub(shipPos.Vec2).Len() > s.cfg.Assault.EnemyRange || !s.lineOfSight(pos.Vec2, shipPos.Vec2) {
			continue
		}
		if s.rng.Float64() >= s.cfg.Assault.EnemyFireChance {
			continue
		}

		enemy, _ := s.enemies.Get(e)
		dir := shipPos.Sub(pos.Vec2).Normalize()
		s.spawnBullet(component.FactionEnemy, pos.Add(dir.Mul(enemy.Radius+bulletRadius)), dir.Mul(s.cfg.Assault.EnemyBulletSpeed))
		w.Remaining = w.Cooldown
		s.weapons.Set(e, w)
	}
}

// lineOfSight reports whether the segment a-b crosses no terrain outline
func (s *Scene) lineOfSight(a, b mgl64.Vec2) bool {
	for _, e := range s.terrains.Entities() {
		if s.deaths.Has(e) {
			continue
		}
		t, _ := s.terrains.Get(e)
		if geom.SegmentCrossesPolygon(a, b, t.Polygon) {
			return false
		}
	}
	return true
}

// livenessSystem removes dead entities, tallying their rewards, then checks how the level ends
func (s *Scene) livenessSystem(time.Duration) {
	dead := s.deaths.Entities()
	for _, e := range dead {
		if r, ok := s.rewards.Get(e); ok {
			s.score += r.Score
			s.bonus += r.Bonus
		}
	}
	s.registry.DestroyBatch(dead)

	switch {
	case s.Hull() == 0:
		s.log.Info("ship destroyed", zap.Int("score", s.score))
		event.Publish(s.bus, event.GameOver{Score: s.score})
		s.next = s.leaderBoard
	case s.DestructibleLeft() == 0:
		s.score += s.bonus
		s.log.Info("planet destroyed", zap.Int("score", s.score), zap.Int("bonus", s.bonus))
		event.Publish(s.bus, event.PlanetDestroyed{Scene: s.id, Score: s.score})
		s.next = s.solar
	}
}

func (s *Scene) reportSystem(time.Duration) {
	s.updateReport()
}
