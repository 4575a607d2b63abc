package assault

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/component"
	"github.com/lixenwraith/nongravitar/constant"
	"github.com/lixenwraith/nongravitar/core"
)

const (
	// Surface band as fractions of the world height
	surfaceTop    = 0.62
	surfaceHeight = 0.3

	enemyRadius = 1.0
)

// generateTerrain lays a ground line of segments across the world width
// At least one segment is destructible and one is not, bunkers only sit on the indestructible ones
func (s *Scene) generateTerrain() {
	w, h := float64(s.cfg.Window.Width), float64(s.cfg.Window.Height)
	n := s.cfg.Assault.Segments

	surface := make([]mgl64.Vec2, n+1)
	for i := range surface {
		surface[i] = mgl64.Vec2{w * float64(i) / float64(n), h*surfaceTop + s.rng.Float64()*h*surfaceHeight}
	}

	destructible := make([]bool, n)
	count := 0
	for i := range destructible {
		destructible[i] = s.rng.Float64() < 0.5
		if destructible[i] {
			count++
		}
	}
	if count == 0 || count == n {
		k := s.rng.IntN(n)
		destructible[k] = !destructible[k]
	}

	var rock []int
	for i := 0; i < n; i++ {
		poly := []mgl64.Vec2{surface[i], surface[i+1], {surface[i+1][0], h}, {surface[i][0], h}}
		s.addSegment(poly, destructible[i])
		if !destructible[i] {
			rock = append(rock, i)
		}
	}

	s.rng.Shuffle(len(rock), func(i, j int) { rock[i], rock[j] = rock[j], rock[i] })
	for _, i := range rock[:max(0, min(len(rock), s.cfg.Assault.MaxEnemies))] {
		top := surface[i].Add(surface[i+1]).Mul(0.5)
		s.addEnemy(top.Sub(mgl64.Vec2{0, enemyRadius}))
	}
}

func (s *Scene) addSegment(poly []mgl64.Vec2, destructible bool) core.Entity {
	e := s.registry.CreateEntity()
	t := component.TerrainComponent{Polygon: poly, Destructible: destructible}
	rc := component.RenderableComponent{
		Shape: component.Polygon{Points: poly, Rune: constant.GlyphRock},
		Style: s.style(constant.RgbRock),
	}
	if destructible {
		t.Health = s.cfg.Assault.SegmentHealth
		rc = component.RenderableComponent{
			Shape: component.Polygon{Points: poly, Rune: constant.GlyphTerrain},
			Style: s.style(s.color),
		}
		s.rewards.Set(e, component.RewardComponent{Score: s.cfg.Assault.SegmentScore, Bonus: s.cfg.Assault.SegmentBonus})
	}
	s.terrains.Set(e, t)
	s.renderables.Set(e, rc)
	return e
}

func (s *Scene) addEnemy(pos mgl64.Vec2) core.Entity {
	e := s.registry.CreateEntity()
	s.enemies.Set(e, component.EnemyComponent{Health: s.cfg.Assault.EnemyHealth, Radius: enemyRadius})
	s.positions.Set(e, component.PositionComponent{Vec2: pos})
	s.weapons.Set(e, component.WeaponComponent{Cooldown: s.cfg.Assault.EnemyReload, Remaining: s.cfg.Assault.EnemyReload})
	s.rewards.Set(e, component.RewardComponent{Score: s.cfg.Assault.EnemyScore})
	s.renderables.Set(e, component.RenderableComponent{
		Shape: component.Sprite{Sheet: s.assets.SpriteSheet(asset.SpriteSheetBunker)},
		Style: s.style(constant.RgbEnemy),
	})
	return e
}
