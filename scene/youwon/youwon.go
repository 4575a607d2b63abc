// Package youwon is shown once every planet is destroyed
package youwon

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/config"
	"github.com/lixenwraith/nongravitar/constant"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/input"
	"github.com/lixenwraith/nongravitar/render"
	"github.com/lixenwraith/nongravitar/scene"
)

// Banner is the text drawn with the block font
const Banner = "You Won"

// Screen congratulates the player, confirming quits the game
type Screen struct {
	id     core.SceneID
	banner []string
	label  *render.Blink
}

func New(id core.SceneID, assets *asset.Assets, cfg config.Config) *Screen {
	return &Screen{
		id:     id,
		banner: assets.Font(asset.FontMechanical).Render(Banner),
		label:  render.NewBlink(cfg.Blink),
	}
}

func (s *Screen) ID() core.SceneID { return s.id }

func (s *Screen) Update(f *scene.Frame) core.SceneID {
	f.PlayTrack(asset.SoundTrackMainTheme)
	s.label.Update(f.Elapsed)
	return s.id
}

func (s *Screen) Render(c *render.Canvas) {
	_, h := c.Size()
	c.LinesCentered(h/3-len(s.banner)/2, s.banner, c.Style().Foreground(constant.RgbBullet))
	c.TextCentered(h*8/9, "[SPACE]", s.label.Style())
}

func (s *Screen) OnEvent(ev *tcell.EventKey) core.SceneID {
	if input.Confirms(ev) {
		return core.NullSceneID
	}
	return s.id
}
