// Package title is the start screen
package title

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/config"
	"github.com/lixenwraith/nongravitar/constant"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/input"
	"github.com/lixenwraith/nongravitar/render"
	"github.com/lixenwraith/nongravitar/scene"
	"go.uber.org/zap"
)

// Screen shows the logo until the player confirms
type Screen struct {
	id    core.SceneID
	next  core.SceneID
	logo  *asset.Texture
	label *render.Blink
	log   *zap.Logger
}

// New creates the title screen, confirming moves to next
func New(id, next core.SceneID, assets *asset.Assets, cfg config.Config, log *zap.Logger) *Screen {
	return &Screen{
		id:    id,
		next:  next,
		logo:  assets.Texture(asset.TextureGravitarTitle),
		label: render.NewBlink(cfg.Blink),
		log:   log.Named("title"),
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
	logoStyle := c.Style().Foreground(constant.RgbShip)
	c.LinesCentered(h/3-s.logo.Height/2, s.logo.Lines(), logoStyle)
	c.TextCentered(h*8/9, "[SPACE]", s.label.Style())
}

func (s *Screen) OnEvent(ev *tcell.EventKey) core.SceneID {
	if input.Confirms(ev) {
		s.log.Debug("start")
		return s.next
	}
	return s.id
}
