// Package leaderboard is the game over screen
package leaderboard

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/config"
	"github.com/lixenwraith/nongravitar/constant"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/event"
	"github.com/lixenwraith/nongravitar/render"
	"github.com/lixenwraith/nongravitar/scene"
	"go.uber.org/zap"
)

// Banner is the title drawn with the block font
const Banner = "Game Over"

// Screen shows the final score received with GameOver
// It has no key transition, Escape quits through the driver
type Screen struct {
	id     core.SceneID
	banner []string
	score  int
	label  *render.Blink
	log    *zap.Logger
}

// New creates the screen and subscribes it to GameOver on bus
func New(id core.SceneID, bus *event.Bus, assets *asset.Assets, cfg config.Config, log *zap.Logger) *Screen {
	s := &Screen{
		id:     id,
		banner: assets.Font(asset.FontMechanical).Render(Banner),
		label:  render.NewBlink(cfg.Blink),
		log:    log.Named("leaderboard"),
	}
	event.Subscribe(bus, s.onGameOver)
	return s
}

func (s *Screen) onGameOver(msg event.GameOver) {
	s.score = msg.Score
	s.log.Info("game over", zap.Int("score", msg.Score))
}

// Score returns the score of the last GameOver
func (s *Screen) Score() int { return s.score }

// ScoreText is the score line as drawn
func (s *Screen) ScoreText() string {
	return fmt.Sprintf("Score: %05d", s.score)
}

func (s *Screen) ID() core.SceneID { return s.id }

func (s *Screen) Update(f *scene.Frame) core.SceneID {
	f.PlayTrack(asset.SoundTrackAmbientStarfield)
	s.label.Update(f.Elapsed)
	return s.id
}

func (s *Screen) Render(c *render.Canvas) {
	_, h := c.Size()
	top := h/3 - len(s.banner)/2
	c.LinesCentered(top, s.banner, c.Style().Foreground(constant.RgbEnemyShot))
	c.TextCentered(top+len(s.banner)+2, s.ScoreText(), c.Style())
	c.TextCentered(h*8/9, "[ESC]", s.label.Style())
}

func (s *Screen) OnEvent(*tcell.EventKey) core.SceneID { return s.id }
