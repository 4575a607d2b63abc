package title

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/config"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/render"
	"github.com/lixenwraith/nongravitar/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type jukebox struct {
	id asset.SoundTrackID
	ok bool
}

func (j *jukebox) Play(id asset.SoundTrackID) { j.id, j.ok = id, true }

func (j *jukebox) Playing() (asset.SoundTrackID, bool) { return j.id, j.ok }

func TestTitleScreen(t *testing.T) {
	assets, err := asset.Load(asset.Data)
	require.NoError(t, err)
	cfg := config.Default()

	s := New(1, 2, assets, cfg, zap.NewNop())
	assert.Equal(t, core.SceneID(1), s.ID())

	j := &jukebox{}
	assert.Equal(t, core.SceneID(1), s.Update(&scene.Frame{Elapsed: time.Second, Audio: j}))
	assert.Equal(t, asset.SoundTrackMainTheme, j.id)

	assert.Equal(t, core.SceneID(1), s.OnEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.Equal(t, core.SceneID(2), s.OnEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(cfg.Window.Width, cfg.Window.Height)

	c := render.NewCanvas(screen, cfg.Window.Width, cfg.Window.Height)
	c.Clear()
	s.Render(c)

	var b strings.Builder
	for x := 0; x < cfg.Window.Width; x++ {
		r, _, _, _ := screen.GetContent(x, cfg.Window.Height*8/9)
		b.WriteRune(r)
	}
	assert.Contains(t, b.String(), "[SPACE]")
}
