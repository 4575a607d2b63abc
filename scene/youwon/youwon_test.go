package youwon

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/config"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYouWonQuitsOnSpace(t *testing.T) {
	assets, err := asset.Load(asset.Data)
	require.NoError(t, err)

	s := New(4, assets, config.Default())
	assert.Equal(t, core.SceneID(4), s.Update(&scene.Frame{Elapsed: time.Millisecond}))
	assert.Equal(t, core.SceneID(4), s.OnEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.Equal(t, core.NullSceneID, s.OnEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.Len(t, s.banner, 5)
}
