// Package scene defines the contract every game screen implements and the manager that owns them
package scene

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/input"
	"github.com/lixenwraith/nongravitar/render"
)

// Scene is one screen of the game, only the active scene is updated, rendered and fed input
// Update and OnEvent return the id of the scene that should be active next, their own id to stay
type Scene interface {
	ID() core.SceneID
	Update(f *Frame) core.SceneID
	Render(c *render.Canvas)
	OnEvent(ev *tcell.EventKey) core.SceneID
}

// Jukebox selects the background track
type Jukebox interface {
	Play(id asset.SoundTrackID)
	Playing() (asset.SoundTrackID, bool)
}

// Frame is the per-update input of a scene
type Frame struct {
	Elapsed time.Duration
	Keys    *input.Keyboard
	Audio   Jukebox
}

// PlayTrack starts id on the frame jukebox unless it is already playing
func (f *Frame) PlayTrack(id asset.SoundTrackID) {
	if f.Audio == nil {
		return
	}
	if cur, ok := f.Audio.Playing(); ok && cur == id {
		return
	}
	f.Audio.Play(id)
}
