// Package game drives the active scene: it owns the terminal, the input loop and the frame ticker
package game

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/config"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/engine"
	"github.com/lixenwraith/nongravitar/event"
	"github.com/lixenwraith/nongravitar/input"
	"github.com/lixenwraith/nongravitar/render"
	"github.com/lixenwraith/nongravitar/scene"
	"github.com/lixenwraith/nongravitar/scene/assault"
	"github.com/lixenwraith/nongravitar/scene/leaderboard"
	"github.com/lixenwraith/nongravitar/scene/solarsystem"
	"github.com/lixenwraith/nongravitar/scene/title"
	"github.com/lixenwraith/nongravitar/scene/youwon"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// eventBuffer bounds the terminal events queued between frames
	eventBuffer = 64
	// maxStep caps one simulation step after a stall, tunneling through terrain otherwise
	maxStep = 100 * time.Millisecond
)

// Audio is what the driver needs from the audio manager
type Audio interface {
	scene.Jukebox
	Toggle() bool
	Muted() bool
	Close()
}

// Game owns the scenes and the terminal, all methods run on the frame-loop goroutine
type Game struct {
	cfg    config.Config
	screen tcell.Screen
	assets *asset.Assets
	audio  Audio
	bus    *event.Bus
	log    *zap.Logger
	clock  engine.TimeProvider

	canvas  *render.Canvas
	keys    *input.Keyboard
	manager *scene.Manager
	frame   scene.Frame

	current core.SceneID
	solar   core.SceneID

	closeOnce sync.Once
}

// New creates a driver on an initialized screen, call Initialize before stepping
func New(cfg config.Config, screen tcell.Screen, assets *asset.Assets, audio Audio, bus *event.Bus, log *zap.Logger, clock engine.TimeProvider) *Game {
	g := &Game{
		cfg:     cfg,
		screen:  screen,
		assets:  assets,
		audio:   audio,
		bus:     bus,
		log:     log.Named("game"),
		clock:   clock,
		canvas:  render.NewCanvas(screen, cfg.Window.Width, cfg.Window.Height),
		keys:    input.NewKeyboard(cfg.Input.Hold),
		manager: scene.NewManager(),
	}
	g.frame = scene.Frame{Keys: g.keys}
	if audio != nil {
		g.frame.Audio = audio
	}
	return g
}

// Initialize emplaces every scene, the title screen becomes active
// Targets are emplaced before the scenes that lead to them so ids are known at construction
func (g *Game) Initialize() *Game {
	lb := scene.Emplace(g.manager, func(id core.SceneID) *leaderboard.Screen {
		return leaderboard.New(id, g.bus, g.assets, g.cfg, g.log)
	})
	won := scene.Emplace(g.manager, func(id core.SceneID) *youwon.Screen {
		return youwon.New(id, g.assets, g.cfg)
	})
	solar := scene.Emplace(g.manager, func(id core.SceneID) *solarsystem.Scene {
		return solarsystem.New(id, won.ID(), lb.ID(), g.bus, g.assets, g.cfg, g.log)
	}).Initialize(g.manager)
	ts := scene.Emplace(g.manager, func(id core.SceneID) *title.Screen {
		return title.New(id, solar.ID(), g.assets, g.cfg, g.log)
	})

	g.solar = solar.ID()
	g.current = ts.ID()
	g.log.Info("scenes ready", zap.Int("count", len(g.manager.IDs())), zap.Int("planets", len(g.cfg.Planets)))
	return g
}

// HandleKey applies driver keys and forwards the rest to the active scene
func (g *Game) HandleKey(ev *tcell.EventKey) {
	if g.current == core.NullSceneID {
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.switchTo(core.NullSceneID)
		return
	case tcell.KeyF6:
		if g.audio != nil {
			g.log.Info("audio", zap.Bool("muted", g.audio.Toggle()))
		}
		return
	case tcell.KeyDelete:
		if g.cfg.Debug {
			g.canvas.SetFramed(true)
			return
		}
	case tcell.KeyF4:
		if g.cfg.Debug {
			g.canvas.SetFramed(false)
			return
		}
	}

	if a, ok := input.ActionFor(ev); ok {
		g.keys.Press(a)
	}
	g.switchTo(g.manager.Get(g.current).OnEvent(ev))
}

// Step advances the active scene by elapsed and draws the scene active afterwards
// Returns false once the game has quit
func (g *Game) Step(elapsed time.Duration) bool {
	if g.current == core.NullSceneID {
		return false
	}

	g.keys.Advance(elapsed)
	g.frame.Elapsed = elapsed

	g.switchTo(g.manager.Get(g.current).Update(&g.frame))
	if g.current == core.NullSceneID {
		return false
	}

	g.canvas.Clear()
	g.manager.Get(g.current).Render(g.canvas)
	g.canvas.Show()
	return true
}

func (g *Game) switchTo(next core.SceneID) {
	if next == g.current {
		return
	}
	if next != core.NullSceneID && !g.manager.Has(next) {
		g.log.Error("unknown scene", zap.Uint32("id", uint32(next)))
		panic("game: transition to unknown scene")
	}

	g.log.Info("scene switch", zap.Uint32("from", uint32(g.current)), zap.Uint32("to", uint32(next)))
	g.keys.Reset()
	g.current = next
}

// Run polls terminal events and steps the game at the configured frame rate until quit or ctx is done
// The screen is finalized on return
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer g.recoverCrash()
		g.poll(events, done)
		return nil
	})

	eg.Go(func() error {
		defer close(done)
		defer g.Close()
		defer g.recoverCrash()
		return g.loop(ctx, events)
	})

	return eg.Wait()
}

// poll ends when the screen is finalized, PollEvent then returns nil
func (g *Game) poll(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.cfg.FrameDuration())
	defer ticker.Stop()

	last := g.clock.Now()
	for {
		select {
		case <-ctx.Done():
			g.log.Info("context done", zap.Error(ctx.Err()))
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.HandleKey(ev)
				if g.current == core.NullSceneID {
					g.log.Info("quit")
					return nil
				}
			case *tcell.EventResize:
				g.canvas.Resize()
				g.screen.Sync()
			}

		case <-ticker.C:
			now := g.clock.Now()
			dt := min(now.Sub(last), maxStep)
			last = now
			if !g.Step(dt) {
				g.log.Info("quit")
				return nil
			}
		}
	}
}

func (g *Game) recoverCrash() {
	if r := recover(); r != nil {
		core.HandleCrash(r, g.Close)
	}
}

// Close stops audio and finalizes the screen, safe to call more than once
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		if g.audio != nil {
			g.audio.Close()
		}
		g.screen.Fini()
		g.log.Sync()
	})
}

// Current returns the active scene id, NullSceneID after quit
func (g *Game) Current() core.SceneID { return g.current }

// Manager returns the scene manager
func (g *Game) Manager() *scene.Manager { return g.manager }

// Bus returns the message bus shared by the scenes
func (g *Game) Bus() *event.Bus { return g.bus }

// Canvas returns the drawing surface
func (g *Game) Canvas() *render.Canvas { return g.canvas }

// SolarSystem returns the overworld scene
func (g *Game) SolarSystem() *solarsystem.Scene {
	return g.manager.Get(g.solar).(*solarsystem.Scene)
}

// Assault returns the assault scene with id, false if id is not an assault
func (g *Game) Assault(id core.SceneID) (*assault.Scene, bool) {
	if !g.manager.Has(id) {
		return nil, false
	}
	a, ok := g.manager.Get(id).(*assault.Scene)
	return a, ok
}
