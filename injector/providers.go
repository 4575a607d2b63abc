// Package injector wires the game from its providers with google/wire
package injector

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/wire"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/audio"
	"github.com/lixenwraith/nongravitar/config"
	"github.com/lixenwraith/nongravitar/engine"
	"github.com/lixenwraith/nongravitar/event"
	"github.com/lixenwraith/nongravitar/game"
	"go.uber.org/zap"
)

// ProviderSet builds a ready game from a config, a screen and a logger
var ProviderSet = wire.NewSet(
	ProvideAssets,
	ProvideTracks,
	audio.NewManager,
	wire.Bind(new(game.Audio), new(*audio.Manager)),
	event.NewBus,
	engine.NewMonotonicTimeProvider,
	wire.Bind(new(engine.TimeProvider), new(*engine.MonotonicTimeProvider)),
	ProvideGame,
)

// Built is the injector output, the audio manager is exposed so main can open the device
type Built struct {
	Game  *game.Game
	Audio *audio.Manager
}

// ProvideAssets loads the embedded assets, a failure is fatal for the game
func ProvideAssets() (*asset.Assets, error) {
	assets, err := asset.Load(asset.Data)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	return assets, nil
}

// ProvideTracks exposes the sound tracks to the audio manager
func ProvideTracks(assets *asset.Assets) map[asset.SoundTrackID]asset.Track {
	return assets.Tracks()
}

// ProvideGame creates the driver with every scene emplaced
func ProvideGame(cfg config.Config, screen tcell.Screen, assets *asset.Assets, a game.Audio, bus *event.Bus, log *zap.Logger, clock engine.TimeProvider) *game.Game {
	return game.New(cfg, screen, assets, a, bus, log, clock).Initialize()
}
