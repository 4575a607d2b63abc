//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/wire"
	"github.com/lixenwraith/nongravitar/config"
	"go.uber.org/zap"
)

func InitializeGame(cfg config.Config, screen tcell.Screen, log *zap.Logger) (*Built, error) {
	wire.Build(ProviderSet, wire.Struct(new(Built), "*"))
	return nil, nil
}
