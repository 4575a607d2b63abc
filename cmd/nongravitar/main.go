package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/config"
	"github.com/lixenwraith/nongravitar/core"
	"github.com/lixenwraith/nongravitar/injector"
	"github.com/lixenwraith/nongravitar/logging"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	configFlag   = flag.String("config", "", "YAML config file, defaults are used when empty")
	logFlag      = flag.String("log", "", "Log file, logging is disabled when empty")
	logLevelFlag = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	seedFlag     = flag.Uint64("seed", 0, "World seed, 0 keeps the configured seed")
	debugFlag    = flag.Bool("debug", false, "Enable debug keys (Delete/F4 toggle the frame)")
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nongravitar: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	cfg.Debug = cfg.Debug || *debugFlag

	log, err := logging.New(*logFlag, *logLevelFlag)
	if err != nil {
		return err
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	// Panic recovery: the terminal must be restored before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			log.Error("crash", zap.Any("panic", r))
			core.HandleCrash(r, screen.Fini)
		}
	}()

	built, err := injector.InitializeGame(cfg, screen, log)
	if err != nil {
		screen.Fini()
		log.Error("startup", zap.Error(err))
		return err
	}
	g := built.Game
	defer g.Close()

	// Non-fatal, the game runs silent without a device
	if err := built.Audio.Init(); err != nil {
		log.Warn("continuing without audio", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("start",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Uint64("seed", cfg.Seed),
		zap.Bool("debug", cfg.Debug))

	if err := g.Run(ctx); err != nil {
		log.Error("run", zap.Error(err))
		return err
	}
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := config.Load(f)
	if err != nil {
		return config.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
