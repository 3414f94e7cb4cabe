package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/logger"
	"github.com/automoto/ghosthand/scenes"
	"github.com/automoto/ghosthand/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(levelIndex int) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewHandScene(levelIndex),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tunables")
	level := flag.Int("level", -1, "level to start on (default: furthest saved level)")
	debug := flag.Bool("debug", false, "verbose logging")
	reset := flag.Bool("reset", false, "clear saved progress before starting")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			// The logger is not up yet.
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *debug {
		config.Debug.Verbose = true
	}
	if err := logger.Init(config.Debug.Verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.L()

	// Initialize persistence and pick the start level
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
	}
	if *reset {
		if err := systems.ClearGameProgress(); err != nil {
			log.Warn("could not clear progress", zap.Error(err))
		}
	}
	start := *level
	if start < 0 {
		start = 0
		if saved, err := systems.LoadGameProgress(); err != nil {
			log.Warn("could not load progress", zap.Error(err))
		} else if saved != nil {
			start = saved.LevelIndex
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("ghosthand")
	ebiten.SetTPS(config.C.TPS)

	log.Info("starting",
		zap.Int("level", start),
		zap.Duration("step", config.C.FixedStep()),
		zap.Duration("window", config.Record.Window),
	)
	if err := ebiten.RunGame(NewGame(start)); err != nil {
		log.Error("game exited", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
