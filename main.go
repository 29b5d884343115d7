package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jvreeland/particlebox/sim"
)

var (
	configPath = flag.String("config", "", "optional gcfg config file")
	gridFlag   = flag.Bool("grid", false, "start with the spatial grid overlay visible")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(cfg, *gridFlag)
	if err != nil {
		log.Fatal(err)
	}

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// NewGame builds the host around a fresh simulation state.
func NewGame(cfg hostConfig, showGrid bool) (*Game, error) {
	state, err := sim.NewState(cfg.simConfig())
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		state:    state,
		showGrid: showGrid,
	}, nil
}
