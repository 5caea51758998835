package main

import (
	"log"

	"splatcast/internal/config"
	"splatcast/internal/game"
	"splatcast/internal/graphics"
	"splatcast/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Load the arena catalog and the configured arena
	catalog, err := world.LoadArenaCatalog(cfg.Arena.Catalog)
	if err != nil {
		log.Fatal(err)
	}
	arena, err := catalog.Load(cfg.Arena.Name, cfg.GetTileSize())
	if err != nil {
		log.Fatalf("Failed to load arena %q (available: %v): %v", cfg.Arena.Name, catalog.Keys(), err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g, err := game.NewGame(cfg, arena, graphics.NewSpriteManager("assets/sprites"))
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
