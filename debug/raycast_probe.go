package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"splatcast/internal/config"
	"splatcast/internal/raycast"
	"splatcast/internal/world"

	"github.com/harbdog/raycaster-go/geom"
)

// Prints an arena and the depth buffer seen from its start tile.
// Usage: go run ./debug [arena]
func main() {
	cfg := config.MustLoadConfig("config.yaml")

	catalog, err := world.LoadArenaCatalog(cfg.Arena.Catalog)
	if err != nil {
		log.Fatalf("Failed to load arena catalog: %v", err)
	}

	name := cfg.Arena.Name
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	arena, err := catalog.Load(name, cfg.GetTileSize())
	if err != nil {
		log.Fatalf("Failed to load arena %q (available: %v): %v", name, catalog.Keys(), err)
	}

	fmt.Printf("Arena %s (%s)\n", arena.Config.Name, arena.Key)
	fmt.Println("===========================")
	markers := make(map[[2]int]rune)
	for _, m := range arena.Markers {
		markers[[2]int{m.X, m.Y}] = m.Letter
	}
	for y := 0; y < arena.Grid.Height(); y++ {
		for x := 0; x < arena.Grid.Width(); x++ {
			switch cell := arena.Grid.Tile(x, y); {
			case x == arena.StartX && y == arena.StartY:
				fmt.Print("+")
			case markers[[2]int{x, y}] != 0:
				fmt.Printf("%c", markers[[2]int{x, y}])
			case cell == world.CellEmpty:
				fmt.Print(".")
			default:
				fmt.Print(cell)
			}
		}
		fmt.Println()
	}

	startX, startY := arena.StartPosition()
	pose := raycast.Pose{
		Position: geom.Vector2{X: startX, Y: startY},
		Heading:  geom.Radians(arena.Config.StartHeading),
	}
	buffer := raycast.BuildDepthBuffer(pose, arena.Grid, 9, cfg.FOVRadians(), cfg.GetMaxDepth())

	fmt.Println("\nDepth buffer (9 rays):")
	for _, sample := range buffer {
		fmt.Printf("col %d  angle %6.1f  dist %7.1f  ray %7.1f  side %-10s  tile (%d, %d) cell %d\n",
			sample.Column, sample.Angle*180/math.Pi, sample.Distance, sample.RayLength,
			sample.Side, sample.TileX, sample.TileY, sample.Cell)
	}
}
