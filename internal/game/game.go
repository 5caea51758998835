package game

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"splatcast/internal/config"
	"splatcast/internal/entity"
	"splatcast/internal/graphics"
	"splatcast/internal/raycast"
	"splatcast/internal/render"
	"splatcast/internal/world"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	perfLogInterval = 300 // frames
	maxSplats       = 32
	splatScale      = 0.15
	playerSize      = 0.4 // tiles
)

var splatColor = color.RGBA{255, 80, 200, 255}

// Game is the Ebiten entry point: it moves the camera from keyboard input
// and hands one scene per frame to the renderer.
type Game struct {
	config   *config.Config
	arena    *world.Arena
	renderer *render.Renderer
	entities *entity.Registry
	sprites  *graphics.SpriteManager
	camera   *Camera
	input    *InputHandler

	player  entity.ID
	splats  []entity.ID // oldest first
	weapon  image.Image
	elapsed float64 // seconds
}

// NewGame places the player on the arena's start tile and spawns its markers
func NewGame(cfg *config.Config, arena *world.Arena, sprites *graphics.SpriteManager) (*Game, error) {
	if arena.Config.SkyColor != ([3]int{}) {
		cfg.Colors.Sky = arena.Config.SkyColor
	}
	if arena.Config.GroundColor != ([3]int{}) {
		cfg.Colors.Ground = arena.Config.GroundColor
	}

	registry := entity.NewRegistry()
	if err := registry.SpawnMarkers(arena); err != nil {
		return nil, fmt.Errorf("arena %s: %w", arena.Key, err)
	}

	startX, startY := arena.StartPosition()
	size := playerSize * arena.Grid.TileSize()
	player := registry.Spawn(entity.Entity{
		Kind:   entity.KindPlayer,
		Bounds: entity.NewBounds(startX, startY, size, size),
		Sprite: entity.KindPlayer.String(),
		Scale:  1,
	})

	weapon, _ := sprites.Lookup("weapon")

	g := &Game{
		config:   cfg,
		arena:    arena,
		renderer: render.NewRenderer(cfg),
		entities: registry,
		sprites:  sprites,
		camera:   &Camera{X: startX, Y: startY, Angle: geom.Radians(arena.Config.StartHeading)},
		player:   player.ID,
		weapon:   weapon,
	}
	g.input = NewInputHandler(g)
	return g, nil
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.elapsed += dt
	return g.input.HandleInput(dt)
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame, err := g.renderer.RenderFrame(g.scene())
	if err != nil {
		log.Printf("[Render] %v", err)
		return
	}
	screen.WritePixels(frame.Image.Pix)

	stats := g.renderer.Stats().Snapshot()
	if stats.FrameCount%perfLogInterval == 0 {
		log.Printf("[Perf] frames=%d last=%v avg=%v raycast=%v sprites=%d/%d",
			stats.FrameCount, stats.LastFrameTime, stats.AverageFrameTime, stats.LastRaycastTime,
			stats.SpritesDrawn, stats.SpritesDrawn+stats.SpritesCulled)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

// scene collects what the renderer needs for the current frame
func (g *Game) scene() render.Scene {
	return render.Scene{
		Grid:    g.arena.Grid,
		Pose:    g.camera.Pose(),
		Sprites: g.entities.Billboards(g.sprites, g.player),
		Elapsed: g.elapsed,
		Weapon:  g.weapon,
	}
}

// tryMove moves the player by (dx, dy), sliding along walls by trying
// each axis on its own.
func (g *Game) tryMove(dx, dy float64) {
	grid := g.arena.Grid
	if target := (geom.Vector2{X: g.camera.X + dx, Y: g.camera.Y}); g.entities.CanMoveTo(g.player, target, grid) {
		g.camera.X = target.X
	}
	if target := (geom.Vector2{X: g.camera.X, Y: g.camera.Y + dy}); g.entities.CanMoveTo(g.player, target, grid) {
		g.camera.Y = target.Y
	}
	if err := g.entities.Move(g.player, geom.Vector2{X: g.camera.X, Y: g.camera.Y}); err != nil {
		log.Printf("[Game] %v", err)
	}
}

// shoot fires a hitscan along the view direction and leaves a splat
// billboard just in front of the impact point.
func (g *Game) shoot() raycast.HitscanResult {
	pose := g.camera.Pose()
	result := raycast.Hitscan(pose.Position, pose.Heading, g.config.GetMaxDepth(), g.arena.Grid)
	if !result.Hit {
		log.Printf("[Hitscan] miss, projected to (%.1f, %.1f)", result.Point.X, result.Point.Y)
		return result
	}
	log.Printf("[Hitscan] hit cell %d at (%.1f, %.1f), distance %.1f", result.Cell, result.Point.X, result.Point.Y, result.Distance)

	// Pull the splat off the wall face so it is not occluded by it
	backoff := g.config.Sprites.DepthEpsilon + 1
	position := geom.Vector2{
		X: result.Point.X - g.camera.GetForwardX()*backoff,
		Y: result.Point.Y - g.camera.GetForwardY()*backoff,
	}
	splat := g.entities.Spawn(entity.Entity{
		Kind:     entity.KindPaintball,
		Bounds:   entity.NewBounds(position.X, position.Y, 1, 1),
		Sprite:   entity.KindPaintball.String(),
		Scale:    splatScale,
		MapColor: splatColor,
	})
	g.splats = append(g.splats, splat.ID)
	if len(g.splats) > maxSplats {
		g.entities.Remove(g.splats[0])
		g.splats = g.splats[1:]
	}
	return result
}
