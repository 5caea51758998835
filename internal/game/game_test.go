package game

import (
	"errors"
	"math"
	"strings"
	"testing"

	"splatcast/internal/config"
	"splatcast/internal/graphics"
	"splatcast/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

const testArenaLayout = `
111111
1+...1
1..b.1
1....1
111111
`

func newTestGame(t *testing.T) *Game {
	t.Helper()
	mapData, err := world.NewMapLoader(64).Parse(strings.NewReader(testArenaLayout))
	if err != nil {
		t.Fatalf("parse arena: %v", err)
	}
	arena := &world.Arena{
		Key: "test",
		Config: &world.ArenaConfig{
			Name:     "Test",
			SkyColor: [3]int{10, 20, 30},
			Markers: map[string]world.MarkerConfig{
				"b": {Kind: "bot", Scale: 0.9, MapColor: [3]int{230, 70, 70}},
			},
		},
		MapData: mapData,
	}

	cfg := config.Default()
	g, err := NewGame(cfg, arena, graphics.NewSpriteManager(t.TempDir()))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	if !almostEqual(g.camera.X, 96) || !almostEqual(g.camera.Y, 96) {
		t.Errorf("Expected camera on the start tile center, got (%.1f, %.1f)", g.camera.X, g.camera.Y)
	}
	if g.config.Colors.Sky != [3]int{10, 20, 30} {
		t.Errorf("Expected arena sky color to override the default, got %v", g.config.Colors.Sky)
	}
	if g.config.Colors.Ground != config.Default().Colors.Ground {
		t.Error("Unset arena ground color should keep the default")
	}
	if g.entities.Len() != 2 {
		t.Errorf("Expected bot plus player, got %d entities", g.entities.Len())
	}
	if g.weapon != nil {
		t.Error("Expected placeholder weapon when no image exists")
	}
}

func TestScene_ExcludesPlayer(t *testing.T) {
	g := newTestGame(t)
	scene := g.scene()

	if scene.Grid != g.arena.Grid {
		t.Error("Scene should carry the arena grid")
	}
	if len(scene.Sprites) != 1 {
		t.Fatalf("Expected only the bot billboard, got %d", len(scene.Sprites))
	}
	if scene.Sprites[0].Scale != 0.9 {
		t.Errorf("Expected bot scale 0.9, got %.2f", scene.Sprites[0].Scale)
	}
}

func TestTryMove_SlidesAlongWalls(t *testing.T) {
	g := newTestGame(t)

	// Pushing diagonally into the north wall keeps the x component
	g.tryMove(20, -60)
	if !almostEqual(g.camera.X, 116) {
		t.Errorf("Expected x to advance to 116, got %.3f", g.camera.X)
	}
	if !almostEqual(g.camera.Y, 96) {
		t.Errorf("Expected y blocked by the wall, got %.3f", g.camera.Y)
	}

	player, _ := g.entities.Get(g.player)
	if !almostEqual(player.Position().X, g.camera.X) || !almostEqual(player.Position().Y, g.camera.Y) {
		t.Errorf("Player entity %v out of sync with camera (%.1f, %.1f)", player.Position(), g.camera.X, g.camera.Y)
	}
}

func TestShoot(t *testing.T) {
	g := newTestGame(t)

	// Facing east from (96, 96): the east wall face is at x=320
	result := g.shoot()
	if !result.Hit || !almostEqual(result.Distance, 224) {
		t.Fatalf("Expected hit at 224, got %+v", result)
	}
	if len(g.splats) != 1 {
		t.Fatalf("Expected one splat, got %d", len(g.splats))
	}
	splat, ok := g.entities.Get(g.splats[0])
	if !ok {
		t.Fatal("Splat entity missing")
	}
	if splat.Position().X >= result.Point.X {
		t.Errorf("Splat should sit in front of the wall, got x=%.2f", splat.Position().X)
	}

	for i := 0; i < maxSplats+5; i++ {
		g.shoot()
	}
	if len(g.splats) != maxSplats {
		t.Errorf("Expected splats capped at %d, got %d", maxSplats, len(g.splats))
	}
	if g.entities.Len() != maxSplats+2 {
		t.Errorf("Expected old splats removed from the registry, got %d entities", g.entities.Len())
	}
}

func TestHandleInput(t *testing.T) {
	g := newTestGame(t)
	down := map[ebiten.Key]bool{}
	input := newInputHandler(g, func(key ebiten.Key) bool { return down[key] })

	down[ebiten.KeyW] = true
	if err := input.HandleInput(0.1); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}
	if !almostEqual(g.camera.X, 96+g.config.Camera.MoveSpeed*0.1) {
		t.Errorf("Expected forward move along +x, got x=%.3f", g.camera.X)
	}
	down[ebiten.KeyW] = false

	down[ebiten.KeyArrowRight] = true
	input.HandleInput(0.5)
	if !almostEqual(g.camera.Angle, g.config.Camera.RotationSpeed*0.5) {
		t.Errorf("Expected rotation to %.3f, got %.3f", g.config.Camera.RotationSpeed*0.5, g.camera.Angle)
	}
	down[ebiten.KeyArrowRight] = false

	minimap := g.config.Effects.Minimap
	down[ebiten.KeyTab] = true
	input.HandleInput(0.1)
	input.HandleInput(0.1)
	if g.config.Effects.Minimap == minimap {
		t.Error("Expected Tab to toggle the minimap exactly once")
	}

	down[ebiten.KeyEscape] = true
	if err := input.HandleInput(0.1); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}

func TestCamera(t *testing.T) {
	cam := &Camera{X: 10, Y: 20}
	cam.Rotate(-math.Pi / 2)
	if !almostEqual(cam.Angle, 3*math.Pi/2) {
		t.Errorf("Expected angle wrapped to 3pi/2, got %f", cam.Angle)
	}
	if !almostEqual(cam.GetForwardY(), -1) || !almostEqual(cam.GetRightX(), 1) {
		t.Errorf("Unexpected basis forward=(%f, %f) right=(%f, %f)", cam.GetForwardX(), cam.GetForwardY(), cam.GetRightX(), cam.GetRightY())
	}

	pose := cam.Pose()
	if pose.Position.X != 10 || pose.Position.Y != 20 || pose.Heading != cam.Angle {
		t.Errorf("Unexpected pose %+v", pose)
	}
}
