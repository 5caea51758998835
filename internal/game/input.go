package game

import (
	"splatcast/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputHandler handles all user input for the viewer
type InputHandler struct {
	game    *Game
	keys    *keytracker.KeyStateTracker
	pressed func(ebiten.Key) bool
}

// NewInputHandler creates a new input handler reading the live keyboard
func NewInputHandler(game *Game) *InputHandler {
	return newInputHandler(game, ebiten.IsKeyPressed)
}

func newInputHandler(game *Game, pressed func(ebiten.Key) bool) *InputHandler {
	return &InputHandler{
		game:    game,
		keys:    keytracker.NewWithSource(pressed),
		pressed: pressed,
	}
}

// HandleInput processes one tick of input. It returns ebiten.Termination
// when the player quits.
func (ih *InputHandler) HandleInput(dt float64) error {
	if ih.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	ih.handleMovementInput(dt)
	ih.handleToggleInput()
	if ih.keys.IsKeyJustPressed(ebiten.KeySpace) {
		ih.game.shoot()
	}
	return nil
}

// handleMovementInput processes movement and camera controls
func (ih *InputHandler) handleMovementInput(dt float64) {
	cam := ih.game.camera
	camera := ih.game.config.Camera

	if ih.pressed(ebiten.KeyArrowLeft) || ih.pressed(ebiten.KeyQ) {
		cam.Rotate(-camera.RotationSpeed * dt)
	}
	if ih.pressed(ebiten.KeyArrowRight) || ih.pressed(ebiten.KeyE) {
		cam.Rotate(camera.RotationSpeed * dt)
	}

	var forward, strafe float64
	if ih.pressed(ebiten.KeyW) || ih.pressed(ebiten.KeyArrowUp) {
		forward++
	}
	if ih.pressed(ebiten.KeyS) || ih.pressed(ebiten.KeyArrowDown) {
		forward--
	}
	if ih.pressed(ebiten.KeyD) {
		strafe++
	}
	if ih.pressed(ebiten.KeyA) {
		strafe--
	}
	if forward == 0 && strafe == 0 {
		return
	}

	step := camera.MoveSpeed * dt
	dx := (cam.GetForwardX()*forward + cam.GetRightX()*strafe) * step
	dy := (cam.GetForwardY()*forward + cam.GetRightY()*strafe) * step
	ih.game.tryMove(dx, dy)
}

// handleToggleInput flips overlay switches
func (ih *InputHandler) handleToggleInput() {
	effects := &ih.game.config.Effects
	if ih.keys.IsKeyJustPressed(ebiten.KeyTab) {
		effects.Minimap = !effects.Minimap
	}
	if ih.keys.IsKeyJustPressed(ebiten.KeyF3) {
		effects.DebugHUD = !effects.DebugHUD
	}
	if ih.keys.IsKeyJustPressed(ebiten.KeyC) {
		effects.Crosshair = !effects.Crosshair
	}
}
