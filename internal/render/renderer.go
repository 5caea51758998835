package render

import (
	"errors"
	"image"
	"image/color"

	"splatcast/internal/config"
	"splatcast/internal/monitoring"
	"splatcast/internal/raycast"
	"splatcast/internal/world"

	"golang.org/x/image/draw"
)

// ErrNoGrid is returned when a scene is rendered without a tile grid.
var ErrNoGrid = errors.New("render: scene has no tile grid")

// Scene is everything the renderer reads for one frame. None of it is
// modified by RenderFrame.
type Scene struct {
	Grid    *world.TileGrid
	Pose    raycast.Pose
	Sprites []Sprite
	Elapsed float64     // seconds, drives the weapon bob
	Weapon  image.Image // nil draws the placeholder shape
}

// Frame is the result of one RenderFrame call.
type Frame struct {
	Image *image.RGBA
	Depth raycast.DepthBuffer
}

// Renderer composes first-person frames into an RGBA image
type Renderer struct {
	config  *config.Config
	frame   *image.RGBA
	monitor *monitoring.FrameMonitor

	screenWidth  int
	screenHeight int
	fov          float64
}

// NewRenderer creates a renderer sized to the configured screen
func NewRenderer(cfg *config.Config) *Renderer {
	width, height := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	return &Renderer{
		config:       cfg,
		frame:        image.NewRGBA(image.Rect(0, 0, width, height)),
		monitor:      monitoring.NewFrameMonitor(),
		screenWidth:  width,
		screenHeight: height,
		fov:          cfg.FOVRadians(),
	}
}

// RenderFrame draws one frame. The returned image is owned by the renderer
// and overwritten by the next call; the depth buffer is new every frame.
func (r *Renderer) RenderFrame(scene Scene) (*Frame, error) {
	if scene.Grid == nil {
		return nil, ErrNoGrid
	}

	frameTimer := r.monitor.StartFrame()
	defer frameTimer.EndFrame()

	r.drawBackground()

	raycastTimer := r.monitor.StartRaycast()
	depth := raycast.BuildDepthBuffer(scene.Pose, scene.Grid, r.config.GetRayCount(), r.fov, r.config.GetMaxDepth())
	raycastTimer.EndRaycast()

	r.drawWalls(depth)

	drawn, culled := r.drawSprites(scene.Pose, scene.Sprites, depth)
	r.monitor.RecordSprites(drawn, culled)

	effects := r.config.Effects
	r.drawVignette()
	if effects.Minimap {
		r.drawMinimap(scene, depth)
	}
	if effects.Weapon {
		r.drawWeapon(scene.Weapon, scene.Elapsed)
	}
	if effects.Crosshair {
		r.drawCrosshair()
	}
	if effects.DebugHUD {
		r.drawDebugHUD(scene.Pose)
	}

	return &Frame{Image: r.frame, Depth: depth}, nil
}

// Stats exposes the renderer's frame monitor
func (r *Renderer) Stats() *monitoring.FrameMonitor {
	return r.monitor
}

// drawBackground fills the sky and ground halves
func (r *Renderer) drawBackground() {
	horizon := r.screenHeight / 2
	fillRect(r.frame, image.Rect(0, 0, r.screenWidth, horizon), r.config.SkyColor())
	fillRect(r.frame, image.Rect(0, horizon, r.screenWidth, r.screenHeight), r.config.GroundColor())
}

func fillRect(dst draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// blendRect composites a translucent color over rect
func blendRect(dst draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Over)
}
