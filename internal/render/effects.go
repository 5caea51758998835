package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"splatcast/internal/config"
	"splatcast/internal/mathutil"
	"splatcast/internal/raycast"
	"splatcast/internal/world"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Overlay geometry in pixels
const (
	crosshairGap       = 6
	crosshairArm       = 12
	crosshairThickness = 2

	weaponWidth        = 280
	weaponHeight       = 140
	weaponBottomMargin = 10
	weaponInsetX       = 10 // per side
	weaponInsetY       = 30 // per side

	minimapDotRadius  = 3
	minimapHeadingLen = 2.0 // tiles
)

var (
	weaponOuterColor = color.RGBA{50, 50, 55, 255}
	weaponInnerColor = color.RGBA{80, 80, 90, 255}

	minimapFloorColor  = color.NRGBA{0, 0, 0, 140}
	minimapRayColor    = color.NRGBA{255, 240, 160, 50}
	minimapViewerColor = color.RGBA{255, 255, 255, 255}

	hudTextColor = color.RGBA{230, 230, 230, 255}
)

// drawVignette darkens the border with concentric translucent frames
func (r *Renderer) drawVignette() {
	intensity := r.config.Effects.VignetteIntensity
	steps := r.config.Effects.VignetteSteps
	if intensity <= 0 || steps <= 0 {
		return
	}

	bounds := r.frame.Bounds()
	thickness := mathutil.IntMax(1, mathutil.IntMin(bounds.Dx(), bounds.Dy())/(4*steps))

	for i := 0; i < steps; i++ {
		alpha := uint8(intensity * (1 - float64(i)/float64(steps)) * 255)
		if alpha == 0 {
			continue
		}
		outer := bounds.Inset(i * thickness)
		if outer.Empty() {
			break
		}
		inner := outer.Inset(thickness)
		shade := color.RGBA{A: alpha} // premultiplied black

		for _, band := range frameBands(outer, inner) {
			blendRect(r.frame, band, shade)
		}
	}
}

// frameBands splits the ring between outer and inner into four rectangles
func frameBands(outer, inner image.Rectangle) [4]image.Rectangle {
	return [4]image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y),
		image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y),
	}
}

// drawMinimap overlays the grid, the cast rays, the viewer and every sprite
// in the top-left corner.
func (r *Renderer) drawMinimap(scene Scene, depth raycast.DepthBuffer) {
	grid := scene.Grid
	scale := r.config.Effects.MinimapScale
	margin := r.config.Effects.MinimapMargin
	if scale <= 0 {
		return
	}

	area := image.Rect(margin, margin, margin+grid.Width()*scale, margin+grid.Height()*scale)
	if area.Intersect(r.frame.Bounds()).Empty() {
		return
	}

	blendRect(r.frame, area, minimapFloorColor)
	for ty := 0; ty < grid.Height(); ty++ {
		for tx := 0; tx < grid.Width(); tx++ {
			cell := grid.Tile(tx, ty)
			if cell == world.CellEmpty {
				continue
			}
			x, y := area.Min.X+tx*scale, area.Min.Y+ty*scale
			fillRect(r.frame, image.Rect(x, y, x+scale, y+scale), r.config.WallColor(cell))
		}
	}

	toMap := func(p geom.Vector2) (float32, float32) {
		mx := geom.Clamp(p.X/grid.TileSize()*float64(scale), 0, float64(area.Dx()))
		my := geom.Clamp(p.Y/grid.TileSize()*float64(scale), 0, float64(area.Dy()))
		return float32(mx), float32(my)
	}

	z := vector.NewRasterizer(area.Dx(), area.Dy())

	viewerX, viewerY := toMap(scene.Pose.Position)
	for _, sample := range depth {
		endX, endY := toMap(sample.Point)
		strokeLine(z, viewerX, viewerY, endX, endY, 1)
	}
	z.Draw(r.frame, area, image.NewUniform(minimapRayColor), image.Point{})

	for _, sprite := range scene.Sprites {
		z.Reset(area.Dx(), area.Dy())
		x, y := toMap(sprite.Position)
		fillCircle(z, x, y, minimapDotRadius)
		z.Draw(r.frame, area, image.NewUniform(sprite.MapColor), image.Point{})
	}

	z.Reset(area.Dx(), area.Dy())
	headingX := viewerX + float32(math.Cos(scene.Pose.Heading)*minimapHeadingLen*float64(scale))
	headingY := viewerY + float32(math.Sin(scene.Pose.Heading)*minimapHeadingLen*float64(scale))
	strokeLine(z, viewerX, viewerY, headingX, headingY, 1.5)
	fillCircle(z, viewerX, viewerY, minimapDotRadius)
	z.Draw(r.frame, area, image.NewUniform(minimapViewerColor), image.Point{})
}

// strokeLine adds a line of the given width as a filled quad
func strokeLine(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// fillCircle adds a 16-sided polygon approximating a circle
func fillCircle(z *vector.Rasterizer, cx, cy, radius float32) {
	const segments = 16
	z.MoveTo(cx+radius, cy)
	for i := 1; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		z.LineTo(cx+radius*float32(math.Cos(angle)), cy+radius*float32(math.Sin(angle)))
	}
	z.ClosePath()
}

// weaponBob is the vertical weapon offset in pixels at elapsed seconds
func (r *Renderer) weaponBob(elapsed float64) int {
	return int(r.config.Effects.BobAmplitude * math.Sin(elapsed*r.config.Effects.BobFrequency))
}

// drawWeapon draws the supplied weapon image bottom-centered, or the
// placeholder shape when there is none.
func (r *Renderer) drawWeapon(weapon image.Image, elapsed float64) {
	bob := r.weaponBob(elapsed)

	if weapon != nil {
		bounds := weapon.Bounds()
		x := r.screenWidth/2 - bounds.Dx()/2
		y := r.screenHeight - bounds.Dy() + bob
		dst := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())
		draw.Draw(r.frame, dst, weapon, bounds.Min, draw.Over)
		return
	}

	x := r.screenWidth/2 - weaponWidth/2
	y := r.screenHeight - weaponHeight - weaponBottomMargin + bob
	outer := image.Rect(x, y, x+weaponWidth, y+weaponHeight)
	fillRect(r.frame, outer, weaponOuterColor)
	fillRect(r.frame, image.Rect(outer.Min.X+weaponInsetX, outer.Min.Y+weaponInsetY, outer.Max.X-weaponInsetX, outer.Max.Y-weaponInsetY), weaponInnerColor)
}

// drawCrosshair draws four arms around the screen center
func (r *Renderer) drawCrosshair() {
	cx, cy := r.screenWidth/2, r.screenHeight/2
	half := crosshairThickness / 2
	c := config.RGB(r.config.Colors.Crosshair)

	arms := []image.Rectangle{
		image.Rect(cx-crosshairGap-crosshairArm, cy-half, cx-crosshairGap, cy-half+crosshairThickness),
		image.Rect(cx+crosshairGap, cy-half, cx+crosshairGap+crosshairArm, cy-half+crosshairThickness),
		image.Rect(cx-half, cy-crosshairGap-crosshairArm, cx-half+crosshairThickness, cy-crosshairGap),
		image.Rect(cx-half, cy+crosshairGap, cx-half+crosshairThickness, cy+crosshairGap+crosshairArm),
	}
	for _, arm := range arms {
		fillRect(r.frame, arm, c)
	}
}

// drawDebugHUD prints the pose and last frame stats in the top-right corner
func (r *Renderer) drawDebugHUD(pose raycast.Pose) {
	stats := r.monitor.Snapshot()
	lines := []string{
		fmt.Sprintf("pos %.1f, %.1f", pose.Position.X, pose.Position.Y),
		fmt.Sprintf("heading %.2f", normalizeAngle(pose.Heading)),
		fmt.Sprintf("frame %.2fms", float64(stats.LastFrameTime.Microseconds())/1000),
		fmt.Sprintf("sprites %d/%d", stats.SpritesDrawn, stats.SpritesDrawn+stats.SpritesCulled),
	}

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  r.frame,
		Src:  image.NewUniform(hudTextColor),
		Face: face,
	}
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		width := drawer.MeasureString(line).Ceil()
		drawer.Dot = fixed.P(r.screenWidth-width-r.config.Effects.MinimapMargin, r.config.Effects.MinimapMargin+(i+1)*lineHeight)
		drawer.DrawString(line)
	}
}
