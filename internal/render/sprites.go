package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"splatcast/internal/mathutil"
	"splatcast/internal/raycast"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/draw"
)

// Sprite is a flat billboard placed in the world. The renderer only reads it.
type Sprite struct {
	Position geom.Vector2
	Image    image.Image
	Scale    float64    // 1 is one tile tall
	MapColor color.RGBA // minimap dot
}

// projectedSprite holds the per-frame view-space data of a visible sprite
type projectedSprite struct {
	sprite   Sprite
	distance float64 // Euclidean, used for far-to-near ordering
	depth    float64 // perpendicular, used for sizing and occlusion
	bearing  float64 // angle from the view direction, in [-pi, pi]
}

// drawSprites renders billboards far-to-near against the depth buffer and
// reports how many were drawn and how many were culled or fully occluded.
func (r *Renderer) drawSprites(pose raycast.Pose, sprites []Sprite, depth raycast.DepthBuffer) (drawn, culled int) {
	visible := make([]projectedSprite, 0, len(sprites))
	for _, sprite := range sprites {
		projected, ok := r.projectSprite(pose, sprite)
		if !ok {
			culled++
			continue
		}
		visible = append(visible, projected)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].distance > visible[j].distance
	})

	for _, projected := range visible {
		if r.drawSprite(projected, depth) > 0 {
			drawn++
		} else {
			culled++
		}
	}
	return drawn, culled
}

// projectSprite computes distance and bearing, rejecting sprites outside the
// widened view cone, beyond max depth, or on top of the viewer.
func (r *Renderer) projectSprite(pose raycast.Pose, sprite Sprite) (projectedSprite, bool) {
	if sprite.Image == nil || sprite.Image.Bounds().Empty() {
		return projectedSprite{}, false
	}

	dx := sprite.Position.X - pose.Position.X
	dy := sprite.Position.Y - pose.Position.Y
	distance := math.Hypot(dx, dy)
	if distance < 1e-6 || distance > r.config.GetMaxDepth() {
		return projectedSprite{}, false
	}

	bearing := normalizeAngle(math.Atan2(dy, dx) - pose.Heading)
	if math.Abs(bearing) > r.fov/2+r.config.Sprites.FOVMargin {
		return projectedSprite{}, false
	}

	depth := distance * math.Cos(bearing)
	if depth <= 0 {
		return projectedSprite{}, false
	}

	return projectedSprite{
		sprite:   sprite,
		distance: distance,
		depth:    depth,
		bearing:  bearing,
	}, true
}

// spriteRect is the on-screen rectangle of a projected sprite, unclipped.
// Its bottom edge sits on the floor line of a wall at the same depth.
func (r *Renderer) spriteRect(projected projectedSprite) image.Rectangle {
	scale := projected.sprite.Scale
	if scale <= 0 {
		scale = 1
	}

	tileHeight := r.projectedHeight(projected.depth)
	height := mathutil.IntClamp(int(tileHeight*scale), 1, 4*r.screenHeight)

	bounds := projected.sprite.Image.Bounds()
	width := int(float64(height) * float64(bounds.Dx()) / float64(bounds.Dy()))
	width = mathutil.IntClamp(width, 1, 4*r.screenWidth)

	centerX := int((projected.bearing + r.fov/2) / r.fov * float64(r.screenWidth))
	floorY := int(float64(r.screenHeight)/2 + math.Min(tileHeight, float64(4*r.screenHeight))/2)

	return image.Rect(centerX-width/2, floorY-height, centerX-width/2+width, floorY)
}

// drawSprite scales the billboard into place and draws every screen column
// where it is nearer than the wall by more than the depth epsilon. It
// returns the number of columns drawn.
func (r *Renderer) drawSprite(projected projectedSprite, depth raycast.DepthBuffer) int {
	target := r.spriteRect(projected)
	visible := target.Intersect(r.frame.Bounds())
	if visible.Empty() {
		return 0
	}

	// Only the on-screen part is scaled; Scale maps the full target rect.
	scaled := image.NewRGBA(visible)
	source := projected.sprite.Image
	draw.NearestNeighbor.Scale(scaled, target, source, source.Bounds(), draw.Src, nil)

	epsilon := r.config.Sprites.DepthEpsilon
	fog := r.fogFactor(projected.depth)
	columns := 0

	for x := visible.Min.X; x < visible.Max.X; x++ {
		if projected.depth >= depth.At(x, r.screenWidth).Distance-epsilon {
			continue
		}
		columns++
		for y := visible.Min.Y; y < visible.Max.Y; y++ {
			src := scaled.RGBAAt(x, y)
			if src.A == 0 {
				continue
			}
			r.frame.SetRGBA(x, y, r.compositeFogged(r.frame.RGBAAt(x, y), src, fog))
		}
	}
	return columns
}

// compositeFogged fogs a premultiplied source pixel and draws it over dst
func (r *Renderer) compositeFogged(dst, src color.RGBA, factor float64) color.RGBA {
	fog := r.config.FogColor()
	alpha := float64(src.A) / 255
	inverse := 1 - alpha

	channel := func(d, s, f uint8) uint8 {
		fogged := float64(s)*factor + float64(f)*(1-factor)*alpha
		return clampChannel(fogged + float64(d)*inverse)
	}

	return color.RGBA{
		R: channel(dst.R, src.R, fog.R),
		G: channel(dst.G, src.G, fog.G),
		B: channel(dst.B, src.B, fog.B),
		A: clampChannel(float64(src.A) + float64(dst.A)*inverse),
	}
}

// normalizeAngle wraps an angle into [-pi, pi]
func normalizeAngle(angle float64) float64 {
	return math.Remainder(angle, 2*math.Pi)
}
