package render

import (
	"image"
	"image/color"
	"math"

	"splatcast/internal/mathutil"
	"splatcast/internal/raycast"
)

// nearPlane keeps projected heights finite at zero distance
const nearPlane = 0.001

// projectedHeight is the unclamped on-screen height of a tile-tall object
// at perpendicular distance.
func (r *Renderer) projectedHeight(distance float64) float64 {
	return r.config.GetTileSize() * r.config.Raycast.Projection / (distance + nearPlane)
}

// wallHeight clamps the projected height so point-blank walls stay bounded
func (r *Renderer) wallHeight(distance float64) int {
	height := int(r.projectedHeight(distance))
	return mathutil.IntClamp(height, r.config.Raycast.MinWall, 4*r.screenHeight)
}

// drawWalls renders one vertical strip per hit sample
func (r *Renderer) drawWalls(depth raycast.DepthBuffer) {
	if len(depth) == 0 {
		return
	}
	stripWidth := int(math.Ceil(float64(r.screenWidth) / float64(len(depth))))

	for _, sample := range depth {
		if !sample.Hit {
			continue
		}
		x := sample.Column * r.screenWidth / len(depth)
		height := r.wallHeight(sample.Distance)
		top := (r.screenHeight - height) / 2
		fillRect(r.frame, image.Rect(x, top, x+stripWidth, top+height), r.wallShade(sample))
	}
}

// wallShade applies distance lighting, side shading and fog to the wall's base color
func (r *Renderer) wallShade(sample raycast.DepthSample) color.RGBA {
	brightness := math.Max(r.config.Lighting.BrightnessMin, 1-sample.Distance/r.config.GetMaxDepth())
	if sample.Side == raycast.SideHorizontal {
		brightness *= r.config.Lighting.SideShade
	}

	base := r.config.WallColor(sample.Cell)
	lit := color.RGBA{
		R: scaleChannel(base.R, brightness),
		G: scaleChannel(base.G, brightness),
		B: scaleChannel(base.B, brightness),
		A: 255,
	}
	return r.applyFog(lit, r.fogFactor(sample.Distance))
}

// fogFactor is the share of the wall color left at distance: 1 up close, toward 0 far away.
func (r *Renderer) fogFactor(distance float64) float64 {
	return math.Exp(-r.config.Fog.Density * distance)
}

// applyFog blends an opaque color toward the fog color
func (r *Renderer) applyFog(c color.RGBA, factor float64) color.RGBA {
	fog := r.config.FogColor()
	return color.RGBA{
		R: mix(c.R, fog.R, factor),
		G: mix(c.G, fog.G, factor),
		B: mix(c.B, fog.B, factor),
		A: c.A,
	}
}

func mix(c, fog uint8, factor float64) uint8 {
	return clampChannel(float64(c)*factor + float64(fog)*(1-factor))
}

func scaleChannel(c uint8, factor float64) uint8 {
	return clampChannel(float64(c) * factor)
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
