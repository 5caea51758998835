package raycast

import (
	"math"

	"splatcast/internal/world"
)

// DepthBuffer holds one sample per ray in left-to-right screen order.
// A new buffer is built every frame and never modified after construction.
type DepthBuffer []DepthSample

// BuildDepthBuffer casts rayCount rays in equal angular increments starting
// at heading - fov/2. Hit distances are re-projected onto the viewer's camera
// plane so projected wall heights do not bulge toward the screen edges.
func BuildDepthBuffer(pose Pose, grid *world.TileGrid, rayCount int, fov, maxDistance float64) DepthBuffer {
	if rayCount < 1 {
		rayCount = 1
	}

	buffer := make(DepthBuffer, rayCount)
	startAngle := pose.Heading - fov/2
	rayStep := fov / float64(rayCount)

	for rayIndex := 0; rayIndex < rayCount; rayIndex++ {
		angle := startAngle + float64(rayIndex)*rayStep
		sample := Cast(pose.Position, angle, grid, maxDistance)
		if sample.Hit {
			sample.Distance = sample.RayLength * math.Cos(angle-pose.Heading)
		}
		sample.Column = rayIndex
		sample.Angle = angle
		buffer[rayIndex] = sample
	}

	return buffer
}

// ColumnFor maps a screen x coordinate to the index of the ray covering it.
func (b DepthBuffer) ColumnFor(screenX, screenWidth int) int {
	if len(b) == 0 || screenWidth <= 0 {
		return -1
	}
	column := screenX * len(b) / screenWidth
	if column < 0 {
		return 0
	}
	if column >= len(b) {
		return len(b) - 1
	}
	return column
}

// At returns the sample covering a screen x coordinate.
func (b DepthBuffer) At(screenX, screenWidth int) DepthSample {
	column := b.ColumnFor(screenX, screenWidth)
	if column < 0 {
		return DepthSample{Distance: math.Inf(1)}
	}
	return b[column]
}
