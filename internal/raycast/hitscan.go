package raycast

import (
	"math"

	"splatcast/internal/world"

	"github.com/harbdog/raycaster-go/geom"
)

// HitscanResult reports where an instant shot landed.
type HitscanResult struct {
	Hit      bool
	Point    geom.Vector2
	Distance float64
	Cell     int
}

// Hitscan fires an instant ray for shooting. On a hit the point and distance
// come straight from the caster so they cannot drift apart. On a miss the
// point is the straight-line projection at maxRange, for display only.
func Hitscan(origin geom.Vector2, angle, maxRange float64, grid *world.TileGrid) HitscanResult {
	sample := Cast(origin, angle, grid, maxRange)
	if !sample.Hit {
		return HitscanResult{
			Point: geom.Vector2{
				X: origin.X + math.Cos(angle)*maxRange,
				Y: origin.Y + math.Sin(angle)*maxRange,
			},
			Distance: maxRange,
		}
	}

	return HitscanResult{
		Hit:      true,
		Point:    sample.Point,
		Distance: sample.RayLength,
		Cell:     sample.Cell,
	}
}
