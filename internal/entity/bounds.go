package entity

import (
	"math"

	"splatcast/internal/world"

	"github.com/harbdog/raycaster-go/geom"
)

// Bounds is an axis-aligned box in world units centered on Center
type Bounds struct {
	Center geom.Vector2
	Width  float64
	Height float64
}

// NewBounds creates a box centered at the given position
func NewBounds(x, y, width, height float64) Bounds {
	return Bounds{Center: geom.Vector2{X: x, Y: y}, Width: width, Height: height}
}

// MinMax returns the min/max coordinates of the box
func (b Bounds) MinMax() (minX, minY, maxX, maxY float64) {
	halfWidth := b.Width / 2
	halfHeight := b.Height / 2
	return b.Center.X - halfWidth, b.Center.Y - halfHeight, b.Center.X + halfWidth, b.Center.Y + halfHeight
}

// Intersects checks if this box overlaps another
func (b Bounds) Intersects(other Bounds) bool {
	minX1, minY1, maxX1, maxY1 := b.MinMax()
	minX2, minY2, maxX2, maxY2 := other.MinMax()

	return !(maxX1 < minX2 || maxX2 < minX1 || maxY1 < minY2 || maxY2 < minY1)
}

// Contains checks if a point is inside the box
func (b Bounds) Contains(point geom.Vector2) bool {
	minX, minY, maxX, maxY := b.MinMax()
	return point.X >= minX && point.X <= maxX && point.Y >= minY && point.Y <= maxY
}

// At returns a copy of the box moved to a new center
func (b Bounds) At(center geom.Vector2) Bounds {
	b.Center = center
	return b
}

// Clear reports whether every tile the box overlaps is empty. Tiles outside
// the grid count as walls.
func (b Bounds) Clear(grid *world.TileGrid) bool {
	minX, minY, maxX, maxY := b.MinMax()
	tileSize := grid.TileSize()

	startTileX := int(math.Floor(minX / tileSize))
	startTileY := int(math.Floor(minY / tileSize))
	endTileX := int(math.Floor(maxX / tileSize))
	endTileY := int(math.Floor(maxY / tileSize))

	for tileY := startTileY; tileY <= endTileY; tileY++ {
		for tileX := startTileX; tileX <= endTileX; tileX++ {
			if grid.Tile(tileX, tileY) != world.CellEmpty {
				return false
			}
		}
	}
	return true
}
