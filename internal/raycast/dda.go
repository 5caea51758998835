package raycast

import (
	"math"

	"splatcast/internal/world"

	"github.com/harbdog/raycaster-go/geom"
)

// Direction components smaller than this are treated as parallel to the axis.
const parallelEpsilon = 1e-9

// Pose is the viewer's position in world units and heading in radians.
type Pose struct {
	Position geom.Vector2
	Heading  float64
}

// Side identifies which kind of grid line a ray crossed when it hit a wall.
type Side int

const (
	SideNone       Side = iota // ray hit nothing
	SideVertical               // crossed a vertical grid line (x = const)
	SideHorizontal             // crossed a horizontal grid line (y = const)
)

func (s Side) String() string {
	switch s {
	case SideVertical:
		return "vertical"
	case SideHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// DepthSample is the result of casting one ray.
type DepthSample struct {
	Column    int     // screen column (ray index) this sample belongs to
	Angle     float64 // absolute ray angle in radians
	Distance  float64 // perpendicular distance to the wall in world units
	RayLength float64 // straight-line distance along the ray in world units
	Hit       bool
	Side      Side
	TexCoord  float64 // 0..1 position along the wall face
	Cell      int     // cell code of the wall that was hit
	TileX     int
	TileY     int
	Point     geom.Vector2 // impact point, or straight-line projection on a miss
}

// Cast traverses grid from origin along angle with the DDA algorithm and
// returns the first wall hit within maxDistance.
//
// The returned Distance is measured perpendicular to a camera plane facing
// angle, which for a single ray equals its length. BuildDepthBuffer
// re-projects it onto the viewer's own camera plane.
func Cast(origin geom.Vector2, angle float64, grid *world.TileGrid, maxDistance float64) DepthSample {
	return castDirection(origin, math.Cos(angle), math.Sin(angle), grid, maxDistance)
}

func castDirection(origin geom.Vector2, rayDirectionX, rayDirectionY float64, grid *world.TileGrid, maxDistance float64) DepthSample {
	if maxDistance < 0 {
		maxDistance = 0
	}
	tileSize := grid.TileSize()

	// Convert world coordinates to grid coordinates for DDA
	positionX := origin.X / tileSize
	positionY := origin.Y / tileSize
	currentTileX := int(math.Floor(positionX))
	currentTileY := int(math.Floor(positionY))

	// How far the ray travels to cross one full cell along each axis
	deltaDistanceX := math.Inf(1)
	if math.Abs(rayDirectionX) >= parallelEpsilon {
		deltaDistanceX = math.Abs(1 / rayDirectionX)
	}
	deltaDistanceY := math.Inf(1)
	if math.Abs(rayDirectionY) >= parallelEpsilon {
		deltaDistanceY = math.Abs(1 / rayDirectionY)
	}

	// Step directions and distances to the first grid line on each axis.
	// An axis the ray never crosses keeps an infinite accumulator.
	stepDirectionX, stepDirectionY := 1, 1
	distanceToNextGridLineX := math.Inf(1)
	distanceToNextGridLineY := math.Inf(1)

	if rayDirectionX < 0 {
		stepDirectionX = -1
	}
	if !math.IsInf(deltaDistanceX, 1) {
		if rayDirectionX < 0 {
			distanceToNextGridLineX = (positionX - float64(currentTileX)) * deltaDistanceX
		} else {
			distanceToNextGridLineX = (float64(currentTileX) + 1 - positionX) * deltaDistanceX
		}
	}

	if rayDirectionY < 0 {
		stepDirectionY = -1
	}
	if !math.IsInf(deltaDistanceY, 1) {
		if rayDirectionY < 0 {
			distanceToNextGridLineY = (positionY - float64(currentTileY)) * deltaDistanceY
		} else {
			distanceToNextGridLineY = (float64(currentTileY) + 1 - positionY) * deltaDistanceY
		}
	}

	if math.IsInf(deltaDistanceX, 1) && math.IsInf(deltaDistanceY, 1) {
		return missSample(origin, rayDirectionX, rayDirectionY, maxDistance)
	}

	// A ray crosses at most width+height cells before leaving the grid,
	// and leaving the grid always hits the solid border sentinel.
	maxSteps := 2*(grid.Width()+grid.Height()) + 2
	side := SideNone

	for steps := 0; steps < maxSteps; steps++ {
		if distanceToNextGridLineX < distanceToNextGridLineY {
			distanceToNextGridLineX += deltaDistanceX
			currentTileX += stepDirectionX
			side = SideVertical
		} else {
			distanceToNextGridLineY += deltaDistanceY
			currentTileY += stepDirectionY
			side = SideHorizontal
		}

		cell := grid.Tile(currentTileX, currentTileY)
		if cell == world.CellEmpty {
			continue
		}

		var perpendicularDistance float64
		if side == SideVertical {
			perpendicularDistance = (float64(currentTileX) - positionX + float64(1-stepDirectionX)/2) / rayDirectionX
		} else {
			perpendicularDistance = (float64(currentTileY) - positionY + float64(1-stepDirectionY)/2) / rayDirectionY
		}
		if perpendicularDistance < 0 {
			perpendicularDistance = 0
		}

		distance := perpendicularDistance * tileSize
		if distance > maxDistance {
			return missSample(origin, rayDirectionX, rayDirectionY, maxDistance)
		}

		// Impact point: exact on the crossed grid line, projected on the other axis
		var impactX, impactY, textureCoordinate float64
		if side == SideVertical {
			impactX = float64(currentTileX) + float64(1-stepDirectionX)/2
			impactY = positionY + perpendicularDistance*rayDirectionY
			textureCoordinate = impactY - math.Floor(impactY)
		} else {
			impactX = positionX + perpendicularDistance*rayDirectionX
			impactY = float64(currentTileY) + float64(1-stepDirectionY)/2
			textureCoordinate = impactX - math.Floor(impactX)
		}

		return DepthSample{
			Distance:  distance,
			RayLength: distance,
			Hit:       true,
			Side:      side,
			TexCoord:  textureCoordinate,
			Cell:      cell,
			TileX:     currentTileX,
			TileY:     currentTileY,
			Point:     geom.Vector2{X: impactX * tileSize, Y: impactY * tileSize},
		}
	}

	return missSample(origin, rayDirectionX, rayDirectionY, maxDistance)
}

// missSample is the "no hit" result clamped to maxDistance. Its point is a
// straight-line projection and is never rendered as a wall.
func missSample(origin geom.Vector2, rayDirectionX, rayDirectionY, maxDistance float64) DepthSample {
	return DepthSample{
		Distance:  maxDistance,
		RayLength: maxDistance,
		Side:      SideNone,
		Cell:      world.CellEmpty,
		Point: geom.Vector2{
			X: origin.X + rayDirectionX*maxDistance,
			Y: origin.Y + rayDirectionY*maxDistance,
		},
	}
}
