package world

import (
	"errors"
	"fmt"
	"math"
)

// Cell codes stored in a TileGrid. Any non-zero code is a wall type.
const (
	CellEmpty = 0
	// CellSolid is returned for lookups outside the grid so rays terminate.
	CellSolid = -1
)

var (
	ErrEmptyGrid   = errors.New("tile grid has no cells")
	ErrRaggedGrid  = errors.New("tile grid rows have inconsistent width")
	ErrBadTileSize = errors.New("tile size must be positive")
)

// TileGrid is a rectangular grid of cell codes with a fixed tile edge length
// in world units. It is never mutated after construction.
type TileGrid struct {
	cells    [][]int
	width    int
	height   int
	tileSize float64
}

// NewTileGrid copies cells into a new grid, rejecting malformed input.
func NewTileGrid(cells [][]int, tileSize float64) (*TileGrid, error) {
	if tileSize <= 0 || math.IsNaN(tileSize) || math.IsInf(tileSize, 0) {
		return nil, ErrBadTileSize
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(cells[0])
	copied := make([][]int, len(cells))
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedGrid, y, len(row), width)
		}
		copied[y] = append([]int(nil), row...)
	}

	return &TileGrid{
		cells:    copied,
		width:    width,
		height:   len(cells),
		tileSize: tileSize,
	}, nil
}

// MustTileGrid is NewTileGrid for literal grids known to be well formed.
func MustTileGrid(cells [][]int, tileSize float64) *TileGrid {
	g, err := NewTileGrid(cells, tileSize)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *TileGrid) Width() int        { return g.width }
func (g *TileGrid) Height() int       { return g.height }
func (g *TileGrid) TileSize() float64 { return g.tileSize }

// Tile returns the cell code at tile coordinates, or CellSolid outside the grid.
func (g *TileGrid) Tile(tileX, tileY int) int {
	if tileX < 0 || tileX >= g.width || tileY < 0 || tileY >= g.height {
		return CellSolid
	}
	return g.cells[tileY][tileX]
}

// CellAt returns the cell code covering a world-space point.
// Negative coordinates and points past the extent are treated as walls.
func (g *TileGrid) CellAt(x, y float64) int {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return CellSolid
	}
	return g.Tile(int(x/g.tileSize), int(y/g.tileSize))
}

// IsSolid reports whether the world-space point is inside a wall.
func (g *TileGrid) IsSolid(x, y float64) bool {
	return g.CellAt(x, y) != CellEmpty
}

// TileCenter returns world coordinates of the tile's center.
func (g *TileGrid) TileCenter(tileX, tileY int) (float64, float64) {
	return (float64(tileX) + 0.5) * g.tileSize, (float64(tileY) + 0.5) * g.tileSize
}
