package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// ErrNoSpawn is returned for arenas without a '+' start marker.
var ErrNoSpawn = errors.New("arena has no starting position")

// MarkerSpawn is a lowercase letter placed in a map file. The cell under it
// is empty; the letter is resolved to a billboard by the arena catalog.
type MarkerSpawn struct {
	X, Y   int
	Letter rune
}

// MapData contains the loaded arena layout
type MapData struct {
	Grid    *TileGrid
	Markers []MarkerSpawn
	StartX  int
	StartY  int
}

// StartPosition returns the world-space center of the start tile.
func (m *MapData) StartPosition() (float64, float64) {
	return m.Grid.TileCenter(m.StartX, m.StartY)
}

// MapLoader reads arena layouts from text files.
//
// Format, one row per line:
//
//	.      empty floor
//	1-9    wall with that cell code
//	+      player start (empty floor)
//	a-z    marker letter (empty floor)
//
// Blank lines and lines starting with "//" are skipped.
type MapLoader struct {
	tileSize float64
}

// NewMapLoader creates a new map loader producing grids with the given tile size
func NewMapLoader(tileSize float64) *MapLoader {
	return &MapLoader{tileSize: tileSize}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	mapData, err := ml.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}
	log.Printf("[MapLoader] Loaded %s (%dx%d, %d markers)", mapPath, mapData.Grid.Width(), mapData.Grid.Height(), len(mapData.Markers))
	return mapData, nil
}

// Parse reads a map layout from r.
func (ml *MapLoader) Parse(r io.Reader) (*MapData, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}

	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	mapData := &MapData{
		StartX: -1,
		StartY: -1,
	}
	cells := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		for x, char := range []rune(line) {
			switch {
			case char == '.':
				row = append(row, CellEmpty)
			case char >= '1' && char <= '9':
				row = append(row, int(char-'0'))
			case char == '+':
				if mapData.StartX != -1 {
					return nil, fmt.Errorf("second start marker at (%d, %d)", x, y)
				}
				mapData.StartX, mapData.StartY = x, y
				row = append(row, CellEmpty)
			case char >= 'a' && char <= 'z':
				mapData.Markers = append(mapData.Markers, MarkerSpawn{X: x, Y: y, Letter: char})
				row = append(row, CellEmpty)
			default:
				return nil, fmt.Errorf("unknown map character %q at (%d, %d)", char, x, y)
			}
		}
		cells[y] = row
	}

	if mapData.StartX == -1 {
		return nil, ErrNoSpawn
	}

	grid, err := NewTileGrid(cells, ml.tileSize)
	if err != nil {
		return nil, err
	}
	mapData.Grid = grid
	return mapData, nil
}
