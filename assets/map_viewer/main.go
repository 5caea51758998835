package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"

	"splatcast/internal/config"
	"splatcast/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

type arenaInfo struct {
	Key   string
	Arena *world.Arena
	Err   error
}

type viewer struct {
	cfg        *config.Config
	arenas     []arenaInfo
	arenaIndex int
	lastErr    string
}

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")

	arenas, err := loadArenas(cfg)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	v := &viewer{
		cfg:    cfg,
		arenas: arenas,
	}
	if len(arenas) == 0 {
		v.lastErr = "no arenas loaded"
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Paintball Arena Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if len(v.arenas) == 0 {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.arenaIndex = (v.arenaIndex + 1) % len(v.arenas)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.arenaIndex = (v.arenaIndex - 1 + len(v.arenas)) % len(v.arenas)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	if len(v.arenas) == 0 {
		ebitenutil.DebugPrintAt(screen, v.lastErr, 16, 16)
		return
	}

	info := v.arenas[v.arenaIndex]
	if info.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("arena %s failed to load: %v", info.Key, info.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	v.drawMapPanel(screen, info.Arena, padding, padding, mapAreaW, mapAreaH)
	drawSidebar(screen, info.Arena, sidebarX, padding, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (v *viewer) drawMapPanel(screen *ebiten.Image, arena *world.Arena, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	grid := arena.Grid
	tileSize := w / grid.Width()
	if alt := h / grid.Height(); alt < tileSize {
		tileSize = alt
	}
	if tileSize < 2 {
		tileSize = 2
	}

	originX := x + (w-grid.Width()*tileSize)/2
	originY := y + (h-grid.Height()*tileSize)/2

	floorColor := config.RGB(v.cfg.Colors.Ground)
	if arena.Config.GroundColor != ([3]int{}) {
		floorColor = config.RGB(arena.Config.GroundColor)
	}

	for ty := 0; ty < grid.Height(); ty++ {
		for tx := 0; tx < grid.Width(); tx++ {
			cellColor := floorColor
			if cell := grid.Tile(tx, ty); cell != world.CellEmpty {
				cellColor = v.cfg.WallColor(cell)
			}
			drawFilledRect(screen, originX+tx*tileSize, originY+ty*tileSize, tileSize, tileSize, cellColor)
		}
	}

	drawTileMarkerCircle(screen, originX, originY, tileSize, arena.StartX, arena.StartY, color.RGBA{50, 200, 255, 255}, true)
	for _, marker := range arena.Markers {
		markerConfig := arena.Config.Markers[string(marker.Letter)]
		drawTileMarkerCircle(screen, originX, originY, tileSize, marker.X, marker.Y, config.RGB(markerConfig.MapColor), false)
		drawTileLetter(screen, originX, originY, tileSize, marker.X, marker.Y, string(marker.Letter))
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%s)", arena.Config.Name, arena.Key), x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) to switch arenas, Esc to quit", x+12, y+24)
}

func drawSidebar(screen *ebiten.Image, arena *world.Arena, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	counts := make(map[string]int)
	for _, marker := range arena.Markers {
		counts[string(marker.Letter)]++
	}

	lines := []string{
		fmt.Sprintf("Tiles: %dx%d", arena.Grid.Width(), arena.Grid.Height()),
		fmt.Sprintf("Start: (%d, %d) facing %.0f deg", arena.StartX, arena.StartY, arena.Config.StartHeading),
		fmt.Sprintf("Markers: %d", len(arena.Markers)),
		"",
		"Legend (letter -> kind/sprite)",
		"------------------------------",
	}

	letters := make([]string, 0, len(arena.Config.Markers))
	for letter := range arena.Config.Markers {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	for _, letter := range letters {
		markerConfig := arena.Config.Markers[letter]
		sprite := markerConfig.Sprite
		if sprite == "" {
			sprite = markerConfig.Kind
		}
		lines = append(lines, fmt.Sprintf("%s -> %s/%s x%d", letter, markerConfig.Kind, sprite, counts[letter]))
	}
	lines = append(lines, "", "Cyan: start  1-9: wall codes")

	row := y + 12
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}

func drawTileMarkerCircle(screen *ebiten.Image, originX, originY, tileSize, tx, ty int, clr color.RGBA, stroke bool) {
	if tileSize < 2 {
		return
	}
	centerX := float32(originX + tx*tileSize + tileSize/2)
	centerY := float32(originY + ty*tileSize + tileSize/2)
	radius := float32(tileSize) * 0.35
	vector.DrawFilledCircle(screen, centerX, centerY, radius, clr, true)
	if stroke {
		vector.StrokeCircle(screen, centerX, centerY, radius, 1, color.RGBA{255, 255, 255, 255}, true)
	}
}

func drawTileLetter(screen *ebiten.Image, originX, originY, tileSize, tx, ty int, letter string) {
	if tileSize < 6 || letter == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, letter, originX+tx*tileSize+2, originY+ty*tileSize+1)
}

func loadArenas(cfg *config.Config) ([]arenaInfo, error) {
	catalog, err := world.LoadArenaCatalog(cfg.Arena.Catalog)
	if err != nil {
		return nil, err
	}

	var arenas []arenaInfo
	for _, key := range catalog.Keys() {
		arena, err := catalog.Load(key, cfg.GetTileSize())
		arenas = append(arenas, arenaInfo{Key: key, Arena: arena, Err: err})
	}
	return arenas, nil
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
