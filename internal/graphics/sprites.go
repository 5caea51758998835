package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Placeholder colors by sprite name, used when no PNG exists
var placeholderColors = map[string]color.RGBA{
	"bot":       {230, 70, 70, 255},
	"player":    {70, 150, 255, 255},
	"paintball": {255, 210, 64, 255},
	"flag":      {90, 230, 140, 255},
}

var unknownColor = color.RGBA{128, 128, 128, 255}

// SpriteManager loads billboard images by name and falls back to
// procedural placeholders.
type SpriteManager struct {
	sprites    map[string]image.Image
	missing    map[string]bool // names already searched for without success
	searchDirs []string
}

// NewSpriteManager searches the given directories, in order, for <name>.png
func NewSpriteManager(searchDirs ...string) *SpriteManager {
	return &SpriteManager{
		sprites:    make(map[string]image.Image),
		missing:    make(map[string]bool),
		searchDirs: searchDirs,
	}
}

// GetSprite returns the named image, loading it on first use. Names with no
// file on disk get a placeholder shape.
func (sm *SpriteManager) GetSprite(name string) image.Image {
	if sprite, ok := sm.Lookup(name); ok {
		return sprite
	}

	sprite := createPlaceholder(name)
	sm.sprites[name] = sprite
	return sprite
}

// Lookup returns the named image only if a file for it exists.
func (sm *SpriteManager) Lookup(name string) (image.Image, bool) {
	if sprite, exists := sm.sprites[name]; exists {
		return sprite, true
	}
	if sm.missing[name] {
		return nil, false
	}

	for _, dir := range sm.searchDirs {
		spritePath := filepath.Join(dir, name+".png")
		sprite, err := LoadImage(spritePath)
		if err == nil {
			sm.sprites[name] = sprite
			return sprite, true
		}
		if !os.IsNotExist(err) {
			log.Printf("[Sprites] %v", err)
		}
	}

	sm.missing[name] = true
	return nil, false
}

// LoadImage decodes an image file
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func createPlaceholder(name string) *image.RGBA {
	c, ok := placeholderColors[name]
	if !ok {
		c = unknownColor
	}

	switch name {
	case "paintball":
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		z := vector.NewRasterizer(16, 16)
		z.MoveTo(8, 2)
		for i := 1; i < 16; i++ {
			angle := 2 * math.Pi * float64(i) / 16
			z.LineTo(8+6*float32(math.Sin(angle)), 8-6*float32(math.Cos(angle)))
		}
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
		return img
	case "flag":
		img := image.NewRGBA(image.Rect(0, 0, 16, 32))
		pole := color.RGBA{200, 200, 200, 255}
		draw.Draw(img, image.Rect(2, 0, 4, 32), image.NewUniform(pole), image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(4, 2, 16, 12), image.NewUniform(c), image.Point{}, draw.Src)
		return img
	default:
		// Tall body with a transparent border so the silhouette reads as a billboard
		img := image.NewRGBA(image.Rect(0, 0, 16, 32))
		draw.Draw(img, image.Rect(3, 2, 13, 32), image.NewUniform(c), image.Point{}, draw.Src)
		return img
	}
}
