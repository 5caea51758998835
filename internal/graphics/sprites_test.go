package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestGetSprite_LoadsPNGFromSearchDirs(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 4, 8))
	img.SetRGBA(1, 1, color.RGBA{1, 2, 3, 255})
	writePNG(t, filepath.Join(second, "bot.png"), img)

	sm := NewSpriteManager(first, second)
	sprite := sm.GetSprite("bot")
	if sprite.Bounds().Dx() != 4 || sprite.Bounds().Dy() != 8 {
		t.Fatalf("Expected the 4x8 file, got %v", sprite.Bounds())
	}
	r, g, b, _ := sprite.At(1, 1).RGBA()
	if r>>8 != 1 || g>>8 != 2 || b>>8 != 3 {
		t.Errorf("Unexpected pixel (%d, %d, %d)", r>>8, g>>8, b>>8)
	}

	if again := sm.GetSprite("bot"); again != sprite {
		t.Error("Expected the loaded sprite to be cached")
	}
}

func TestGetSprite_Placeholders(t *testing.T) {
	sm := NewSpriteManager(t.TempDir())

	testCases := []struct {
		name   string
		width  int
		height int
		probe  image.Point
		want   color.RGBA
	}{
		{"bot", 16, 32, image.Pt(8, 16), placeholderColors["bot"]},
		{"flag", 16, 32, image.Pt(10, 6), placeholderColors["flag"]},
		{"paintball", 16, 16, image.Pt(8, 8), placeholderColors["paintball"]},
		{"crate", 16, 32, image.Pt(8, 16), unknownColor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sprite := sm.GetSprite(tc.name)
			if sprite.Bounds().Dx() != tc.width || sprite.Bounds().Dy() != tc.height {
				t.Fatalf("Expected %dx%d placeholder, got %v", tc.width, tc.height, sprite.Bounds())
			}
			got := color.RGBAModel.Convert(sprite.At(tc.probe.X, tc.probe.Y)).(color.RGBA)
			if got != tc.want {
				t.Errorf("Expected %v at %v, got %v", tc.want, tc.probe, got)
			}
			// Corners stay transparent so the billboard is not a solid block
			if _, _, _, a := sprite.At(0, 0).RGBA(); a != 0 {
				t.Errorf("Expected transparent corner, got alpha %d", a)
			}
		})
	}
}

func TestLookup_MissingFile(t *testing.T) {
	sm := NewSpriteManager(t.TempDir())

	if _, ok := sm.Lookup("weapon"); ok {
		t.Error("Expected no weapon image")
	}
	if !sm.missing["weapon"] {
		t.Error("Expected the miss to be remembered")
	}
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadImage(filepath.Join(dir, "nope.png")); !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(garbage); err == nil {
		t.Error("Expected decode error")
	}
}
