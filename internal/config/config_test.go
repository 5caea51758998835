package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	if cfg.GetRayCount() != 240 {
		t.Errorf("Expected 240 rays, got %d", cfg.GetRayCount())
	}
	if cfg.GetTileSize() != 64 {
		t.Errorf("Expected tile size 64, got %.1f", cfg.GetTileSize())
	}
	if math.Abs(cfg.FOVRadians()-70*math.Pi/180) > 1e-12 {
		t.Errorf("Expected 70 degree FOV in radians, got %.6f", cfg.FOVRadians())
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
display:
  screen_width: 640
raycast:
  ray_count: 160
fog:
  density: 0.004
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.GetScreenWidth() != 640 {
		t.Errorf("Expected screen width 640, got %d", cfg.GetScreenWidth())
	}
	if cfg.GetScreenHeight() != 600 {
		t.Errorf("Expected default screen height 600, got %d", cfg.GetScreenHeight())
	}
	if cfg.GetRayCount() != 160 {
		t.Errorf("Expected 160 rays, got %d", cfg.GetRayCount())
	}
	if cfg.Fog.Density != 0.004 {
		t.Errorf("Expected fog density 0.004, got %f", cfg.Fog.Density)
	}
	if cfg.Raycast.Projection != 420 {
		t.Errorf("Expected default projection 420, got %.1f", cfg.Raycast.Projection)
	}
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{"zero rays", "raycast:\n  ray_count: 0\n", "ray_count"},
		{"flat fov", "camera:\n  field_of_view: 180\n", "field_of_view"},
		{"negative fog", "fog:\n  density: -1\n", "fog density"},
		{"vignette above one", "effects:\n  vignette_intensity: 1.5\n", "vignette_intensity"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatalf("Expected error for %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestWallColorFallback(t *testing.T) {
	cfg := Default()

	if got := cfg.WallColor(2); got != RGB([3]int{70, 150, 255}) {
		t.Errorf("Expected blue wall for code 2, got %v", got)
	}
	if got := cfg.WallColor(99); got != RGB(cfg.Colors.Fallback) {
		t.Errorf("Expected fallback color for unknown code, got %v", got)
	}
}

func TestRGBClampsChannels(t *testing.T) {
	c := RGB([3]int{-20, 300, 128})
	if c.R != 0 || c.G != 255 || c.B != 128 || c.A != 255 {
		t.Errorf("Expected clamped (0,255,128,255), got %v", c)
	}
}
