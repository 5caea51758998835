package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/harbdog/raycaster-go/geom"
	"gopkg.in/yaml.v3"
)

// Config holds all renderer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Raycast  RaycastConfig  `yaml:"raycast"`
	Lighting LightingConfig `yaml:"lighting"`
	Fog      FogConfig      `yaml:"fog"`
	Sprites  SpriteConfig   `yaml:"sprites"`
	Effects  EffectsConfig  `yaml:"effects"`
	Colors   ColorsConfig   `yaml:"colors"`
	Arena    ArenaConfig    `yaml:"arena"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type CameraConfig struct {
	FieldOfView   float64 `yaml:"field_of_view"` // degrees
	MaxDepth      float64 `yaml:"max_depth"`     // world units
	MoveSpeed     float64 `yaml:"move_speed"`    // world units per second
	RotationSpeed float64 `yaml:"rotation_speed"`
}

type RaycastConfig struct {
	RayCount   int     `yaml:"ray_count"`
	TileSize   float64 `yaml:"tile_size"`
	Projection float64 `yaml:"projection"` // wall height = tile_size * projection / distance
	MinWall    int     `yaml:"min_wall_height"`
}

type LightingConfig struct {
	BrightnessMin float64 `yaml:"brightness_min"`
	SideShade     float64 `yaml:"side_shade"` // multiplier for horizontal-side hits
}

type FogConfig struct {
	Color   [3]int  `yaml:"color"`
	Density float64 `yaml:"density"`
}

type SpriteConfig struct {
	FOVMargin    float64 `yaml:"fov_margin"`    // radians added to each side of the cull cone
	DepthEpsilon float64 `yaml:"depth_epsilon"` // world units a sprite must beat the wall by
}

type EffectsConfig struct {
	VignetteIntensity float64 `yaml:"vignette_intensity"`
	VignetteSteps     int     `yaml:"vignette_steps"`
	Minimap           bool    `yaml:"minimap"`
	MinimapScale      int     `yaml:"minimap_scale"` // pixels per tile
	MinimapMargin     int     `yaml:"minimap_margin"`
	BobAmplitude      float64 `yaml:"bob_amplitude"`
	BobFrequency      float64 `yaml:"bob_frequency"`
	Crosshair         bool    `yaml:"crosshair"`
	Weapon            bool    `yaml:"weapon"`
	DebugHUD          bool    `yaml:"debug_hud"`
}

type ColorsConfig struct {
	Sky       [3]int         `yaml:"sky"`
	Ground    [3]int         `yaml:"ground"`
	Walls     map[int][3]int `yaml:"walls"`    // cell code -> base color
	Fallback  [3]int         `yaml:"fallback"` // unknown cell codes and out-of-bounds
	Crosshair [3]int         `yaml:"crosshair"`
}

type ArenaConfig struct {
	Catalog string `yaml:"catalog"`
	Name    string `yaml:"name"`
}

// Default returns the built-in configuration. LoadConfig decodes on top of it.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 600,
			WindowTitle:  "Paintball - FPS Mode",
		},
		Camera: CameraConfig{
			FieldOfView:   70,
			MaxDepth:      1000,
			MoveSpeed:     160,
			RotationSpeed: 2.4,
		},
		Raycast: RaycastConfig{
			RayCount:   240,
			TileSize:   64,
			Projection: 420,
			MinWall:    8,
		},
		Lighting: LightingConfig{
			BrightnessMin: 0.12,
			SideShade:     0.7,
		},
		Fog: FogConfig{
			Color:   [3]int{24, 26, 30},
			Density: 0.0015,
		},
		Sprites: SpriteConfig{
			FOVMargin:    0.2,
			DepthEpsilon: 0.5,
		},
		Effects: EffectsConfig{
			VignetteIntensity: 0.35,
			VignetteSteps:     12,
			Minimap:           true,
			MinimapScale:      8,
			MinimapMargin:     10,
			BobAmplitude:      6,
			BobFrequency:      8,
			Crosshair:         true,
			Weapon:            true,
		},
		Colors: ColorsConfig{
			Sky:    [3]int{62, 78, 112},
			Ground: [3]int{35, 38, 42},
			Walls: map[int][3]int{
				1: {70, 72, 82},
				2: {70, 150, 255},
				3: {230, 70, 70},
				4: {90, 230, 140},
				5: {255, 210, 64},
			},
			Fallback:  [3]int{40, 42, 46},
			Crosshair: [3]int{255, 255, 255},
		},
		Arena: ArenaConfig{
			Catalog: "assets/arenas.yaml",
			Name:    "warehouse",
		},
	}
}

// LoadConfig loads the configuration from a yaml file on top of the defaults
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("field_of_view %.1f must be in (0, 180)", c.Camera.FieldOfView))
	}
	if c.Camera.MaxDepth <= 0 {
		errs = append(errs, errors.New("max_depth must be positive"))
	}
	if c.Raycast.RayCount <= 0 {
		errs = append(errs, errors.New("ray_count must be positive"))
	}
	if c.Raycast.TileSize <= 0 {
		errs = append(errs, errors.New("tile_size must be positive"))
	}
	if c.Raycast.Projection <= 0 {
		errs = append(errs, errors.New("projection must be positive"))
	}
	if c.Fog.Density < 0 {
		errs = append(errs, errors.New("fog density must not be negative"))
	}
	if c.Effects.VignetteIntensity < 0 || c.Effects.VignetteIntensity > 1 {
		errs = append(errs, fmt.Errorf("vignette_intensity %.2f must be in [0, 1]", c.Effects.VignetteIntensity))
	}
	return errors.Join(errs...)
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() float64 {
	return c.Raycast.TileSize
}

func (c *Config) GetRayCount() int {
	return c.Raycast.RayCount
}

func (c *Config) GetMaxDepth() float64 {
	return c.Camera.MaxDepth
}

// FOVRadians converts the configured degree value for the raycaster.
func (c *Config) FOVRadians() float64 {
	return geom.Radians(c.Camera.FieldOfView)
}

func (c *Config) SkyColor() color.RGBA {
	return RGB(c.Colors.Sky)
}

func (c *Config) GroundColor() color.RGBA {
	return RGB(c.Colors.Ground)
}

func (c *Config) FogColor() color.RGBA {
	return RGB(c.Fog.Color)
}

// WallColor returns the base color for a wall cell code.
func (c *Config) WallColor(cell int) color.RGBA {
	if rgb, ok := c.Colors.Walls[cell]; ok {
		return RGB(rgb)
	}
	return RGB(c.Colors.Fallback)
}

// RGB converts a yaml color triple to an opaque color.
func RGB(rgb [3]int) color.RGBA {
	return color.RGBA{R: clampByte(rgb[0]), G: clampByte(rgb[1]), B: clampByte(rgb[2]), A: 255}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
