package game

import (
	"math"

	"splatcast/internal/raycast"

	"github.com/harbdog/raycaster-go/geom"
)

// Camera is the first-person viewpoint: world position plus heading
type Camera struct {
	X     float64
	Y     float64
	Angle float64 // radians, 0 looks along +x
}

// GetForwardX returns the X component of the forward direction vector
func (c *Camera) GetForwardX() float64 {
	return math.Cos(c.Angle)
}

// GetForwardY returns the Y component of the forward direction vector
func (c *Camera) GetForwardY() float64 {
	return math.Sin(c.Angle)
}

// GetRightX returns the X component of the right direction vector
func (c *Camera) GetRightX() float64 {
	return math.Cos(c.Angle + math.Pi/2)
}

// GetRightY returns the Y component of the right direction vector
func (c *Camera) GetRightY() float64 {
	return math.Sin(c.Angle + math.Pi/2)
}

// Rotate rotates the camera by the given angle, keeping it in [0, 2pi)
func (c *Camera) Rotate(angle float64) {
	c.Angle = math.Mod(c.Angle+angle, 2*math.Pi)
	if c.Angle < 0 {
		c.Angle += 2 * math.Pi
	}
}

// Pose returns the viewpoint in the renderer's terms
func (c *Camera) Pose() raycast.Pose {
	return raycast.Pose{Position: geom.Vector2{X: c.X, Y: c.Y}, Heading: c.Angle}
}
