// Package keytracker turns Ebiten's polled key state into press edges.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker remembers the previous state of every key it was asked about.
type KeyStateTracker struct {
	prevPressed map[ebiten.Key]bool
	pressed     func(ebiten.Key) bool
}

// New returns a tracker reading the live keyboard.
func New() *KeyStateTracker {
	return NewWithSource(ebiten.IsKeyPressed)
}

// NewWithSource returns a tracker reading key state from pressed.
func NewWithSource(pressed func(ebiten.Key) bool) *KeyStateTracker {
	return &KeyStateTracker{
		prevPressed: make(map[ebiten.Key]bool),
		pressed:     pressed,
	}
}

// IsKeyJustPressed returns true if the key was not pressed last call but is pressed now.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	pressed := k.pressed(key)
	justPressed := pressed && !k.prevPressed[key]
	k.prevPressed[key] = pressed
	return justPressed
}
