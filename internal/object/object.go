// Package object defines the world's entities: the ball, platforms,
// power-ups and particles.
package object

import (
	"image/color"
	"math"
)

// Palette.
var (
	ColorBackground = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	ColorBall       = color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
	ColorInvincible = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	ColorText       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorOverlay    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x80}
)

// Spawner accepts particles created during an update.
type Spawner interface {
	SpawnParticle(p Particle)
}

// ShouldRenderBlink returns true if an object with remaining protection
// ticks should be rendered this frame (for a blinking effect near expiry).
// Returns true always if remaining <= 0.
func ShouldRenderBlink(remaining, period int) bool {
	if remaining <= 0 || period <= 0 {
		return true
	}
	return (remaining/period)%2 == 0
}

// Fade scales a color's alpha by f in [0, 1].
func Fade(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	c.A = uint8(math.Round(float64(c.A) * f))
	return c
}
