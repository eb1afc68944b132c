package object

import (
	"image/color"

	"github.com/tomz197/bounce/internal/physics"
)

// PowerUpKind selects a power-up's effect.
type PowerUpKind uint8

const (
	PowerUpInvincibility   PowerUpKind = iota // Survive falling off the bottom
	PowerUpDoubleJump                         // One extra jump per airtime
	PowerUpScoreMultiplier                    // Instant bonus scaled by combo
	numPowerUpKinds
)

// NumPowerUpKinds is the number of power-up variants.
const NumPowerUpKinds = int(numPowerUpKinds)

// String returns the variant name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpInvincibility:
		return "invincibility"
	case PowerUpDoubleJump:
		return "double-jump"
	case PowerUpScoreMultiplier:
		return "score-multiplier"
	default:
		return "unknown"
	}
}

// Color returns the draw color for the variant.
func (k PowerUpKind) Color() color.RGBA {
	switch k {
	case PowerUpInvincibility:
		return ColorInvincible
	case PowerUpDoubleJump:
		return color.RGBA{R: 0x4d, G: 0x96, B: 0xff, A: 0xff}
	default:
		return color.RGBA{R: 0xff, G: 0x4d, B: 0xd2, A: 0xff}
	}
}

// PowerUp is a collectible resting above a platform.
type PowerUp struct {
	X, Y float64 // Top-left corner
	Size float64
	Kind PowerUpKind
}

// Bounds returns the power-up's bounding box.
func (p *PowerUp) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// OffScreen reports whether the power-up has scrolled below the bottom edge.
func (p *PowerUp) OffScreen(height float64) bool {
	return p.Y > height
}
