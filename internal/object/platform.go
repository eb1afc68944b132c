package object

import (
	"image/color"

	"github.com/tomz197/bounce/internal/physics"
)

// PlatformKind selects a platform's behavior and color.
type PlatformKind uint8

const (
	PlatformNormal       PlatformKind = iota // Static, ball rests on it
	PlatformMoving                           // Slides left and right
	PlatformDisappearing                     // Vanishes when landed on, returns later
	PlatformBouncy                           // Launches the ball higher than a jump
)

// String returns the variant name.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformDisappearing:
		return "disappearing"
	case PlatformBouncy:
		return "bouncy"
	default:
		return "unknown"
	}
}

// Color returns the draw color for the variant.
func (k PlatformKind) Color() color.RGBA {
	switch k {
	case PlatformMoving:
		return color.RGBA{R: 0x45, G: 0xb7, B: 0xd1, A: 0xff}
	case PlatformDisappearing:
		return color.RGBA{R: 0xf7, G: 0xb7, B: 0x31, A: 0xff}
	case PlatformBouncy:
		return color.RGBA{R: 0xa5, G: 0x5e, B: 0xea, A: 0xff}
	default:
		return color.RGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff}
	}
}

// Platform is a landable surface.
type Platform struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Kind          PlatformKind

	// Moving
	Dir   float64 // +1 right, -1 left
	Speed float64

	// Disappearing
	Hidden      bool
	HiddenTicks int // Ticks until the platform returns
}

// Bounds returns the platform's bounding box.
func (p *Platform) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Solid reports whether the ball can land on the platform.
func (p *Platform) Solid() bool {
	return !p.Hidden
}

// Update advances variant-specific motion by one tick. Moving platforms
// bounce between 0 and worldWidth; hidden platforms count down to reappear.
func (p *Platform) Update(worldWidth float64) {
	switch p.Kind {
	case PlatformMoving:
		maxX := worldWidth - p.Width
		p.X = physics.Clamp(p.X+p.Dir*p.Speed, 0, maxX)
		if p.X <= 0 {
			p.Dir = 1
		} else if p.X >= maxX {
			p.Dir = -1
		}
	case PlatformDisappearing:
		if p.Hidden {
			p.HiddenTicks--
			if p.HiddenTicks <= 0 {
				p.Hidden = false
				p.HiddenTicks = 0
			}
		}
	}
}

// Hide makes the platform vanish for the given number of ticks.
func (p *Platform) Hide(ticks int) {
	p.Hidden = true
	p.HiddenTicks = ticks
}
