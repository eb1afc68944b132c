package object

import (
	"image/color"

	"github.com/tomz197/bounce/internal/config"
	"github.com/tomz197/bounce/internal/physics"
)

// Ball is the player-controlled ball.
type Ball struct {
	X, Y   float64 // Center
	DX, DY float64 // Velocity per tick, +Y is down

	Radius    float64
	Gravity   float64 // Added to DY every tick
	JumpForce float64 // Negative impulse applied by a jump
	MoveSpeed float64 // Horizontal speed while a direction is held

	// Timed effects count down once per tick. Zero means inactive.
	InvincibleTicks int
	DoubleJumpTicks int

	DoubleJumped bool // Double jump spent during the current airtime
	Grounded     bool // Resting on a platform after the last update
}

// NewBall creates a ball at rest at the given position.
func NewBall(x, y float64, t config.BallTuning) Ball {
	return Ball{
		X:         x,
		Y:         y,
		Radius:    t.Radius,
		Gravity:   t.Gravity,
		JumpForce: t.JumpForce,
		MoveSpeed: t.MoveSpeed,
	}
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() physics.Rect {
	return physics.CircleBounds(b.X, b.Y, b.Radius)
}

// Invincible reports whether the invincibility effect is active.
func (b *Ball) Invincible() bool {
	return b.InvincibleTicks > 0
}

// DoubleJumpEnabled reports whether the double-jump effect is active.
func (b *Ball) DoubleJumpEnabled() bool {
	return b.DoubleJumpTicks > 0
}

// TickEffects counts down the timed effects by one tick.
func (b *Ball) TickEffects() {
	if b.InvincibleTicks > 0 {
		b.InvincibleTicks--
	}
	if b.DoubleJumpTicks > 0 {
		b.DoubleJumpTicks--
	}
}

// Steer sets horizontal velocity from the held direction keys.
// Left wins when both are held.
func (b *Ball) Steer(left, right bool) {
	switch {
	case left:
		b.DX = -b.MoveSpeed
	case right:
		b.DX = b.MoveSpeed
	default:
		b.DX = 0
	}
}

// Move applies gravity and one Euler step.
func (b *Ball) Move() {
	b.DY += b.Gravity
	physics.Step(&b.X, &b.Y, b.DX, b.DY)
}

// ClampX keeps the ball inside [0, width], stopping horizontal motion at
// the walls.
func (b *Ball) ClampX(width float64) {
	if x := physics.Clamp(b.X, b.Radius, width-b.Radius); x != b.X {
		b.X = x
		b.DX = 0
	}
}

// Jump launches the ball. Any ball with DY == 0 jumps with the full
// impulse, including one exactly at the apex of an arc; an airborne ball with double jump active jumps once more with
// factor applied. Returns false if no jump was possible.
func (b *Ball) Jump(doubleJumpFactor float64) bool {
	if b.DY == 0 {
		b.DY = b.JumpForce
		b.Grounded = false
		return true
	}
	if b.DoubleJumpEnabled() && !b.DoubleJumped {
		b.DY = b.JumpForce * doubleJumpFactor
		b.DoubleJumped = true
		return true
	}
	return false
}

// Color returns the ball color, gold while invincible.
func (b *Ball) Color() color.RGBA {
	if b.Invincible() {
		return ColorInvincible
	}
	return ColorBall
}
