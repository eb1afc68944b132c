package object

import (
	"image/color"
	"math"
	"math/rand"
)

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	Size   float64
	Color  color.RGBA
	Life   float64 // Normalized remaining life, 1 at spawn
}

// Update moves the particle and decays its life. Returns true once the
// particle has expired and should be removed.
func (p *Particle) Update(decay, gravity float64) bool {
	p.Life -= decay
	if p.Life <= 0 {
		return true
	}
	p.VY += gravity
	p.X += p.VX
	p.Y += p.VY
	return false
}

// Alpha returns the draw opacity for the remaining life.
func (p *Particle) Alpha() float64 {
	return math.Max(0, math.Min(1, p.Life))
}

// SpawnBurst creates particles in a circular burst pattern.
func SpawnBurst(x, y float64, count int, speed, size float64, c color.RGBA, rng *rand.Rand, spawner Spawner) {
	if spawner == nil || rng == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// Speed variation 50% to 150%
		spd := speed * (0.5 + rng.Float64())

		spawner.SpawnParticle(Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * spd,
			VY:    math.Sin(angle) * spd,
			Size:  size * (0.5 + rng.Float64()*0.5),
			Color: c,
			Life:  1,
		})
	}
}
