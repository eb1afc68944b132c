package game

import "github.com/tomz197/bounce/internal/object"

// updatePlatforms moves platforms and resolves at most one landing.
func (w *World) updatePlatforms() {
	wasGrounded := w.Ball.Grounded
	w.Ball.Grounded = false

	for i := range w.Platforms {
		p := &w.Platforms[i]
		p.Update(w.Tuning.Screen.Width)

		// Only a falling ball lands, and a landing stops the fall.
		if !p.Solid() || w.Ball.DY <= 0 {
			continue
		}
		if !w.Ball.Bounds().Overlaps(p.Bounds()) {
			continue
		}
		w.land(p, wasGrounded)
	}
}

// land rests or relaunches the ball on p according to its kind.
func (w *World) land(p *object.Platform, wasGrounded bool) {
	t := w.Tuning
	b := &w.Ball

	b.Y = p.Y - b.Radius
	b.DoubleJumped = false

	switch p.Kind {
	case object.PlatformBouncy:
		b.DY = b.JumpForce * t.Ball.BounceFactor
	case object.PlatformDisappearing:
		b.DY = 0
		p.Hide(t.Platforms.ReappearTicks)
	default:
		b.DY = 0
		if t.AutoJump {
			b.DY = b.JumpForce
		}
	}
	b.Grounded = b.DY == 0

	// Sitting still on a platform lands every tick; only count arrivals.
	if wasGrounded {
		return
	}
	w.addCombo()
	w.maybeSpawnPowerUp(p)
	object.SpawnBurst(b.X, p.Y, t.Particles.LandBurst, t.Particles.Speed, t.Particles.Size, p.Kind.Color(), w.rng, w)
}

// collectPowerUps applies and removes every power-up touching the ball.
func (w *World) collectPowerUps() {
	ball := w.Ball.Bounds()
	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		if !ball.Overlaps(pu.Bounds()) {
			kept = append(kept, pu)
			continue
		}
		w.applyPowerUp(pu)
	}
	w.PowerUps = kept
}

func (w *World) applyPowerUp(pu object.PowerUp) {
	t := w.Tuning
	switch pu.Kind {
	case object.PowerUpInvincibility:
		w.Ball.InvincibleTicks = t.PowerUps.EffectTicks
	case object.PowerUpDoubleJump:
		w.Ball.DoubleJumpTicks = t.PowerUps.EffectTicks
		w.Ball.DoubleJumped = false
	case object.PowerUpScoreMultiplier:
		w.addScore(t.PowerUps.ScoreBonus * max(1, w.Combo))
	}
	cx, cy := pu.X+pu.Size/2, pu.Y+pu.Size/2
	object.SpawnBurst(cx, cy, t.Particles.PickupBurst, t.Particles.Speed, t.Particles.Size, pu.Kind.Color(), w.rng, w)
}
