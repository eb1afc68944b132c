package game

// Update advances the world by one tick. It is a no-op once the run is over.
func (w *World) Update() {
	if w.GameOver() {
		return
	}
	w.Ticks++

	w.Ball.TickEffects()
	w.ageParticles()
	w.dropOffscreenPowerUps()

	w.Ball.Steer(w.left, w.right)
	w.Ball.Move()
	w.Ball.ClampX(w.Tuning.Screen.Width)

	w.updatePlatforms()
	w.collectPowerUps()

	w.scroll()
	if w.Platforms[0].Y > w.Tuning.Screen.Height {
		w.recyclePlatform()
		w.addScore(w.Combo)
	}

	w.checkFall()
}

// ageParticles decays particle life and removes expired particles.
func (w *World) ageParticles() {
	p := w.Tuning.Particles
	kept := w.Particles[:0] // reuse backing array
	for i := range w.Particles {
		part := w.Particles[i]
		if !part.Update(p.Decay, p.Gravity) {
			kept = append(kept, part)
		}
	}
	w.Particles = kept
}

// dropOffscreenPowerUps removes power-ups below the bottom edge.
func (w *World) dropOffscreenPowerUps() {
	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		if !pu.OffScreen(w.Tuning.Screen.Height) {
			kept = append(kept, pu)
		}
	}
	w.PowerUps = kept
}

// scroll keeps the ball at or below the scroll line by moving everything
// else down.
func (w *World) scroll() {
	line := w.Tuning.Screen.ScrollLine
	if w.Ball.Y >= line {
		return
	}
	shift := line - w.Ball.Y
	w.Ball.Y = line

	for i := range w.Platforms {
		w.Platforms[i].Y += shift
	}
	for i := range w.PowerUps {
		w.PowerUps[i].Y += shift
	}
	for i := range w.Particles {
		w.Particles[i].Y += shift
	}
}

// checkFall ends the run when the ball drops below the bottom edge. An
// invincible ball is bounced back up instead.
func (w *World) checkFall() {
	height := w.Tuning.Screen.Height
	b := &w.Ball
	if b.Y <= height {
		return
	}
	if b.Invincible() {
		b.Y = height - b.Radius
		b.DY = b.JumpForce * w.Tuning.Ball.BounceFactor
		b.DoubleJumped = false
		return
	}
	w.State = GameStateOver
}
