package game

import "github.com/tomz197/bounce/internal/object"

// seedPlatforms lays out the initial column: the first platform sits on the
// bottom edge under the ball, the rest are stacked one gap apart.
func (w *World) seedPlatforms() {
	t := w.Tuning
	count := t.Platforms.Count

	if cap(w.Platforms) < count {
		w.Platforms = make([]object.Platform, 0, count)
	}
	w.Platforms = w.Platforms[:0]

	for i := 0; i < count; i++ {
		y := t.Screen.Height - float64(i)*t.Platforms.Gap
		p := w.newPlatform(y, object.PlatformNormal)
		if i == 0 {
			p.X = (t.Screen.Width - t.Platforms.Width) / 2
		}
		w.Platforms = append(w.Platforms, p)
	}
}

// newPlatform creates a platform of the given kind at a random x.
func (w *World) newPlatform(y float64, kind object.PlatformKind) object.Platform {
	t := w.Tuning.Platforms
	p := object.Platform{
		X:      w.rng.Float64() * (w.Tuning.Screen.Width - t.Width),
		Y:      y,
		Width:  t.Width,
		Height: t.Height,
		Kind:   kind,
	}
	if kind == object.PlatformMoving {
		p.Speed = t.MoveSpeed
		p.Dir = 1
		if w.rng.Intn(2) == 0 {
			p.Dir = -1
		}
	}
	return p
}

// randomKind picks a platform variant by the configured weights.
func (w *World) randomKind() object.PlatformKind {
	weights := w.Tuning.Platforms.Weights
	r := w.rng.Float64() * weights.Total()

	for _, c := range []struct {
		kind   object.PlatformKind
		weight float64
	}{
		{object.PlatformNormal, weights.Normal},
		{object.PlatformMoving, weights.Moving},
		{object.PlatformDisappearing, weights.Disappearing},
		{object.PlatformBouncy, weights.Bouncy},
	} {
		if r < c.weight {
			return c.kind
		}
		r -= c.weight
	}
	return object.PlatformNormal
}

// recyclePlatform drops the lowest platform and appends a new one above the
// topmost. Removal and insertion happen together so the count never changes.
func (w *World) recyclePlatform() {
	top := w.Platforms[len(w.Platforms)-1].Y
	next := w.newPlatform(top-w.Tuning.Platforms.Gap, w.randomKind())

	copy(w.Platforms, w.Platforms[1:])
	w.Platforms[len(w.Platforms)-1] = next
}

// maybeSpawnPowerUp rolls for a power-up centered above the platform.
func (w *World) maybeSpawnPowerUp(p *object.Platform) {
	t := w.Tuning.PowerUps
	if w.rng.Float64() >= t.SpawnChance {
		return
	}
	w.PowerUps = append(w.PowerUps, object.PowerUp{
		X:    p.X + p.Width/2 - t.Size/2,
		Y:    p.Y - t.Lift - t.Size,
		Size: t.Size,
		Kind: object.PowerUpKind(w.rng.Intn(object.NumPowerUpKinds)),
	})
}
