// Package game holds the world state and the update and render steps.
// It performs no I/O; frontends feed it input and draw it onto a Surface.
package game

import (
	"fmt"
	"math/rand"

	"github.com/tomz197/bounce/internal/config"
	"github.com/tomz197/bounce/internal/input"
	"github.com/tomz197/bounce/internal/object"
)

// GameState represents the current phase of a run.
type GameState int

const (
	GameStatePlaying GameState = iota // Active gameplay
	GameStateOver                     // Ball fell off, show restart prompt
)

// String returns the phase name.
func (s GameState) String() string {
	switch s {
	case GameStatePlaying:
		return "playing"
	case GameStateOver:
		return "over"
	default:
		return "unknown"
	}
}

// World holds all state of a run.
type World struct {
	Tuning config.Tuning

	Ball      object.Ball
	Platforms []object.Platform // Oldest (lowest) first
	PowerUps  []object.PowerUp
	Particles []object.Particle

	Score    int
	Combo    int
	MaxCombo int

	State GameState
	Ticks int // Updates since the last restart

	left, right bool
	rng         *rand.Rand
}

// New creates a world ready to play. rng drives platform layout, power-up
// drops and particles. The tuning is validated first; an unplayable tuning
// (e.g. no platforms) is rejected.
func New(t config.Tuning, rng *rand.Rand) (*World, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	w := &World{
		Tuning: t,
		rng:    rng,
	}
	w.Restart()
	return w, nil
}

// Restart resets counters, flags and effects, re-seeds the platforms and
// clears power-ups and particles.
func (w *World) Restart() {
	t := w.Tuning

	w.Ball = object.NewBall(t.Screen.Width/2, t.Screen.Height-t.Ball.StartHeight, t.Ball)
	w.Score = 0
	w.Combo = 0
	w.MaxCombo = 0
	w.Ticks = 0
	w.left, w.right = false, false
	w.State = GameStatePlaying

	w.PowerUps = w.PowerUps[:0]
	w.Particles = w.Particles[:0]
	w.seedPlatforms()
}

// GameOver reports whether the run has ended.
func (w *World) GameOver() bool {
	return w.State == GameStateOver
}

// HandleInput applies one frame of input: held directions for the next
// update, and the edge-triggered jump and restart actions.
func (w *World) HandleInput(f input.Frame) {
	w.left, w.right = f.Left, f.Right

	if f.Restart && w.GameOver() {
		w.Restart()
		return
	}
	if f.Jump && !w.GameOver() {
		w.Jump()
	}
}

// Jump launches the ball if it is resting, or spends a double jump.
func (w *World) Jump() bool {
	if !w.Ball.Jump(w.Tuning.Ball.DoubleJumpFactor) {
		return false
	}
	p := w.Tuning.Particles
	object.SpawnBurst(w.Ball.X, w.Ball.Y+w.Ball.Radius, p.JumpBurst, p.Speed, p.Size, w.Ball.Color(), w.rng, w)
	return true
}

// SpawnParticle implements object.Spawner.
func (w *World) SpawnParticle(p object.Particle) {
	w.Particles = append(w.Particles, p)
}

// addScore keeps the score monotonic.
func (w *World) addScore(n int) {
	if n > 0 {
		w.Score += n
	}
}

func (w *World) addCombo() {
	w.Combo++
	if w.Combo > w.MaxCombo {
		w.MaxCombo = w.Combo
	}
}
