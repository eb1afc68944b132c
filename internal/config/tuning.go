package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant. Velocities and accelerations are in
// logical pixels per tick; timers are in ticks.
//
// A tuning file only needs the keys it overrides:
//
//	ball:
//	  jump_force: -14
//	platforms:
//	  gap: 110
type Tuning struct {
	Screen    ScreenTuning   `yaml:"screen"`
	Ball      BallTuning     `yaml:"ball"`
	Platforms PlatformTuning `yaml:"platforms"`
	PowerUps  PowerUpTuning  `yaml:"powerups"`
	Particles ParticleTuning `yaml:"particles"`

	// AutoJump relaunches the ball on every normal landing instead of
	// resting it on the platform.
	AutoJump bool `yaml:"auto_jump"`
}

// ScreenTuning is the fixed logical resolution of the drawing surface.
type ScreenTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// ScrollLine is the height the ball may not rise above; the world
	// scrolls down instead.
	ScrollLine float64 `yaml:"scroll_line"`
}

// BallTuning configures the player ball.
type BallTuning struct {
	Radius           float64 `yaml:"radius"`
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"` // negative is up
	MoveSpeed        float64 `yaml:"move_speed"`
	DoubleJumpFactor float64 `yaml:"double_jump_factor"`
	BounceFactor     float64 `yaml:"bounce_factor"`
	StartHeight      float64 `yaml:"start_height"` // distance above the bottom edge
}

// PlatformTuning configures platform layout and variants.
type PlatformTuning struct {
	Width         float64        `yaml:"width"`
	Height        float64        `yaml:"height"`
	Gap           float64        `yaml:"gap"`
	Count         int            `yaml:"count"`
	MoveSpeed     float64        `yaml:"move_speed"`
	ReappearTicks int            `yaml:"reappear_ticks"`
	Weights       VariantWeights `yaml:"weights"`
}

// VariantWeights are relative odds for generated platforms.
type VariantWeights struct {
	Normal       float64 `yaml:"normal"`
	Moving       float64 `yaml:"moving"`
	Disappearing float64 `yaml:"disappearing"`
	Bouncy       float64 `yaml:"bouncy"`
}

// Total returns the sum of all weights.
func (w VariantWeights) Total() float64 {
	return w.Normal + w.Moving + w.Disappearing + w.Bouncy
}

// PowerUpTuning configures power-up spawning and effects.
type PowerUpTuning struct {
	Size        float64 `yaml:"size"`
	SpawnChance float64 `yaml:"spawn_chance"`
	Lift        float64 `yaml:"lift"` // spawn height above the platform top
	EffectTicks int     `yaml:"effect_ticks"`
	ScoreBonus  int     `yaml:"score_bonus"`
}

// ParticleTuning configures the effect bursts.
type ParticleTuning struct {
	Decay       float64 `yaml:"decay"` // life lost per tick, life starts at 1
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	Gravity     float64 `yaml:"gravity"`
	JumpBurst   int     `yaml:"jump_burst"`
	LandBurst   int     `yaml:"land_burst"`
	PickupBurst int     `yaml:"pickup_burst"`
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		Screen: ScreenTuning{
			Width:      800,
			Height:     600,
			ScrollLine: 200,
		},
		Ball: BallTuning{
			Radius:           20,
			Gravity:          0.5,
			JumpForce:        -13,
			MoveSpeed:        5,
			DoubleJumpFactor: 0.8,
			BounceFactor:     1.5,
			StartHeight:      50,
		},
		Platforms: PlatformTuning{
			Width:         100,
			Height:        20,
			Gap:           120,
			Count:         5,
			MoveSpeed:     2,
			ReappearTicks: 180,
			Weights: VariantWeights{
				Normal:       0.55,
				Moving:       0.2,
				Disappearing: 0.15,
				Bouncy:       0.1,
			},
		},
		PowerUps: PowerUpTuning{
			Size:        20,
			SpawnChance: 0.15,
			Lift:        80,
			EffectTicks: 300,
			ScoreBonus:  10,
		},
		Particles: ParticleTuning{
			Decay:       0.02,
			Size:        4,
			Speed:       3,
			Gravity:     0.1,
			JumpBurst:   8,
			LandBurst:   6,
			PickupBurst: 16,
		},
	}
}

// LoadTuning reads a YAML tuning file on top of DefaultTuning.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML on top of DefaultTuning and validates the result.
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that the tuning describes a playable game.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}

	check(t.Screen.Width > 0 && t.Screen.Height > 0, "screen size must be positive, got %vx%v", t.Screen.Width, t.Screen.Height)
	check(t.Screen.ScrollLine > 0 && t.Screen.ScrollLine < t.Screen.Height, "scroll_line must be inside the screen, got %v", t.Screen.ScrollLine)

	check(t.Ball.Radius > 0, "ball radius must be positive, got %v", t.Ball.Radius)
	check(t.Ball.Gravity > 0, "gravity must be positive, got %v", t.Ball.Gravity)
	check(t.Ball.JumpForce < 0, "jump_force must be negative (upward), got %v", t.Ball.JumpForce)
	check(t.Ball.MoveSpeed >= 0, "move_speed must not be negative, got %v", t.Ball.MoveSpeed)
	check(t.Ball.DoubleJumpFactor > 0, "double_jump_factor must be positive, got %v", t.Ball.DoubleJumpFactor)
	check(t.Ball.BounceFactor > 0, "bounce_factor must be positive, got %v", t.Ball.BounceFactor)
	check(t.Ball.StartHeight > 0 && t.Ball.StartHeight < t.Screen.Height, "start_height must be inside the screen, got %v", t.Ball.StartHeight)
	check(2*t.Ball.Radius < t.Screen.Width, "ball does not fit the screen")

	check(t.Platforms.Width > 0 && t.Platforms.Width <= t.Screen.Width, "platform width must be in (0, screen width], got %v", t.Platforms.Width)
	check(t.Platforms.Height > 0, "platform height must be positive, got %v", t.Platforms.Height)
	check(t.Platforms.Gap > 0, "platform gap must be positive, got %v", t.Platforms.Gap)
	check(t.Platforms.Count >= 2, "platform count must be at least 2, got %d", t.Platforms.Count)
	check(t.Platforms.MoveSpeed >= 0, "platform move_speed must not be negative, got %v", t.Platforms.MoveSpeed)
	check(t.Platforms.ReappearTicks > 0, "reappear_ticks must be positive, got %d", t.Platforms.ReappearTicks)
	w := t.Platforms.Weights
	check(w.Normal >= 0 && w.Moving >= 0 && w.Disappearing >= 0 && w.Bouncy >= 0, "variant weights must not be negative")
	check(w.Total() > 0, "variant weights must not all be zero")

	check(t.PowerUps.Size > 0, "power-up size must be positive, got %v", t.PowerUps.Size)
	check(t.PowerUps.SpawnChance >= 0 && t.PowerUps.SpawnChance <= 1, "spawn_chance must be in [0, 1], got %v", t.PowerUps.SpawnChance)
	check(t.PowerUps.EffectTicks > 0, "effect_ticks must be positive, got %d", t.PowerUps.EffectTicks)
	check(t.PowerUps.ScoreBonus >= 0, "score_bonus must not be negative, got %d", t.PowerUps.ScoreBonus)

	check(t.Particles.Decay > 0 && t.Particles.Decay <= 1, "particle decay must be in (0, 1], got %v", t.Particles.Decay)
	check(t.Particles.JumpBurst >= 0 && t.Particles.LandBurst >= 0 && t.Particles.PickupBurst >= 0, "burst sizes must not be negative")

	return errors.Join(errs...)
}
