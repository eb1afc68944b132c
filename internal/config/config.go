package config

import (
	"fmt"
	"time"
)

// Frame timing for the terminal loop. The window frontend runs at ebiten's
// default tick rate, which is the same 60 TPS.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Max terminal render resolution. Larger terminals get a centered render
// area with a border.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Environment variables understood by Load.
const (
	EnvTuningFile = "BOUNCE_TUNING"
	EnvSeed       = "BOUNCE_SEED"
	EnvAutoJump   = "BOUNCE_AUTO_JUMP"
	EnvLogLevel   = "BOUNCE_LOG_LEVEL"
	EnvLogFile    = "BOUNCE_LOG_FILE"
	EnvScale      = "BOUNCE_SCALE"
)

// Settings is everything a frontend needs to start a run.
type Settings struct {
	Tuning   Tuning
	Seed     int64   // 0 means seed from the clock
	LogLevel string  // debug, info, warn, error
	LogFile  string  // empty means the frontend's default sink
	Scale    float64 // window scale factor (window frontend only)
}

// Load reads .env, the environment and the optional tuning file.
func Load() (*Settings, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	tuning := DefaultTuning()
	if path := GetEnv(EnvTuningFile, ""); path != "" {
		t, err := LoadTuning(path)
		if err != nil {
			return nil, err
		}
		tuning = *t
	}
	tuning.AutoJump = GetEnvBool(EnvAutoJump, tuning.AutoJump)

	s := &Settings{
		Tuning:   tuning,
		Seed:     GetEnvInt64(EnvSeed, 0),
		LogLevel: GetEnv(EnvLogLevel, "info"),
		LogFile:  GetEnv(EnvLogFile, ""),
		Scale:    GetEnvFloat(EnvScale, 1),
	}
	if s.Scale <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %v", EnvScale, s.Scale)
	}
	return s, nil
}
