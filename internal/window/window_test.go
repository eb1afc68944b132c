package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/bounce/internal/config"
	"github.com/tomz197/bounce/internal/input"
)

func TestApplyKeys(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		want     input.Frame
	}{
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft}, nil, input.Frame{Left: true}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyW}, nil, input.Frame{Right: true, Jump: true}},
		{"press and release in one tick", []ebiten.Key{ebiten.KeySpace}, []ebiten.Key{ebiten.KeySpace}, input.Frame{Jump: true}},
		{"restart", []ebiten.Key{ebiten.KeyR}, nil, input.Frame{Restart: true}},
		{"quit", []ebiten.Key{ebiten.KeyEscape}, nil, input.Frame{Quit: true}},
		{"unbound", []ebiten.Key{ebiten.KeyZ, ebiten.KeyF1}, nil, input.Frame{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var keys input.Keys
			applyKeys(&keys, tt.pressed, tt.released)
			if got := keys.Frame(); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHeldKeyUntilReleased(t *testing.T) {
	var keys input.Keys
	applyKeys(&keys, []ebiten.Key{ebiten.KeyArrowRight}, nil)
	keys.Frame()

	applyKeys(&keys, nil, nil)
	if f := keys.Frame(); !f.Right {
		t.Error("right should stay held between ticks")
	}

	applyKeys(&keys, nil, []ebiten.Key{ebiten.KeyArrowRight})
	if f := keys.Frame(); f.Right {
		t.Error("right still held after release")
	}
}

func TestNewGame(t *testing.T) {
	settings := &config.Settings{Tuning: config.DefaultTuning(), Seed: 1}
	g, err := New(settings, nil)
	if err != nil {
		t.Fatal(err)
	}

	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", w, h)
	}
	if n := len(g.world.Platforms); n != settings.Tuning.Platforms.Count {
		t.Errorf("expected %d platforms, got %d", settings.Tuning.Platforms.Count, n)
	}
	for size := range fontSizes {
		if g.surface.faces[size] == nil {
			t.Errorf("no face for text size %d", size)
		}
	}
}
