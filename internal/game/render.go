package game

import (
	"fmt"
	"image/color"

	"github.com/tomz197/bounce/internal/config"
	"github.com/tomz197/bounce/internal/object"
)

// TextSize is a relative font size.
type TextSize int

const (
	TextHUD   TextSize = iota // Small corner counters
	TextBody                  // Summary lines
	TextTitle                 // Headline
)

// Align is the horizontal anchor of a text position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Size  TextSize
	Align Align
	Color color.RGBA
}

// Surface is a 2D drawing target in logical world coordinates. Colors are
// straight (not premultiplied) alpha; alpha below 255 blends over what is
// already drawn. Text is anchored at its vertical middle.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	Text(x, y float64, s string, style TextStyle)
}

// Invincibility blinks with this half-period, in ticks, during the last
// window ticks.
const (
	invincibleBlinkPeriod = 6
	invincibleBlinkWindow = 60
)

// Render draws the world onto s. It never mutates the world.
func Render(w *World, s Surface) {
	t := w.Tuning
	s.Clear(object.ColorBackground)

	for i := range w.Particles {
		p := &w.Particles[i]
		s.FillRect(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size, object.Fade(p.Color, p.Alpha()))
	}

	for i := range w.Platforms {
		p := &w.Platforms[i]
		if !p.Solid() {
			continue
		}
		s.FillRect(p.X, p.Y, p.Width, p.Height, p.Kind.Color())
	}

	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		s.FillRect(pu.X, pu.Y, pu.Size, pu.Size, pu.Kind.Color())
	}

	drawBall(w, s)
	drawHUD(w, s)

	if w.GameOver() {
		cx, cy := t.Screen.Width/2, t.Screen.Height/2
		s.FillRect(0, 0, t.Screen.Width, t.Screen.Height, object.ColorOverlay)
		s.Text(cx, cy, "Game Over!", TextStyle{Size: TextTitle, Align: AlignCenter, Color: object.ColorText})
		s.Text(cx, cy+40, fmt.Sprintf("Final Score: %d", w.Score), TextStyle{Size: TextBody, Align: AlignCenter, Color: object.ColorText})
		s.Text(cx, cy+80, fmt.Sprintf("Peak Combo: %d", w.MaxCombo), TextStyle{Size: TextBody, Align: AlignCenter, Color: object.ColorText})
		s.Text(cx, cy+120, "Press R to restart", TextStyle{Size: TextBody, Align: AlignCenter, Color: object.ColorText})
	}
}

func drawBall(w *World, s Surface) {
	b := &w.Ball
	// Blink only during the last second so the player sees it ending.
	if b.InvincibleTicks > 0 && b.InvincibleTicks < invincibleBlinkWindow &&
		!object.ShouldRenderBlink(b.InvincibleTicks, invincibleBlinkPeriod) {
		return
	}
	s.FillCircle(b.X, b.Y, b.Radius, b.Color())
}

func drawHUD(w *World, s Surface) {
	hud := TextStyle{Size: TextHUD, Align: AlignLeft, Color: object.ColorText}
	s.Text(10, 20, fmt.Sprintf("Score: %d", w.Score), hud)
	s.Text(10, 40, fmt.Sprintf("Combo: x%d", w.Combo), hud)

	y := 60.0
	if w.Ball.Invincible() {
		hud.Color = object.PowerUpInvincibility.Color()
		s.Text(10, y, fmt.Sprintf("Invincible %ds", secondsLeft(w.Ball.InvincibleTicks)), hud)
		y += 20
	}
	if w.Ball.DoubleJumpEnabled() {
		hud.Color = object.PowerUpDoubleJump.Color()
		s.Text(10, y, fmt.Sprintf("Double jump %ds", secondsLeft(w.Ball.DoubleJumpTicks)), hud)
	}
}

// secondsLeft rounds a tick countdown up to whole seconds.
func secondsLeft(ticks int) int {
	return (ticks + config.TargetFPS - 1) / config.TargetFPS
}
