package draw

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/bounce/internal/config"
	"github.com/tomz197/bounce/internal/game"
)

var (
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// newTestCanvas maps a 100x100 logical area onto 10x5 cells (10x10 pixels).
func newTestCanvas() *Canvas {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.Clear(black)
	return c
}

func TestFillRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		inside     [][2]int
		outside    [][2]int
	}{
		{"quadrant", 0, 0, 50, 50, [][2]int{{0, 0}, {4, 4}}, [][2]int{{5, 5}, {5, 0}}},
		{"tiny still visible", 33, 33, 1, 1, [][2]int{{3, 3}}, [][2]int{{4, 4}, {2, 2}}},
		{"clipped", -50, -50, 1000, 1000, [][2]int{{0, 0}, {9, 9}}, nil},
		{"empty", 10, 10, 0, 20, nil, [][2]int{{1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()
			c.FillRect(tt.x, tt.y, tt.w, tt.h, red)
			for _, p := range tt.inside {
				if got := c.At(p[0], p[1]); got != red {
					t.Errorf("pixel %v = %v, want red", p, got)
				}
			}
			for _, p := range tt.outside {
				if got := c.At(p[0], p[1]); got != black {
					t.Errorf("pixel %v = %v, want black", p, got)
				}
			}
		})
	}
}

func TestFillRectBlends(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(0, 0, 10, 10, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80})

	want := color.RGBA{R: 128, G: 128, B: 128, A: 0xff}
	if got := c.At(0, 0); got != want {
		t.Errorf("blended pixel = %v, want %v", got, want)
	}

	c.FillRect(0, 0, 10, 10, color.RGBA{R: 0xff})
	if got := c.At(0, 0); got != want {
		t.Errorf("transparent fill changed pixel to %v", got)
	}
}

func TestFillCircle(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(50, 50, 20, white)

	for _, p := range [][2]int{{5, 5}, {4, 4}, {3, 5}, {6, 4}} {
		if got := c.At(p[0], p[1]); got != white {
			t.Errorf("pixel %v inside circle = %v", p, got)
		}
	}
	for _, p := range [][2]int{{0, 0}, {9, 9}, {2, 2}, {8, 5}} {
		if got := c.At(p[0], p[1]); got != black {
			t.Errorf("pixel %v outside circle = %v", p, got)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	c := newTestCanvas()
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if got := c.At(p[0], p[1]); got != (color.RGBA{}) {
			t.Errorf("At(%v) = %v, want zero", p, got)
		}
	}
}

func TestRender(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(0, 0, 100, 5, red) // top pixel row only
	c.SetOffset(2, 1)

	var f frame
	c.appendCells(&f)
	out := string(f.buf)

	if n := strings.Count(out, string(BlockUpperHalf)); n != 50 {
		t.Errorf("expected 50 cells, got %d", n)
	}
	if !strings.HasPrefix(out, "\033[2;3H\033[38;2;255;0;0m\033[48;2;0;0;0m") {
		t.Errorf("unexpected first row prefix: %q", out[:min(len(out), 40)])
	}
	// Colors are only emitted on change: one fg and one bg per uniform row.
	if n := strings.Count(out, "\033[38;2;"); n != 5 {
		t.Errorf("expected 5 fg sequences, got %d", n)
	}
	if !strings.HasSuffix(out, "\033[0m") {
		t.Error("render should reset attributes")
	}
}

func TestRenderBorder(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		want     []string
		wantNone bool
	}{
		{"no offset", 0, 0, nil, true},
		{"both", 3, 2, []string{"┌", "┘", "│"}, false},
		{"horizontal only", 0, 2, []string{"─"}, false},
		{"vertical only", 3, 0, []string{"│"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()
			c.SetOffset(tt.col, tt.row)
			var f frame
			c.appendBorder(&f)
			out := string(f.buf)

			if tt.wantNone {
				if out != "" {
					t.Errorf("expected no border, got %q", out)
				}
				return
			}
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("border missing %q", s)
				}
			}
		})
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := newTestCanvas()
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 1, 1},
		{99, 99, 10, 5},
		{50, 25, 6, 2},
	}
	for _, tt := range tests {
		col, row := c.LogicalToTerminal(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("LogicalToTerminal(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
}

func TestResizeKeepsLogicalSize(t *testing.T) {
	c := newTestCanvas()
	c.Resize(20, 10)
	if c.TerminalWidth() != 20 || c.TerminalHeight() != 10 {
		t.Fatalf("unexpected size %dx%d", c.TerminalWidth(), c.TerminalHeight())
	}
	if col, row := c.LogicalToTerminal(99, 99); col != 20 || row != 10 {
		t.Errorf("far corner maps to (%d, %d)", col, row)
	}
}

func TestSurfaceText(t *testing.T) {
	c := newTestCanvas()
	var out bytes.Buffer
	s := NewSurface(c, lipgloss.NewRenderer(&out))

	s.Clear(black)
	s.FillRect(0, 0, 100, 100, red)
	s.Text(50, 50, "hi", game.TextStyle{Align: game.AlignCenter, Color: white})
	s.Text(0, 0, "left", game.TextStyle{Color: white})
	s.Text(0, 500, "below", game.TextStyle{Color: white})

	if err := s.Flush(&out); err != nil {
		t.Fatal(err)
	}
	got := out.String()

	for _, want := range []string{"\033[3;5H", "hi", "\033[1;1H", "left"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(got, "below") {
		t.Error("text outside the canvas should be dropped")
	}

	// Clear drops queued text.
	out.Reset()
	s.Clear(black)
	if err := s.Flush(&out); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "hi") {
		t.Error("text survived Clear")
	}
}

func TestSurfaceTextFollowsOffset(t *testing.T) {
	c := newTestCanvas()
	c.SetOffset(4, 2)
	s := NewSurface(c, lipgloss.NewRenderer(&bytes.Buffer{}))
	s.Clear(black)
	s.Text(0, 0, "x", game.TextStyle{Color: white})

	var out bytes.Buffer
	if err := s.Flush(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[3;5H") {
		t.Errorf("label not shifted by the canvas offset: %q", out.String())
	}
}

func TestRenderWorld(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	s := NewSurface(c, lipgloss.NewRenderer(&bytes.Buffer{}))
	w, err := game.New(config.DefaultTuning(), nil)
	if err != nil {
		t.Fatal(err)
	}

	game.Render(w, s)

	// The ball starts red and centered horizontally.
	px, py := c.pixelAt(w.Ball.X, w.Ball.Y)
	if got := c.At(px, py); got.R != 0xff || got.G != 0x6b {
		t.Errorf("ball pixel = %v", got)
	}
}

// countingWriter records how many writes a frame took.
type countingWriter struct {
	writes int
	bytes.Buffer
	err error
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.err != nil {
		return 0, w.err
	}
	return w.Buffer.Write(p)
}

func TestFlushWritesOnce(t *testing.T) {
	c := NewScaledCanvas(160, 60, 800, 600)
	c.SetOffset(2, 2)
	s := NewSurface(c, lipgloss.NewRenderer(&bytes.Buffer{}))
	s.Clear(black)
	s.Text(10, 20, "Score: 0", game.TextStyle{Color: white})

	var w countingWriter
	if err := s.Flush(&w); err != nil {
		t.Fatal(err)
	}
	if w.writes != 1 {
		t.Errorf("frame took %d writes, want 1", w.writes)
	}
	if w.Len() < 160*60 {
		t.Errorf("frame suspiciously small: %d bytes", w.Len())
	}
}

func TestFlushReturnsWriteError(t *testing.T) {
	s := NewSurface(newTestCanvas(), lipgloss.NewRenderer(&bytes.Buffer{}))
	w := countingWriter{err: errors.New("broken pipe")}
	if err := s.Flush(&w); !errors.Is(err, w.err) {
		t.Errorf("Flush error = %v, want %v", err, w.err)
	}
}

func TestInvalidateClearsOnce(t *testing.T) {
	s := NewSurface(newTestCanvas(), lipgloss.NewRenderer(&bytes.Buffer{}))
	s.Invalidate()

	var first, second bytes.Buffer
	if err := s.Flush(&first); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(&second); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(first.String(), seqReset+seqClear) {
		t.Error("invalidated frame should start by clearing the screen")
	}
	if strings.Contains(second.String(), seqClear) {
		t.Error("only the first frame after Invalidate should clear")
	}
}

func TestScreenEnterLeave(t *testing.T) {
	var out bytes.Buffer
	if err := EnterScreen(&out); err != nil {
		t.Fatal(err)
	}
	if err := LeaveScreen(&out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.HasPrefix(got, seqHideCursor) || !strings.HasSuffix(got, seqShowCursor) {
		t.Errorf("unexpected enter/leave sequence %q", got)
	}
}
