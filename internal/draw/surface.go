package draw

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/bounce/internal/game"
)

// label is text queued until the canvas has been written.
type label struct {
	x, y  float64
	s     string
	style game.TextStyle
}

// Surface draws a world onto a terminal canvas. Shapes go straight to the
// canvas; text is queued and printed on top of it by Flush, since a text
// cell cannot share a half-block with pixels.
type Surface struct {
	canvas   *Canvas
	renderer *lipgloss.Renderer
	labels   []label
	frame    frame
	stale    bool // Blank the terminal before the next frame
}

var _ game.Surface = (*Surface)(nil)

// NewSurface wraps canvas. renderer decides the color profile of text and
// should be created for the writer the frame ends up on.
func NewSurface(canvas *Canvas, renderer *lipgloss.Renderer) *Surface {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &Surface{canvas: canvas, renderer: renderer}
}

// Invalidate makes the next Flush blank the terminal first, e.g. after the
// canvas moved and the old border would otherwise stay on screen.
func (s *Surface) Invalidate() {
	s.stale = true
}

// Clear resets the canvas and drops queued text.
func (s *Surface) Clear(c color.RGBA) {
	s.canvas.Clear(c)
	s.labels = s.labels[:0]
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.canvas.FillRect(x, y, w, h, c)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	s.canvas.FillCircle(cx, cy, r, c)
}

// Text queues s with its vertical middle at y.
func (s *Surface) Text(x, y float64, str string, style game.TextStyle) {
	s.labels = append(s.labels, label{x: x, y: y, s: str, style: style})
}

// Flush writes the canvas, the queued text and the border to w in a single
// write.
func (s *Surface) Flush(w io.Writer) error {
	f := &s.frame
	f.reset()
	if s.stale {
		f.writeString(seqReset + seqClear)
		s.stale = false
	}
	s.canvas.appendCells(f)
	for _, l := range s.labels {
		s.appendLabel(f, l)
	}
	s.canvas.appendBorder(f)
	return f.writeTo(w)
}

func (s *Surface) appendLabel(f *frame, l label) {
	c := s.canvas
	col, row := c.LogicalToTerminal(l.x, l.y)
	width := lipgloss.Width(l.s)
	if l.style.Align == game.AlignCenter {
		col -= width / 2
	}
	if row < 1 || row > c.TerminalHeight() {
		return
	}
	col = max(col, 1)

	runes := []rune(l.s)
	if room := c.TerminalWidth() - col + 1; len(runes) > room {
		if room <= 0 {
			return
		}
		runes = runes[:room]
	}

	// Match the cell behind the text so it reads as printed on the scene.
	px, _ := c.pixelAt(l.x, 0)
	bg := c.At(min(max(px, 0), c.TerminalWidth()-1), (row-1)*2)

	style := s.renderer.NewStyle().
		Foreground(lipgloss.Color(hexColor(l.style.Color))).
		Background(lipgloss.Color(hexColor(bg)))
	if l.style.Size == game.TextTitle {
		style = style.Bold(true)
	}
	f.moveTo(col+c.offsetCol, row+c.offsetRow)
	f.writeString(style.Render(string(runes)))
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
