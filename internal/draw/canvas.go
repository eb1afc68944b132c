package draw

import (
	"image/color"
	"math"
	"strings"
)

// BlockUpperHalf paints the top sub-pixel in the foreground color and the
// bottom one in the background color.
const BlockUpperHalf = '▀'

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. Supports scaling from logical coordinates to actual
// terminal pixels.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the world.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 1), max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear fills every pixel with bg.
func (c *Canvas) Clear(bg color.RGBA) {
	bg.A = 0xff
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// At returns the pixel at terminal pixel coordinates, or the zero color
// when out of range.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}
	}
	return c.pixels[y*c.termWidth+x]
}

// setPixel blends col over the pixel at terminal pixel coordinates.
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return
	}
	i := y*c.termWidth + x
	c.pixels[i] = blend(c.pixels[i], col)
}

// blend composites src over dst. Straight (non-premultiplied) alpha.
func blend(dst, src color.RGBA) color.RGBA {
	switch src.A {
	case 0xff:
		return src
	case 0:
		return dst
	}
	a := float64(src.A) / 0xff
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 0xff}
}

// FillRect fills a rectangle given in logical coordinates. Anything that
// covers part of a pixel colors the whole pixel, so small objects stay
// visible at low resolution.
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := max(int(math.Ceil((x+w)*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil((y+h)*c.scaleY)), y0+1)

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.termWidth), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// FillCircle fills a circle given in logical coordinates. Non-uniform
// scaling turns it into an ellipse in pixel space.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := math.Max(r*c.scaleX, 0.5), math.Max(r*c.scaleY, 0.5)

	y0, y1 := int(math.Floor(pcy-ry)), int(math.Ceil(pcy+ry))
	x0, x1 := int(math.Floor(pcx-rx)), int(math.Ceil(pcx+rx))
	for py := y0; py <= y1; py++ {
		dy := (float64(py) + 0.5 - pcy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) + 0.5 - pcx) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(px, py, col)
			}
		}
	}
}

// appendCells adds every cell as a half-block with truecolor escapes.
// Color changes are only emitted when a cell differs from the previous one.
func (c *Canvas) appendCells(f *frame) {
	for row := 0; row < c.termHeight; row++ {
		f.moveTo(1+c.offsetCol, row+1+c.offsetRow)

		var fg, bg color.RGBA
		first := true
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if first || top != fg {
				f.setColor(38, top)
				fg = top
			}
			if first || bottom != bg {
				f.setColor(48, bottom)
				bg = bottom
			}
			first = false
			f.writeRune(BlockUpperHalf)
		}
	}
	f.writeString(seqReset)
}

// appendBorder adds a box around the canvas area when the terminal has
// spare rows or columns around it.
func (c *Canvas) appendBorder(f *frame) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	bar := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			f.moveTo(left, top)
			f.writeString("┌" + bar + "┐")
			f.moveTo(left, bottom)
			f.writeString("└" + bar + "┘")
		} else {
			f.moveTo(c.offsetCol+1, top)
			f.writeString(bar)
			f.moveTo(c.offsetCol+1, bottom)
			f.writeString(bar)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			f.moveTo(left, row)
			f.writeString("│")
			f.moveTo(right, row)
			f.writeString("│")
		}
	}
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row),
// relative to the canvas origin.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// pixelAt converts logical coordinates to terminal pixel coordinates.
func (c *Canvas) pixelAt(x, y float64) (int, int) {
	return int(math.Floor(x * c.scaleX)), int(math.Floor(y * c.scaleY))
}
