package draw

import (
	"image/color"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"golang.org/x/term"
)

// Escape sequences used by the terminal frontend.
const (
	seqReset      = "\033[0m"
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// EnterScreen hides the cursor and blanks the terminal before the first frame.
func EnterScreen(w io.Writer) error {
	_, err := io.WriteString(w, seqHideCursor+seqReset+seqClear)
	return err
}

// LeaveScreen blanks the terminal and gives the cursor back.
func LeaveScreen(w io.Writer) error {
	_, err := io.WriteString(w, seqReset+seqClear+seqShowCursor)
	return err
}

// frame accumulates the escape sequences of one frame so it reaches the
// terminal in a single write.
type frame struct {
	buf []byte
}

func (f *frame) reset() {
	f.buf = f.buf[:0]
}

// moveTo positions the cursor; col and row are 1-based terminal coordinates.
func (f *frame) moveTo(col, row int) {
	f.buf = append(f.buf, "\033["...)
	f.buf = strconv.AppendInt(f.buf, int64(row), 10)
	f.buf = append(f.buf, ';')
	f.buf = strconv.AppendInt(f.buf, int64(col), 10)
	f.buf = append(f.buf, 'H')
}

// setColor emits a truecolor SGR; layer is 38 (fg) or 48 (bg).
func (f *frame) setColor(layer int, c color.RGBA) {
	f.buf = append(f.buf, "\033["...)
	f.buf = strconv.AppendInt(f.buf, int64(layer), 10)
	f.buf = append(f.buf, ";2;"...)
	f.buf = strconv.AppendUint(f.buf, uint64(c.R), 10)
	f.buf = append(f.buf, ';')
	f.buf = strconv.AppendUint(f.buf, uint64(c.G), 10)
	f.buf = append(f.buf, ';')
	f.buf = strconv.AppendUint(f.buf, uint64(c.B), 10)
	f.buf = append(f.buf, 'm')
}

func (f *frame) writeString(s string) {
	f.buf = append(f.buf, s...)
}

func (f *frame) writeRune(r rune) {
	f.buf = utf8.AppendRune(f.buf, r)
}

// writeTo sends the whole frame with one write.
func (f *frame) writeTo(w io.Writer) error {
	_, err := w.Write(f.buf)
	return err
}
