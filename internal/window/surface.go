package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tomz197/bounce/internal/game"
)

// Font sizes in logical pixels.
var fontSizes = map[game.TextSize]float64{
	game.TextHUD:   16,
	game.TextBody:  24,
	game.TextTitle: 48,
}

// surface draws onto the ebiten screen image of the current frame.
type surface struct {
	screen *ebiten.Image
	faces  map[game.TextSize]*text.GoTextFace
}

var _ game.Surface = (*surface)(nil)

// newSurface loads the Go fonts: regular for HUD and body text, bold for
// titles.
func newSurface() (*surface, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	faces := make(map[game.TextSize]*text.GoTextFace, len(fontSizes))
	for size, px := range fontSizes {
		src := regular
		if size == game.TextTitle {
			src = bold
		}
		faces[size] = &text.GoTextFace{Source: src, Size: px}
	}
	return &surface{faces: faces}, nil
}

// straight reinterprets the world's straight-alpha color for ebiten, which
// treats color.RGBA as premultiplied.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA(c)
}

func (s *surface) Clear(c color.RGBA) {
	s.screen.Fill(straight(c))
}

func (s *surface) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), straight(c), false)
}

func (s *surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	vector.DrawFilledCircle(s.screen, float32(cx), float32(cy), float32(r), straight(c), true)
}

func (s *surface) Text(x, y float64, str string, style game.TextStyle) {
	face, ok := s.faces[style.Size]
	if !ok {
		face = s.faces[game.TextBody]
	}

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(straight(style.Color))
	opts.SecondaryAlign = text.AlignCenter
	if style.Align == game.AlignCenter {
		opts.PrimaryAlign = text.AlignCenter
	}
	text.Draw(s.screen, str, face, opts)
}
