// Package window runs the game in a desktop window (or a browser canvas
// when built for js/wasm) on ebiten.
package window

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/bounce/internal/config"
	"github.com/tomz197/bounce/internal/game"
	"github.com/tomz197/bounce/internal/input"
)

// keyBindings maps ebiten keys to game keys.
var keyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyA:          input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyD:          input.KeyRight,
	ebiten.KeySpace:      input.KeyJump,
	ebiten.KeyArrowUp:    input.KeyJump,
	ebiten.KeyW:          input.KeyJump,
	ebiten.KeyR:          input.KeyRestart,
	ebiten.KeyEscape:     input.KeyQuit,
	ebiten.KeyQ:          input.KeyQuit,
}

// Game adapts a world to ebiten's Update/Draw/Layout callbacks.
type Game struct {
	world   *game.World
	keys    input.Keys
	surface *surface
	logger  *log.Logger

	pressed, released []ebiten.Key
}

var _ ebiten.Game = (*Game)(nil)

// New creates a game from settings. A nil logger discards.
func New(settings *config.Settings, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s, err := newSurface()
	if err != nil {
		return nil, err
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world, err := game.New(settings.Tuning, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	logger.Debug("starting run", "seed", seed, "auto_jump", settings.Tuning.AutoJump)

	return &Game{
		world:   world,
		surface: s,
		logger:  logger,
	}, nil
}

// Update reads this tick's key events and advances the world. It returns
// ebiten.Termination when the player quits.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	applyKeys(&g.keys, g.pressed, g.released)

	f := g.keys.Frame()
	if f.Quit {
		g.logger.Info("quit", "score", g.world.Score, "peak_combo", g.world.MaxCombo)
		return ebiten.Termination
	}

	w := g.world
	wasOver := w.GameOver()
	w.HandleInput(f)
	if wasOver && !w.GameOver() {
		g.logger.Info("restart", "state", w.State.String())
	}

	w.Update()
	if !wasOver && w.GameOver() {
		g.logger.Info("game over", "state", w.State.String(), "score", w.Score, "peak_combo", w.MaxCombo, "ticks", w.Ticks)
	}
	return nil
}

// Draw renders the world onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.screen = screen
	game.Render(g.world, g.surface)
}

// Layout fixes the logical screen to the world size; ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Tuning.Screen
	return int(s.Width), int(s.Height)
}

// applyKeys feeds key transitions into keys. Unbound keys are ignored.
func applyKeys(keys *input.Keys, pressed, released []ebiten.Key) {
	for _, k := range pressed {
		if key, ok := keyBindings[k]; ok {
			keys.Press(key)
		}
	}
	for _, k := range released {
		if key, ok := keyBindings[k]; ok {
			keys.Release(key)
		}
	}
}
