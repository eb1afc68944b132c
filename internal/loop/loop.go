// Package loop runs the game in a terminal.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/bounce/internal/config"
	"github.com/tomz197/bounce/internal/draw"
	"github.com/tomz197/bounce/internal/game"
	"github.com/tomz197/bounce/internal/input"
)

// Options configures the terminal loop.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Logger       *log.Logger       // Defaults to discarding
}

// Loop owns a world and the terminal it is drawn on.
type Loop struct {
	world   *game.World
	canvas  *draw.Canvas
	surface *draw.Surface
	stream  *input.Stream // Set by Run
	out     io.Writer

	termSizeFunc          draw.TermSizeFunc
	termWidth, termHeight int
	logger                *log.Logger
	running               bool
}

// New creates a loop that draws to w.
func New(w io.Writer, settings *config.Settings, opts Options) (*Loop, error) {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	t := settings.Tuning
	world, err := game.New(t, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("starting run", "seed", seed, "auto_jump", t.AutoJump)

	canvas := draw.NewScaledCanvas(1, 1, t.Screen.Width, t.Screen.Height)
	return &Loop{
		world:        world,
		canvas:       canvas,
		surface:      draw.NewSurface(canvas, lipgloss.NewRenderer(w)),
		out:          w,
		termSizeFunc: opts.TermSizeFunc,
		logger:       opts.Logger,
		running:      true,
	}, nil
}

// Run starts the loop with the standard Input → Update → Draw cycle. It
// returns when the player quits or r is exhausted.
func Run(r *bufio.Reader, w io.Writer, settings *config.Settings, opts Options) error {
	l, err := New(w, settings, opts)
	if err != nil {
		return err
	}
	return l.Run(input.StartStream(r))
}

// Run drives the loop from stream until quit.
func (l *Loop) Run(stream *input.Stream) (err error) {
	l.stream = stream
	if err := draw.EnterScreen(l.out); err != nil {
		return fmt.Errorf("enter screen: %w", err)
	}
	defer func() {
		if leaveErr := draw.LeaveScreen(l.out); err == nil && leaveErr != nil {
			err = fmt.Errorf("leave screen: %w", leaveErr)
		}
	}()

	for l.running {
		frameStart := time.Now()

		// ===== INPUT + UPDATE PHASE =====
		l.Step(stream.Poll(frameStart))
		if !l.running {
			break
		}

		// ===== DRAW PHASE =====
		l.updateScreen()
		if err := l.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	l.logger.Info("quit", "state", l.world.State.String(), "score", l.world.Score, "peak_combo", l.world.MaxCombo)
	return nil
}

// Step applies one frame of input and advances the world one tick.
func (l *Loop) Step(f input.Frame) {
	if f.Quit {
		l.running = false
		return
	}

	w := l.world
	wasOver := w.GameOver()
	w.HandleInput(f)
	if wasOver && !w.GameOver() {
		// Keys held through the game over screen must not steer the new run.
		if l.stream != nil {
			l.stream.Reset()
		}
		l.logger.Info("restart", "state", w.State.String())
	}

	w.Update()
	if !wasOver && w.GameOver() {
		l.logger.Info("game over", "state", w.State.String(), "score", w.Score, "peak_combo", w.MaxCombo, "ticks", w.Ticks)
	}
}

// updateScreen handles terminal resize.
func (l *Loop) updateScreen() {
	termWidth, termHeight, err := l.termSizeFunc()
	if err != nil {
		return
	}
	if termWidth == l.termWidth && termHeight == l.termHeight {
		return
	}
	l.termWidth, l.termHeight = termWidth, termHeight

	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight, l.aspect())
	l.canvas.Resize(renderWidth, renderHeight)
	l.canvas.SetOffset(offsetCol, offsetRow)

	// Old border and canvas positions are stale.
	l.surface.Invalidate()
	l.logger.Debug("terminal resized", "cols", termWidth, "rows", termHeight, "render_cols", renderWidth, "render_rows", renderHeight)
}

// clampTermSize clamps terminal dimensions to the max render resolution,
// shrinks one axis so half-block pixels keep the world's width:height
// aspect, and computes offsets for centering.
func clampTermSize(termWidth, termHeight int, aspect float64) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)

	// Each row holds two pixels.
	if w, h := float64(renderWidth), float64(renderHeight); w > h*2*aspect {
		renderWidth = int(math.Round(h * 2 * aspect))
	} else {
		renderHeight = int(math.Round(w / (2 * aspect)))
	}
	renderWidth, renderHeight = max(renderWidth, 1), max(renderHeight, 1)

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

func (l *Loop) aspect() float64 {
	s := l.world.Tuning.Screen
	return s.Width / s.Height
}

// drawFrame renders the world and writes it out.
func (l *Loop) drawFrame() error {
	game.Render(l.world, l.surface)
	return l.surface.Flush(l.out)
}
