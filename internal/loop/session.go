// Package loop drives an interactive terminal session: it reads keys, advances
// the game and renders frames until the player quits.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rocket/internal/draw"
	"github.com/tomz197/rocket/internal/game"
	"github.com/tomz197/rocket/internal/input"
)

const (
	defaultFPS = 60

	// maxStep caps a single simulation step after a stalled frame.
	maxStep = 0.25

	// Largest render area; bigger terminals get a centered canvas.
	maxCols = 240
	maxRows = 80
)

var _ game.Renderer = (*draw.Scene)(nil)

// Options configures a Session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	FPS          int
	Logger       *log.Logger
}

// Session connects one terminal to one game.
type Session struct {
	game      *game.Game
	stream    *input.Stream
	out       *draw.ChunkWriter
	canvas    *draw.Canvas
	scene     *draw.Scene
	termSize  draw.TermSizeFunc
	frameTime time.Duration
	logger    *log.Logger

	layout  layout
	lastHUD string
}

type layout struct {
	cols, rows         int
	offCol, offRow     int
	termCols, termRows int
}

// NewSession creates a session that reads keys from r and writes frames to w.
func NewSession(g *game.Game, r *bufio.Reader, w io.Writer, opts Options) *Session {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	canvas := draw.NewCanvas(0, 0, g.Size())
	return &Session{
		game:      g,
		stream:    input.StartStream(r),
		out:       draw.NewChunkWriter(w),
		canvas:    canvas,
		scene:     draw.NewScene(canvas),
		termSize:  opts.TermSizeFunc,
		frameTime: time.Second / time.Duration(opts.FPS),
		logger:    opts.Logger,
	}
}

// Run plays until the player quits, the input closes or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	defer s.stream.Close()

	s.out.HideCursor()
	s.out.ClearScreen()
	defer func() {
		s.out.ClearScreen()
		s.out.ShowCursor()
		if err := s.out.Flush(); err != nil {
			s.logger.Debug("final flush failed", "err", err)
		}
	}()

	ticker := time.NewTicker(s.frameTime)
	defer ticker.Stop()

	s.logger.Debug("session started", "frame", s.frameTime)
	last := time.Now()
	for {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		running, err := s.frame(dt)
		if err != nil {
			return err
		}
		if !running {
			s.logger.Debug("player quit", "score", s.game.Score())
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// frame runs one input, update and draw cycle. It reports false once the player quits.
func (s *Session) frame(dt float64) (bool, error) {
	keys := input.ReadKeys(s.stream)
	if keys.Quit {
		return false, nil
	}
	s.game.SetActions(keys.Actions())

	s.updateLayout()

	s.game.Update(min(dt, maxStep))
	s.game.Draw(s.scene)
	s.canvas.Render(s.out)
	s.drawHUD()

	return true, s.out.Flush()
}

// updateLayout follows terminal resizes. The top row is reserved for the HUD.
func (s *Session) updateLayout() {
	termCols, termRows, err := s.termSize()
	if err != nil {
		return
	}
	l := clampTermSize(termCols, termRows)
	if l == s.layout {
		return
	}

	s.layout = l
	s.lastHUD = ""
	s.out.ClearScreen()
	s.canvas.Resize(l.cols, l.rows)
	s.out.SetOffset(l.offCol, l.offRow+1)
}

// clampTermSize fits the canvas below the HUD row and centers it when the
// terminal exceeds the maximum render area.
func clampTermSize(termCols, termRows int) layout {
	cols := min(max(termCols, 0), maxCols)
	rows := min(max(termRows-1, 0), maxRows)
	return layout{
		cols:     cols,
		rows:     rows,
		offCol:   (max(termCols, 0) - cols) / 2,
		offRow:   (max(termRows-1, 0) - rows) / 2,
		termCols: termCols,
		termRows: termRows,
	}
}
