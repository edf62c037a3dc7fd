package game

import (
	"strings"

	"github.com/vovakirdan/terminoid/internal/core"
)

// step runs one simulation tick. The order of the phases is significant.
func (s *Session) step() {
	st := s.state

	// A message is emitted once and then forgotten.
	if st.Message != "" {
		s.display.DrawMessage(st.Message)
		st.Message = ""
	}

	if st.Paused {
		return
	}

	prevX, prevY := st.Ball.X, st.Ball.Y

	if st.Running {
		s.moveBall()
	} else {
		st.dockBall()
	}

	if !st.HardMode && st.Blocks.Remaining <= s.template.HardModeThreshold() {
		st.Paddle.Width /= 2
		st.HardMode = true
	}

	if st.Blocks.Remaining <= 0 {
		st.Running = false
		st.Message = MessageWinner
		st.Ball.X, st.Ball.Y = prevX, prevY
		return
	}

	s.redraw(prevX, prevY)
}

// dockBall pins the ball above the paddle center, nudged toward its x direction.
func (st *State) dockBall() {
	p := st.Paddle
	st.Ball.Y = p.Y - 1
	st.Ball.X = p.X + p.Width/2 + st.Ball.Dir.X
}

// moveBall resolves bounces, misses and block hits, then advances the ball.
func (s *Session) moveBall() {
	st := s.state
	b := &st.Ball
	p := st.Paddle

	if b.Y <= 0 {
		b.Dir.Y = 1
	} else if b.Y >= st.Playfield.Height-1 {
		// Caught anywhere in [p.X-1, p.X+p.Width]: one cell past each end.
		if b.X < p.X-1 || b.X > p.X+p.Width {
			s.miss()
		} else {
			b.Dir.Y = -1
		}
	}

	if b.X <= 1 || b.X >= st.Playfield.Width-1 {
		b.Dir.X = -b.Dir.X
	}

	s.collideBlocks()

	b.X += b.Speed * b.Dir.X
	b.Y += b.Speed * b.Dir.Y
}

// miss stops play and costs a life.
func (s *Session) miss() {
	st := s.state
	st.Running = false
	st.Lives--
	s.display.DrawLives(st.Lives)

	if st.Lives < 1 {
		st.Message = MessageGameOver
	}
}

// collideBlocks repeats detection until a pass destroys nothing.
//
// Each pass tests two cells against the column of the ball's next x: the
// row the ball is in (a hit flips x) and the row it is heading to (a hit
// flips y). Both may hit in the same pass. Every pass but the last destroys
// a block, so the grid size bounds the loop.
func (s *Session) collideBlocks() {
	st := s.state
	b := &st.Ball
	g := &st.Blocks

	maxPasses := g.Rows()*g.Cols() + 1
	for range maxPasses {
		rows := [2]int{
			b.Y - g.OffsetY,
			b.Y + b.Speed*b.Dir.Y - g.OffsetY,
		}

		hit := false
		for i, row := range rows {
			nextX := b.X + b.Speed*b.Dir.X
			col := core.FloorDiv(nextX-g.OffsetX, g.GlyphWidth())
			if !g.destroy(row, col) {
				continue
			}

			if i == 0 {
				b.Dir.X = -b.Dir.X
			} else {
				b.Dir.Y = -b.Dir.Y
			}

			x, y := g.CellOrigin(row, col)
			s.display.EraseRegion(x, y, x+g.GlyphWidth(), y+1)
			hit = true
		}

		if !hit {
			return
		}
	}
}

// redraw repaints the paddle row and moves the ball glyph.
func (s *Session) redraw(prevX, prevY int) {
	st := s.state
	pf := st.Playfield
	p := st.Paddle
	b := st.Ball

	s.display.EraseRegion(0, pf.Height, pf.Width+1, pf.Height+1)
	s.display.DrawGlyph(p.X, p.Y, strings.Repeat(p.Symbol, p.Width), ColorPaddle)

	s.display.EraseRegion(prevX, prevY, prevX+1, prevY+1)
	s.display.DrawGlyph(b.X, b.Y, b.Symbol, ColorBall)
}

// drawBlocks paints every occupied block.
func (s *Session) drawBlocks() {
	g := &s.state.Blocks
	for row := range g.Rows() {
		for col := range g.Cols() {
			if !g.Occupied(row, col) {
				continue
			}
			x, y := g.CellOrigin(row, col)
			s.display.DrawGlyph(x, y, g.Symbol, BlockColor(row))
		}
	}
}
