package game

import (
	"unicode/utf8"

	"github.com/vovakirdan/terminoid/internal/config"
)

// Status messages shown in the middle of the playfield.
const (
	MessageLaunch   = "Press [space] to launch"
	MessagePaused   = "Paused"
	MessageGameOver = "Game Over!"
	MessageWinner   = "WINNER!"
)

// Playfield is the bounded area the ball moves in.
type Playfield struct {
	Width  int
	Height int
	Wall   string
}

// Paddle is the player's paddle. Y is always the playfield height.
type Paddle struct {
	X, Y   int
	Width  int
	Speed  int
	Symbol string
}

// Direction is a unit-sign vector; each component is +1 or -1.
type Direction struct {
	X, Y int
}

// Ball holds integer cell coordinates and a per-axis speed.
type Ball struct {
	X, Y   int
	Speed  int
	Dir    Direction
	Symbol string
}

// BlockGrid maps (row, col) to occupancy. Remaining always equals the
// number of occupied cells.
type BlockGrid struct {
	Cells     [][]bool
	OffsetX   int
	OffsetY   int
	Symbol    string
	Remaining int
}

// Rows returns the number of grid rows.
func (g *BlockGrid) Rows() int {
	return len(g.Cells)
}

// Cols returns the number of grid columns.
func (g *BlockGrid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// GlyphWidth returns how many cells one block occupies horizontally.
func (g *BlockGrid) GlyphWidth() int {
	return utf8.RuneCountInString(g.Symbol)
}

// Occupied reports whether (row, col) holds a block. Out-of-range cells are empty.
func (g *BlockGrid) Occupied(row, col int) bool {
	if row < 0 || row >= g.Rows() || col < 0 || col >= len(g.Cells[row]) {
		return false
	}
	return g.Cells[row][col]
}

// CellOrigin returns the screen position of the block at (row, col).
func (g *BlockGrid) CellOrigin(row, col int) (x, y int) {
	return g.OffsetX + col*g.GlyphWidth(), g.OffsetY + row
}

// CountOccupied counts occupied cells by scanning the grid.
func (g *BlockGrid) CountOccupied() int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

// destroy clears an occupied cell and keeps Remaining in sync.
func (g *BlockGrid) destroy(row, col int) bool {
	if !g.Occupied(row, col) {
		return false
	}
	g.Cells[row][col] = false
	g.Remaining--
	return true
}

// State is the authoritative mutable game model.
type State struct {
	Playfield Playfield
	Paddle    Paddle
	Ball      Ball
	Blocks    BlockGrid
	Lives     int
	Running   bool   // Ball in flight rather than docked on the paddle
	Paused    bool   // Only meaningful while Running
	HardMode  bool   // One-way latch
	Message   string // Pending status message, "" when none
}

// Clone returns a deep copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	c.Blocks.Cells = make([][]bool, len(s.Blocks.Cells))
	for i, row := range s.Blocks.Cells {
		c.Blocks.Cells[i] = append([]bool(nil), row...)
	}
	return c
}

// Template is the frozen initial configuration used for restarts.
// Its state is never handed out directly, only as clones.
type Template struct {
	state            State
	initialRemaining int
}

// NewTemplate builds the initial layout: paddle centered on the bottom row,
// ball docked above it and a fully occupied block grid.
func NewTemplate(cfg config.Config) Template {
	pf := Playfield{
		Width:  cfg.Playfield.Width,
		Height: cfg.Playfield.Height,
		Wall:   cfg.Playfield.Wall,
	}
	halfWidth := pf.Width / 2

	cells := make([][]bool, config.GridRows)
	for row := range cells {
		cells[row] = make([]bool, config.GridCols)
		for col := range cells[row] {
			cells[row][col] = true
		}
	}

	st := State{
		Playfield: pf,
		Paddle: Paddle{
			X:      halfWidth - cfg.Paddle.Width/2,
			Y:      pf.Height,
			Width:  cfg.Paddle.Width,
			Speed:  cfg.Paddle.Speed,
			Symbol: cfg.Paddle.Symbol,
		},
		Ball: Ball{
			X:      halfWidth + 1,
			Y:      pf.Height - 1,
			Speed:  cfg.Ball.Speed,
			Dir:    Direction{X: 1, Y: -1},
			Symbol: cfg.Ball.Symbol,
		},
		Blocks: BlockGrid{
			Cells:   cells,
			OffsetX: config.GridOffsetX,
			OffsetY: config.GridOffsetY,
			Symbol:  config.GridSymbol,
		},
		Lives:   cfg.Lives,
		Message: MessageLaunch,
	}
	st.Blocks.Remaining = st.Blocks.CountOccupied()

	return Template{state: st, initialRemaining: st.Blocks.Remaining}
}

// NewState returns a fresh mutable copy of the initial layout.
func (t Template) NewState() *State {
	s := t.state.Clone()
	return &s
}

// Lives returns the initial life count.
func (t Template) Lives() int {
	return t.state.Lives
}

// HardModeThreshold returns the remaining-block count at or below which
// hard mode engages.
func (t Template) HardModeThreshold() int {
	return t.initialRemaining / 2
}

// Playfield returns the playfield dimensions.
func (t Template) Playfield() Playfield {
	return t.state.Playfield
}
