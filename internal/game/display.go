package game

import "github.com/vovakirdan/terminoid/internal/core"

// Display is the sink the simulation draws into. Coordinates are playfield
// cells; regions are end-exclusive. Implementations decide how cells reach
// the terminal.
type Display interface {
	// DrawGlyph writes text starting at (x, y).
	DrawGlyph(x, y int, text string, color core.Color)

	// EraseRegion blanks the cells in [x1, x2) x [y1, y2).
	EraseRegion(x1, y1, x2, y2 int)

	// DrawBackground draws the walls and the side panel.
	DrawBackground(pf Playfield, lives int)

	// DrawLives updates the lives counter.
	DrawLives(lives int)

	// DrawMessage shows a status message centered in the playfield.
	DrawMessage(msg string)

	// ClearMessage blanks the status message row.
	ClearMessage()

	// Clear wipes the whole display.
	Clear()
}

// Colors for game elements.
const (
	ColorPaddle = core.ColorBrightWhite
	ColorBall   = core.ColorYellow
)

// blockColors cycles by grid row.
var blockColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
}

// BlockColor returns the color used for blocks in the given row.
func BlockColor(row int) core.Color {
	return blockColors[row%len(blockColors)]
}
