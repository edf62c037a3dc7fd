package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/terminoid/internal/core"
	"github.com/vovakirdan/terminoid/internal/game"
)

// wallColor is used for the playfield walls.
const wallColor = core.ColorGray

// ScreenDisplay applies game draw commands to a persistent screen buffer.
// The buffer covers the playfield including both walls and the paddle row.
type ScreenDisplay struct {
	screen *core.Screen
	pf     game.Playfield
	lives  int
}

var _ game.Display = (*ScreenDisplay)(nil)

// NewScreenDisplay creates a display sized for the playfield.
func NewScreenDisplay(pf game.Playfield) *ScreenDisplay {
	return &ScreenDisplay{
		screen: core.NewScreen(pf.Width+1, pf.Height+1),
		pf:     pf,
	}
}

// Screen returns the underlying buffer.
func (d *ScreenDisplay) Screen() *core.Screen {
	return d.screen
}

// Lives returns the last lives count drawn.
func (d *ScreenDisplay) Lives() int {
	return d.lives
}

// DrawGlyph writes text starting at (x, y).
func (d *ScreenDisplay) DrawGlyph(x, y int, text string, color core.Color) {
	d.screen.DrawColoredText(x, y, text, color)
}

// EraseRegion blanks [x1, x2) x [y1, y2). Wall cells inside the region are
// repainted so a ball passing over a wall never leaves a gap.
func (d *ScreenDisplay) EraseRegion(x1, y1, x2, y2 int) {
	r := core.RectFromCorners(x1, y1, x2, y2)
	if r.Empty() {
		return
	}
	d.screen.DrawRect(r, ' ')

	wall, _ := utf8.DecodeRuneInString(d.pf.Wall)
	for y := r.Y; y < r.Bottom() && y < d.pf.Height; y++ {
		for _, x := range []int{0, d.pf.Width} {
			if r.Contains(x, y) {
				d.screen.SetCell(x, y, core.Cell{Rune: wall, Color: wallColor})
			}
		}
	}
}

// DrawBackground draws both walls and records the lives count.
func (d *ScreenDisplay) DrawBackground(pf game.Playfield, lives int) {
	d.pf = pf
	wall, _ := utf8.DecodeRuneInString(pf.Wall)
	d.screen.DrawVLine(0, 0, pf.Height, wall, wallColor)
	d.screen.DrawVLine(pf.Width, 0, pf.Height, wall, wallColor)
	d.lives = lives
}

// DrawLives updates the lives counter shown in the side panel.
func (d *ScreenDisplay) DrawLives(lives int) {
	d.lives = lives
}

// DrawMessage centers msg on the middle row of the playfield.
func (d *ScreenDisplay) DrawMessage(msg string) {
	n := utf8.RuneCountInString(msg)
	x := d.pf.Width/2 - n/2
	d.screen.DrawColoredText(x, d.pf.Height/2, msg, core.ColorBrightWhite)
}

// ClearMessage blanks the message row between the walls.
func (d *ScreenDisplay) ClearMessage() {
	y := d.pf.Height / 2
	d.EraseRegion(1, y, d.pf.Width, y+1)
}

// Clear wipes the whole buffer.
func (d *ScreenDisplay) Clear() {
	d.screen.Clear()
}
