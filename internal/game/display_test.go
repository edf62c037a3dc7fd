package game

import (
	"github.com/vovakirdan/terminoid/internal/config"
	"github.com/vovakirdan/terminoid/internal/core"
)

type glyphCall struct {
	X, Y  int
	Text  string
	Color core.Color
}

// recordingDisplay captures every command the simulation emits.
type recordingDisplay struct {
	glyphs        []glyphCall
	erased        []core.Rect
	lives         []int
	messages      []string
	messageClears int
	clears        int
	backgrounds   int
}

func (d *recordingDisplay) DrawGlyph(x, y int, text string, color core.Color) {
	d.glyphs = append(d.glyphs, glyphCall{X: x, Y: y, Text: text, Color: color})
}

func (d *recordingDisplay) EraseRegion(x1, y1, x2, y2 int) {
	d.erased = append(d.erased, core.RectFromCorners(x1, y1, x2, y2))
}

func (d *recordingDisplay) DrawBackground(Playfield, int) { d.backgrounds++ }
func (d *recordingDisplay) DrawLives(lives int)           { d.lives = append(d.lives, lives) }
func (d *recordingDisplay) DrawMessage(msg string)        { d.messages = append(d.messages, msg) }
func (d *recordingDisplay) ClearMessage()                 { d.messageClears++ }
func (d *recordingDisplay) Clear()                        { d.clears++ }

func (d *recordingDisplay) glyphsWithText(text string) int {
	n := 0
	for _, g := range d.glyphs {
		if g.Text == text {
			n++
		}
	}
	return n
}

// newTestSession builds a session from the default 33x14 configuration.
func newTestSession() (*Session, *recordingDisplay) {
	d := &recordingDisplay{}
	return NewSession(NewTemplate(config.Default()), d), d
}

// destroyBlocks clears the first n occupied blocks in row-major order.
func destroyBlocks(g *BlockGrid, n int) {
	for row := range g.Rows() {
		for col := range g.Cols() {
			if n == 0 {
				return
			}
			if g.destroy(row, col) {
				n--
			}
		}
	}
}

// keepOnly clears every block except (row, col).
func keepOnly(g *BlockGrid, row, col int) {
	for r := range g.Rows() {
		for c := range g.Cols() {
			if r != row || c != col {
				g.destroy(r, c)
			}
		}
	}
}
