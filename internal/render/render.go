// Package render turns a session snapshot into text.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	GlyphHidden    = "·"
	GlyphFlag      = "F"
	GlyphWrongFlag = "x"
	GlyphMine      = "*"
	GlyphDetonated = "X"
	GlyphEmpty     = " "
)

// Glyph maps one cell to the character drawn for it.
func Glyph(c mines.CellView, detonated *mines.Position) string {
	switch {
	case c.Flagged && c.Revealed && c.Kind != mines.Mine:
		return GlyphWrongFlag
	case c.Flagged:
		return GlyphFlag
	case !c.Revealed:
		return GlyphHidden
	case c.Kind == mines.Mine:
		if detonated != nil && *detonated == c.Pos {
			return GlyphDetonated
		}
		return GlyphMine
	case c.Kind == mines.Empty:
		return GlyphEmpty
	default:
		return strconv.Itoa(c.Kind.Count())
	}
}

type Options struct {
	Cursor *mines.Position // drawn as [g] when set
	Ruler  bool            // row and column indices
}

// Board draws the grid, three columns per cell.
func Board(s mines.Snapshot, opts Options) string {
	var b strings.Builder
	if opts.Ruler {
		b.WriteString("    ")
		for col := range s.Cols {
			fmt.Fprintf(&b, "%2d ", col)
		}
		b.WriteString("\n")
	}
	for row := range s.Rows {
		if opts.Ruler {
			fmt.Fprintf(&b, "%3d ", row)
		}
		for col := range s.Cols {
			c := s.At(mines.Position{Row: row, Col: col})
			g := Glyph(c, s.Detonated)
			if opts.Cursor != nil && *opts.Cursor == c.Pos {
				b.WriteString("[" + g + "]")
			} else {
				b.WriteString(" " + g + " ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Status is the one-line summary printed under the board.
func Status(s mines.Snapshot) string {
	var state string
	switch s.Status {
	case mines.AwaitingFirstReveal:
		state = "reveal any cell to start"
	case mines.InProgress:
		state = "in progress"
	case mines.Won:
		state = "cleared!"
	case mines.Lost:
		state = "boom"
	}
	return fmt.Sprintf("%dx%d  mines left: %d  %s", s.Rows, s.Cols, s.MinesLeft(), state)
}
