package mines

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

// layout builds a generated grid from rows of '*' (mine) and '.' (safe).
func layout(rows ...string) *Grid {
	mineCount := 0
	for _, row := range rows {
		for _, ch := range row {
			if ch == '*' {
				mineCount++
			}
		}
	}
	g := NewGrid(Params{Rows: len(rows), Cols: len(rows[0]), MineCount: mineCount})
	for r, row := range rows {
		for c, ch := range row {
			if ch == '*' {
				g.cells[r*g.Cols+c].Kind = Mine
			}
		}
	}
	g.classify()
	g.generated = true
	return g
}

func cellsOf(g *Grid) []Cell {
	return append([]Cell(nil), g.cells...)
}

func countRevealed(g *Grid) (n int) {
	g.Each(func(c *Cell) {
		if c.Revealed {
			n++
		}
	})
	return
}

func at(row, col int) Position { return Position{Row: row, Col: col} }
