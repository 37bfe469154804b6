package mines

import (
	"fmt"
	"strings"
)

// Moore neighbourhood offsets, row-major.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a rows x cols board stored row-major.
type Grid struct {
	Rows, Cols int
	MineCount  int
	cells      []Cell
	generated  bool
}

// NewGrid returns an ungenerated grid where every cell is hidden and Empty.
// Params must already be valid.
func NewGrid(p Params) *Grid {
	g := &Grid{
		Rows:      p.Rows,
		Cols:      p.Cols,
		MineCount: p.MineCount,
		cells:     make([]Cell, p.Rows*p.Cols),
	}
	for i := range g.cells {
		g.cells[i].Pos = Position{Row: i / p.Cols, Col: i % p.Cols}
	}
	return g
}

func (g *Grid) Generated() bool { return g.generated }

func (g *Grid) InBounds(p Position) bool {
	return 0 <= p.Row && p.Row < g.Rows && 0 <= p.Col && p.Col < g.Cols
}

// Get returns the cell at p, or false when p lies outside the grid.
func (g *Grid) Get(p Position) (*Cell, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.cells[p.Row*g.Cols+p.Col], true
}

// Neighbors returns the 0 to 8 existing cells around p.
func (g *Grid) Neighbors(p Position) []*Cell {
	res := make([]*Cell, 0, len(offsets))
	for _, d := range offsets {
		if c, ok := g.Get(Position{Row: p.Row + d[0], Col: p.Col + d[1]}); ok {
			res = append(res, c)
		}
	}
	return res
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

func (g *Grid) countMines() (n int) {
	for i := range g.cells {
		if g.cells[i].Kind == Mine {
			n++
		}
	}
	return
}

func (g *Grid) countNeighbors(p Position, pred func(c *Cell) bool) (n int) {
	for _, c := range g.Neighbors(p) {
		if pred(c) {
			n++
		}
	}
	return
}

// classify sets the adjacent mine count of every non-mine cell.
func (g *Grid) classify() {
	for i := range g.cells {
		c := &g.cells[i]
		if c.Kind != Mine {
			c.Kind = Kind(g.countNeighbors(c.Pos, isMine))
		}
	}
}

// solved reports whether every non-mine cell has been revealed.
func (g *Grid) solved() bool {
	for i := range g.cells {
		if g.cells[i].Kind != Mine && !g.cells[i].Revealed {
			return false
		}
	}
	return true
}

// String prints the true layout, mines as '*' and counts as digits.
func (g *Grid) String() string {
	var b strings.Builder
	for r := range g.Rows {
		for c := range g.Cols {
			k := g.cells[r*g.Cols+c].Kind
			switch {
			case k == Mine:
				b.WriteString("* ")
			case k == Empty:
				b.WriteString("- ")
			default:
				fmt.Fprintf(&b, "%d ", k)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
