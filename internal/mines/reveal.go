package mines

import (
	"github.com/zyedidia/generic/mapset"
)

// Outcome summarises a reveal-family operation.
type Outcome struct {
	Revealed  int       // cells opened by the action itself
	Detonated *Position // mine that was hit, if any
}

func (o Outcome) Exploded() bool { return o.Detonated != nil }

// Reveal opens the cell at p. Opening an Empty cell floods into its
// neighbours; re-revealing a numbered cell chords it. Flagged cells, revealed
// Empty cells and positions outside the grid are left alone.
func Reveal(g *Grid, p Position) Outcome {
	c, ok := g.Get(p)
	if !ok || c.Flagged {
		return Outcome{}
	}
	if c.Revealed {
		return Chord(g, p)
	}
	return cascade(g, []Position{p})
}

// Chord opens every unflagged neighbour of a revealed Safe(n) cell, provided
// exactly n of its neighbours carry a flag. Anything else is a no-op.
func Chord(g *Grid, p Position) Outcome {
	c, ok := g.Get(p)
	if !ok || !c.Revealed || c.Kind.Count() == 0 {
		return Outcome{}
	}
	return cascade(g, chordTargets(g, c))
}

// ToggleFlag flips the flag on a hidden cell and reports whether anything
// changed.
func ToggleFlag(g *Grid, p Position) bool {
	c, ok := g.Get(p)
	if !ok || c.Revealed {
		return false
	}
	c.Flagged = !c.Flagged
	return true
}

// chordTargets lists the hidden unflagged neighbours of c when its flagged
// neighbour count matches its mine count, nil otherwise.
func chordTargets(g *Grid, c *Cell) []Position {
	var (
		flagged int
		hidden  []Position
	)
	for _, nb := range g.Neighbors(c.Pos) {
		if nb.Flagged {
			flagged++
		} else if !nb.Revealed {
			hidden = append(hidden, nb.Pos)
		}
	}
	if flagged != c.Kind.Count() {
		return nil
	}
	return hidden
}

// cascade works through a breadth-first queue of positions to open. Each
// position is processed at most once per cascade; the persistent Revealed
// flag alone is not enough because two neighbours can queue the same cell
// before either is processed.
func cascade(g *Grid, start []Position) Outcome {
	var (
		out     Outcome
		visited = mapset.New[Position]()
		queue   = append([]Position(nil), start...)
	)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if visited.Has(p) {
			continue
		}
		visited.Put(p)

		c, ok := g.Get(p)
		if !ok || c.Flagged || c.Revealed {
			continue
		}
		c.Revealed = true
		out.Revealed++

		switch {
		case c.Kind == Mine:
			pos := c.Pos
			out.Detonated = &pos
			revealAll(g)
			return out
		case c.Kind == Empty:
			for _, nb := range g.Neighbors(p) {
				if !nb.Revealed && !nb.Flagged && !visited.Has(nb.Pos) {
					queue = append(queue, nb.Pos)
				}
			}
		default:
			/* a fresh number that is already fully flagged chords itself */
			for _, t := range chordTargets(g, c) {
				if !visited.Has(t) {
					queue = append(queue, t)
				}
			}
		}
	}

	return out
}

// revealAll exposes the whole board for end-of-game display. Flags stay so
// the render layer can tell correct flags from wrong ones.
func revealAll(g *Grid) {
	for i := range g.cells {
		g.cells[i].Revealed = true
	}
}

// flagMines marks every mine as flagged once the board is solved.
func flagMines(g *Grid) {
	for i := range g.cells {
		if g.cells[i].Kind == Mine {
			g.cells[i].Flagged = true
		}
	}
}
