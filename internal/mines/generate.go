package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

func isMine(c *Cell) bool { return c.Kind == Mine }

// Generate places g.MineCount mines on g, none of which is at safe or within
// one square of it, then classifies every other cell by its adjacent mines.
//
// Mines are placed in resampling passes: every pass walks the still eligible
// cells in random order and accepts each with probability needed/eligible
// until enough mines are down. A pass that accepts nothing places one mine
// at a uniformly chosen eligible cell, so the deficit shrinks on every pass.
func Generate(g *Grid, safe Position, r *rand.Rand) error {
	if g.generated {
		return AssertionError{"grid already generated"}
	}
	if !g.InBounds(safe) {
		return AssertionError{fmt.Sprintf("safe position %s outside the grid", safe)}
	}

	/*
	 * Write down the list of possible mine locations.
	 */
	eligible := make([]int, 0, len(g.cells))
	for i := range g.cells {
		p := g.cells[i].Pos
		if absDiff(safe.Row, p.Row) > 1 || absDiff(safe.Col, p.Col) > 1 {
			eligible = append(eligible, i)
		}
	}
	if g.MineCount > len(eligible) {
		return &ConfigError{
			Params{g.Rows, g.Cols, g.MineCount},
			fmt.Sprintf("only %d cells outside the safe zone of %s", len(eligible), safe),
		}
	}

	needed := g.MineCount
	passes := 0
	for needed > 0 && len(eligible) > 0 {
		passes++
		prob := float64(needed) / float64(len(eligible))
		r.Shuffle(len(eligible), func(i, j int) {
			eligible[i], eligible[j] = eligible[j], eligible[i]
		})

		kept := eligible[:0]
		for _, i := range eligible {
			if needed > 0 && r.Float64() < prob {
				g.cells[i].Kind = Mine
				needed--
			} else {
				kept = append(kept, i)
			}
		}

		if len(kept) == len(eligible) {
			k := r.IntN(len(kept))
			g.cells[kept[k]].Kind = Mine
			needed--
			kept[k] = kept[len(kept)-1]
			kept = kept[:len(kept)-1]
		}
		eligible = kept
	}

	g.classify()
	g.generated = true

	if n := g.countMines(); n != g.MineCount {
		return AssertionError{fmt.Sprintf("placed %d mines, want %d", n, g.MineCount)}
	}
	zone := append(g.Neighbors(safe), &g.cells[safe.Row*g.Cols+safe.Col])
	for _, c := range zone {
		if c.Kind == Mine {
			return AssertionError{fmt.Sprintf("mine at %s inside the safe zone", c.Pos)}
		}
	}

	Log.Debug(
		"generated board",
		slog.String("params", Params{g.Rows, g.Cols, g.MineCount}.Seed()),
		slog.String("safe", safe.String()),
		slog.Int("passes", passes),
	)
	return nil
}
