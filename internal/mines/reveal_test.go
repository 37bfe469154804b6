package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealFloodFill(t *testing.T) {
	g := layout(
		"*....",
		".....",
		".....",
		".....",
		".....",
	)

	out := Reveal(g, at(4, 4))

	assert.False(t, out.Exploded())
	assert.Equal(t, 24, out.Revealed)
	assert.Equal(t, 24, countRevealed(g))
	c, _ := g.Get(at(0, 0))
	assert.False(t, c.Revealed)
	assert.True(t, g.solved())
}

func TestRevealFloodFillStopsAtNumbers(t *testing.T) {
	g := layout(
		"..*..",
		"..*..",
		"..*..",
		"..*..",
		"..*..",
	)

	out := Reveal(g, at(0, 0))

	assert.Equal(t, 10, out.Revealed)
	g.Each(func(c *Cell) {
		assert.Equal(t, c.Pos.Col < 2, c.Revealed, c.Pos.String())
	})
}

func TestRevealFloodFillTerminates(t *testing.T) {
	g := NewGrid(Params{Rows: 40, Cols: 60})
	g.generated = true

	out := Reveal(g, at(17, 23))

	assert.Equal(t, 40*60, out.Revealed)
	assert.Equal(t, 40*60, countRevealed(g))
}

func TestRevealSkipsFlags(t *testing.T) {
	g := layout(
		".....",
		".....",
		".....",
	)
	require.True(t, ToggleFlag(g, at(0, 4)))

	out := Reveal(g, at(2, 0))

	assert.Equal(t, 14, out.Revealed)
	c, _ := g.Get(at(0, 4))
	assert.False(t, c.Revealed)
	assert.True(t, c.Flagged)
}

func TestRevealNoops(t *testing.T) {
	g := layout(
		"*..",
		"...",
		"...",
	)

	t.Run("flagged", func(t *testing.T) {
		require.True(t, ToggleFlag(g, at(2, 2)))
		before := cellsOf(g)
		assert.Zero(t, Reveal(g, at(2, 2)).Revealed)
		assert.Equal(t, before, cellsOf(g))
		require.True(t, ToggleFlag(g, at(2, 2)))
	})

	t.Run("out of range", func(t *testing.T) {
		before := cellsOf(g)
		assert.Zero(t, Reveal(g, at(-1, 5)).Revealed)
		assert.Zero(t, Reveal(g, at(3, 0)).Revealed)
		assert.Equal(t, before, cellsOf(g))
	})

	t.Run("revealed empty", func(t *testing.T) {
		Reveal(g, at(2, 2))
		before := cellsOf(g)
		assert.Zero(t, Reveal(g, at(2, 2)).Revealed)
		assert.Equal(t, before, cellsOf(g))
	})
}

func TestRevealMine(t *testing.T) {
	g := layout(
		"*..",
		"...",
		"..*",
	)
	ToggleFlag(g, at(2, 2))

	out := Reveal(g, at(0, 0))

	require.True(t, out.Exploded())
	assert.Equal(t, at(0, 0), *out.Detonated)
	assert.Equal(t, 1, out.Revealed)
	assert.Equal(t, 9, countRevealed(g))
	c, _ := g.Get(at(2, 2))
	assert.True(t, c.Flagged, "flags survive the end-of-game reveal")
}

// chordBoard has a Safe(3) cell at (2,2) whose mines are its top row.
func chordBoard(t *testing.T) *Grid {
	g := layout(
		".....",
		".***.",
		".....",
		".....",
		".....",
	)
	c, _ := g.Get(at(2, 2))
	require.Equal(t, Safe(3), c.Kind)
	return g
}

func TestChordExactFlags(t *testing.T) {
	g := chordBoard(t)
	require.Equal(t, 1, Reveal(g, at(2, 2)).Revealed)
	for _, p := range []Position{at(1, 1), at(1, 2), at(1, 3)} {
		require.True(t, ToggleFlag(g, p))
	}

	out := Reveal(g, at(2, 2))

	assert.False(t, out.Exploded())
	for _, p := range []Position{at(2, 1), at(2, 3), at(3, 1), at(3, 2), at(3, 3)} {
		c, _ := g.Get(p)
		assert.True(t, c.Revealed, p.String())
	}
	assert.GreaterOrEqual(t, out.Revealed, 5)
	for _, p := range []Position{at(1, 1), at(1, 2), at(1, 3)} {
		c, _ := g.Get(p)
		assert.False(t, c.Revealed, p.String())
	}
}

func TestChordFlagMismatch(t *testing.T) {
	for _, flags := range [][]Position{
		{},
		{at(1, 1)},
		{at(1, 1), at(1, 2)},
		{at(1, 1), at(1, 2), at(1, 3), at(3, 3)},
	} {
		g := chordBoard(t)
		Reveal(g, at(2, 2))
		for _, p := range flags {
			require.True(t, ToggleFlag(g, p))
		}
		before := cellsOf(g)

		out := Chord(g, at(2, 2))

		assert.Zero(t, out.Revealed, "%d flags", len(flags))
		assert.Equal(t, before, cellsOf(g), "%d flags", len(flags))
	}
}

func TestChordWrongFlagsDetonates(t *testing.T) {
	g := chordBoard(t)
	Reveal(g, at(2, 2))
	for _, p := range []Position{at(1, 1), at(1, 2), at(2, 3)} {
		require.True(t, ToggleFlag(g, p))
	}

	out := Chord(g, at(2, 2))

	require.True(t, out.Exploded())
	assert.Equal(t, at(1, 3), *out.Detonated)
	assert.Equal(t, 25, countRevealed(g))
}

func TestChordImplicitOnReveal(t *testing.T) {
	g := chordBoard(t)
	for _, p := range []Position{at(1, 1), at(1, 2), at(1, 3)} {
		require.True(t, ToggleFlag(g, p))
	}

	out := Reveal(g, at(2, 2))

	assert.False(t, out.Exploded())
	c, _ := g.Get(at(3, 2))
	assert.True(t, c.Revealed)
	assert.GreaterOrEqual(t, out.Revealed, 6)
}

func TestChordIgnoresHiddenAndEmpty(t *testing.T) {
	g := chordBoard(t)
	before := cellsOf(g)
	assert.Zero(t, Chord(g, at(2, 2)).Revealed, "hidden cell")
	assert.Equal(t, before, cellsOf(g))

	Reveal(g, at(4, 0))
	before = cellsOf(g)
	assert.Zero(t, Chord(g, at(4, 0)).Revealed, "empty cell")
	assert.Equal(t, before, cellsOf(g))
}

func TestToggleFlag(t *testing.T) {
	g := layout(
		"*..",
		"...",
		"...",
	)

	c, _ := g.Get(at(0, 0))
	assert.True(t, ToggleFlag(g, at(0, 0)))
	assert.True(t, c.Flagged)
	assert.True(t, ToggleFlag(g, at(0, 0)))
	assert.False(t, c.Flagged)

	Reveal(g, at(2, 2))
	r, _ := g.Get(at(2, 2))
	require.True(t, r.Revealed)
	assert.False(t, ToggleFlag(g, at(2, 2)))
	assert.False(t, r.Flagged)

	assert.False(t, ToggleFlag(g, at(5, 5)))
}
