package command

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  mines.Action
		ok    bool
	}{
		{"o 3 4", mines.RevealAt(mines.Position{Row: 3, Col: 4}), true},
		{"c 0 0", mines.RevealAt(mines.Position{}), true},
		{"f 8 1", mines.ToggleFlagAt(mines.Position{Row: 8, Col: 1}), true},
		{"  f   2  -1 ", mines.ToggleFlagAt(mines.Position{Row: 2, Col: -1}), true},
		{"n", mines.Restart(), true},
		{"q", mines.Quit(), true},
		{"g", mines.Action{}, false},
		{"", mines.Action{}, false},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			a, ok, err := Parse(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.want, a)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		target error
	}{
		{"x 1 2", ErrUnknownCommand},
		{"open 1 2", ErrUnknownCommand},
		{"o 1", ErrArgCount},
		{"n 1", ErrArgCount},
		{"f 1 2 3", ErrArgCount},
		{"o a 2", nil},
		{"o 1 b", nil},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, ok, err := Parse(test.input)
			require.Error(t, err)
			assert.False(t, ok)
			if test.target != nil {
				assert.True(t, errors.Is(err, test.target), err.Error())
			}
		})
	}
}

func TestExecute(t *testing.T) {
	s, err := mines.NewSession(
		mines.Params{Rows: 9, Cols: 9, MineCount: 10},
		rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)

	running, err := Execute(s, "f 0 0\ng\n\no 4 4\n")
	require.NoError(t, err)
	assert.True(t, running)
	assert.NotEqual(t, mines.AwaitingFirstReveal, s.Status())
	assert.True(t, s.Snapshot().At(mines.Position{}).Flagged ||
		s.Snapshot().At(mines.Position{}).Revealed)

	running, err = Execute(s, "n\no 9 9")
	require.NoError(t, err)
	assert.True(t, running)
	assert.Equal(t, mines.AwaitingFirstReveal, s.Status(), "out of range reveal is ignored")

	running, err = Execute(s, "o 1 1\nbogus\no 2 2")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.ErrorContains(t, err, "command 2")
	assert.True(t, running)

	running, err = Execute(s, "q\no 5 5")
	require.NoError(t, err)
	assert.False(t, running)
}
