// Package command decodes the line-oriented text protocol used by the plain
// front end into session actions.
//
//	o ROW COL   reveal (chords when the cell is an open number)
//	c ROW COL   same as o
//	f ROW COL   toggle flag
//	n           new game
//	g           no-op, only redraws the board
//	q           quit
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"c": 2,
	"f": 2,
	"n": 0,
	"q": 0,
}

func parsePosition(twoStrings []string) (p mines.Position, err error) {
	if p.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		return p, fmt.Errorf("row must be an int: %q", twoStrings[0])
	}
	if p.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		return p, fmt.Errorf("col must be an int: %q", twoStrings[1])
	}
	return p, nil
}

// Parse decodes a single command. ok is false for commands that carry no
// action, such as "g" or a blank line.
func Parse(c string) (a mines.Action, ok bool, err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return a, false, nil
	}
	nargs, known := commandNargs[parts[0]]
	if !known {
		return a, false, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return a, false, fmt.Errorf("%w: %q takes %d", ErrArgCount, parts[0], nargs)
	}
	switch parts[0] {
	case "g":
		return a, false, nil
	case "n":
		return mines.Restart(), true, nil
	case "q":
		return mines.Quit(), true, nil
	}
	p, err := parsePosition(parts[1:])
	if err != nil {
		return a, false, err
	}
	if parts[0] == "f" {
		return mines.ToggleFlagAt(p), true, nil
	}
	return mines.RevealAt(p), true, nil
}

// Execute runs every newline-separated command in text against s. It stops
// at the first malformed command or at quit; running reports whether the
// session should keep going.
func Execute(s *mines.Session, text string) (running bool, err error) {
	for i, c := range byPiece(strings.TrimSpace(text), "\n") {
		a, ok, err := Parse(c)
		if err != nil {
			return true, fmt.Errorf("command %d: %w", i+1, err)
		}
		if ok && !s.Apply(a) {
			return false, nil
		}
	}
	return true, nil
}
