package mines

import (
	"fmt"
	"strconv"
)

// Kind classifies a cell. Values 1 to 8 are Safe(n) with n adjacent mines.
type Kind int8

const (
	Hidden Kind = -2 // snapshot only: classification not visible to the player
	Mine   Kind = -1
	Empty  Kind = 0
)

// Safe returns the Kind of a safe cell with n adjacent mines.
func Safe(n int) Kind {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("mines: adjacent mine count out of range: %d", n))
	}
	return Kind(n)
}

func (k Kind) IsMine() bool { return k == Mine }

// Count is the number of adjacent mines, 0 for Empty and Mine.
func (k Kind) Count() int {
	if k < 0 {
		return 0
	}
	return int(k)
}

func (k Kind) String() string {
	switch {
	case k == Hidden:
		return "hidden"
	case k == Mine:
		return "mine"
	case k == Empty:
		return "empty"
	case 1 <= k && k <= 8:
		return "safe(" + strconv.Itoa(int(k)) + ")"
	default:
		return "invalid"
	}
}

type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

type Cell struct {
	Pos      Position
	Kind     Kind
	Revealed bool
	Flagged  bool
}
