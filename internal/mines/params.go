package mines

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type Params struct {
	Rows, Cols, MineCount int
}

func (p Params) Unpack() (rows, cols, mineCount int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid board seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

// safeZoneSize is the largest safe zone a first reveal can produce on a board
// of these dimensions: the full 3x3 block, clipped for narrow boards.
func (p Params) safeZoneSize() int {
	return min(3, p.Rows) * min(3, p.Cols)
}

// MaxMines is the largest mine count that can be placed no matter where the
// first reveal lands.
func (p Params) MaxMines() int {
	return p.Rows*p.Cols - p.safeZoneSize()
}

// Validate rejects configurations that cannot produce a playable board.
func (p Params) Validate() error {
	switch {
	case p.Rows < 1:
		return &ConfigError{p, "rows must be positive"}
	case p.Cols < 1:
		return &ConfigError{p, "cols must be positive"}
	case p.MineCount < 0:
		return &ConfigError{p, "mine count must not be negative"}
	case p.MineCount > p.MaxMines():
		return &ConfigError{p, fmt.Sprintf(
			"mine count exceeds %d cells outside the first-reveal safe zone",
			p.MaxMines(),
		)}
	}
	return nil
}

func (p Params) ValidatePosition(pos Position) bool {
	return 0 <= pos.Row && pos.Row < p.Rows && 0 <= pos.Col && pos.Col < p.Cols
}

// Named difficulty presets.
var presets = map[string]Params{
	"easy":      {Rows: 9, Cols: 9, MineCount: 10},
	"medium":    {Rows: 16, Cols: 16, MineCount: 40},
	"hard":      {Rows: 16, Cols: 30, MineCount: 99},
	"nightmare": {Rows: 24, Cols: 30, MineCount: 225},
}

func Difficulties() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return presets[names[i]].MineCount < presets[names[j]].MineCount
	})
	return names
}

func ParseDifficulty(name string) (Params, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Params{}, fmt.Errorf(
			"unknown difficulty %q (want one of %s)",
			name, strings.Join(Difficulties(), ", "),
		)
	}
	return p, nil
}

// MinesForDensity converts a mine density into an exact mine count, capped at
// what the board can hold.
func MinesForDensity(rows, cols int, density float64) (int, error) {
	p := Params{Rows: rows, Cols: cols}
	if !(0 < density && density < 1) {
		return 0, &ConfigError{p, fmt.Sprintf("density %g outside (0, 1)", density)}
	}
	if rows < 1 || cols < 1 {
		return 0, p.Validate()
	}
	n := int(math.Round(float64(rows*cols) * density))
	return min(n, p.MaxMines()), nil
}
