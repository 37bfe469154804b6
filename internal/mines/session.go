package mines

import (
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

var Log *slog.Logger = slog.Default()

type Status int

const (
	AwaitingFirstReveal Status = iota
	InProgress
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case AwaitingFirstReveal:
		return "awaiting first reveal"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s Status) Over() bool { return s == Won || s == Lost }

type ActionKind int

const (
	ActReveal ActionKind = iota
	ActToggleFlag
	ActRestart
	ActQuit
)

// Action is a single player command. Pos is ignored by Restart and Quit.
type Action struct {
	Kind ActionKind
	Pos  Position
}

func RevealAt(p Position) Action     { return Action{Kind: ActReveal, Pos: p} }
func ToggleFlagAt(p Position) Action { return Action{Kind: ActToggleFlag, Pos: p} }
func Restart() Action                { return Action{Kind: ActRestart} }
func Quit() Action                   { return Action{Kind: ActQuit} }

// Session owns one grid and drives it through a game. It is not safe for
// concurrent use; callers feed it one action at a time.
type Session struct {
	ID        uuid.UUID
	params    Params
	grid      *Grid
	status    Status
	detonated *Position
	rnd       *rand.Rand
}

// NewSession validates p and returns a session waiting for its first reveal.
func NewSession(p Params, r *rand.Rand) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Session{params: p, rnd: r}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.ID = uuid.New()
	s.grid = NewGrid(s.params)
	s.status = AwaitingFirstReveal
	s.detonated = nil
}

func (s *Session) Params() Params { return s.params }
func (s *Session) Status() Status { return s.status }

// Apply dispatches a. It returns false once the player asked to quit.
func (s *Session) Apply(a Action) bool {
	switch a.Kind {
	case ActReveal:
		s.Reveal(a.Pos)
	case ActToggleFlag:
		s.ToggleFlag(a.Pos)
	case ActRestart:
		s.Restart()
	case ActQuit:
		return false
	}
	return true
}

// Reveal opens p, generating the board around p on the first call.
func (s *Session) Reveal(p Position) {
	if s.status.Over() || !s.grid.InBounds(p) {
		return
	}

	if s.status == AwaitingFirstReveal {
		if c, _ := s.grid.Get(p); c.Flagged {
			return
		}
		if err := Generate(s.grid, p, s.rnd); err != nil {
			// Params were validated up front, so this is a generator bug.
			Log.Error("unable to generate board", slog.Any("error", err), s.logAttrs())
			return
		}
		s.status = InProgress
		Log.Debug("game started", slog.String("first", p.String()), s.logAttrs())
	}

	out := Reveal(s.grid, p)
	s.settle(out)
}

func (s *Session) ToggleFlag(p Position) {
	if s.status.Over() {
		return
	}
	ToggleFlag(s.grid, p)
}

// Restart throws the grid away and waits for a new first reveal.
func (s *Session) Restart() {
	old := s.ID
	s.reset()
	Log.Debug("game restarted", slog.String("previous", old.String()), s.logAttrs())
}

func (s *Session) settle(out Outcome) {
	switch {
	case out.Exploded():
		s.status = Lost
		s.detonated = out.Detonated
		Log.Info("game lost", slog.String("mine", out.Detonated.String()), s.logAttrs())
	case s.grid.solved():
		s.status = Won
		flagMines(s.grid)
		Log.Info("game won", s.logAttrs())
	}
}

func (s *Session) logAttrs() slog.Attr {
	return slog.Group("session",
		slog.String("id", s.ID.String()),
		slog.String("params", s.params.Seed()),
		slog.String("status", s.status.String()),
	)
}

// CellView is the player-visible state of one cell.
type CellView struct {
	Pos      Position
	Kind     Kind // Hidden unless revealed or the game is lost
	Revealed bool
	Flagged  bool
}

// Snapshot is a read-only copy of everything a renderer may show.
type Snapshot struct {
	Rows, Cols int
	MineCount  int
	Flags      int
	Status     Status
	Detonated  *Position
	Cells      []CellView // row-major
}

func (s Snapshot) At(p Position) CellView {
	return s.Cells[p.Row*s.Cols+p.Col]
}

// MinesLeft is the mine count minus placed flags; it goes negative when the
// player over-flags.
func (s Snapshot) MinesLeft() int { return s.MineCount - s.Flags }

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:      s.grid.Rows,
		Cols:      s.grid.Cols,
		MineCount: s.grid.MineCount,
		Status:    s.status,
		Cells:     make([]CellView, 0, s.grid.Rows*s.grid.Cols),
	}
	if s.detonated != nil {
		d := *s.detonated
		snap.Detonated = &d
	}
	s.grid.Each(func(c *Cell) {
		if c.Flagged {
			snap.Flags++
		}
		snap.Cells = append(snap.Cells, CellView{
			Pos:      c.Pos,
			Kind:     iif(c.Revealed || s.status == Lost, c.Kind, Hidden),
			Revealed: c.Revealed,
			Flagged:  c.Flagged,
		})
	})
	return snap
}
