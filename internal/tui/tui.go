// Package tui is the interactive terminal front end, built on Bubble Tea.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

const help = "arrows/hjkl move  space reveal  f flag  r restart  q quit"

// Model drives one session with a cursor.
type Model struct {
	session *mines.Session
	cursor  mines.Position
	done    bool
}

// New centres the cursor on the board.
func New(s *mines.Session) Model {
	p := s.Params()
	return Model{
		session: s,
		cursor:  mines.Position{Row: p.Rows / 2, Col: p.Cols / 2},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Cursor() mines.Position { return m.cursor }

func (m Model) move(dr, dc int) Model {
	p := m.session.Params()
	m.cursor.Row = min(max(m.cursor.Row+dr, 0), p.Rows-1)
	m.cursor.Col = min(max(m.cursor.Col+dc, 0), p.Cols-1)
	return m
}

// action maps a key to a session action; ok is false for keys that only
// move the cursor or do nothing.
func (m Model) action(key string) (a mines.Action, ok bool) {
	switch key {
	case " ", "enter", "o":
		return mines.RevealAt(m.cursor), true
	case "f":
		return mines.ToggleFlagAt(m.cursor), true
	case "r", "n":
		return mines.Restart(), true
	case "q", "ctrl+c", "esc":
		return mines.Quit(), true
	}
	return a, false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		return m.move(-1, 0), nil
	case "down", "j":
		return m.move(1, 0), nil
	case "left", "h":
		return m.move(0, -1), nil
	case "right", "l":
		return m.move(0, 1), nil
	}

	a, ok := m.action(key.String())
	if !ok {
		return m, nil
	}
	if !m.session.Apply(a) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	snap := m.session.Snapshot()
	cursor := m.cursor

	var b strings.Builder
	b.WriteString(render.Board(snap, render.Options{Cursor: &cursor}))
	b.WriteString("\n")
	b.WriteString(render.Status(snap))
	b.WriteString("\n")
	b.WriteString(help)
	b.WriteString("\n")
	return b.String()
}
