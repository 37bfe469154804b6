package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
	"github.com/vancomm/minesweeper/internal/tui"
)

func newPlayCmd(app *application) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.setupLogging(!plain); err != nil {
				return err
			}
			p, err := app.cfg.Params()
			if err != nil {
				return err
			}
			s, err := mines.NewSession(p, app.cfg.Rand())
			if err != nil {
				return err
			}
			app.log.WithField("params", p.Seed()).Info("new session")
			if plain {
				return app.playPlain(cmd.Context(), s)
			}
			return app.playTUI(cmd.Context(), s)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "read text commands from stdin instead of the full-screen board")
	return cmd
}

func (app *application) playTUI(ctx context.Context, s *mines.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(tui.New(s),
		tea.WithAltScreen(),
		tea.WithInput(app.in),
		tea.WithOutput(app.out),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		p.Quit()
		return nil
	})

	err := g.Wait()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func (app *application) draw(s *mines.Session) {
	snap := s.Snapshot()
	fmt.Fprint(app.out, render.Board(snap, render.Options{Ruler: true}))
	fmt.Fprintln(app.out, render.Status(snap))
}

// playPlain runs the line protocol: the board is drawn after every command
// until quit, end of input or cancellation.
func (app *application) playPlain(ctx context.Context, s *mines.Session) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(app.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	app.draw(s)
	for {
		fmt.Fprint(app.out, "> ")
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			running, err := command.Execute(s, line)
			if err != nil {
				app.log.WithField("line", line).Debug(err)
				fmt.Fprintln(app.out, err)
				continue
			}
			if !running {
				return nil
			}
			app.draw(s)
		}
	}
}
