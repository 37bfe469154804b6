package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

func newGenCmd(app *application) *cobra.Command {
	var row, col int

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a board and print its layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.Console(app.cfg)
			mines.Log = logger

			p, err := app.cfg.Params()
			if err != nil {
				return err
			}
			start := mines.Position{Row: row, Col: col}
			if row < 0 && col < 0 {
				start = mines.Position{Row: p.Rows / 2, Col: p.Cols / 2}
			}
			if !p.ValidatePosition(start) {
				return fmt.Errorf("start %s outside %dx%d board", start, p.Rows, p.Cols)
			}

			g := mines.NewGrid(p)
			if err := mines.Generate(g, start, app.cfg.Rand()); err != nil {
				logger.Error("unable to generate board", slog.Any("error", err))
				return err
			}
			fmt.Fprintf(app.out, "%s start %s\n", p.Seed(), start)
			fmt.Fprint(app.out, g.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&row, "row", -1, "start row, board centre when unset")
	cmd.Flags().IntVar(&col, "col", -1, "start col, board centre when unset")
	return cmd
}
