package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

type application struct {
	cfg *config.Config
	log *logrus.Logger
	in  io.Reader
	out io.Writer
}

// setupLogging routes engine logs through the process logger. Output goes
// to stderr unless a full-screen front end owns the terminal.
func (app *application) setupLogging(quiet bool) error {
	out := io.Writer(os.Stderr)
	if quiet {
		out = io.Discard
	}
	log, err := logging.New(app.cfg, out)
	if err != nil {
		return err
	}
	app.log = log
	mines.Log = slog.New(logging.NewHandler(log))

	log.Info("starting up, mode = ", app.cfg.Mode)
	log.WithFields(app.cfg.Fields()).Debug("config")
	return nil
}

func newRootCmd(app *application) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "mines",
		Short:         "Minesweeper in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			app.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newPlayCmd(app), newGenCmd(app))
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	app := &application{in: os.Stdin, out: os.Stdout}
	if err := newRootCmd(app).ExecuteContext(ctx); err != nil {
		if app.log != nil {
			app.log.Error("exit reason: ", err)
		}
		os.Stderr.WriteString("mines: " + err.Error() + "\n")
		os.Exit(1)
	}
}
