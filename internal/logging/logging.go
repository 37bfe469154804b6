// Package logging builds the loggers used by the mines binary: a logrus
// process logger that can write to a rotated file, a console slog logger for
// one-shot commands, and a slog handler that forwards into logrus so engine
// logs end up next to the process logs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
)

func level(cfg *config.Config) logrus.Level {
	if cfg.Development() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// New returns a logrus logger writing text to out. When cfg names a log file
// every entry is also written there, rotated by size and age.
func New(cfg *config.Config, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level(cfg))
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.Log.File == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      level(cfg),
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", cfg.Log.File, err)
	}
	log.AddHook(hook)
	return log, nil
}

// Console returns a slog logger for stderr: colored and verbose in
// development, JSON otherwise.
func Console(cfg *config.Config) *slog.Logger {
	return slog.New(consoleHandler(cfg, os.Stderr))
}

func consoleHandler(cfg *config.Config, w io.Writer) slog.Handler {
	if cfg.Development() {
		return tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(w, nil)
}
