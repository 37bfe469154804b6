package logging

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// Handler is a slog.Handler that forwards records to a logrus logger. Groups
// become dotted field names.
type Handler struct {
	log    *logrus.Logger
	fields logrus.Fields
	group  string
}

func NewHandler(log *logrus.Logger) *Handler {
	return &Handler{log: log, fields: logrus.Fields{}}
}

func toLogrus(l slog.Level) logrus.Level {
	switch {
	case l >= slog.LevelError:
		return logrus.ErrorLevel
	case l >= slog.LevelWarn:
		return logrus.WarnLevel
	case l >= slog.LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.log.IsLevelEnabled(toLogrus(l))
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	fields := make(logrus.Fields, len(h.fields)+r.NumAttrs())
	for k, v := range h.fields {
		fields[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(fields, h.group, a)
		return true
	})
	entry := h.log.WithContext(ctx).WithFields(fields)
	if !r.Time.IsZero() {
		entry = entry.WithTime(r.Time)
	}
	entry.Log(toLogrus(r.Level), r.Message)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make(logrus.Fields, len(h.fields)+len(attrs))
	for k, v := range h.fields {
		fields[k] = v
	}
	for _, a := range attrs {
		addAttr(fields, h.group, a)
	}
	return &Handler{log: h.log, fields: fields, group: h.group}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{log: h.log, fields: h.fields, group: join(h.group, name)}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func addAttr(fields logrus.Fields, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		g := prefix
		if a.Key != "" {
			g = join(prefix, a.Key)
		}
		for _, ga := range v.Group() {
			addAttr(fields, g, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	fields[join(prefix, a.Key)] = v.Any()
}
