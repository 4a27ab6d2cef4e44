// Package log builds the slog.Logger used by the driver.
//
// Without a log file, records below Error go to stdout and errors go to
// stderr. Records are written as text on a terminal and as JSON otherwise.
// With a log file, everything goes to the file only, so the terminal stays
// free for the live view.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// LevelTrace is below Debug and enables per-event logging.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// split sends records to one of two handlers depending on level.
type split struct {
	low, high slog.Handler
	at        slog.Level
}

func (s split) pick(level slog.Level) slog.Handler {
	if level >= s.at {
		return s.high
	}
	return s.low
}

func (s split) Enabled(ctx context.Context, level slog.Level) bool {
	return s.pick(level).Enabled(ctx, level)
}

func (s split) Handle(ctx context.Context, r slog.Record) error {
	return s.pick(r.Level).Handle(ctx, r)
}

func (s split) WithAttrs(attrs []slog.Attr) slog.Handler {
	return split{low: s.low.WithAttrs(attrs), high: s.high.WithAttrs(attrs), at: s.at}
}

func (s split) WithGroup(name string) slog.Handler {
	return split{low: s.low.WithGroup(name), high: s.high.WithGroup(name), at: s.at}
}

// SetupLogger returns a logger and the files the caller must close.
func SetupLogger(level, file string) (*slog.Logger, []io.Closer, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return slog.New(slog.NewTextHandler(f, opts)), []io.Closer{f}, nil
	}

	h := split{
		low:  newHandler(os.Stdout, opts),
		high: newHandler(os.Stderr, opts),
		at:   slog.LevelError,
	}
	return slog.New(h), nil, nil
}

func newHandler(f *os.File, opts *slog.HandlerOptions) slog.Handler {
	if term.IsTerminal(int(f.Fd())) {
		return slog.NewTextHandler(f, opts)
	}
	return slog.NewJSONHandler(f, opts)
}
