package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexrfelicio/glfw/internal/config"
	"github.com/alexrfelicio/glfw/internal/script"
	"github.com/alexrfelicio/glfw/internal/termsource"
)

// Replay plays an input script into a window and prints the final state.
type Replay struct {
	Script string `arg:"" help:"Script file (.yaml, .yml, .toml or .json)" type:"existingfile"`

	out io.Writer
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, in *config.Input, pf *config.Platform) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.run(ctx, logger, in, pf)
}

func (r *Replay) run(ctx context.Context, logger *slog.Logger, in *config.Input, pf *config.Platform) error {
	s, err := script.Load(r.Script)
	if err != nil {
		return err
	}

	sess, err := newSession(logger, in, pf)
	if err != nil {
		return err
	}
	defer sess.Close()

	logger.Info("replaying script", "name", s.Name, "events", len(s.Events))
	if err := script.NewPlayer(logger).Play(ctx, sess.win, s); err != nil {
		return fmt.Errorf("replay %s: %w", s.Name, err)
	}

	out := r.out
	if out == nil {
		out = os.Stdout
	}
	for _, line := range termsource.StatusLines(sess.win) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
