package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/alexrfelicio/glfw/internal/config"
	"github.com/alexrfelicio/glfw/internal/termsource"
)

// Live drives a window from the terminal and shows its state after every
// event. Use --log.file to keep log output off the screen.
type Live struct{}

// Run is called by Kong when the live command is executed.
func (l *Live) Run(logger *slog.Logger, in *config.Input, pf *config.Platform) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	sess, err := newSession(logger, in, pf)
	if err != nil {
		return err
	}
	defer sess.Close()

	redraw := func() {
		lines := append(termsource.StatusLines(sess.win), "", "Esc or Ctrl-C to quit")
		termsource.Render(screen, lines)
	}

	src := termsource.New(screen, sess.win, logger)
	src.OnEvent = redraw
	redraw()

	err = src.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
