package script

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexrfelicio/glfw/internal/window"
)

// Player delivers script events to a window on the calling goroutine.
type Player struct {
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{logger: logger, sleep: sleepContext}
}

// Play reports every event to w in order, honouring each event's Wait. It
// stops early if ctx is cancelled.
func (p *Player) Play(ctx context.Context, w *window.Window, s Script) error {
	p.logger.Debug("playing script", "name", s.Name, "events", len(s.Events))

	for i, ev := range s.Events {
		if ev.Wait > 0 {
			if err := p.sleep(ctx, ev.Wait); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		p.logger.Debug("input event", "index", i, "type", string(ev.Kind))
		Deliver(w, ev)
	}
	return nil
}

// Deliver reports a single event to w.
func Deliver(w *window.Window, ev Event) {
	switch ev.Kind {
	case KindKey:
		w.InputKey(ev.Key, ev.Action)
	case KindChar:
		w.InputChar(ev.Char)
	case KindButton:
		w.InputMouseClick(ev.Button, ev.Action)
	case KindMove:
		w.InputCursorMotion(ev.X, ev.Y)
	case KindScroll:
		w.InputScroll(ev.Delta)
	case KindClear:
		w.ClearInput()
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
