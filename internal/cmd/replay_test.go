package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexrfelicio/glfw/internal/config"
)

const stickyScript = `
name: sticky
events:
  - {type: key, key: A, action: press}
  - {type: key, key: A, action: release}
  - {type: key, key: Tab, action: press}
  - {type: button, button: Left, action: press}
  - {type: button, button: Left, action: release}
  - {type: move, x: 30, y: 40}
  - {type: scroll, delta: 2}
`

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReplay(t *testing.T) {
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := &Replay{Script: writeScript(t, "sticky.yaml", stickyScript), out: &out}
	in := &config.Input{StickyKeys: true, Wheel: 1}
	pf := &config.Platform{Hook: "none"}

	require.NoError(t, r.run(context.Background(), logger, in, pf))

	assert.Equal(t, "cursor: 30,40  wheel: 3  locked: false\nkeys: A Tab\nbuttons: \n", out.String())
	assert.Contains(t, logs.String(), `msg="replaying script" name=sticky events=7`)
	assert.Contains(t, logs.String(), "msg=wheel pos=1", "wheel callback reports the configured position on registration")
	assert.Contains(t, logs.String(), "msg=key key=A action=Release")
}

func TestReplayMissingScript(t *testing.T) {
	r := &Replay{Script: filepath.Join(t.TempDir(), "nope.yaml")}
	err := r.run(context.Background(), slog.New(slog.DiscardHandler), &config.Input{}, &config.Platform{Hook: "none"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReplayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Replay{Script: writeScript(t, "s.yaml", stickyScript), out: &bytes.Buffer{}}
	err := r.run(ctx, slog.New(slog.DiscardHandler), &config.Input{}, &config.Platform{Hook: "none"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReplayBadHook(t *testing.T) {
	r := &Replay{Script: writeScript(t, "s.json", `{"events": []}`)}
	err := r.run(context.Background(), slog.New(slog.DiscardHandler), &config.Input{}, &config.Platform{Hook: "bogus"})
	assert.Error(t, err)
}
