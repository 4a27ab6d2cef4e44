package platform

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexrfelicio/glfw/internal/window"
)

func TestLoggingHook(t *testing.T) {
	var buf bytes.Buffer
	hook := Logging{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	lib := window.NewLibrary(window.WithPlatform(hook))
	lib.Init()
	w := lib.NewWindow(7)

	w.SetCursorPos(3, 4)
	w.SetCursorPos(3, 4)

	out := buf.String()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("set cursor position")))
	assert.Contains(t, out, "handle=7")
	assert.Contains(t, out, "x=3")
	assert.Contains(t, out, "y=4")
	require.NoError(t, hook.Close())
}

func TestNoneHook(t *testing.T) {
	var hook Hook = None{}
	assert.NotPanics(t, func() { hook.SetCursorPos(1, 2, 3) })
	assert.NoError(t, hook.Close())
}
