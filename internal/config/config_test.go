package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexrfelicio/glfw/internal/platform"
	"github.com/alexrfelicio/glfw/internal/window"
)

type testCLI struct {
	Config   string   `help:"Config file"`
	Log      Log      `embed:"" prefix:"log."`
	Input    Input    `embed:"" prefix:"input."`
	Platform Platform `embed:"" prefix:"platform."`
}

func parse(t *testing.T, cfgPath string, args ...string) testCLI {
	t.Helper()
	var cli testCLI
	parser, err := kong.New(&cli, Options(cfgPath)...)
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestDefaults(t *testing.T) {
	cli := parse(t, "")

	assert.Equal(t, "info", cli.Log.Level)
	assert.Equal(t, "log", cli.Platform.Hook)
	assert.False(t, cli.Input.StickyKeys)
}

func TestJSONConfigWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "log": {"level": "debug"},
  "input": {"sticky_keys": true, "cursor_x": 12, "wheel": -3},
  "platform": {"hook": "none"}
}`), 0o644))

	cli := parse(t, path, "--config", path, "--input.cursor-x=40")

	assert.Equal(t, "debug", cli.Log.Level)
	assert.True(t, cli.Input.StickyKeys)
	assert.Equal(t, 40, cli.Input.CursorX)
	assert.Equal(t, -3, cli.Input.Wheel)
	assert.Equal(t, "none", cli.Platform.Hook)
}

func TestCandidatePaths(t *testing.T) {
	j, y, tm := CandidatePaths("/etc/in.yml")
	assert.Equal(t, "/etc/in.yml", y[0])
	assert.Len(t, j, 1)
	assert.Len(t, tm, 1)

	j, _, tm = CandidatePaths("in.toml")
	assert.Equal(t, "in.toml", tm[0])
	assert.Len(t, j, 1)

	j, _, _ = CandidatePaths("in.conf")
	assert.Equal(t, "in.conf", j[0])
	assert.Equal(t, baseName+".json", filepath.Base(j[1]))
}

func TestFindUserConfig(t *testing.T) {
	t.Setenv("GLFWINPUT_CONFIG", "")

	assert.Equal(t, "a.yaml", FindUserConfig([]string{"replay", "--config=a.yaml"}))
	assert.Equal(t, "b.toml", FindUserConfig([]string{"--config", "b.toml", "live"}))
	assert.Equal(t, "", FindUserConfig([]string{"--config"}))

	t.Setenv("GLFWINPUT_CONFIG", "env.json")
	assert.Equal(t, "env.json", FindUserConfig(nil))
}

func TestInputApply(t *testing.T) {
	hook := &countingHook{}
	lib := window.NewLibrary(window.WithPlatform(hook))
	lib.Init()
	w := lib.NewWindow(1)

	Input{
		StickyKeys:   true,
		KeyRepeat:    true,
		CursorLocked: true,
		CursorX:      3,
		CursorY:      4,
		Wheel:        9,
	}.Apply(w)

	assert.True(t, w.InputMode(window.StickyKeys))
	assert.False(t, w.InputMode(window.StickyMouseButtons))
	assert.True(t, w.InputMode(window.KeyRepeat))
	assert.True(t, w.InputMode(window.CursorLocked))
	x, y := w.CursorPos()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
	assert.Equal(t, 9, w.Wheel())
	assert.Equal(t, 1, hook.calls)
	assert.Equal(t, window.NoError, lib.LastError())
}

func TestNewHook(t *testing.T) {
	h, err := Platform{Hook: "none"}.NewHook(nil)
	require.NoError(t, err)
	assert.IsType(t, platform.None{}, h)

	h, err = Platform{Hook: "log"}.NewHook(nil)
	require.NoError(t, err)
	assert.IsType(t, platform.Logging{}, h)

	_, err = Platform{Hook: "teleport"}.NewHook(nil)
	assert.Error(t, err)
}

type countingHook struct{ calls int }

func (h *countingHook) SetCursorPos(uintptr, int, int) { h.calls++ }
