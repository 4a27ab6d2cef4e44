// Package config holds the flag, environment and config-file surface of the
// glfwinput driver.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/alexrfelicio/glfw/internal/platform"
	"github.com/alexrfelicio/glfw/internal/window"
)

const baseName = "glfwinput"

type Log struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"GLFWINPUT_LOG_LEVEL"`
	File  string `help:"Log file; logs go to stdout/stderr when empty" env:"GLFWINPUT_LOG_FILE"`
}

// Input configures the window the driver creates.
type Input struct {
	StickyKeys         bool `help:"Keep released keys reading as pressed until read once" env:"GLFWINPUT_STICKY_KEYS"`
	StickyMouseButtons bool `help:"Keep released mouse buttons reading as pressed until read once" env:"GLFWINPUT_STICKY_MOUSE_BUTTONS"`
	KeyRepeat          bool `help:"Deliver key repeats to the key callback" env:"GLFWINPUT_KEY_REPEAT"`
	CursorLocked       bool `help:"Capture the cursor; motion becomes relative" env:"GLFWINPUT_CURSOR_LOCKED"`
	CursorX            int  `help:"Initial cursor x position" default:"0"`
	CursorY            int  `help:"Initial cursor y position" default:"0"`
	Wheel              int  `help:"Initial wheel position" default:"0"`
}

// Apply sets the configured modes and initial state on w. The library must
// be initialized.
func (in Input) Apply(w *window.Window) {
	w.SetInputMode(window.StickyKeys, in.StickyKeys)
	w.SetInputMode(window.StickyMouseButtons, in.StickyMouseButtons)
	w.SetInputMode(window.KeyRepeat, in.KeyRepeat)
	// Position first so a locked window starts from it without warping.
	w.SetCursorPos(in.CursorX, in.CursorY)
	w.SetInputMode(window.CursorLocked, in.CursorLocked)
	w.SetWheel(in.Wheel)
}

type Platform struct {
	Hook   string `help:"Cursor hook: log moves, warp the native cursor, or ignore" enum:"log,native,none" default:"log" env:"GLFWINPUT_PLATFORM_HOOK"`
	Handle uint64 `help:"Native window handle passed to the cursor hook" default:"0" env:"GLFWINPUT_PLATFORM_HANDLE"`
}

// NewHook builds the configured cursor hook.
func (p Platform) NewHook(logger *slog.Logger) (platform.Hook, error) {
	switch p.Hook {
	case "log", "":
		return platform.Logging{Logger: logger}, nil
	case "native":
		h, err := platform.Native()
		if err != nil {
			return nil, fmt.Errorf("native cursor hook: %w", err)
		}
		return h, nil
	case "none":
		return platform.None{}, nil
	default:
		return nil, fmt.Errorf("unknown cursor hook %q", p.Hook)
	}
}

// CandidatePaths lists config files per format. A user supplied path comes
// first and is routed by extension; the working directory is searched after.
func CandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch strings.ToLower(filepath.Ext(userPath)) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	wd, _ := os.Getwd()
	jsonPaths = append(jsonPaths, filepath.Join(wd, baseName+".json"))
	yamlPaths = append(yamlPaths, filepath.Join(wd, baseName+".yaml"), filepath.Join(wd, baseName+".yml"))
	tomlPaths = append(tomlPaths, filepath.Join(wd, baseName+".toml"))
	return jsonPaths, yamlPaths, tomlPaths
}

// Options returns the kong options that load config files. Flags and
// environment variables override file values.
func Options(userPath string) []kong.Option {
	jsonPaths, yamlPaths, tomlPaths := CandidatePaths(userPath)
	return []kong.Option{
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	}
}

// FindUserConfig returns the --config value from args, or GLFWINPUT_CONFIG.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("GLFWINPUT_CONFIG")
}
