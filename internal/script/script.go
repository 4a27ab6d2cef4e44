// Package script decodes input replay scripts and plays them into a window.
//
// A script is a named list of raw input events in YAML, TOML or JSON:
//
//	name: sticky demo
//	events:
//	  - {type: key, key: A, action: press}
//	  - {type: key, key: A, action: release, wait: 20ms}
//	  - {type: char, char: a}
//	  - {type: button, button: Left, action: press}
//	  - {type: move, x: 10, y: 20}
//	  - {type: scroll, delta: -1}
//	  - {type: clear}
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexrfelicio/glfw/internal/window"
)

var (
	ErrUnknownFormat = errors.New("unknown script format")
	ErrInvalidEvent  = errors.New("invalid event")
)

// Kind is the type of a raw input event.
type Kind string

const (
	KindKey    Kind = "key"
	KindChar   Kind = "char"
	KindButton Kind = "button"
	KindMove   Kind = "move"
	KindScroll Kind = "scroll"
	KindClear  Kind = "clear"
)

// Event is one raw input report. Only the fields that belong to Kind are
// meaningful.
type Event struct {
	Kind   Kind
	Key    window.Key
	Button window.MouseButton
	Action window.Action
	Char   rune
	X, Y   int
	Delta  int

	// Wait is the pause before the event is delivered.
	Wait time.Duration
}

type Script struct {
	Name   string
	Events []Event
}

// rawEvent is the on-disk form shared by every format.
type rawEvent struct {
	Type   string `yaml:"type" toml:"type"`
	Key    string `yaml:"key,omitempty" toml:"key,omitempty"`
	Button string `yaml:"button,omitempty" toml:"button,omitempty"`
	Action string `yaml:"action,omitempty" toml:"action,omitempty"`
	Char   string `yaml:"char,omitempty" toml:"char,omitempty"`
	X      int    `yaml:"x,omitempty" toml:"x,omitempty"`
	Y      int    `yaml:"y,omitempty" toml:"y,omitempty"`
	Delta  int    `yaml:"delta,omitempty" toml:"delta,omitempty"`
	Wait   string `yaml:"wait,omitempty" toml:"wait,omitempty"`
}

type rawScript struct {
	Name   string     `yaml:"name" toml:"name"`
	Events []rawEvent `yaml:"events" toml:"events"`
}

// Load reads a script, picking the decoder from the file extension.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	s, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// FormatFromPath maps a file extension to "yaml", "toml" or "json". Unknown
// extensions map to "yaml".
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// Parse decodes a script in the given format.
func Parse(data []byte, format string) (Script, error) {
	var (
		raw rawScript
		err error
	)
	switch strings.ToLower(format) {
	case "yaml", "yml":
		raw, err = decodeYAML(data)
	case "toml":
		raw, err = decodeTOML(data)
	case "json":
		raw, err = decodeJSON(data)
	default:
		return Script{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Script{}, err
	}

	s := Script{Name: raw.Name, Events: make([]Event, 0, len(raw.Events))}
	for i, re := range raw.Events {
		ev, err := re.event()
		if err != nil {
			return Script{}, fmt.Errorf("event %d: %w", i, err)
		}
		s.Events = append(s.Events, ev)
	}
	return s, nil
}

func (re rawEvent) event() (Event, error) {
	ev := Event{Kind: Kind(strings.ToLower(re.Type))}

	if re.Wait != "" {
		d, err := time.ParseDuration(re.Wait)
		if err != nil {
			return Event{}, fmt.Errorf("%w: wait: %v", ErrInvalidEvent, err)
		}
		ev.Wait = d
	}

	switch ev.Kind {
	case KindKey:
		key, ok := window.KeyByName(re.Key)
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidEvent, re.Key)
		}
		ev.Key = key
	case KindButton:
		button, ok := window.MouseButtonByName(re.Button)
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown button %q", ErrInvalidEvent, re.Button)
		}
		ev.Button = button
	case KindChar:
		r, size := utf8.DecodeRuneInString(re.Char)
		if r == utf8.RuneError || size != len(re.Char) {
			return Event{}, fmt.Errorf("%w: char must be a single character, got %q", ErrInvalidEvent, re.Char)
		}
		ev.Char = r
	case KindMove:
		ev.X, ev.Y = re.X, re.Y
	case KindScroll:
		ev.Delta = re.Delta
	case KindClear:
	default:
		return Event{}, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, re.Type)
	}

	if ev.Kind == KindKey || ev.Kind == KindButton {
		switch strings.ToLower(re.Action) {
		case "press":
			ev.Action = window.Press
		case "release":
			ev.Action = window.Release
		default:
			return Event{}, fmt.Errorf("%w: unknown action %q", ErrInvalidEvent, re.Action)
		}
	}
	return ev, nil
}
