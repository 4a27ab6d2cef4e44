package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{Key7, "7"},
		{KeySpace, "Space"},
		{KeySlash, "/"},
		{KeySpecial, "Special"},
		{KeyEscape, "Escape"},
		{KeyF25, "F25"},
		{KeyKPEnter, "KPEnter"},
		{KeyLast, "Menu"},
		{KeyUnknown, "Unknown"},
		{KeyLast + 1, "Key(326)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.String())
	}
}

func TestKeyByName(t *testing.T) {
	for k := KeySpace; k <= KeyLast; k++ {
		if k > KeyGraveAccent && k < KeySpecial {
			continue
		}
		got, ok := KeyByName(k.String())
		if assert.True(t, ok, "key %d", int(k)) {
			assert.Equal(t, k, got)
		}
	}

	got, ok := KeyByName("q")
	assert.True(t, ok)
	assert.Equal(t, KeyQ, got)

	_, ok = KeyByName("NotAKey")
	assert.False(t, ok)
	_, ok = KeyByName("")
	assert.False(t, ok)
}

func TestMouseButtonByName(t *testing.T) {
	for name, want := range map[string]MouseButton{
		"Left":    MouseButtonLeft,
		"Right":   MouseButtonRight,
		"Middle":  MouseButtonMiddle,
		"Button1": MouseButton1,
		"Button4": MouseButton4,
		"Button8": MouseButton8,
	} {
		got, ok := MouseButtonByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := MouseButtonByName("Button9")
	assert.False(t, ok)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Press", Press.String())
	assert.Equal(t, "Release", Release.String())
	assert.Equal(t, "Sticky", sticky.String())
	assert.True(t, Press.IsDown())
	assert.False(t, Release.IsDown())
}
