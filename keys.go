package stenografi

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Command func(*Stenografi) error

type Key struct {
	Control bool
	Alt     bool
	Shift   bool
	Super   bool
	K       string
}

func (k Key) IsEmpty() bool {
	return k.K == ""
}

type Keymap map[Key]Command

const zoomStep = 0.05

var defaultKeymap = Keymap{
	Key{K: "<backspace>"}: func(s *Stenografi) error {
		return s.Input.DeleteCharBackward()
	},
	Key{K: "<backspace>", Control: true}: func(s *Stenografi) error {
		return s.Input.DeleteWordBackward()
	},
	Key{K: "<esc>"}: func(s *Stenografi) error {
		return s.Input.Clear()
	},
	Key{K: "v", Control: true}: func(s *Stenografi) error {
		return s.Input.Paste()
	},
	Key{K: "c", Control: true}: func(s *Stenografi) error {
		return s.Input.Copy()
	},
	Key{K: "s", Control: true}: func(s *Stenografi) error {
		s.Strict = !s.Strict
		return nil
	},
	Key{K: "<mouse-wheel-up>", Control: true}: func(s *Stenografi) error {
		s.SetZoom(s.Zoom + zoomStep)
		return nil
	},
	Key{K: "<mouse-wheel-down>", Control: true}: func(s *Stenografi) error {
		s.SetZoom(s.Zoom - zoomStep)
		return nil
	},
}

type modifierKeyState struct {
	control bool
	alt     bool
	shift   bool
	super   bool
}

func getModifierKeyState() modifierKeyState {
	state := modifierKeyState{}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		state.control = true
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		state.alt = true
	}
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		state.shift = true
	}
	if rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper) {
		state.super = true
	}

	return state
}

func makeKey(state modifierKeyState, key string) Key {
	if key == "" {
		return Key{}
	}
	return Key{
		Control: state.control,
		Alt:     state.alt,
		Super:   state.super,
		Shift:   state.shift,
		K:       key,
	}
}

func getKey() Key {
	return makeKey(getModifierKeyState(), getKeyPressedString())
}

func getMouseKey() Key {
	var key string
	if wheel := rl.GetMouseWheelMove(); wheel < 0 {
		key = "<mouse-wheel-down>"
	} else if wheel > 0 {
		key = "<mouse-wheel-up>"
	}
	return makeKey(getModifierKeyState(), key)
}

func isPressed(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

// getKeyPressedString only covers keys that are not typed text, text
// arrives through rl.GetCharPressed.
func getKeyPressedString() string {
	switch {
	case isPressed(rl.KeyEscape):
		return "<esc>"
	case isPressed(rl.KeyBackspace):
		return "<backspace>"
	case isPressed(rl.KeyC):
		return "c"
	case isPressed(rl.KeyS):
		return "s"
	case isPressed(rl.KeyV):
		return "v"
	default:
		return ""
	}
}

// lookup returns the command bound to key, searching keymaps from the last
// one pushed to the first.
func lookup(keymaps []Keymap, key Key) Command {
	if key.IsEmpty() {
		return nil
	}
	for i := len(keymaps) - 1; i >= 0; i-- {
		if cmd := keymaps[i][key]; cmd != nil {
			return cmd
		}
	}
	return nil
}
