package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_SHIFT     KeyCode = 0x10
	KEY_CONTROL   KeyCode = 0x11
	KEY_PAUSE     KeyCode = 0x13
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_0         KeyCode = 0x30
	KEY_1         KeyCode = 0x31
	KEY_2         KeyCode = 0x32
	KEY_3         KeyCode = 0x33
	KEY_4         KeyCode = 0x34
	KEY_5         KeyCode = 0x35
	KEY_6         KeyCode = 0x36
	KEY_7         KeyCode = 0x37
	KEY_8         KeyCode = 0x38
	KEY_9         KeyCode = 0x39
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEY_LSHIFT    KeyCode = 0xA0
	KEY_RSHIFT    KeyCode = 0xA1
	KEY_LCONTROL  KeyCode = 0xA2
	KEY_RCONTROL  KeyCode = 0xA3
	KEYS_MAX_KEYS KeyCode = 0xFF
)

var keyNames = map[string]KeyCode{
	"BACKSPACE": KEY_BACKSPACE,
	"TAB":       KEY_TAB,
	"ENTER":     KEY_ENTER,
	"SHIFT":     KEY_SHIFT,
	"CONTROL":   KEY_CONTROL,
	"PAUSE":     KEY_PAUSE,
	"ESCAPE":    KEY_ESCAPE,
	"SPACE":     KEY_SPACE,
	"LEFT":      KEY_LEFT,
	"UP":        KEY_UP,
	"RIGHT":     KEY_RIGHT,
	"DOWN":      KEY_DOWN,
	"LSHIFT":    KEY_LSHIFT,
	"RSHIFT":    KEY_RSHIFT,
	"LCONTROL":  KEY_LCONTROL,
	"RCONTROL":  KEY_RCONTROL,
}

func init() {
	for c := KEY_0; c <= KEY_9; c++ {
		keyNames[string(rune(c))] = c
	}
	for c := KEY_A; c <= KEY_Z; c++ {
		keyNames[string(rune(c))] = c
	}
}

// KeyCodeFromName resolves a case-insensitive key name such as "w", "Up" or "ESCAPE".
func KeyCodeFromName(name string) (KeyCode, error) {
	code, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return code, nil
}

func (k KeyCode) String() string {
	for name, code := range keyNames {
		if code == k {
			return name
		}
	}
	return fmt.Sprintf("KEY(0x%02X)", uint16(k))
}

// KeyNames lists every name KeyCodeFromName accepts, sorted.
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KeyState is the read side of the keyboard, as consumed by the input sampler.
type KeyState interface {
	IsKeyDown(key KeyCode) bool
}

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

// Input state structure that holds current and previous states for the keyboard
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update copies the current state into the previous one. Call it once at the end of a frame.
func (s *InputState) Update() {
	s.KeyboardPrevious = s.KeyboardCurrent
}

func (s *InputState) IsKeyDown(key KeyCode) bool {
	return s.KeyboardCurrent.Keys[key]
}

func (s *InputState) IsKeyUp(key KeyCode) bool {
	return !s.KeyboardCurrent.Keys[key]
}

func (s *InputState) WasKeyDown(key KeyCode) bool {
	return s.KeyboardPrevious.Keys[key]
}

// ProcessKey records a key transition and fires a key event when the state changed.
func (s *InputState) ProcessKey(key KeyCode, pressed bool) {
	// Only handle this if the state actually changed.
	if s.KeyboardCurrent.Keys[key] == pressed {
		return
	}
	s.KeyboardCurrent.Keys[key] = pressed

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}

	// Fire off an event for immediate processing.
	EventFire(EventContext{
		Type: code,
		Data: &KeyEvent{
			KeyCode: key,
		},
	})
}

// ReleaseAll releases every key that is currently down, firing release events.
func (s *InputState) ReleaseAll() {
	for k := range s.KeyboardCurrent.Keys {
		if s.KeyboardCurrent.Keys[k] {
			s.ProcessKey(KeyCode(k), false)
		}
	}
}

var onceInput sync.Once
var inputState *InputState = nil

// InputInitialize sets up the process wide input state used by the engine.
func InputInitialize() error {
	onceInput.Do(func() {
		inputState = NewInputState()
	})
	LogInfo("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	if inputState != nil {
		inputState.ReleaseAll()
	}
	return nil
}

// Input returns the process wide input state, or nil before InputInitialize.
func Input() *InputState {
	return inputState
}
