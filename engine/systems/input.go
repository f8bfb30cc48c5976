package systems

import (
	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
)

// Intent is what the player asked for on one frame.
type Intent struct {
	// Each component is -1, 0 or 1. Diagonals are not normalized.
	Axis math.Vec2
	// +1 rotate positive, -1 rotate negative, 0 both or neither.
	Rotation float32
	Quit     bool
}

// InputSampler turns the keyboard state into an Intent through the key bindings.
type InputSampler struct {
	bindings config.KeyBindings
}

func NewInputSampler(bindings config.KeyBindings) *InputSampler {
	return &InputSampler{bindings: bindings}
}

// Rebind swaps the bindings, e.g. after a config reload.
func (is *InputSampler) Rebind(bindings config.KeyBindings) {
	is.bindings = bindings
}

func (is *InputSampler) Sample(keys core.KeyState) Intent {
	b := is.bindings
	return Intent{
		Axis: math.NewVec2(
			math.Axis[float32](anyDown(keys, b.Left), anyDown(keys, b.Right)),
			math.Axis[float32](anyDown(keys, b.Down), anyDown(keys, b.Up)),
		),
		Rotation: math.Axis[float32](anyDown(keys, b.RotateNegative), anyDown(keys, b.RotatePositive)),
		Quit:     anyDown(keys, b.Quit),
	}
}

// An action is active when any of its keys is down.
func anyDown(keys core.KeyState, codes []core.KeyCode) bool {
	for _, k := range codes {
		if keys.IsKeyDown(k) {
			return true
		}
	}
	return false
}
