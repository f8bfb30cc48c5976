package config

import (
	"fmt"

	"github.com/spaghettifunk/anima-drills/engine/core"
)

// KeyBindings is BindingsConfig with every name resolved to a key code.
type KeyBindings struct {
	Up             []core.KeyCode
	Down           []core.KeyCode
	Left           []core.KeyCode
	Right          []core.KeyCode
	RotatePositive []core.KeyCode
	RotateNegative []core.KeyCode
	Quit           []core.KeyCode
}

func (b BindingsConfig) Resolve() (KeyBindings, error) {
	var kb KeyBindings
	var err error
	fields := []struct {
		name string
		in   []string
		out  *[]core.KeyCode
	}{
		{"bindings.up", b.Up, &kb.Up},
		{"bindings.down", b.Down, &kb.Down},
		{"bindings.left", b.Left, &kb.Left},
		{"bindings.right", b.Right, &kb.Right},
		{"bindings.rotate_positive", b.RotatePositive, &kb.RotatePositive},
		{"bindings.rotate_negative", b.RotateNegative, &kb.RotateNegative},
		{"bindings.quit", b.Quit, &kb.Quit},
	}
	for _, f := range fields {
		if *f.out, err = resolveKeys(f.name, f.in); err != nil {
			return KeyBindings{}, err
		}
	}
	return kb, nil
}

// ResolveKeys turns key names into codes, e.g. for a script step.
func ResolveKeys(names []string) ([]core.KeyCode, error) {
	return resolveKeys("keys", names)
}

func resolveKeys(field string, names []string) ([]core.KeyCode, error) {
	codes := make([]core.KeyCode, 0, len(names))
	for _, n := range names {
		code, err := core.KeyCodeFromName(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func (b BindingsConfig) clone() BindingsConfig {
	cp := func(in []string) []string {
		if in == nil {
			return nil
		}
		return append([]string(nil), in...)
	}
	return BindingsConfig{
		Up:             cp(b.Up),
		Down:           cp(b.Down),
		Left:           cp(b.Left),
		Right:          cp(b.Right),
		RotatePositive: cp(b.RotatePositive),
		RotateNegative: cp(b.RotateNegative),
		Quit:           cp(b.Quit),
	}
}
