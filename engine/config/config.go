package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
)

// Vec is a TOML friendly 2D vector, written as [x, y].
type Vec [2]float32

func (v Vec) ToVec2() math.Vec2 {
	return math.NewVec2(v[0], v[1])
}

type ApplicationConfig struct {
	// The application name used in diagnostics.
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	// Seconds per frame. Zero means use the wall clock.
	FixedDelta float64 `toml:"fixed_delta"`
	// Frames to run before quitting. Zero means run until interrupted.
	MaxFrames uint64 `toml:"max_frames"`
	// Frames between two diagnostic lines. Zero disables the periodic lines.
	DiagnosticsEvery uint64 `toml:"diagnostics_every"`
	// Reload tunables when the config file changes on disk.
	Watch bool `toml:"watch"`
}

type PlayerConfig struct {
	// Units per second.
	Speed float32 `toml:"speed"`
	// Degrees per second; converted to radians when applied.
	RotationSpeedDeg float32 `toml:"rotation_speed_deg"`
	Position         Vec     `toml:"position"`
	Size             Vec     `toml:"size"`
}

type TargetConfig struct {
	Position Vec `toml:"position"`
	Size     Vec `toml:"size"`
}

type RayConfig struct {
	// Offset of the ray origin from the player, in world space.
	Offset      Vec     `toml:"offset"`
	Direction   Vec     `toml:"direction"`
	MaxDistance float32 `toml:"max_distance"`
	Solid       bool    `toml:"solid"`
}

type PolygonConfig struct {
	Points int     `toml:"points"`
	Radius float32 `toml:"radius"`
}

// BindingsConfig maps every action to the key names that trigger it.
type BindingsConfig struct {
	Up             []string `toml:"up"`
	Down           []string `toml:"down"`
	Left           []string `toml:"left"`
	Right          []string `toml:"right"`
	RotatePositive []string `toml:"rotate_positive"`
	RotateNegative []string `toml:"rotate_negative"`
	Quit           []string `toml:"quit"`
}

// ScriptStep holds a set of keys down for a number of frames.
type ScriptStep struct {
	Frames uint64   `toml:"frames"`
	Keys   []string `toml:"keys"`
}

type DrillConfig struct {
	Application ApplicationConfig `toml:"application"`
	Player      PlayerConfig      `toml:"player"`
	Target      TargetConfig      `toml:"target"`
	Ray         RayConfig         `toml:"ray"`
	Polygon     PolygonConfig     `toml:"polygon"`
	Bindings    BindingsConfig    `toml:"bindings"`
	Script      []ScriptStep      `toml:"script"`
}

// DefaultBindings are WASD plus the arrow keys, J and K to rotate, escape to quit.
func DefaultBindings() BindingsConfig {
	return BindingsConfig{
		Up:             []string{"W", "UP"},
		Down:           []string{"S", "DOWN"},
		Left:           []string{"A", "LEFT"},
		Right:          []string{"D", "RIGHT"},
		RotatePositive: []string{"J"},
		RotateNegative: []string{"K"},
		Quit:           []string{"ESCAPE"},
	}
}

// Default returns the tuning shared by every drill.
func Default() DrillConfig {
	return DrillConfig{
		Application: ApplicationConfig{
			Name:             "drill",
			LogLevel:         "info",
			FixedDelta:       1.0 / 60.0,
			MaxFrames:        600,
			DiagnosticsEvery: 30,
		},
		Player: PlayerConfig{
			Speed:            300,
			RotationSpeedDeg: 360,
			Position:         Vec{0, 0},
			Size:             Vec{10, 10},
		},
		Target: TargetConfig{
			Position: Vec{0, 0},
			Size:     Vec{100, 100},
		},
		Ray: RayConfig{
			Offset:      Vec{0, 17},
			Direction:   Vec{0, 1},
			MaxDistance: 80,
		},
		Polygon: PolygonConfig{
			Points: 5,
			Radius: 50,
		},
		Bindings: DefaultBindings(),
	}
}

// Load reads path and overlays it on base. Fields missing from the file keep
// the value they have in base; unknown fields are rejected.
func Load(path string, base DrillConfig) (DrillConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Decode(data, base)
	if err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML data on top of base and validates the result.
func Decode(data []byte, base DrillConfig) (DrillConfig, error) {
	cfg := base
	// The decoder reuses slice storage; keep base untouched.
	cfg.Bindings = base.Bindings.clone()
	// A script in the file replaces the base script instead of patching it.
	cfg.Script = nil
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return base, fmt.Errorf("unknown fields:\n%s", strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return base, fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return base, err
	}
	if cfg.Script == nil {
		cfg.Script = base.Script
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

func (c DrillConfig) Validate() error {
	var errs []error
	if c.Application.FixedDelta < 0 || !math.IsFinite(float32(c.Application.FixedDelta)) {
		errs = append(errs, fmt.Errorf("application.fixed_delta: %w", core.ErrInvalidDelta))
	}
	if _, err := core.ParseLogLevel(c.Application.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("application.log_level: %w", err))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must be >= 0, got %v", c.Player.Speed))
	}
	if c.Player.RotationSpeedDeg < 0 {
		errs = append(errs, fmt.Errorf("player.rotation_speed_deg must be >= 0, got %v", c.Player.RotationSpeedDeg))
	}
	for name, size := range map[string]Vec{"player.size": c.Player.Size, "target.size": c.Target.Size} {
		if size[0] < 0 || size[1] < 0 {
			errs = append(errs, fmt.Errorf("%s components must be >= 0, got %v", name, size))
		}
	}
	if c.Ray.MaxDistance < 0 {
		errs = append(errs, fmt.Errorf("ray.max_distance must be >= 0, got %v", c.Ray.MaxDistance))
	}
	if _, err := c.Bindings.Resolve(); err != nil {
		errs = append(errs, err)
	}
	for i, step := range c.Script {
		if _, err := resolveKeys(fmt.Sprintf("script[%d].keys", i), step.Keys); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
