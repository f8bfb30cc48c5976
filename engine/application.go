package engine

import (
	"fmt"

	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/platform"
	"github.com/spaghettifunk/anima-drills/engine/systems"
)

const (
	DefaultWindowWidth  uint32 = 1200
	DefaultWindowHeight uint32 = 1000
)

type ApplicationConfig struct {
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in diagnostics.
	Name     string
	LogLevel core.LogLevel
	// Seconds per frame. Zero means measure the wall clock.
	FixedDelta float64
	// Zero means run until told to quit.
	MaxFrames        uint64
	DiagnosticsEvery uint64
	Script           []platform.KeyFrame
	Systems          systems.SystemManagerConfig
	// Config file to watch for changes; empty disables the watcher.
	WatchPath string
	// Base the watched file is decoded on top of.
	WatchBase config.DrillConfig
}

// NewApplicationConfig resolves a decoded drill config into what the engine runs with.
func NewApplicationConfig(cfg config.DrillConfig) (*ApplicationConfig, error) {
	level, err := core.ParseLogLevel(cfg.Application.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("application.log_level: %w", err)
	}
	bindings, err := cfg.Bindings.Resolve()
	if err != nil {
		return nil, err
	}
	script := make([]platform.KeyFrame, 0, len(cfg.Script))
	for i, step := range cfg.Script {
		codes, err := config.ResolveKeys(step.Keys)
		if err != nil {
			return nil, fmt.Errorf("script[%d]: %w", i, err)
		}
		script = append(script, platform.KeyFrame{Frames: step.Frames, Keys: codes})
	}
	return &ApplicationConfig{
		StartWidth:       DefaultWindowWidth,
		StartHeight:      DefaultWindowHeight,
		Name:             cfg.Application.Name,
		LogLevel:         level,
		FixedDelta:       cfg.Application.FixedDelta,
		MaxFrames:        cfg.Application.MaxFrames,
		DiagnosticsEvery: cfg.Application.DiagnosticsEvery,
		Script:           script,
		Systems: systems.SystemManagerConfig{
			Bindings:   bindings,
			Kinematics: true,
			Diagnostics: systems.DiagnosticsSystemConfig{
				Every:       cfg.Application.DiagnosticsEvery,
				HistorySize: 64,
			},
		},
		WatchBase: cfg,
	}, nil
}
