package systems

import (
	"fmt"

	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/scene"
)

// SystemManagerConfig selects which systems a drill needs.
type SystemManagerConfig struct {
	Bindings config.KeyBindings
	// Integrate the player each frame. Drills without a player turn it off.
	Kinematics bool
	// Tag of the child the segment follows; TagNone disables the segment.
	Track scene.Tag
	// Nil disables the ray probe.
	Ray         *RaySystemConfig
	Diagnostics DiagnosticsSystemConfig
}

type SystemManager struct {
	InputSampler      *InputSampler
	KinematicsSystem  *KinematicsSystem
	HierarchySystem   *HierarchySystem
	RelationSystem    *RelationSystem
	RaySystem         *RaySystem
	DiagnosticsSystem *DiagnosticsSystem
}

func NewSystemManager(registry *scene.Registry, cfg *SystemManagerConfig) (*SystemManager, error) {
	if cfg == nil {
		err := fmt.Errorf("func NewSystemManager - config must not be nil")
		core.LogError(err.Error())
		return nil, err
	}
	var ks *KinematicsSystem
	var err error
	if cfg.Kinematics {
		if ks, err = NewKinematicsSystem(registry); err != nil {
			return nil, err
		}
	}
	hs, err := NewHierarchySystem(registry, cfg.Track)
	if err != nil {
		return nil, err
	}
	rs, err := NewRelationSystem(registry)
	if err != nil {
		return nil, err
	}
	var rays *RaySystem
	if cfg.Ray != nil {
		rays, err = NewRaySystem(cfg.Ray, registry, NewColliderCaster(registry, scene.TagPlayer))
		if err != nil {
			return nil, err
		}
	}
	diag := cfg.Diagnostics
	return &SystemManager{
		InputSampler:      NewInputSampler(cfg.Bindings),
		KinematicsSystem:  ks,
		HierarchySystem:   hs,
		RelationSystem:    rs,
		RaySystem:         rays,
		DiagnosticsSystem: NewDiagnosticsSystem(&diag),
	}, nil
}

func (sm *SystemManager) Shutdown() error {
	if sm.RaySystem != nil {
		if err := sm.RaySystem.Shutdown(); err != nil {
			return err
		}
	}
	if err := sm.RelationSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.HierarchySystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.DiagnosticsSystem.Shutdown(); err != nil {
		return err
	}
	return nil
}
