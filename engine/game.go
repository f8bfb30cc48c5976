package engine

import (
	"github.com/spaghettifunk/anima-drills/engine/renderer"
	"github.com/spaghettifunk/anima-drills/engine/scene"
	"github.com/spaghettifunk/anima-drills/engine/systems"
)

// Game is the set of callbacks a drill plugs into the engine. Registry and
// SystemManager are filled in by the engine before FnInitialize runs.
type Game struct {
	ApplicationConfig *ApplicationConfig
	Registry          *scene.Registry
	SystemManager     *systems.SystemManager
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *renderer.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
