package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/spaghettifunk/anima-drills/engine/assets"
	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/platform"
	"github.com/spaghettifunk/anima-drills/engine/renderer"
	"github.com/spaghettifunk/anima-drills/engine/scene"
	"github.com/spaghettifunk/anima-drills/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageBooting:
		return "booting"
	case EngineStageBootComplete:
		return "boot-complete"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting-down"
	default:
		return "uninitialized"
	}
}

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     atomic.Bool
	platform      *platform.Platform
	assetManager  *assets.AssetManager
	renderer      *renderer.Renderer
	systemManager *systems.SystemManager
	registry      *scene.Registry
	width         uint32
	height        uint32
	clock         *core.Clock
	metrics       *core.FrameMetrics
	lastTime      float64
	frame         uint64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("func engine.New - game and its application config are required")
	}
	e := &Engine{
		currentStage: EngineStageBooting,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewFrameMetrics(),
		registry:     scene.NewRegistry(),
		renderer:     renderer.New(renderer.NewHeadlessBackend()),
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
	}
	core.SetLogLevel(g.ApplicationConfig.LogLevel)

	if err := core.InputInitialize(); err != nil {
		return nil, err
	}
	p, err := platform.New(core.Input(), g.ApplicationConfig.Script)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	e.platform = p

	if g.ApplicationConfig.WatchPath != "" {
		am, err := assets.NewAssetManager(&assets.ConfigLoader{Base: g.ApplicationConfig.WatchBase})
		if err != nil {
			core.LogError(err.Error())
			return nil, err
		}
		e.assetManager = am
	}

	g.Registry = e.registry
	e.currentStage = EngineStageBootComplete
	return e, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, e, e.onKey)
	core.EventRegister(core.EVENT_CODE_CONFIG_CHANGED, e, e.onConfigChanged)

	app := e.gameInstance.ApplicationConfig
	if err := e.platform.Startup(app.Name, app.StartWidth, app.StartHeight); err != nil {
		return err
	}
	if err := e.renderer.Initialize(app.Name, app.StartWidth, app.StartHeight); err != nil {
		return err
	}
	if e.assetManager != nil {
		if err := e.assetManager.Initialize(app.WatchPath); err != nil {
			return err
		}
	}

	// The game may tweak the system configuration, so it goes first.
	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}
	sm, err := systems.NewSystemManager(e.registry, &app.Systems)
	if err != nil {
		return err
	}
	e.systemManager = sm
	e.gameInstance.SystemManager = sm

	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageInitialized
	return nil
}

// Run steps frames until the game quits, the frame budget is spent or Stop is called.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine cannot run from stage %s", e.currentStage)
	}
	e.currentStage = EngineStageRunning
	e.isRunning.Store(true)
	defer e.isRunning.Store(false)

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	app := e.gameInstance.ApplicationConfig

	for e.isRunning.Load() {
		e.drainConfigChanges()

		if !e.platform.PumpMessages() {
			e.isRunning.Store(false)
			break
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		if app.FixedDelta > 0 {
			delta = app.FixedDelta
		}
		frameStartTime := platform.GetAbsoluteTime()
		e.frame++

		intent := e.systemManager.InputSampler.Sample(core.Input())
		if intent.Quit {
			core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		}

		if e.systemManager.KinematicsSystem != nil {
			if err := e.systemManager.KinematicsSystem.Update(intent, delta); err != nil {
				core.LogError("Kinematics update failed, shutting down: %s", err)
				return err
			}
		}

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("Game update failed, shutting down: %s", err)
			return err
		}

		packet := renderer.BuildPacket(e.registry, delta, e.frame)
		if e.gameInstance.FnRender != nil {
			// Call the game's render routine.
			if err := e.gameInstance.FnRender(packet, delta); err != nil {
				core.LogError("Game render failed, shutting down: %s", err)
				return err
			}
		}
		if err := e.renderer.DrawFrame(packet); err != nil {
			return err
		}

		// Figure out how long the frame took.
		frameEndTime := platform.GetAbsoluteTime()
		e.metrics.Update(frameEndTime - frameStartTime)

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		core.Input().Update()

		e.lastTime = currentTime

		if app.MaxFrames > 0 && e.frame >= app.MaxFrames {
			core.LogInfo("frame budget of %d reached", app.MaxFrames)
			e.isRunning.Store(false)
		}
	}
	fps, frameTime := e.metrics.Frame()
	core.LogDebug("ran %d frames, %.1f fps, %.3f ms per frame", e.frame, fps, frameTime)
	return nil
}

// Stop asks the loop to end after the current frame. Safe to call from any goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	if e.assetManager != nil {
		if err := e.assetManager.Shutdown(); err != nil {
			return err
		}
	}
	if e.systemManager != nil {
		if err := e.systemManager.Shutdown(); err != nil {
			return err
		}
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	e.currentStage = EngineStageUninitialized
	return nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// Frame returns the number of frames stepped so far.
func (e *Engine) Frame() uint64 {
	return e.frame
}

// ApplicationGetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// drainConfigChanges reloads the config once per pending notice and lets
// listeners pick up the new tunables.
func (e *Engine) drainConfigChanges() {
	if e.assetManager == nil {
		return
	}
	for {
		select {
		case path := <-e.assetManager.Changes():
			cfg, err := e.assetManager.Reload()
			if err != nil {
				core.LogWarn("ignoring invalid config change in %s: %s", path, err)
				continue
			}
			core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONFIG_CHANGED, Data: &cfg})
		default:
			return
		}
	}
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning.Store(false)
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	if context.Type == core.EVENT_CODE_KEY_PRESSED {
		core.LogDebug("'%s' key pressed.", ke.KeyCode)
	} else {
		core.LogDebug("'%s' key released.", ke.KeyCode)
	}
	return false
}

// onConfigChanged rebinds the input. Game specific tunables are applied by
// the game's own listener.
func (e *Engine) onConfigChanged(context core.EventContext) bool {
	cfg, ok := context.Data.(*config.DrillConfig)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	bindings, err := cfg.Bindings.Resolve()
	if err != nil {
		core.LogWarn("keeping the current bindings: %s", err)
		return false
	}
	if e.systemManager != nil {
		e.systemManager.InputSampler.Rebind(bindings)
	}
	level, err := core.ParseLogLevel(cfg.Application.LogLevel)
	if err == nil {
		core.SetLogLevel(level)
	}
	core.LogInfo("configuration reloaded")
	return false
}
