package testbed

import (
	"fmt"
	"sort"

	"github.com/spaghettifunk/anima-drills/engine"
	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/renderer"
	"github.com/spaghettifunk/anima-drills/engine/scene"
)

// Drill is one standalone exercise running on the engine.
type Drill interface {
	// Setup spawns the drill's entities. It may adjust the system configuration.
	Setup(g *TestGame) error
	// Update runs the drill's evaluators once per frame, after kinematics.
	Update(g *TestGame, deltaTime float64) error
}

type drillEntry struct {
	description string
	defaults    func() config.DrillConfig
	build       func() Drill
}

var drills = map[string]drillEntry{
	"containment": {
		description: "colours a square cyan while the player is inside it",
		defaults:    containmentDefaults,
		build:       func() Drill { return &containmentDrill{} },
	},
	"facing": {
		description: "greys the target by how aligned the player and target directions are",
		defaults:    facingDefaults,
		build:       func() Drill { return &facingDrill{} },
	},
	"local-to-world": {
		description: "resolves a child of the rotating player into world space",
		defaults:    localToWorldDefaults,
		build:       func() Drill { return &localToWorldDrill{} },
	},
	"raycast": {
		description: "casts a short ray above the player against the walls",
		defaults:    raycastDefaults,
		build:       func() Drill { return &raycastDrill{} },
	},
	"polygon": {
		description: "places markers on the vertices of a regular polygon",
		defaults:    polygonDefaults,
		build:       func() Drill { return &polygonDrill{} },
	},
}

// DrillNames lists every known drill, sorted.
func DrillNames() []string {
	names := make([]string, 0, len(drills))
	for name := range drills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one line description of a drill.
func Describe(name string) (string, error) {
	entry, ok := drills[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", core.ErrUnknownDrill, name)
	}
	return entry.description, nil
}

// Defaults returns the configuration a drill runs with when no file is given.
func Defaults(name string) (config.DrillConfig, error) {
	entry, ok := drills[name]
	if !ok {
		return config.DrillConfig{}, fmt.Errorf("%w: %q", core.ErrUnknownDrill, name)
	}
	return entry.defaults(), nil
}

type TestGame struct {
	*engine.Game
	Config config.DrillConfig
	drill  Drill
	frame  uint64
}

func NewTestGame(name string, cfg config.DrillConfig) (*TestGame, error) {
	entry, ok := drills[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownDrill, name)
	}
	app, err := engine.NewApplicationConfig(cfg)
	if err != nil {
		return nil, err
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: app,
		},
		Config: cfg,
		drill:  entry.build(),
	}
	tg.State = tg.drill

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Initialize() error {
	core.LogInfo("initializing drill %s...", g.ApplicationConfig.Name)
	core.EventRegister(core.EVENT_CODE_CONFIG_CHANGED, g, g.onConfigChanged)
	return g.drill.Setup(g)
}

func (g *TestGame) Update(deltaTime float64) error {
	g.frame++
	return g.drill.Update(g, deltaTime)
}

func (g *TestGame) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	if len(packet.Items) == 0 {
		core.LogWarn("frame %d has nothing to draw", packet.Frame)
	}
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	core.LogDebug("drill area is %dx%d", width, height)
	return nil
}

func (g *TestGame) Shutdown() error {
	core.EventUnregister(core.EVENT_CODE_CONFIG_CHANGED, g)
	core.LogInfo("drill %s stopped after %d frames", g.ApplicationConfig.Name, g.frame)
	return nil
}

// Frame is the number of frames the drill has been updated for.
func (g *TestGame) Frame() uint64 {
	return g.frame
}

// record hands a sample to the diagnostics system.
func (g *TestGame) record(msg string, keyvals ...interface{}) {
	g.SystemManager.DiagnosticsSystem.Record(g.frame, msg, keyvals...)
}

// onConfigChanged applies the player tunables of a reloaded config.
func (g *TestGame) onConfigChanged(context core.EventContext) bool {
	cfg, ok := context.Data.(*config.DrillConfig)
	if !ok {
		return false
	}
	g.Config.Player.Speed = cfg.Player.Speed
	g.Config.Player.RotationSpeedDeg = cfg.Player.RotationSpeedDeg
	for _, p := range g.Registry.Query(scene.TagPlayer) {
		if p.Kinematics != nil {
			p.Kinematics.Speed = cfg.Player.Speed
			p.Kinematics.AngularSpeed = math.DegToRad(cfg.Player.RotationSpeedDeg)
		}
	}
	core.LogInfo("player tunables now speed=%.1f rotation=%.1f deg/s", cfg.Player.Speed, cfg.Player.RotationSpeedDeg)
	return false
}

func spawnPlayer(r *scene.Registry, cfg config.PlayerConfig, withCollider bool) scene.EntityID {
	size := cfg.Size.ToVec2()
	ec := scene.EntityConfig{
		Name:      "player",
		Tags:      scene.TagPlayer,
		Transform: *math.TransformFromPosition(cfg.Position.ToVec2()),
		Kinematics: &scene.Kinematics{
			Speed:        cfg.Speed,
			AngularSpeed: math.DegToRad(cfg.RotationSpeedDeg),
		},
		Sprite: &scene.Sprite{Size: size, Colour: math.ColourOrange},
	}
	if withCollider {
		ec.Collider = &scene.Collider{HalfExtents: size.MulScalar(0.5)}
	}
	return r.Spawn(ec)
}

func spawnOrigin(r *scene.Registry) scene.EntityID {
	return r.Spawn(scene.EntityConfig{
		Name:   "origin",
		Tags:   scene.TagOrigin,
		Sprite: &scene.Sprite{Size: math.NewVec2(4, 4), Colour: math.ColourWhite},
	})
}

func targetConfig(cfg config.TargetConfig) scene.EntityConfig {
	return scene.EntityConfig{
		Name:      "target",
		Tags:      scene.TagTarget,
		Transform: *math.TransformFromPosition(cfg.Position.ToVec2()),
		Sprite:    &scene.Sprite{Size: cfg.Size.ToVec2(), Colour: math.ColourWhite},
	}
}
