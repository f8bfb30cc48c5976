package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/renderer"
	"github.com/spaghettifunk/anima-drills/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, cfg config.DrillConfig) (*Game, *int) {
	t.Helper()
	cfg.Application.LogLevel = "error"
	app, err := NewApplicationConfig(cfg)
	require.NoError(t, err)
	updates := 0
	g := &Game{ApplicationConfig: app}
	g.FnInitialize = func() error {
		g.Registry.Spawn(scene.EntityConfig{
			Name:       "player",
			Tags:       scene.TagPlayer,
			Kinematics: &scene.Kinematics{Speed: cfg.Player.Speed},
			Sprite:     &scene.Sprite{Size: math.NewVec2(10, 10)},
		})
		return nil
	}
	g.FnUpdate = func(deltaTime float64) error {
		updates++
		return nil
	}
	g.FnRender = func(packet *renderer.RenderPacket, deltaTime float64) error {
		if len(packet.Items) != 1 {
			t.Errorf("expected one draw item, got %d", len(packet.Items))
		}
		return nil
	}
	return g, &updates
}

func TestApplicationConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Script = []config.ScriptStep{{Frames: 3, Keys: []string{"w", "LEFT"}}}
	app, err := NewApplicationConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultWindowWidth, app.StartWidth)
	assert.Equal(t, core.InfoLevel, app.LogLevel)
	require.Len(t, app.Script, 1)
	assert.Equal(t, []core.KeyCode{core.KEY_W, core.KEY_LEFT}, app.Script[0].Keys)
	assert.True(t, app.Systems.Kinematics)

	cfg.Script = []config.ScriptStep{{Frames: 1, Keys: []string{"nope"}}}
	_, err = NewApplicationConfig(cfg)
	assert.ErrorIs(t, err, core.ErrUnknownKey)
}

func TestScriptedRunMovesPlayer(t *testing.T) {
	cfg := config.Default()
	cfg.Application.MaxFrames = 60
	cfg.Script = []config.ScriptStep{{Frames: 30, Keys: []string{"W"}}}
	g, updates := newTestGame(t, cfg)

	e, err := New(g)
	require.NoError(t, err)
	assert.Equal(t, EngineStageBootComplete, e.Stage())
	assert.Error(t, e.Run(), "cannot run before Initialize")

	require.NoError(t, e.Initialize())
	t.Cleanup(func() { _ = e.Shutdown() })
	require.NoError(t, e.Run())

	assert.Equal(t, uint64(60), e.Frame())
	assert.Equal(t, 60, *updates)
	player, err := g.Registry.Single(scene.TagPlayer)
	require.NoError(t, err)
	// Half a second of W at 300 units per second.
	assert.InDelta(t, 150, player.Transform.Position.Y, 1e-2)
	assert.Equal(t, float32(0), player.Transform.Position.X)
	assert.False(t, core.Input().IsKeyDown(core.KEY_W))
}

func TestRunStopsOnCardinalityError(t *testing.T) {
	cfg := config.Default()
	cfg.Application.MaxFrames = 10
	g, _ := newTestGame(t, cfg)
	spawn := g.FnInitialize
	g.FnInitialize = func() error {
		if err := spawn(); err != nil {
			return err
		}
		return spawn()
	}
	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	t.Cleanup(func() { _ = e.Shutdown() })

	err = e.Run()
	assert.ErrorIs(t, err, core.ErrCardinality)
	assert.Equal(t, uint64(1), e.Frame())
}

func TestStopFromAnotherGoroutine(t *testing.T) {
	cfg := config.Default()
	cfg.Application.MaxFrames = 0
	cfg.Application.FixedDelta = 0
	g, updates := newTestGame(t, cfg)
	stopAt := 5
	e, err := New(g)
	require.NoError(t, err)
	update := g.FnUpdate
	g.FnUpdate = func(deltaTime float64) error {
		if *updates == stopAt {
			go e.Stop()
			// Give the goroutine a chance before the next frame starts.
			time.Sleep(10 * time.Millisecond)
		}
		return update(deltaTime)
	}
	require.NoError(t, e.Initialize())
	t.Cleanup(func() { _ = e.Shutdown() })
	require.NoError(t, e.Run())
	assert.GreaterOrEqual(t, e.Frame(), uint64(stopAt+1))
}

func TestConfigReloadRebindsInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drill.toml")
	require.NoError(t, os.WriteFile(path, []byte("[player]\nspeed = 300.0\n"), 0o644))

	cfg := config.Default()
	cfg.Application.MaxFrames = 1
	g, _ := newTestGame(t, cfg)
	g.ApplicationConfig.WatchPath = path
	g.ApplicationConfig.WatchBase = config.Default()
	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	t.Cleanup(func() { _ = e.Shutdown() })

	reloaded := make(chan *config.DrillConfig, 8)
	core.EventRegister(core.EVENT_CODE_CONFIG_CHANGED, t, func(ctx core.EventContext) bool {
		select {
		case reloaded <- ctx.Data.(*config.DrillConfig):
		default:
		}
		return false
	})

	require.NoError(t, os.WriteFile(path, []byte("[application]\nlog_level = \"error\"\n[bindings]\nup = [\"I\"]\n"), 0o644))
	// Wait for the notice without consuming it, the loop drains it.
	require.Eventually(t, func() bool {
		return len(e.assetManager.Changes()) > 0
	}, 5*time.Second, 10*time.Millisecond)
	// Let the write settle so the reload reads the whole file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, e.Run())

	select {
	case cfg := <-reloaded:
		assert.Equal(t, []string{"I"}, cfg.Bindings.Up)
	default:
		t.Fatal("config change was not fired")
	}
	intent := e.systemManager.InputSampler.Sample(inputWith(core.KEY_I))
	assert.Equal(t, math.NewVec2(0, 1), intent.Axis)
}

func inputWith(keys ...core.KeyCode) *core.InputState {
	s := core.NewInputState()
	for _, k := range keys {
		s.KeyboardCurrent.Keys[k] = true
	}
	return s
}
