package testbed

import (
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/anima-drills/engine"
	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDrill(t *testing.T, name string, tweak func(cfg *config.DrillConfig)) (*TestGame, *engine.Engine) {
	t.Helper()
	cfg, err := Defaults(name)
	require.NoError(t, err)
	cfg.Application.LogLevel = "error"
	if tweak != nil {
		tweak(&cfg)
	}
	require.NoError(t, cfg.Validate())

	tg, err := NewTestGame(name, cfg)
	require.NoError(t, err)
	e, err := engine.New(tg.Game)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	t.Cleanup(func() { require.NoError(t, e.Shutdown()) })
	require.NoError(t, e.Run())
	return tg, e
}

func TestDrillCatalogue(t *testing.T) {
	assert.Equal(t, []string{"containment", "facing", "local-to-world", "polygon", "raycast"}, DrillNames())
	for _, name := range DrillNames() {
		cfg, err := Defaults(name)
		require.NoError(t, err)
		assert.Equal(t, name, cfg.Application.Name)
		assert.NoError(t, cfg.Validate())
		desc, err := Describe(name)
		require.NoError(t, err)
		assert.NotEmpty(t, desc)
	}

	_, err := Defaults("pathfinding")
	assert.ErrorIs(t, err, core.ErrUnknownDrill)
	_, err = NewTestGame("pathfinding", config.Default())
	assert.ErrorIs(t, err, core.ErrUnknownDrill)
}

func TestContainmentDrill(t *testing.T) {
	tg, e := runDrill(t, "containment", func(cfg *config.DrillConfig) {
		cfg.Application.MaxFrames = 12
		cfg.Script = []config.ScriptStep{{Frames: 12, Keys: []string{"D"}}}
	})
	assert.Equal(t, uint64(12), e.Frame())
	assert.Equal(t, uint64(12), tg.Frame())

	player, err := tg.Registry.Single(scene.TagPlayer)
	require.NoError(t, err)
	assert.InDelta(t, 60, player.Transform.Position.X, 1e-3)
	assert.Equal(t, float32(0), player.Transform.Position.Y)

	target, err := tg.Registry.Single(scene.TagTarget)
	require.NoError(t, err)
	assert.Equal(t, math.ColourCrimson, target.Sprite.Colour, "60 units away is outside a 100 wide square")
	assert.False(t, tg.State.(*containmentDrill).inside)
}

func TestContainmentDrillStaysInside(t *testing.T) {
	tg, _ := runDrill(t, "containment", func(cfg *config.DrillConfig) {
		cfg.Application.MaxFrames = 6
		cfg.Script = []config.ScriptStep{{Frames: 6, Keys: []string{"W", "D"}}}
	})
	player, _ := tg.Registry.Single(scene.TagPlayer)
	// Diagonal moves are not normalized: 30 units on both axes.
	assert.InDelta(t, 30, player.Transform.Position.X, 1e-3)
	assert.InDelta(t, 30, player.Transform.Position.Y, 1e-3)

	target, _ := tg.Registry.Single(scene.TagTarget)
	assert.Equal(t, math.ColourCyan, target.Sprite.Colour)
}

func TestFacingDrill(t *testing.T) {
	tg, _ := runDrill(t, "facing", func(cfg *config.DrillConfig) {
		cfg.Application.MaxFrames = 1
	})
	d := tg.State.(*facingDrill)
	assert.InDelta(t, -0.4472, d.alignment, 1e-4)

	target, _ := tg.Registry.Single(scene.TagTarget)
	assert.Equal(t, math.ColourBlack, target.Sprite.Colour, "negative alignment shows black")

	latest, ok := tg.SystemManager.DiagnosticsSystem.Latest()
	require.True(t, ok)
	assert.Equal(t, "facing", latest.Message)
}

func TestLocalToWorldDrill(t *testing.T) {
	tg, _ := runDrill(t, "local-to-world", func(cfg *config.DrillConfig) {
		cfg.Application.MaxFrames = 15
		cfg.Script = []config.ScriptStep{{Frames: 15, Keys: []string{"J"}}}
	})
	player, _ := tg.Registry.Single(scene.TagPlayer)
	assert.InDelta(t, float64(math.K_HALF_PI), float64(player.Transform.Rotation), 1e-3)
	assert.Equal(t, math.NewVec2(120, 0), player.Transform.Position)

	d := tg.State.(*localToWorldDrill)
	assert.InDelta(t, 20, d.last.World.X, 0.1)
	assert.InDelta(t, -50, d.last.World.Y, 0.1)
	assert.InDelta(t, 53.85, d.last.DistanceFromOrigin, 0.1)

	segment, _ := tg.Registry.Single(scene.TagSegment)
	assert.InDelta(t, 10, segment.Transform.Position.X, 0.1)
	assert.InDelta(t, -25, segment.Transform.Position.Y, 0.1)
	assert.InDelta(t, d.last.DistanceFromOrigin, segment.Sprite.Length, 1e-4)
}

func TestLocalToWorldDrillUnrotated(t *testing.T) {
	tg, _ := runDrill(t, "local-to-world", func(cfg *config.DrillConfig) {
		cfg.Application.MaxFrames = 1
	})
	d := tg.State.(*localToWorldDrill)
	assert.InDelta(t, 70, d.last.World.X, 1e-4)
	assert.InDelta(t, 100, d.last.World.Y, 1e-4)
}

func TestRaycastDrill(t *testing.T) {
	tg, _ := runDrill(t, "raycast", func(cfg *config.DrillConfig) {
		cfg.Application.MaxFrames = 1
		cfg.Player.Position = config.Vec{120, 400}
	})
	d := tg.State.(*raycastDrill)
	require.True(t, d.hasHit)
	ceiling, err := tg.Registry.GetByName("ceiling")
	require.NoError(t, err)
	assert.Equal(t, ceiling.ID, d.hit.Entity)
	assert.InDelta(t, 63, d.hit.Distance, 1e-3)
	assert.InDelta(t, 480, d.hit.Point.Y, 1e-3)
	assert.Equal(t, math.NewVec2Down(), d.hit.Normal)
}

func TestRaycastDrillMissesInTheOpen(t *testing.T) {
	tg, _ := runDrill(t, "raycast", func(cfg *config.DrillConfig) {
		cfg.Application.MaxFrames = 1
	})
	assert.False(t, tg.State.(*raycastDrill).hasHit)
	floor, err := tg.Registry.GetByName("floor")
	require.NoError(t, err)
	assert.Nil(t, floor.Collider)
}

func TestPolygonDrill(t *testing.T) {
	tg, _ := runDrill(t, "polygon", nil)
	markers := tg.Registry.Query(scene.TagMarker)
	require.Len(t, markers, 5)
	for _, m := range markers {
		assert.InDelta(t, 50, m.Transform.Position.Length(), 1e-3)
		assert.Equal(t, math.ColourPurple, m.Sprite.Colour)
	}
	first := math.NewVec2FromAngle(math.K_PI_2 / 5).MulScalar(50)
	assert.True(t, markers[0].Transform.Position.Compare(first, 1e-3))
	assert.Nil(t, tg.SystemManager.KinematicsSystem)
}

func TestEscapeQuits(t *testing.T) {
	_, e := runDrill(t, "containment", func(cfg *config.DrillConfig) {
		cfg.Application.MaxFrames = 100
		cfg.Script = []config.ScriptStep{
			{Frames: 2, Keys: []string{"D"}},
			{Frames: 1, Keys: []string{"ESCAPE"}},
		}
	})
	assert.Equal(t, uint64(3), e.Frame())
}

func TestSampleConfigsDecode(t *testing.T) {
	for _, name := range []string{"facing", "local-to-world", "raycast"} {
		t.Run(name, func(t *testing.T) {
			defaults, err := Defaults(name)
			require.NoError(t, err)
			cfg, err := config.Load(filepath.Join("..", "drills", name+".toml"), defaults)
			require.NoError(t, err)
			assert.Equal(t, name, cfg.Application.Name)
			assert.NotEmpty(t, cfg.Script)
			_, err = NewTestGame(name, cfg)
			assert.NoError(t, err)
		})
	}
}
