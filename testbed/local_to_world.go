package testbed

import (
	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
	"github.com/spaghettifunk/anima-drills/engine/systems"
)

func localToWorldDefaults() config.DrillConfig {
	cfg := config.Default()
	cfg.Application.Name = "local-to-world"
	cfg.Player.Position = config.Vec{120, 0}
	cfg.Player.Size = config.Vec{30, 30}
	// Relative to the player.
	cfg.Target.Position = config.Vec{-50, 100}
	cfg.Target.Size = config.Vec{10, 10}
	return cfg
}

// localToWorldDrill parents the target to the player and draws a segment
// from the world origin to wherever the target ends up.
type localToWorldDrill struct {
	last systems.HierarchyResult
}

func (d *localToWorldDrill) Setup(g *TestGame) error {
	g.ApplicationConfig.Systems.Track = scene.TagTarget
	spawnOrigin(g.Registry)
	player := spawnPlayer(g.Registry, g.Config.Player, false)
	child := targetConfig(g.Config.Target)
	child.Tags |= scene.TagLocalChild
	if _, err := g.Registry.SpawnChild(player, child); err != nil {
		return err
	}
	g.Registry.Spawn(scene.EntityConfig{
		Name:   "segment",
		Tags:   scene.TagSegment,
		Sprite: &scene.Sprite{Size: math.NewVec2One(), Colour: math.ColourWhite},
	})
	return nil
}

func (d *localToWorldDrill) Update(g *TestGame, deltaTime float64) error {
	res, err := g.SystemManager.HierarchySystem.Update()
	if err != nil {
		return err
	}
	d.last = res
	g.record("local to world", "world", res.World, "distance", res.DistanceFromOrigin)
	return nil
}
