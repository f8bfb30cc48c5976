package testbed

import (
	"github.com/spaghettifunk/anima-drills/engine/config"
)

func facingDefaults() config.DrillConfig {
	cfg := config.Default()
	cfg.Application.Name = "facing"
	cfg.Player.Position = config.Vec{120, 0}
	cfg.Target.Position = config.Vec{-50, 100}
	cfg.Target.Size = config.Vec{10, 10}
	return cfg
}

// facingDrill compares the directions of the player and the target as seen
// from the world origin, and checks the local/world round trip between them.
type facingDrill struct {
	alignment float32
}

func (d *facingDrill) Setup(g *TestGame) error {
	spawnOrigin(g.Registry)
	g.Registry.Spawn(targetConfig(g.Config.Target))
	spawnPlayer(g.Registry, g.Config.Player, false)
	return nil
}

func (d *facingDrill) Update(g *TestGame, deltaTime float64) error {
	alignment, err := g.SystemManager.RelationSystem.UpdateFacing()
	if err != nil {
		return err
	}
	d.alignment = alignment
	rt, err := g.SystemManager.RelationSystem.UpdateRoundTrip()
	if err != nil {
		return err
	}
	g.record("facing", "dot", alignment, "local", rt.Local, "world", rt.World)
	return nil
}
