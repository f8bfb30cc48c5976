package testbed

import (
	"github.com/spaghettifunk/anima-drills/engine/config"
)

func containmentDefaults() config.DrillConfig {
	cfg := config.Default()
	cfg.Application.Name = "containment"
	cfg.Target.Size = config.Vec{100, 100}
	return cfg
}

// containmentDrill moves a small player around a 100x100 square at the origin.
type containmentDrill struct {
	inside bool
}

func (d *containmentDrill) Setup(g *TestGame) error {
	g.Registry.Spawn(targetConfig(g.Config.Target))
	spawnPlayer(g.Registry, g.Config.Player, false)
	return nil
}

func (d *containmentDrill) Update(g *TestGame, deltaTime float64) error {
	c, err := g.SystemManager.RelationSystem.UpdateContainment()
	if err != nil {
		return err
	}
	d.inside = c.Inside
	g.record("containment", "distance", c.Distance, "inside", c.Inside)
	return nil
}
