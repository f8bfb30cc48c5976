package testbed

import (
	"fmt"

	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
)

func polygonDefaults() config.DrillConfig {
	cfg := config.Default()
	cfg.Application.Name = "polygon"
	cfg.Application.MaxFrames = 1
	return cfg
}

// polygonDrill places one marker on each vertex of a regular polygon centred
// on the origin. Nothing moves.
type polygonDrill struct {
	vertices []math.Vec2
}

func (d *polygonDrill) Setup(g *TestGame) error {
	g.ApplicationConfig.Systems.Kinematics = false
	d.vertices = math.RegularPolygon(g.Config.Polygon.Points, g.Config.Polygon.Radius)
	if d.vertices == nil {
		return fmt.Errorf("a regular polygon needs at least 3 points, got %d", g.Config.Polygon.Points)
	}
	spawnOrigin(g.Registry)
	for i, v := range d.vertices {
		g.Registry.Spawn(scene.EntityConfig{
			Name:      fmt.Sprintf("vertex-%d", i+1),
			Tags:      scene.TagMarker,
			Transform: *math.TransformFromPosition(v),
			Sprite:    &scene.Sprite{Size: math.NewVec2(10, 10), Colour: math.ColourPurple},
		})
	}
	return nil
}

func (d *polygonDrill) Update(g *TestGame, deltaTime float64) error {
	g.record("polygon", "points", len(d.vertices), "radius", g.Config.Polygon.Radius)
	return nil
}
