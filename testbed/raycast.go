package testbed

import (
	"github.com/spaghettifunk/anima-drills/engine"
	"github.com/spaghettifunk/anima-drills/engine/config"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
	"github.com/spaghettifunk/anima-drills/engine/systems"
)

const wallThickness float32 = 40

func raycastDefaults() config.DrillConfig {
	cfg := config.Default()
	cfg.Application.Name = "raycast"
	cfg.Player.Position = config.Vec{120, 0}
	cfg.Player.Size = config.Vec{30, 30}
	return cfg
}

// raycastDrill surrounds the play area with walls and probes upwards from
// just above the player.
type raycastDrill struct {
	hit    systems.RayHit
	hasHit bool
}

func (d *raycastDrill) Setup(g *TestGame) error {
	ray := g.Config.Ray
	g.ApplicationConfig.Systems.Ray = &systems.RaySystemConfig{
		Offset:      ray.Offset.ToVec2(),
		Direction:   ray.Direction.ToVec2(),
		MaxDistance: ray.MaxDistance,
		Solid:       ray.Solid,
	}
	spawnOrigin(g.Registry)
	spawnWalls(g.Registry, float32(engine.DefaultWindowWidth), float32(engine.DefaultWindowHeight))
	spawnPlayer(g.Registry, g.Config.Player, true)
	return nil
}

func (d *raycastDrill) Update(g *TestGame, deltaTime float64) error {
	hit, ok, err := g.SystemManager.RaySystem.Update()
	if err != nil {
		return err
	}
	d.hit, d.hasHit = hit, ok
	if !ok {
		return nil
	}
	name := ""
	if e, err := g.Registry.Get(hit.Entity); err == nil {
		name = e.Name
	}
	g.record("ray hit", "entity", name, "point", hit.Point, "normal", hit.Normal)
	return nil
}

// spawnWalls frames a width x height area. The floor is drawn but has no collider.
func spawnWalls(r *scene.Registry, width, height float32) {
	walls := []struct {
		name     string
		position math.Vec2
		size     math.Vec2
		solid    bool
	}{
		{"ceiling", math.NewVec2(0, height/2), math.NewVec2(width, wallThickness), true},
		{"floor", math.NewVec2(0, -height/2), math.NewVec2(width, wallThickness), false},
		{"left-wall", math.NewVec2(-width/2, 0), math.NewVec2(wallThickness, height), true},
		{"right-wall", math.NewVec2(width/2, 0), math.NewVec2(wallThickness, height), true},
	}
	for _, w := range walls {
		ec := scene.EntityConfig{
			Name:      w.name,
			Tags:      scene.TagWall,
			Transform: *math.TransformFromPosition(w.position),
			Sprite:    &scene.Sprite{Size: w.size, Colour: math.ColourTeal},
		}
		if w.solid {
			ec.Collider = &scene.Collider{HalfExtents: w.size.MulScalar(0.5)}
		}
		r.Spawn(ec)
	}
}
