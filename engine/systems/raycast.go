package systems

import (
	"fmt"

	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
)

// RayHit describes the first collider a ray touched.
type RayHit struct {
	Entity scene.EntityID
	Point  math.Vec2
	// Outward normal of the face that was hit. Zero for a solid hit from inside.
	Normal math.Vec2
	// Time of impact in units of the ray direction.
	Toi float32
	// Euclidean distance from the ray origin.
	Distance float32
}

// RayCaster answers ray queries against the static colliders of a scene.
type RayCaster interface {
	// CastRay returns the nearest hit within maxDistance along direction.
	// When solid is false a ray starting inside a collider hits where it leaves it.
	CastRay(origin, direction math.Vec2, maxDistance float32, solid bool) (RayHit, bool)
}

// ColliderCaster is a RayCaster over the axis aligned box colliders of a registry.
type ColliderCaster struct {
	registry *scene.Registry
	// Colliders of entities carrying this tag are skipped, usually the caster itself.
	exclude scene.Tag
}

func NewColliderCaster(registry *scene.Registry, exclude scene.Tag) *ColliderCaster {
	return &ColliderCaster{registry: registry, exclude: exclude}
}

func (cc *ColliderCaster) CastRay(origin, direction math.Vec2, maxDistance float32, solid bool) (RayHit, bool) {
	ray := math.Ray2D{Origin: origin, Direction: direction}
	best := RayHit{Entity: scene.InvalidEntityID}
	found := false
	cc.registry.Each(func(e *scene.Entity) bool {
		if e.Collider == nil || e.Tags.Has(cc.exclude) {
			return true
		}
		world, err := cc.registry.WorldTransform(e.ID)
		if err != nil {
			core.LogWarn("skipping collider of %q: %s", e.Name, err)
			return true
		}
		box := math.NewExtents2DFromCenter(world.Position, e.Collider.HalfExtents)
		toi, normal, hit := box.IntersectRay(ray, maxDistance, solid)
		if !hit || (found && toi >= best.Toi) {
			return true
		}
		best = RayHit{
			Entity:   e.ID,
			Point:    ray.PointAt(toi),
			Normal:   normal,
			Toi:      toi,
			Distance: direction.MulScalar(toi).Length(),
		}
		found = true
		return true
	})
	return best, found
}

// RaySystemConfig places the probe ray relative to the player.
type RaySystemConfig struct {
	Offset      math.Vec2
	Direction   math.Vec2
	MaxDistance float32
	Solid       bool
}

// RaySystem casts the probe ray from the player once per frame.
type RaySystem struct {
	Config   *RaySystemConfig
	registry *scene.Registry
	caster   RayCaster
	// Entity hit on the previous frame, invalid when nothing was hit.
	lastHit scene.EntityID
}

func NewRaySystem(config *RaySystemConfig, registry *scene.Registry, caster RayCaster) (*RaySystem, error) {
	if config == nil || config.MaxDistance < 0 {
		err := fmt.Errorf("func NewRaySystem - config.MaxDistance must be >= 0")
		core.LogError(err.Error())
		return nil, err
	}
	if config.Direction.LengthSquared() == 0 {
		core.LogWarn("ray direction is zero, the probe will never hit")
	}
	return &RaySystem{
		Config:   config,
		registry: registry,
		caster:   caster,
		lastHit:  scene.InvalidEntityID,
	}, nil
}

/**
 * @brief Casts from the player position plus the configured offset. Fires
 * EVENT_CODE_RAY_HIT when the ray hits an entity it was not hitting on the
 * previous frame.
 */
func (rs *RaySystem) Update() (RayHit, bool, error) {
	player, err := rs.registry.Single(scene.TagPlayer)
	if err != nil {
		return RayHit{}, false, fmt.Errorf("ray update: %w", err)
	}
	origin := player.Transform.Position.Add(rs.Config.Offset)
	hit, ok := rs.caster.CastRay(origin, rs.Config.Direction, rs.Config.MaxDistance, rs.Config.Solid)
	if !ok {
		rs.lastHit = scene.InvalidEntityID
		return RayHit{}, false, nil
	}
	if hit.Entity != rs.lastHit {
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_RAY_HIT, Data: hit})
	}
	rs.lastHit = hit.Entity
	return hit, true, nil
}

func (rs *RaySystem) Shutdown() error {
	rs.lastHit = scene.InvalidEntityID
	return nil
}
