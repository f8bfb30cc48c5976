package systems

import (
	"fmt"

	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
)

/**
 * @brief Converts a point in the parent's local frame into world space.
 * basis_x = (cos r, sin r), basis_y = (-sin r, cos r) and every local
 * coordinate is stretched by the parent scale before being laid on its basis.
 *
 * @param parent The parent world transform.
 * @param local The point relative to the parent.
 * @return The world position.
 */
func LocalToWorld(parent math.Transform2D, local math.Vec2) math.Vec2 {
	return parent.TransformPoint(local)
}

// WorldToLocal is the inverse of LocalToWorld.
func WorldToLocal(parent math.Transform2D, world math.Vec2) math.Vec2 {
	return parent.InverseTransformPoint(world)
}

/**
 * @brief Builds the transform of a unit sprite stretched from the world
 * origin to the given point: centred half way, rotated along the point
 * direction and scaled on x by the distance.
 *
 * @param world The far end of the segment.
 * @return The segment transform and its length.
 */
func SegmentTransform(world math.Vec2) (math.Transform2D, float32) {
	length := world.Length()
	t := math.TransformFromPositionRotationScale(
		world.MulScalar(0.5),
		world.Angle(),
		math.NewVec2(length, 1),
	)
	return *t, length
}

// HierarchyResult is what the hierarchy system resolved for the tracked child.
type HierarchyResult struct {
	Child              scene.EntityID
	World              math.Vec2
	DistanceFromOrigin float32
}

// HierarchySystem resolves the world position of every TagLocalChild entity
// and keeps the segment entity pointing at the tracked child.
type HierarchySystem struct {
	registry *scene.Registry
	// Tag of the child the segment follows.
	track scene.Tag
}

func NewHierarchySystem(registry *scene.Registry, track scene.Tag) (*HierarchySystem, error) {
	if registry == nil {
		err := fmt.Errorf("func NewHierarchySystem - registry must not be nil")
		core.LogError(err.Error())
		return nil, err
	}
	return &HierarchySystem{registry: registry, track: track}, nil
}

/**
 * @brief Caches the world position of every local child, then updates the
 * segment when the system tracks a child.
 *
 * @return The tracked child result, or an error wrapping ErrCardinality when
 * the tracked child or the segment is missing or duplicated.
 */
func (hs *HierarchySystem) Update() (HierarchyResult, error) {
	var err error
	for _, e := range hs.registry.Query(scene.TagLocalChild) {
		var parent math.Transform2D
		if e.Parent.Valid() {
			if parent, err = hs.registry.WorldTransform(e.Parent); err != nil {
				return HierarchyResult{}, fmt.Errorf("resolving parent of %q: %w", e.Name, err)
			}
		} else {
			parent = *math.TransformCreate()
		}
		e.WorldPosition = LocalToWorld(parent, e.Transform.Position)
		e.HasWorld = true
	}
	if hs.track == scene.TagNone {
		return HierarchyResult{Child: scene.InvalidEntityID}, nil
	}

	child, err := hs.registry.Single(hs.track)
	if err != nil {
		return HierarchyResult{}, fmt.Errorf("hierarchy update: %w", err)
	}
	if !child.Tags.Has(scene.TagLocalChild) {
		if child.WorldPosition, err = hs.worldPosition(child); err != nil {
			return HierarchyResult{}, err
		}
		child.HasWorld = true
	}
	segment, err := hs.registry.Single(scene.TagSegment)
	if err != nil {
		return HierarchyResult{}, fmt.Errorf("hierarchy update: %w", err)
	}
	var length float32
	segment.Transform, length = SegmentTransform(child.WorldPosition)
	if segment.Sprite != nil {
		segment.Sprite.Length = length
	}
	return HierarchyResult{
		Child:              child.ID,
		World:              child.WorldPosition,
		DistanceFromOrigin: length,
	}, nil
}

func (hs *HierarchySystem) worldPosition(e *scene.Entity) (math.Vec2, error) {
	world, err := hs.registry.WorldTransform(e.ID)
	if err != nil {
		return math.Vec2{}, err
	}
	return world.Position, nil
}

func (hs *HierarchySystem) Shutdown() error {
	hs.registry.Each(func(e *scene.Entity) bool {
		e.HasWorld = false
		return true
	})
	return nil
}
