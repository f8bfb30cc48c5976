package systems

import (
	"fmt"

	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
)

// RoundTripTolerance is the accepted drift of a local/world round trip.
const RoundTripTolerance float32 = 1e-5

// Containment is the outcome of a point-in-square test.
type Containment struct {
	Distance float32
	Inside   bool
}

/**
 * @brief Tests whether the point lies strictly within half_side of the
 * reference, measured as a Euclidean distance. A point exactly half_side
 * away is outside.
 */
func EvaluateContainment(point, reference math.Vec2, halfSide float32) Containment {
	d := point.Distance(reference)
	return Containment{Distance: d, Inside: d < halfSide}
}

/**
 * @brief Dot product of the two position vectors once normalized. It tells
 * how aligned the directions from the world origin are, not where either
 * entity is heading. A zero vector yields 0.
 *
 * @return A value in [-1, 1].
 */
func FacingAlignment(point, reference math.Vec2) float32 {
	d := point.NormalizeOrZero().Dot(reference.NormalizeOrZero())
	return math.Clamp(d, -1, 1)
}

// RoundTrip expresses reference relative to point and back again.
type RoundTrip struct {
	Local math.Vec2
	World math.Vec2
}

// EvaluateRoundTrip works in float64 so the way back lands on point exactly.
func EvaluateRoundTrip(point, reference math.Vec2) RoundTrip {
	px, py := float64(point.X), float64(point.Y)
	rx, ry := float64(reference.X), float64(reference.Y)
	lx, ly := rx-px, ry-py
	return RoundTrip{
		Local: math.NewVec2(float32(lx), float32(ly)),
		World: math.NewVec2(float32(rx-lx), float32(ry-ly)),
	}
}

// Ok reports whether the round trip landed back on point.
func (rt RoundTrip) Ok(point math.Vec2) bool {
	return rt.World.Compare(point, RoundTripTolerance)
}

// ContainmentColour is cyan inside and crimson outside.
func ContainmentColour(c Containment) math.Colour {
	if c.Inside {
		return math.ColourCyan
	}
	return math.ColourCrimson
}

// AlignmentColour is a grey of the alignment intensity; negatives show black.
func AlignmentColour(alignment float32) math.Colour {
	return math.NewColourGrey(alignment)
}

// RelationSystem runs the relation evaluators on the player and the target
// and reflects the result on the target sprite.
type RelationSystem struct {
	registry *scene.Registry
	// Containment of the previous frame, nil before the first evaluation.
	lastInside *bool
}

func NewRelationSystem(registry *scene.Registry) (*RelationSystem, error) {
	if registry == nil {
		err := fmt.Errorf("func NewRelationSystem - registry must not be nil")
		core.LogError(err.Error())
		return nil, err
	}
	return &RelationSystem{registry: registry}, nil
}

func (rs *RelationSystem) pair() (*scene.Entity, *scene.Entity, error) {
	player, err := rs.registry.Single(scene.TagPlayer)
	if err != nil {
		return nil, nil, err
	}
	target, err := rs.registry.Single(scene.TagTarget)
	if err != nil {
		return nil, nil, err
	}
	return player, target, nil
}

/**
 * @brief Runs the containment test of the player against the target square
 * and colours the target. Fires EVENT_CODE_CONTAINMENT_CHANGED whenever the
 * result differs from the previous frame.
 */
func (rs *RelationSystem) UpdateContainment() (Containment, error) {
	player, target, err := rs.pair()
	if err != nil {
		return Containment{}, fmt.Errorf("containment update: %w", err)
	}
	halfSide := float32(0)
	if target.Sprite != nil {
		halfSide = target.Sprite.Size.X * 0.5
	}
	c := EvaluateContainment(player.Transform.Position, target.Transform.Position, halfSide)
	if target.Sprite != nil {
		target.Sprite.Colour = ContainmentColour(c)
	}
	if rs.lastInside == nil || *rs.lastInside != c.Inside {
		inside := c.Inside
		rs.lastInside = &inside
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONTAINMENT_CHANGED, Data: c})
	}
	return c, nil
}

// UpdateFacing computes the alignment of player and target and greys the target.
func (rs *RelationSystem) UpdateFacing() (float32, error) {
	player, target, err := rs.pair()
	if err != nil {
		return 0, fmt.Errorf("facing update: %w", err)
	}
	d := FacingAlignment(player.Transform.Position, target.Transform.Position)
	if target.Sprite != nil {
		target.Sprite.Colour = AlignmentColour(d)
	}
	return d, nil
}

// UpdateRoundTrip runs the coordinate round trip of the target through the player.
func (rs *RelationSystem) UpdateRoundTrip() (RoundTrip, error) {
	player, target, err := rs.pair()
	if err != nil {
		return RoundTrip{}, fmt.Errorf("round trip update: %w", err)
	}
	rt := EvaluateRoundTrip(player.Transform.Position, target.Transform.Position)
	if !rt.Ok(player.Transform.Position) {
		core.LogWarn("round trip drifted: %v -> %v", player.Transform.Position, rt.World)
	}
	return rt, nil
}

func (rs *RelationSystem) Shutdown() error {
	rs.lastInside = nil
	return nil
}
