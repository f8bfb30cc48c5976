package scene

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-drills/engine/math"
)

// EntityID is a stable handle into a Registry.
type EntityID uint32

const InvalidEntityID EntityID = ^EntityID(0)

func (id EntityID) Valid() bool {
	return id != InvalidEntityID
}

// Tag marks what role an entity plays. Tags can be combined.
type Tag uint32

const (
	TagNone Tag = 0
	// The single controllable entity.
	TagPlayer Tag = 1 << iota
	// The single static reference the player is measured against.
	TagTarget
	// The origin marker.
	TagOrigin
	// The segment drawn from the world origin to a child entity.
	TagSegment
	// Static level geometry.
	TagWall
	// Free standing markers, e.g. polygon vertices.
	TagMarker
	// Entities whose world position is resolved through their parent each frame.
	TagLocalChild
)

func (t Tag) Has(other Tag) bool {
	return other != TagNone && t&other == other
}

// Kinematics is the movement tuning of a movable entity.
type Kinematics struct {
	// Linear speed in units per second.
	Speed float32
	// Angular speed in radians per second.
	AngularSpeed float32
}

// Collider is a static axis aligned box centred on the entity's world position.
type Collider struct {
	HalfExtents math.Vec2
}

// Sprite is the display state a renderer would draw.
type Sprite struct {
	Size   math.Vec2
	Colour math.Colour
	// Length of a segment, for readers. Drawing goes through the transform scale.
	Length float32
}

// Entity is one record of the registry arena.
type Entity struct {
	ID   EntityID
	GUID uuid.UUID
	Name string
	Tags Tag
	// Relative to Parent when it is valid, otherwise world space.
	Transform math.Transform2D
	// Assigned at spawn and never changed.
	Parent     EntityID
	Kinematics *Kinematics
	Collider   *Collider
	Sprite     *Sprite

	// World position computed by the hierarchy system, valid when HasWorld is set.
	WorldPosition math.Vec2
	HasWorld      bool
}

// EntityConfig describes an entity to spawn.
type EntityConfig struct {
	Name       string
	Tags       Tag
	Transform  math.Transform2D
	Kinematics *Kinematics
	Collider   *Collider
	Sprite     *Sprite
}
