package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
)

// Registry owns every entity of a drill. Entities are stored in an arena and
// addressed by EntityID; they are never removed once spawned.
type Registry struct {
	entities []*Entity
	byName   map[string]EntityID
}

func NewRegistry() *Registry {
	return &Registry{
		entities: make([]*Entity, 0, 16),
		byName:   make(map[string]EntityID),
	}
}

// Spawn adds a root entity and returns its handle.
func (r *Registry) Spawn(config EntityConfig) EntityID {
	return r.spawn(config, InvalidEntityID)
}

// SpawnChild adds an entity whose transform is expressed in the parent's local frame.
func (r *Registry) SpawnChild(parent EntityID, config EntityConfig) (EntityID, error) {
	if _, err := r.Get(parent); err != nil {
		return InvalidEntityID, fmt.Errorf("spawning child %q: %w", config.Name, err)
	}
	return r.spawn(config, parent), nil
}

func (r *Registry) spawn(config EntityConfig, parent EntityID) EntityID {
	id := EntityID(len(r.entities))
	transform := config.Transform
	if transform.Scale == (math.Vec2{}) {
		transform.Scale = math.NewVec2One()
	}
	e := &Entity{
		ID:         id,
		GUID:       uuid.New(),
		Name:       config.Name,
		Tags:       config.Tags,
		Transform:  transform,
		Parent:     parent,
		Kinematics: config.Kinematics,
		Collider:   config.Collider,
		Sprite:     config.Sprite,
	}
	r.entities = append(r.entities, e)
	if config.Name != "" {
		if _, taken := r.byName[config.Name]; taken {
			core.LogWarn("entity name %q is already taken, lookups by name return the first one", config.Name)
		} else {
			r.byName[config.Name] = id
		}
	}
	core.LogDebug("spawned entity %d (%s) %q", id, e.GUID, config.Name)
	return id
}

func (r *Registry) Get(id EntityID) (*Entity, error) {
	if !id.Valid() || int(id) >= len(r.entities) {
		return nil, fmt.Errorf("%w: id %d", core.ErrEntityNotFound, id)
	}
	return r.entities[id], nil
}

func (r *Registry) GetByName(name string) (*Entity, error) {
	id, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: name %q", core.ErrEntityNotFound, name)
	}
	return r.entities[id], nil
}

// Query returns every entity carrying all bits of tag, in spawn order.
func (r *Registry) Query(tag Tag) []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if e.Tags.Has(tag) {
			out = append(out, e)
		}
	}
	return out
}

// Single returns the only entity carrying tag. Zero or several matches is a
// cardinality violation and returns an error wrapping core.ErrCardinality.
func (r *Registry) Single(tag Tag) (*Entity, error) {
	var found *Entity
	count := 0
	for _, e := range r.entities {
		if e.Tags.Has(tag) {
			found = e
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("%w: tag %s matched %d entities", core.ErrCardinality, tag, count)
	}
	return found, nil
}

func (r *Registry) Len() int {
	return len(r.entities)
}

// Each calls fn for every entity in spawn order until fn returns false.
func (r *Registry) Each(fn func(e *Entity) bool) {
	for _, e := range r.entities {
		if !fn(e) {
			return
		}
	}
}

// Parent returns the parent of id, or nil for root entities.
func (r *Registry) Parent(id EntityID) (*Entity, error) {
	e, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if !e.Parent.Valid() {
		return nil, nil
	}
	return r.Get(e.Parent)
}

// WorldTransform composes the transform of id with each of its ancestors.
func (r *Registry) WorldTransform(id EntityID) (math.Transform2D, error) {
	e, err := r.Get(id)
	if err != nil {
		return math.Transform2D{}, err
	}
	world := e.Transform
	// Parents are always spawned before their children, so walking up terminates.
	for p := e.Parent; p.Valid(); {
		parent, err := r.Get(p)
		if err != nil {
			return math.Transform2D{}, err
		}
		world = parent.Transform.Compose(world)
		p = parent.Parent
	}
	return world, nil
}

func (t Tag) String() string {
	names := []struct {
		tag  Tag
		name string
	}{
		{TagPlayer, "player"},
		{TagTarget, "target"},
		{TagOrigin, "origin"},
		{TagSegment, "segment"},
		{TagWall, "wall"},
		{TagMarker, "marker"},
		{TagLocalChild, "local-child"},
	}
	out := ""
	for _, n := range names {
		if t.Has(n.tag) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	if out == "" {
		return "none"
	}
	return out
}
