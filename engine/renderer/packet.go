package renderer

import (
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
)

/** @brief The shape a draw item stands for. */
type DrawKind uint8

const (
	/** @brief An axis aligned quad of the sprite size, rotated by the transform. */
	DrawKindQuad DrawKind = iota
	/** @brief A quad of the sprite size stretched along x by the transform scale. */
	DrawKindSegment
	/** @brief A point marker. */
	DrawKindMarker
)

func (k DrawKind) String() string {
	switch k {
	case DrawKindSegment:
		return "segment"
	case DrawKindMarker:
		return "marker"
	default:
		return "quad"
	}
}

/** @brief The draw state of a single entity. */
type DrawItem struct {
	Entity scene.EntityID
	Name   string
	Kind   DrawKind
	/** @brief The world transform the item is drawn with. */
	Transform math.Transform2D
	Size      math.Vec2
	Colour    math.Colour
}

/** @brief Everything the renderer needs to draw one frame. */
type RenderPacket struct {
	DeltaTime float64
	Frame     uint64
	Items     []DrawItem
}

/**
 * @brief Collects the draw state of every entity carrying a sprite, in spawn
 * order. Entities without a sprite are not drawn.
 *
 * @param registry The scene to collect from.
 * @param deltaTime The frame delta.
 * @param frame The frame number.
 * @return A new render packet.
 */
func BuildPacket(registry *scene.Registry, deltaTime float64, frame uint64) *RenderPacket {
	packet := &RenderPacket{
		DeltaTime: deltaTime,
		Frame:     frame,
		Items:     make([]DrawItem, 0, registry.Len()),
	}
	registry.Each(func(e *scene.Entity) bool {
		if e.Sprite == nil {
			return true
		}
		world, err := registry.WorldTransform(e.ID)
		if err != nil {
			return true
		}
		item := DrawItem{
			Entity:    e.ID,
			Name:      e.Name,
			Kind:      DrawKindQuad,
			Transform: world,
			Size:      e.Sprite.Size,
			Colour:    e.Sprite.Colour,
		}
		switch {
		case e.Tags.Has(scene.TagSegment):
			item.Kind = DrawKindSegment
		case e.Tags.Has(scene.TagMarker):
			item.Kind = DrawKindMarker
		}
		packet.Items = append(packet.Items, item)
		return true
	})
	return packet
}
