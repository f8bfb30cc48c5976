package renderer

import (
	"testing"

	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPacket(t *testing.T) {
	r := scene.NewRegistry()
	player := r.Spawn(scene.EntityConfig{
		Name:      "player",
		Tags:      scene.TagPlayer,
		Transform: *math.TransformFromPosition(math.NewVec2(120, 0)),
		Sprite:    &scene.Sprite{Size: math.NewVec2(10, 10), Colour: math.ColourWhite},
	})
	_, err := r.SpawnChild(player, scene.EntityConfig{
		Name:      "target",
		Tags:      scene.TagTarget | scene.TagLocalChild,
		Transform: *math.TransformFromPosition(math.NewVec2(-50, 100)),
		Sprite:    &scene.Sprite{Size: math.NewVec2(100, 100), Colour: math.ColourCyan},
	})
	require.NoError(t, err)
	r.Spawn(scene.EntityConfig{Name: "invisible", Tags: scene.TagWall})
	r.Spawn(scene.EntityConfig{
		Name:      "segment",
		Tags:      scene.TagSegment,
		Transform: *math.TransformFromPositionRotationScale(math.NewVec2(6, 0), 0, math.NewVec2(12, 1)),
		Sprite:    &scene.Sprite{Size: math.NewVec2One(), Length: 12},
	})

	packet := BuildPacket(r, 0.5, 3)
	assert.Equal(t, 0.5, packet.DeltaTime)
	assert.Equal(t, uint64(3), packet.Frame)
	require.Len(t, packet.Items, 3)

	assert.Equal(t, "player", packet.Items[0].Name)
	assert.Equal(t, DrawKindQuad, packet.Items[0].Kind)
	assert.Equal(t, math.NewVec2(70, 100), packet.Items[1].Transform.Position, "children are drawn in world space")
	assert.Equal(t, math.ColourCyan, packet.Items[1].Colour)
	assert.Equal(t, DrawKindSegment, packet.Items[2].Kind)
	// The length lives in the scale only, the sprite stays a unit quad.
	assert.Equal(t, math.NewVec2One(), packet.Items[2].Size)
	assert.Equal(t, math.NewVec2(12, 1), packet.Items[2].Transform.Scale)
}

func TestDrawFrameHeadless(t *testing.T) {
	backend := NewHeadlessBackend()
	rend := New(backend)
	require.NoError(t, rend.Initialize("test", 1200, 1000))

	packet := &RenderPacket{Items: []DrawItem{{Name: "a"}, {Name: "b", Kind: DrawKindMarker}}}
	require.NoError(t, rend.DrawFrame(packet))
	require.NoError(t, rend.DrawFrame(&RenderPacket{Items: []DrawItem{{Name: "c"}}}))

	assert.Equal(t, uint64(2), backend.Frames())
	require.Len(t, backend.LastFrame(), 1)
	assert.Equal(t, "c", backend.LastFrame()[0].Name)

	require.NoError(t, rend.OnResize(640, 480))
	w, h := backend.Size()
	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)

	assert.Error(t, backend.EndFrame(0))
	assert.Error(t, backend.DrawItem(&DrawItem{}))
	require.NoError(t, rend.Shutdown())
	assert.Empty(t, backend.LastFrame())
}
