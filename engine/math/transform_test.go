package math

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformCreateDefaults(t *testing.T) {
	tr := TransformCreate()
	assert.Equal(t, NewVec2Zero(), tr.Position)
	assert.Equal(t, float32(0), tr.Rotation)
	assert.Equal(t, NewVec2One(), tr.Scale)
}

func TestTransformRotateWraps(t *testing.T) {
	tr := TransformFromRotation(K_PI - 0.1)
	tr.Rotate(0.2)
	assert.InDelta(t, -K_PI+0.1, tr.Rotation, 1e-5)
}

func TestTransformNegativeScaleClamped(t *testing.T) {
	tr := TransformFromPositionRotationScale(NewVec2Zero(), 0, NewVec2(-2, 3))
	assert.Equal(t, NewVec2(0, 3), tr.Scale)
}

func TestTransformBasis(t *testing.T) {
	tr := TransformFromRotation(K_HALF_PI)
	assert.True(t, tr.LocalX().Compare(NewVec2Up(), 1e-6))
	assert.True(t, tr.LocalY().Compare(NewVec2Left(), 1e-6))
}

func TestTransformPointIdentityRotation(t *testing.T) {
	parent := TransformFromPosition(NewVec2(120, 0))
	world := parent.TransformPoint(NewVec2(-50, 100))
	assert.Equal(t, NewVec2(70, 100), world)
}

func TestTransformPointRotated(t *testing.T) {
	parent := TransformFromPositionRotation(NewVec2(10, 5), K_HALF_PI)
	world := parent.TransformPoint(NewVec2(2, 0))
	assert.True(t, world.Compare(NewVec2(10, 7), 1e-5), "got %v", world)

	scaled := TransformFromPositionRotationScale(NewVec2Zero(), 0, NewVec2(2, 3))
	assert.Equal(t, NewVec2(2, 3), scaled.TransformPoint(NewVec2One()))
}

func TestInverseTransformPointRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		parent := TransformFromPositionRotationScale(
			NewVec2(rng.Float32()*400-200, rng.Float32()*400-200),
			rng.Float32()*K_PI_2-K_PI,
			NewVec2(rng.Float32()*2+0.5, rng.Float32()*2+0.5),
		)
		local := NewVec2(rng.Float32()*200-100, rng.Float32()*200-100)
		back := parent.InverseTransformPoint(parent.TransformPoint(local))
		require.True(t, back.Compare(local, 1e-3), "iteration %d: %v != %v", i, back, local)
	}
}

func TestInverseTransformPointZeroScale(t *testing.T) {
	parent := TransformFromPositionRotationScale(NewVec2Zero(), 0, NewVec2(0, 1))
	assert.Equal(t, NewVec2(0, 4), parent.InverseTransformPoint(NewVec2(3, 4)))
}

func TestCompose(t *testing.T) {
	parent := TransformFromPositionRotation(NewVec2(1, 1), K_HALF_PI)
	child := TransformFromPositionRotation(NewVec2(1, 0), K_HALF_PI)
	c := parent.Compose(*child)
	assert.True(t, c.Position.Compare(NewVec2(1, 2), 1e-5), "got %v", c.Position)
	assert.InDelta(t, K_PI, c.Rotation, 1e-5)
}
