package platform

import (
	"testing"

	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPumpReplaysScript(t *testing.T) {
	input := core.NewInputState()
	p, err := New(input, []KeyFrame{
		{Frames: 2, Keys: []core.KeyCode{core.KEY_W, core.KEY_D}},
		{Frames: 0, Keys: []core.KeyCode{core.KEY_J}},
		{Frames: 1, Keys: []core.KeyCode{core.KEY_D}},
	})
	require.NoError(t, err)

	assert.False(t, p.PumpMessages(), "not started")
	require.NoError(t, p.Startup("test", 1200, 1000))

	for i := 0; i < 2; i++ {
		require.True(t, p.PumpMessages())
		assert.True(t, input.IsKeyDown(core.KEY_W))
		assert.True(t, input.IsKeyDown(core.KEY_D))
	}
	assert.False(t, p.Done())

	require.True(t, p.PumpMessages())
	assert.False(t, input.IsKeyDown(core.KEY_W))
	assert.True(t, input.IsKeyDown(core.KEY_D))
	assert.False(t, input.IsKeyDown(core.KEY_J), "empty steps are skipped")
	assert.True(t, p.Done())

	require.True(t, p.PumpMessages())
	assert.False(t, input.IsKeyDown(core.KEY_D), "keys are released once the script is over")

	w, h := p.Size()
	assert.Equal(t, uint32(1200), w)
	assert.Equal(t, uint32(1000), h)
	require.NoError(t, p.Shutdown())
}

func TestNewRequiresInput(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestGetAbsoluteTime(t *testing.T) {
	a := GetAbsoluteTime()
	b := GetAbsoluteTime()
	assert.GreaterOrEqual(t, b, a)
}
