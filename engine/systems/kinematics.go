package systems

import (
	"fmt"

	"github.com/spaghettifunk/anima-drills/engine/core"
	"github.com/spaghettifunk/anima-drills/engine/math"
	"github.com/spaghettifunk/anima-drills/engine/scene"
)

// KinematicsSystem moves the single player entity according to an Intent.
type KinematicsSystem struct {
	registry *scene.Registry
}

func NewKinematicsSystem(registry *scene.Registry) (*KinematicsSystem, error) {
	if registry == nil {
		err := fmt.Errorf("func NewKinematicsSystem - registry must not be nil")
		core.LogError(err.Error())
		return nil, err
	}
	return &KinematicsSystem{registry: registry}, nil
}

/**
 * @brief Integrates the player transform over deltaTime seconds.
 *
 * @param intent The sampled input of this frame.
 * @param deltaTime Seconds since the previous frame; must be finite and >= 0.
 * @return An error wrapping ErrCardinality when there is not exactly one
 * player, or ErrInvalidDelta for a bad delta.
 */
func (ks *KinematicsSystem) Update(intent Intent, deltaTime float64) error {
	dt := float32(deltaTime)
	if deltaTime < 0 || !math.IsFinite(dt) {
		return fmt.Errorf("kinematics update with dt %v: %w", deltaTime, core.ErrInvalidDelta)
	}
	player, err := ks.registry.Single(scene.TagPlayer)
	if err != nil {
		return fmt.Errorf("kinematics update: %w", err)
	}
	if player.Kinematics == nil {
		core.LogWarn("player %q has no kinematics, it will not move", player.Name)
		return nil
	}
	Integrate(&player.Transform, *player.Kinematics, intent, dt)
	return nil
}

// Integrate applies one explicit Euler step to t.
func Integrate(t *math.Transform2D, k scene.Kinematics, intent Intent, dt float32) {
	t.Translate(intent.Axis.MulScalar(k.Speed * dt))
	t.Rotate(intent.Rotation * k.AngularSpeed * dt)
}
