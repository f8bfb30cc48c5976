package math

func TransformCreate() *Transform2D {
	t := &Transform2D{}
	t.SetPositionRotationScale(NewVec2Zero(), 0, NewVec2One())
	return t
}

func TransformFromPosition(position Vec2) *Transform2D {
	t := &Transform2D{}
	t.SetPositionRotationScale(position, 0, NewVec2One())
	return t
}

func TransformFromRotation(rotation float32) *Transform2D {
	t := &Transform2D{}
	t.SetPositionRotationScale(NewVec2Zero(), rotation, NewVec2One())
	return t
}

func TransformFromPositionRotation(position Vec2, rotation float32) *Transform2D {
	t := &Transform2D{}
	t.SetPositionRotationScale(position, rotation, NewVec2One())
	return t
}

func TransformFromPositionRotationScale(position Vec2, rotation float32, scale Vec2) *Transform2D {
	t := &Transform2D{}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform2D) SetPosition(position Vec2) {
	t.Position = position
}

func (t *Transform2D) Translate(translation Vec2) {
	t.Position = t.Position.Add(translation)
}

func (t *Transform2D) SetRotation(rotation float32) {
	t.Rotation = WrapAngle(rotation)
}

// Rotate composes an extra rotation around the out-of-plane axis.
func (t *Transform2D) Rotate(radians float32) {
	t.Rotation = WrapAngle(t.Rotation + radians)
}

func (t *Transform2D) SetScale(scale Vec2) {
	t.Scale = clampScale(scale)
}

func (t *Transform2D) SetPositionRotation(position Vec2, rotation float32) {
	t.Position = position
	t.Rotation = WrapAngle(rotation)
}

func (t *Transform2D) SetPositionRotationScale(position Vec2, rotation float32, scale Vec2) {
	t.Position = position
	t.Rotation = WrapAngle(rotation)
	t.Scale = clampScale(scale)
}

/**
 * @brief The local x basis vector, i.e. the direction the transform's
 * positive x axis points to in the parent space: (cos r, sin r).
 */
func (t Transform2D) LocalX() Vec2 {
	return Vec2{kcos(t.Rotation), ksin(t.Rotation)}
}

/**
 * @brief The local y basis vector: (-sin r, cos r).
 */
func (t Transform2D) LocalY() Vec2 {
	return Vec2{-ksin(t.Rotation), kcos(t.Rotation)}
}

/**
 * @brief Converts a point expressed in this transform's local frame into
 * the frame this transform lives in. Each local coordinate is scaled by the
 * matching scale component and laid along the corresponding basis vector.
 *
 * @param local The point in local space.
 * @return The point in parent (world) space.
 */
func (t Transform2D) TransformPoint(local Vec2) Vec2 {
	scaled := local.Mul(t.Scale)
	offset := t.LocalX().MulScalar(scaled.X).Add(t.LocalY().MulScalar(scaled.Y))
	return t.Position.Add(offset)
}

/**
 * @brief The inverse of TransformPoint. A zero scale component collapses
 * that axis to 0 instead of dividing by zero.
 */
func (t Transform2D) InverseTransformPoint(world Vec2) Vec2 {
	d := world.Sub(t.Position)
	local := Vec2{d.Dot(t.LocalX()), d.Dot(t.LocalY())}
	if t.Scale.X != 0 {
		local.X /= t.Scale.X
	} else {
		local.X = 0
	}
	if t.Scale.Y != 0 {
		local.Y /= t.Scale.Y
	} else {
		local.Y = 0
	}
	return local
}

// Compose returns child expressed in the space this transform lives in.
func (t Transform2D) Compose(child Transform2D) Transform2D {
	return Transform2D{
		Position: t.TransformPoint(child.Position),
		Rotation: WrapAngle(t.Rotation + child.Rotation),
		Scale:    t.Scale.Mul(child.Scale),
	}
}

func clampScale(scale Vec2) Vec2 {
	return Vec2{Clamp(scale.X, 0, K_INFINITY), Clamp(scale.Y, 0, K_INFINITY)}
}
