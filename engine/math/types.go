package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

/**
 * @brief An RGBA colour with components in the range [0, 1].
 */
type Colour struct {
	R, G, B, A float32
}

/**
 * @brief Represents the extents of a 2d object.
 */
type Extents2D struct {
	/** @brief The minimum extents of the object. */
	Min Vec2
	/** @brief The maximum extents of the object. */
	Max Vec2
}

/**
 * @brief A half-line starting at Origin and travelling along Direction.
 * Direction is not required to be unit length.
 */
type Ray2D struct {
	Origin    Vec2
	Direction Vec2
}

/**
 * @brief Represents the transform of an object in the plane.
 * The position is relative to the parent when the owning entity has one,
 * otherwise it is in world space. Rotation is a single angle in radians
 * around the out-of-plane axis and is kept wrapped to (-PI, PI].
 */
type Transform2D struct {
	/** @brief The position, local or world depending on the owner. */
	Position Vec2
	/** @brief The rotation in radians. */
	Rotation float32
	/** @brief The scale. Components are expected to be non-negative. */
	Scale Vec2
}
