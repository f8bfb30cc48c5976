package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A huge number that should be larger than any valid number used. */
	K_INFINITY float32 = 1e30
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func katan2(y, x float32) float32 {
	return float32(m.Atan2(float64(y), float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	return !m.IsNaN(float64(x)) && !m.IsInf(float64(x), 0)
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

/**
 * @brief Creates a unit vector pointing at the given angle, measured
 * counter-clockwise from the positive x axis.
 *
 * @param radians The angle in radians.
 * @return A unit vector (cos, sin).
 */
func NewVec2FromAngle(radians float32) Vec2 {
	return Vec2{kcos(radians), ksin(radians)}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

/**
 * Divides v by other and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// Negate flips the sign of both components.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * @brief Returns the z component of the 3D cross product of v and other,
 * i.e. the signed area of the parallelogram they span.
 */
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * Normalizes the provided vector to a unit vector. A zero length vector
 * produces NaN components; use NormalizeOrZero when that can happen.
 */
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	return Vec2{v.X / length, v.Y / length}
}

/**
 * @brief Returns a normalized copy of the supplied vector, or the zero
 * vector when the length is zero or not finite.
 */
func (v Vec2) NormalizeOrZero() Vec2 {
	length := v.Length()
	if length == 0 || !IsFinite(length) {
		return NewVec2Zero()
	}
	return v.Normalize()
}

/**
 * @brief Returns the angle of the vector measured counter-clockwise from the
 * positive x axis, in (-PI, PI]. The zero vector has angle 0.
 */
func (v Vec2) Angle() float32 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return katan2(v.Y, v.X)
}

/**
 * @brief Rotates the vector counter-clockwise by the given angle.
 */
func (v Vec2) Rotate(radians float32) Vec2 {
	c := kcos(radians)
	s := ksin(radians)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

/**
 * @brief Compares all elements of vector_0 and vector_1 and ensures the difference
 * is less than tolerance.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between vector_0 and vector_1.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @return The distance between vector_0 and vector_1.
 */
func (v Vec2) Distance(other Vec2) float32 {
	d := Vec2{
		v.X - other.X,
		v.Y - other.Y}
	return d.Length()
}

// ------------------------------------------
// Angles
// ------------------------------------------

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Wraps an angle into (-PI, PI]. Non finite input collapses to 0 so
 * that a transform rotation always stays representable.
 *
 * @param radians The angle to wrap.
 * @return The equivalent angle in (-PI, PI].
 */
func WrapAngle(radians float32) float32 {
	if !IsFinite(radians) {
		return 0
	}
	if kabs(radians) > 2*K_PI_2 {
		radians = float32(m.Mod(float64(radians), float64(K_PI_2)))
	}
	for radians > K_PI {
		radians -= K_PI_2
	}
	for radians <= -K_PI {
		radians += K_PI_2
	}
	return radians
}

// AngleDelta returns the shortest signed rotation that takes from to to.
func AngleDelta(from, to float32) float32 {
	return WrapAngle(to - from)
}
