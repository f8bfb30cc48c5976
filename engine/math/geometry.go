package math

/**
 * @brief Generates the vertices of a regular polygon centred on the origin.
 * Vertex i (1..count) sits at angle i * 2PI / count, so the last vertex lies
 * on the positive x axis.
 *
 * @param count The number of vertices. Fewer than 3 yields nil.
 * @param radius The distance of every vertex from the centre.
 * @return The vertices in counter-clockwise order.
 */
func RegularPolygon(count int, radius float32) []Vec2 {
	if count < 3 {
		return nil
	}
	step := K_PI_2 / float32(count)
	vertices := make([]Vec2, 0, count)
	for i := 1; i <= count; i++ {
		vertices = append(vertices, NewVec2FromAngle(float32(i)*step).MulScalar(radius))
	}
	return vertices
}

// NewExtents2DFromCenter builds an axis aligned box from its centre and half size.
func NewExtents2DFromCenter(center, halfExtents Vec2) Extents2D {
	return Extents2D{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

func (e Extents2D) Center() Vec2 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}

func (e Extents2D) Contains(p Vec2) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X && p.Y >= e.Min.Y && p.Y <= e.Max.Y
}

// PointAt returns the point at parameter t along the ray.
func (r Ray2D) PointAt(t float32) Vec2 {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

/**
 * @brief Intersects a ray with an axis aligned box using the slab method.
 *
 * @param ray The ray. A zero direction never hits.
 * @param maxToi The largest accepted time of impact, in units of the ray direction.
 * @param solid When true a ray starting inside the box hits at t = 0 with a zero
 *        normal. When false it hits the boundary on its way out.
 * @return The time of impact, the outward surface normal at the hit, and whether
 *         there was a hit within [0, maxToi].
 */
func (e Extents2D) IntersectRay(ray Ray2D, maxToi float32, solid bool) (float32, Vec2, bool) {
	if ray.Direction.LengthSquared() == 0 {
		return 0, NewVec2Zero(), false
	}

	tEnter, tExit := -K_INFINITY, K_INFINITY
	var enterNormal, exitNormal Vec2

	axes := [2]struct {
		origin, dir, min, max float32
		negative, positive    Vec2
	}{
		{ray.Origin.X, ray.Direction.X, e.Min.X, e.Max.X, NewVec2Left(), NewVec2Right()},
		{ray.Origin.Y, ray.Direction.Y, e.Min.Y, e.Max.Y, NewVec2Down(), NewVec2Up()},
	}

	for _, a := range axes {
		if a.dir == 0 {
			// Parallel to this slab: miss unless already between the planes.
			if a.origin < a.min || a.origin > a.max {
				return 0, NewVec2Zero(), false
			}
			continue
		}
		t1 := (a.min - a.origin) / a.dir
		t2 := (a.max - a.origin) / a.dir
		n1, n2 := a.negative, a.positive
		if t1 > t2 {
			t1, t2 = t2, t1
			n1, n2 = n2, n1
		}
		if t1 > tEnter {
			tEnter = t1
			enterNormal = n1
		}
		if t2 < tExit {
			tExit = t2
			exitNormal = n2
		}
		if tEnter > tExit {
			return 0, NewVec2Zero(), false
		}
	}

	if tExit < 0 {
		return 0, NewVec2Zero(), false
	}

	if tEnter >= 0 {
		if tEnter > maxToi {
			return 0, NewVec2Zero(), false
		}
		return tEnter, enterNormal, true
	}

	// The origin is inside the box.
	if solid {
		return 0, NewVec2Zero(), true
	}
	if tExit > maxToi {
		return 0, NewVec2Zero(), false
	}
	return tExit, exitNormal, true
}
