package impact

import "math"

// Manifold is the result of a narrow-phase test between two shapes. It is
// produced fresh for every candidate pair every step and never retained.
type Manifold struct {
	Colliding bool
	// Normal is the unit contact normal, pointing from shape A toward
	// shape B.
	Normal Vector
	// Penetration is the overlap depth along Normal, >= 0.
	Penetration float64
}

// Collide computes the collision manifold between shape a centered at posA
// and shape b centered at posB. The dispatch is exhaustive over the closed
// shape set.
func Collide(a Shape, posA Vector, b Shape, posB Vector) Manifold {
	switch sa := a.(type) {
	case *Circle:
		switch sb := b.(type) {
		case *Circle:
			return CircleToCircle(sa, posA, sb, posB)
		case *Polygon:
			return CircleToPolygon(sa, posA, sb, posB)
		}
	case *Polygon:
		switch sb := b.(type) {
		case *Circle:
			// Mirror case: run circle-vs-polygon with the arguments
			// swapped and negate the normal so it still points A to B.
			info := CircleToPolygon(sb, posB, sa, posA)
			info.Normal = info.Normal.Neg()
			return info
		case *Polygon:
			return PolygonToPolygon(sa, posA, sb, posB)
		}
	}
	panic("Unknown shape type")
}

func CircleToCircle(a *Circle, posA Vector, b *Circle, posB Vector) Manifold {
	delta := posB.Sub(posA)
	dist := delta.Length()
	rsum := a.r + b.r

	if dist >= rsum {
		return Manifold{}
	}

	// Coincident centers leave no direction to push along, pick one.
	normal := Vector{1, 0}
	if dist > 0 {
		normal = delta.Mult(1 / dist)
	}

	return Manifold{
		Colliding:   true,
		Normal:      normal,
		Penetration: rsum - dist,
	}
}

// PolygonToPolygon runs the separating axis test over the edge normals of
// both polygons. Any axis without overlap proves separation; otherwise the
// axis of least overlap provides the contact normal and penetration.
func PolygonToPolygon(a *Polygon, posA Vector, b *Polygon, posB Vector) Manifold {
	vertsA := a.WorldVerts(nil, posA)
	vertsB := b.WorldVerts(nil, posB)

	best := math.Inf(1)
	var bestAxis Vector

	for _, verts := range [][]Vector{vertsA, vertsB} {
		for i := range verts {
			axis, ok := edgeAxis(verts, i)
			if !ok {
				continue
			}

			minA, maxA := projectVerts(vertsA, axis)
			minB, maxB := projectVerts(vertsB, axis)

			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap <= 0 {
				return Manifold{}
			}
			if overlap < best {
				best = overlap
				bestAxis = axis
			}
		}
	}

	if math.IsInf(best, 1) {
		// Every edge was degenerate, nothing meaningful to report.
		return Manifold{}
	}

	return Manifold{
		Colliding:   true,
		Normal:      orient(bestAxis, posA, posB),
		Penetration: best,
	}
}

// CircleToPolygon tests the polygon's edge normals plus the axis from the
// polygon vertex closest to the circle center toward the center. The same
// least-overlap rule selects the manifold axis. The returned normal points
// from the circle toward the polygon.
func CircleToPolygon(circle *Circle, posC Vector, poly *Polygon, posP Vector) Manifold {
	verts := poly.WorldVerts(nil, posP)

	best := math.Inf(1)
	var bestAxis Vector

	testAxis := func(axis Vector) bool {
		minP, maxP := projectVerts(verts, axis)
		c := posC.Dot(axis)
		minC, maxC := c-circle.r, c+circle.r

		overlap := math.Min(maxP, maxC) - math.Max(minP, minC)
		if overlap <= 0 {
			return false
		}
		if overlap < best {
			best = overlap
			bestAxis = axis
		}
		return true
	}

	for i := range verts {
		axis, ok := edgeAxis(verts, i)
		if !ok {
			continue
		}
		if !testAxis(axis) {
			return Manifold{}
		}
	}

	// Axis toward the circle center from the nearest vertex catches the
	// corner case edge normals alone miss.
	closest := verts[0]
	for _, v := range verts[1:] {
		if posC.DistanceSq(v) < posC.DistanceSq(closest) {
			closest = v
		}
	}
	delta := posC.Sub(closest)
	if length := delta.Length(); length > 0 {
		if !testAxis(delta.Mult(1 / length)) {
			return Manifold{}
		}
	}

	if math.IsInf(best, 1) {
		return Manifold{}
	}

	return Manifold{
		Colliding:   true,
		Normal:      orient(bestAxis, posC, posP),
		Penetration: best,
	}
}

// edgeAxis returns the unit perpendicular of the polygon edge starting at
// vertex i, or ok=false for a zero-length edge.
func edgeAxis(verts []Vector, i int) (Vector, bool) {
	edge := verts[(i+1)%len(verts)].Sub(verts[i])
	length := edge.Length()
	if length == 0 {
		return Vector{}, false
	}
	return edge.Perp().Mult(1 / length), true
}

func projectVerts(verts []Vector, axis Vector) (min, max float64) {
	min = verts[0].Dot(axis)
	max = min
	for _, v := range verts[1:] {
		d := v.Dot(axis)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

// orient flips axis if needed so it points from posA toward posB.
func orient(axis, posA, posB Vector) Vector {
	if axis.Dot(posB.Sub(posA)) < 0 {
		return axis.Neg()
	}
	return axis
}
