package impact

import (
	"math"
	"testing"
)

func TestCircleToCircle(t *testing.T) {
	a := NewCircle(30)
	b := NewCircle(30)

	info := Collide(a, Vector{0, 0}, b, Vector{50, 0})
	if !info.Colliding {
		t.Fatal("Expected collision")
	}
	if !info.Normal.Equal(Vector{1, 0}) {
		t.Errorf("Expected normal 1,0 got %v", info.Normal)
	}
	if math.Abs(info.Penetration-10) > 1e-12 {
		t.Errorf("Expected penetration 10 got %v", info.Penetration)
	}

	info = Collide(a, Vector{0, 0}, b, Vector{70, 0})
	if info.Colliding {
		t.Error("Expected no collision at separation")
	}

	// Exact touch is not a collision.
	info = Collide(a, Vector{0, 0}, b, Vector{60, 0})
	if info.Colliding {
		t.Error("Expected no collision at exact touch")
	}
}

func TestCircleToCircleCoincident(t *testing.T) {
	a := NewCircle(10)
	b := NewCircle(10)

	info := Collide(a, Vector{5, 5}, b, Vector{5, 5})
	if !info.Colliding {
		t.Fatal("Expected collision")
	}
	if !info.Normal.Equal(Vector{1, 0}) {
		t.Errorf("Expected fallback normal 1,0 got %v", info.Normal)
	}
	if info.Penetration != 20 {
		t.Errorf("Expected penetration 20 got %v", info.Penetration)
	}
}

func TestPolygonToPolygonSeparated(t *testing.T) {
	a := NewBox(1, 1)
	b := NewBox(1, 1)

	info := Collide(a, Vector{0, 0}, b, Vector{3, 0})
	if info.Colliding {
		t.Error("Separated squares must not collide")
	}

	// Diagonal separation still has a separating edge normal.
	info = Collide(a, Vector{0, 0}, b, Vector{1.5, 1.5})
	if info.Colliding {
		t.Error("Diagonally separated squares must not collide")
	}
}

func TestPolygonToPolygonOverlap(t *testing.T) {
	a := NewBox(2, 2)
	b := NewBox(2, 2)

	// Offset 1.5 along x: overlap is 0.5 on the x axis, 2 on the y axis,
	// so the least-overlap axis must win.
	info := Collide(a, Vector{0, 0}, b, Vector{1.5, 0})
	if !info.Colliding {
		t.Fatal("Expected collision")
	}
	if math.Abs(info.Penetration-0.5) > 1e-12 {
		t.Errorf("Expected penetration 0.5 got %v", info.Penetration)
	}
	if math.Abs(info.Normal.X-1) > 1e-12 || math.Abs(info.Normal.Y) > 1e-12 {
		t.Errorf("Expected normal 1,0 got %v", info.Normal)
	}
}

func TestNormalConventionSwap(t *testing.T) {
	cases := []struct {
		name string
		a, b Shape
		posA Vector
		posB Vector
	}{
		{"circle/circle", NewCircle(10), NewCircle(10), Vector{0, 0}, Vector{15, 5}},
		{"poly/poly", NewBox(4, 4), NewBox(4, 4), Vector{0, 0}, Vector{3, 1}},
		{"circle/poly", NewCircle(5), NewBox(6, 6), Vector{0, 0}, Vector{7, 0}},
	}

	for _, c := range cases {
		ab := Collide(c.a, c.posA, c.b, c.posB)
		ba := Collide(c.b, c.posB, c.a, c.posA)

		if !ab.Colliding || !ba.Colliding {
			t.Fatalf("%s: expected collision both ways", c.name)
		}
		if math.Abs(ab.Penetration-ba.Penetration) > 1e-12 {
			t.Errorf("%s: penetration mismatch %v vs %v", c.name, ab.Penetration, ba.Penetration)
		}
		sum := ab.Normal.Add(ba.Normal)
		if sum.Length() > 1e-12 {
			t.Errorf("%s: normals not antiparallel: %v and %v", c.name, ab.Normal, ba.Normal)
		}
	}
}

func TestCircleToPolygonCenterOnEdge(t *testing.T) {
	// Circle center sitting exactly on the polygon's right edge.
	circle := NewCircle(1)
	poly := NewBox(4, 4)

	info := Collide(circle, Vector{2, 0}, poly, Vector{0, 0})
	if !info.Colliding {
		t.Fatal("Expected collision")
	}
	if math.Abs(info.Penetration-1) > 1e-12 {
		t.Errorf("Expected penetration 1 got %v", info.Penetration)
	}
	// Normal points from the circle toward the polygon center.
	if math.Abs(info.Normal.X+1) > 1e-12 || math.Abs(info.Normal.Y) > 1e-12 {
		t.Errorf("Expected normal -1,0 got %v", info.Normal)
	}
}

func TestDegenerateEdgeSkipped(t *testing.T) {
	// A repeated vertex produces a zero-length edge, which must be
	// skipped, not treated as a separating axis and not divided by.
	verts := []Vector{{1, -1}, {1, 1}, {1, 1}, {-1, 1}, {-1, -1}}
	poly := NewPolygon(verts)

	info := Collide(poly, Vector{0, 0}, NewBox(2, 2), Vector{1.5, 0})
	if !info.Colliding {
		t.Fatal("Expected collision")
	}
	if math.IsNaN(info.Penetration) || math.IsNaN(info.Normal.X) || math.IsNaN(info.Normal.Y) {
		t.Error("Degenerate edge leaked NaN into the manifold")
	}

	info = Collide(NewCircle(1), Vector{4, 0}, poly, Vector{0, 0})
	if info.Colliding {
		t.Error("Expected no collision at separation")
	}
}

func TestManifoldOrientation(t *testing.T) {
	// The normal must satisfy dot(normal, posB-posA) >= 0 for every
	// dispatch case.
	pairs := []struct {
		a, b Shape
	}{
		{NewCircle(3), NewCircle(3)},
		{NewBox(5, 5), NewBox(5, 5)},
		{NewCircle(3), NewBox(5, 5)},
		{NewBox(5, 5), NewCircle(3)},
	}

	posA := Vector{0, 0}
	posB := Vector{3, 2}
	for i, p := range pairs {
		info := Collide(p.a, posA, p.b, posB)
		if !info.Colliding {
			t.Fatalf("case %d: expected collision", i)
		}
		if info.Normal.Dot(posB.Sub(posA)) < 0 {
			t.Errorf("case %d: normal %v points from B to A", i, info.Normal)
		}
		if math.Abs(info.Normal.Length()-1) > 1e-12 {
			t.Errorf("case %d: normal %v not unit length", i, info.Normal)
		}
	}
}
