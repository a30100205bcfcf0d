package impact

import "math"

// Shape is the geometry attached to a body: either a Circle or a Polygon.
// The set is closed so manifold dispatch in Collide can be exhaustive.
// Rectangles are polygons, see NewBox.
type Shape interface {
	// BB returns the tight world-space bounding box of the shape centered
	// at pos. It is only used for broad-phase cell insertion.
	BB(pos Vector) BB

	shape() // sealed
}

type Circle struct {
	r float64
}

func NewCircle(radius float64) *Circle {
	assert(radius > 0, "Circle radius must be positive")
	return &Circle{r: radius}
}

func (circle *Circle) Radius() float64 {
	return circle.r
}

func (circle *Circle) BB(pos Vector) BB {
	return NewBBForCircle(pos, circle.r)
}

func (*Circle) shape() {}

// Polygon is a convex polygon given as vertex offsets from the body
// center, in consistent winding order.
type Polygon struct {
	verts []Vector
}

func NewPolygon(verts []Vector) *Polygon {
	assert(len(verts) >= 3, "Polygon needs at least 3 vertices")
	owned := make([]Vector, len(verts))
	copy(owned, verts)
	return &Polygon{verts: owned}
}

// NewBox returns an axis-aligned w by h rectangle centered on the body.
func NewBox(w, h float64) *Polygon {
	assert(w > 0 && h > 0, "Box dimensions must be positive")
	hw := w / 2.0
	hh := h / 2.0
	return NewPolygon([]Vector{
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
		{-hw, -hh},
	})
}

// Verts returns the untranslated vertex offsets.
func (poly *Polygon) Verts() []Vector {
	return poly.verts
}

// WorldVerts appends the vertices translated to pos into dst.
func (poly *Polygon) WorldVerts(dst []Vector, pos Vector) []Vector {
	for _, v := range poly.verts {
		dst = append(dst, v.Add(pos))
	}
	return dst
}

func (poly *Polygon) BB(pos Vector) BB {
	l := math.Inf(1)
	r := math.Inf(-1)
	b := math.Inf(1)
	t := math.Inf(-1)

	for _, vert := range poly.verts {
		v := vert.Add(pos)
		l = math.Min(l, v.X)
		r = math.Max(r, v.X)
		b = math.Min(b, v.Y)
		t = math.Max(t, v.Y)
	}

	return BB{l, b, r, t}
}

func (*Polygon) shape() {}
