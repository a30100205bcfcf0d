package impact

// FColor is a float color for debug drawing.
// 16 bytes
type FColor struct {
	R, G, B, A float32
}

// Drawer is the rendering collaborator for debug visualization. The core
// never depends on a concrete renderer; implementations draw onto whatever
// surface they wrap. Drawing has no effect on simulation state.
type Drawer interface {
	DrawCircle(pos Vector, angle, radius float64, outline, fill FColor)
	DrawSegment(a, b Vector, fill FColor)
	DrawPolygon(verts []Vector, outline, fill FColor)
	DrawDot(size float64, pos Vector, fill FColor)

	OutlineColor() FColor
	ShapeColor(body *Body) FColor
	VelocityColor() FColor
}

// DrawBody draws the body's shape outline, its velocity vector and a
// center marker.
func DrawBody(body *Body, options Drawer) {
	outline := options.OutlineColor()
	fill := options.ShapeColor(body)

	switch shape := body.Shape().(type) {
	case *Circle:
		options.DrawCircle(body.Position, body.Angle, shape.Radius(), outline, fill)
	case *Polygon:
		options.DrawPolygon(shape.WorldVerts(nil, body.Position), outline, fill)
	default:
		panic("Unknown shape type")
	}

	if !body.Velocity.Equal(Vector{}) {
		options.DrawSegment(body.Position, body.Position.Add(body.Velocity), options.VelocityColor())
	}
	options.DrawDot(4, body.Position, fill)
}

// DrawWorld draws every active body.
func DrawWorld(world *World, options Drawer) {
	world.EachBody(func(body *Body) {
		if body.IsActive {
			DrawBody(body, options)
		}
	})
}

// DebugDraw renders the world through the drawer, purely for
// visualization. Do not add or remove bodies from inside a Drawer other
// than through RemoveBody, which is safe mid-step.
func (world *World) DebugDraw(options Drawer) {
	DrawWorld(world, options)
}
