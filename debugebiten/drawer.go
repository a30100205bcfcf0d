// Package debugebiten renders impact debug output onto an ebiten image.
package debugebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/hollowgrid/impact"
)

type Drawer struct {
	screen *ebiten.Image
}

func NewDrawer(screen *ebiten.Image) *Drawer {
	return &Drawer{screen: screen}
}

func (d *Drawer) DrawCircle(pos impact.Vector, angle, radius float64, outline, fill impact.FColor) {
	if d.screen == nil {
		return
	}
	c := fcolorToRGBA(outline)
	steps := 20
	prev := impact.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := impact.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		ebitenutil.DrawLine(d.screen, prev.X, prev.Y, cur.X, cur.Y, c)
		prev = cur
	}
	// angle indicator
	ax := pos.X + math.Cos(angle)*radius
	ay := pos.Y + math.Sin(angle)*radius
	ebitenutil.DrawLine(d.screen, pos.X, pos.Y, ax, ay, c)
}

func (d *Drawer) DrawSegment(a, b impact.Vector, fill impact.FColor) {
	if d.screen == nil {
		return
	}
	ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, fcolorToRGBA(fill))
}

func (d *Drawer) DrawPolygon(verts []impact.Vector, outline, fill impact.FColor) {
	if d.screen == nil || len(verts) == 0 {
		return
	}
	c := fcolorToRGBA(outline)
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, c)
	}
}

func (d *Drawer) DrawDot(size float64, pos impact.Vector, fill impact.FColor) {
	if d.screen == nil {
		return
	}
	c := fcolorToRGBA(fill)
	l := size / 2
	ebitenutil.DrawLine(d.screen, pos.X-l, pos.Y, pos.X+l, pos.Y, c)
	ebitenutil.DrawLine(d.screen, pos.X, pos.Y-l, pos.X, pos.Y+l, c)
}

func (d *Drawer) OutlineColor() impact.FColor {
	return impact.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

func (d *Drawer) ShapeColor(body *impact.Body) impact.FColor {
	if body == nil {
		return impact.FColor{R: 1, G: 1, B: 1, A: 1}
	}
	if body.IsStatic() {
		return impact.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
	}
	if body.IsSleeping() {
		return impact.FColor{R: 0.5, G: 0.5, B: 0.5, A: 1.0}
	}
	// Bodies can carry their own color as UserData.
	if c, ok := body.UserData.(impact.FColor); ok {
		return c
	}
	return impact.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1.0}
}

func (d *Drawer) VelocityColor() impact.FColor {
	return impact.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func fcolorToRGBA(c impact.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
