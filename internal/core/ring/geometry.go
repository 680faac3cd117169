package ring

import (
	"image/color"
	"math"
)

// StartAngle is the angle, in degrees, at which the progress arc begins (top of the circle).
const StartAngle float32 = -90

// Point is a position on the drawing surface.
type Point struct {
	X float32
	Y float32
}

// Rect is an axis aligned rectangle.
type Rect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// Center returns the middle of the rectangle.
func (rect Rect) Center() Point {
	return Point{X: (rect.Left + rect.Right) / 2, Y: (rect.Top + rect.Bottom) / 2}
}

// Width returns the horizontal extent.
func (rect Rect) Width() float32 {
	return rect.Right - rect.Left
}

// Height returns the vertical extent.
func (rect Rect) Height() float32 {
	return rect.Bottom - rect.Top
}

// Circle is a stroked, unfilled full circle.
type Circle struct {
	Center      Point
	Radius      float32
	StrokeWidth float32
	Color       color.NRGBA
}

// Arc is a stroked open arc inscribed in Bounds. Angles are in degrees,
// measured clockwise in screen coordinates.
type Arc struct {
	Bounds      Rect
	StartAngle  float32
	SweepAngle  float32
	StrokeWidth float32
	Color       color.NRGBA
}

// Points flattens the arc into segments+1 points along its centre line.
func (arc Arc) Points(segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	center := arc.Bounds.Center()
	radiusX := float64(arc.Bounds.Width()) / 2
	radiusY := float64(arc.Bounds.Height()) / 2
	start := float64(arc.StartAngle) * math.Pi / 180
	sweep := float64(arc.SweepAngle) * math.Pi / 180

	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := start + sweep*float64(i)/float64(segments)
		points = append(points, Point{
			X: center.X + float32(radiusX*math.Cos(angle)),
			Y: center.Y + float32(radiusY*math.Sin(angle)),
		})
	}
	return points
}

// Geometry is the full set of draw commands for one pass.
type Geometry struct {
	Inner Circle
	Outer Arc
}

// Surface is the drawing capability a host provides.
type Surface interface {
	DrawCircle(circle Circle)
	DrawArc(arc Arc)
}

// Layout computes the ring geometry for a surface of the given size.
// It reports false when there is nothing to render.
func (renderer *Renderer) Layout(width, height float32) (Geometry, bool) {
	if width <= 0 || height <= 0 {
		return Geometry{}, false
	}

	renderer.mu.RLock()
	style := renderer.style
	rate := renderer.rateLocked()
	renderer.mu.RUnlock()

	halfWidth := width / 2
	halfHeight := height / 2
	radius := halfWidth
	if halfHeight < radius {
		radius = halfHeight
	}
	halfStroke := style.OuterWidth / 2

	return Geometry{
		Inner: Circle{
			Center:      Point{X: halfWidth, Y: halfHeight},
			Radius:      radius - style.OuterWidth - style.InnerWidth/2,
			StrokeWidth: style.InnerWidth,
			Color:       style.InnerColor,
		},
		Outer: Arc{
			Bounds: Rect{
				Left:   halfWidth - radius + halfStroke,
				Top:    halfHeight - radius + halfStroke,
				Right:  halfWidth + radius - halfStroke,
				Bottom: halfHeight + radius - halfStroke,
			},
			StartAngle:  StartAngle,
			SweepAngle:  rate * 360,
			StrokeWidth: style.OuterWidth,
			Color:       style.OuterColor,
		},
	}, true
}

// Draw renders the inner track and then the progress arc onto surface.
func (renderer *Renderer) Draw(surface Surface, width, height float32) bool {
	geometry, ok := renderer.Layout(width, height)
	if !ok {
		return false
	}
	surface.DrawCircle(geometry.Inner)
	surface.DrawArc(geometry.Outer)
	return true
}
