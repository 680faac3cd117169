package ringview

import (
	"image/color"
	"math"

	"ringtimer/internal/core/ring"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// degreesPerSegment controls how finely the progress arc is flattened into lines.
const degreesPerSegment = 3

// canvasSurface draws ring geometry with fyne canvas primitives. Fyne has no
// stroked arc, so the outer ring is a chain of line segments.
type canvasSurface struct {
	track  *canvas.Circle
	lines  []*canvas.Line
	active int
}

func newCanvasSurface() *canvasSurface {
	track := canvas.NewCircle(color.Transparent)
	track.Hidden = true
	return &canvasSurface{track: track}
}

func (surface *canvasSurface) reset() {
	surface.track.Hidden = true
	surface.active = 0
}

func (surface *canvasSurface) DrawCircle(circle ring.Circle) {
	if circle.Radius <= 0 {
		surface.track.Hidden = true
		return
	}
	surface.track.Hidden = false
	surface.track.FillColor = color.Transparent
	surface.track.StrokeColor = circle.Color
	surface.track.StrokeWidth = circle.StrokeWidth
	surface.track.Position1 = fyne.NewPos(circle.Center.X-circle.Radius, circle.Center.Y-circle.Radius)
	surface.track.Position2 = fyne.NewPos(circle.Center.X+circle.Radius, circle.Center.Y+circle.Radius)
}

func (surface *canvasSurface) DrawArc(arc ring.Arc) {
	sweep := math.Abs(float64(arc.SweepAngle))
	if sweep == 0 || arc.StrokeWidth <= 0 {
		surface.active = 0
		return
	}
	segments := int(math.Ceil(sweep / degreesPerSegment))
	points := arc.Points(segments)

	for len(surface.lines) < segments {
		surface.lines = append(surface.lines, canvas.NewLine(arc.Color))
	}
	for i := 0; i < segments; i++ {
		line := surface.lines[i]
		line.StrokeColor = arc.Color
		line.StrokeWidth = arc.StrokeWidth
		line.Position1 = fyne.NewPos(points[i].X, points[i].Y)
		line.Position2 = fyne.NewPos(points[i+1].X, points[i+1].Y)
	}
	surface.active = segments
}

// objects returns the visible canvas objects, track first.
func (surface *canvasSurface) objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, surface.active+1)
	objects = append(objects, surface.track)
	for _, line := range surface.lines[:surface.active] {
		objects = append(objects, line)
	}
	return objects
}

func (surface *canvasSurface) refresh() {
	canvas.Refresh(surface.track)
	for _, line := range surface.lines[:surface.active] {
		canvas.Refresh(line)
	}
}
