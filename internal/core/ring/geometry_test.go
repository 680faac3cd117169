package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringtimer/internal/core/model"
)

type recordingSurface struct {
	circles []Circle
	arcs    []Arc
	order   []string
}

func (surface *recordingSurface) DrawCircle(circle Circle) {
	surface.circles = append(surface.circles, circle)
	surface.order = append(surface.order, "circle")
}

func (surface *recordingSurface) DrawArc(arc Arc) {
	surface.arcs = append(surface.arcs, arc)
	surface.order = append(surface.order, "arc")
}

func TestLayoutSquareSurface(t *testing.T) {
	style := model.DefaultRingStyle()
	style.OuterWidth = 8
	style.InnerWidth = 4
	renderer := New(style)

	const side = float32(200)
	geometry, ok := renderer.Layout(side, side)
	require.True(t, ok)

	assert.Equal(t, Point{X: 100, Y: 100}, geometry.Inner.Center)
	assert.Equal(t, float32(100-8-2), geometry.Inner.Radius)
	assert.Equal(t, float32(4), geometry.Inner.StrokeWidth)
	assert.Equal(t, style.InnerColor, geometry.Inner.Color)

	bounds := geometry.Outer.Bounds
	assert.Equal(t, Point{X: 100, Y: 100}, bounds.Center())
	assert.Equal(t, Rect{Left: 4, Top: 4, Right: 196, Bottom: 196}, bounds)
	assert.Equal(t, float32(8), geometry.Outer.StrokeWidth)
	assert.Equal(t, StartAngle, geometry.Outer.StartAngle)
	assert.Equal(t, style.OuterColor, geometry.Outer.Color)
}

func TestLayoutUsesShorterSide(t *testing.T) {
	style := model.DefaultRingStyle()
	style.OuterWidth = 10
	renderer := New(style)

	geometry, ok := renderer.Layout(300, 100)
	require.True(t, ok)

	assert.Equal(t, Rect{Left: 105, Top: 5, Right: 195, Bottom: 95}, geometry.Outer.Bounds)
	assert.Equal(t, Point{X: 150, Y: 50}, geometry.Inner.Center)
	assert.Equal(t, float32(50-10-5), geometry.Inner.Radius)
}

func TestSweepBoundaries(t *testing.T) {
	renderer := New(model.DefaultRingStyle())

	renderer.SetProgress(0)
	geometry, ok := renderer.Layout(100, 100)
	require.True(t, ok)
	assert.Equal(t, float32(0), geometry.Outer.SweepAngle)

	renderer.SetProgress(renderer.Max())
	geometry, ok = renderer.Layout(100, 100)
	require.True(t, ok)
	assert.Equal(t, float32(360), geometry.Outer.SweepAngle)

	renderer.SetProgress(25)
	geometry, _ = renderer.Layout(100, 100)
	assert.Equal(t, float32(90), geometry.Outer.SweepAngle)
}

func TestLayoutEmptySurface(t *testing.T) {
	renderer := New(model.DefaultRingStyle())

	_, ok := renderer.Layout(0, 100)
	assert.False(t, ok)
	_, ok = renderer.Layout(100, 0)
	assert.False(t, ok)

	surface := &recordingSurface{}
	assert.False(t, renderer.Draw(surface, 0, 0))
	assert.Empty(t, surface.order)
}

func TestLayoutAcceptsOverlappingRings(t *testing.T) {
	style := model.DefaultRingStyle()
	style.OuterWidth = 40
	style.InnerWidth = 40
	renderer := New(style)

	geometry, ok := renderer.Layout(60, 60)
	require.True(t, ok)
	assert.Less(t, geometry.Inner.Radius, float32(0))
}

func TestDrawOrder(t *testing.T) {
	renderer := New(model.DefaultRingStyle())
	renderer.SetProgress(50)

	surface := &recordingSurface{}
	require.True(t, renderer.Draw(surface, 120, 120))
	assert.Equal(t, []string{"circle", "arc"}, surface.order)
	assert.Equal(t, float32(180), surface.arcs[0].SweepAngle)
}

func TestArcPoints(t *testing.T) {
	arc := Arc{
		Bounds:     Rect{Left: 0, Top: 0, Right: 100, Bottom: 100},
		StartAngle: StartAngle,
		SweepAngle: 180,
	}

	points := arc.Points(2)
	require.Len(t, points, 3)
	assert.InDelta(t, 50, points[0].X, 1e-3)
	assert.InDelta(t, 0, points[0].Y, 1e-3)
	assert.InDelta(t, 100, points[1].X, 1e-3)
	assert.InDelta(t, 50, points[1].Y, 1e-3)
	assert.InDelta(t, 50, points[2].X, 1e-3)
	assert.InDelta(t, 100, points[2].Y, 1e-3)

	assert.Len(t, arc.Points(0), 2)
}
