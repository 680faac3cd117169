package ringview

import (
	"image/color"
	"sync"

	"ringtimer/internal/core/countdown"
	"ringtimer/internal/core/model"
	"ringtimer/internal/core/ring"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const minRingSide = float32(64)

// RateRing is a circular countdown: a progress ring with the remaining time in its centre.
type RateRing struct {
	widget.BaseWidget

	ring       *ring.Renderer
	controller *countdown.Controller

	mu    sync.Mutex
	label *canvas.Text
}

// New creates a ring widget. options configures the countdown; when options.Dispatch
// is nil the countdown marshals its updates with fyne.DoAndWait.
func New(config model.WidgetConfig, options countdown.Config) *RateRing {
	label := canvas.NewText("", config.Label.TextColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = config.Label.TextSize

	view := &RateRing{
		ring:  ring.New(config.Ring),
		label: label,
	}
	if options.Dispatch == nil {
		options.Dispatch = fyne.DoAndWait
	}
	view.controller = countdown.New(view, view, options)
	view.ring.SetInvalidator(view.Refresh)
	view.ExtendBaseWidget(view)
	return view
}

// CreateRenderer implements fyne.Widget.
func (view *RateRing) CreateRenderer() fyne.WidgetRenderer {
	return &rateRingRenderer{
		view:    view,
		surface: newCanvasSurface(),
		layout:  &centerLayout{},
	}
}

// Renderer exposes the ring renderer for listener registration and style access.
func (view *RateRing) Renderer() *ring.Renderer {
	return view.ring
}

// Controller exposes the countdown controller.
func (view *RateRing) Controller() *countdown.Controller {
	return view.controller
}

// Apply replaces the ring and label styles and redraws.
func (view *RateRing) Apply(config model.WidgetConfig) {
	view.ring.SetStyle(config.Ring)
	view.mu.Lock()
	view.label.TextSize = config.Label.TextSize
	view.label.Color = config.Label.TextColor
	view.mu.Unlock()
	view.Refresh()
}

// SetTime sets the countdown duration. Call before Start.
func (view *RateRing) SetTime(minutes, seconds int) {
	view.controller.SetTime(minutes, seconds)
}

// SetMinute sets the countdown duration in whole minutes. Call before Start.
func (view *RateRing) SetMinute(minutes int) {
	view.controller.SetMinute(minutes)
}

// SetSecond sets the countdown duration in seconds. Call before Start.
func (view *RateRing) SetSecond(seconds int) {
	view.controller.SetSecond(seconds)
}

// Start begins the countdown. Only the first successful call has an effect.
func (view *RateRing) Start() error {
	return view.controller.Start()
}

// SetMax sets the progress maximum.
func (view *RateRing) SetMax(max int) {
	view.ring.SetMax(max)
}

// Max returns the progress maximum.
func (view *RateRing) Max() int {
	return view.ring.Max()
}

// SetProgress sets the ring progress and redraws.
func (view *RateRing) SetProgress(progress int) {
	view.ring.SetProgress(progress)
}

// Progress returns the ring progress.
func (view *RateRing) Progress() int {
	return view.ring.Progress()
}

// SetText sets the centre label.
func (view *RateRing) SetText(text string) {
	view.mu.Lock()
	view.label.Text = text
	view.mu.Unlock()
	view.label.Refresh()
}

// Text returns the centre label.
func (view *RateRing) Text() string {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.label.Text
}

// SetTextSize sets the centre label size.
func (view *RateRing) SetTextSize(size float32) {
	view.mu.Lock()
	view.label.TextSize = size
	view.mu.Unlock()
	view.Refresh()
}

// SetTextColor sets the centre label colour.
func (view *RateRing) SetTextColor(value color.Color) {
	view.mu.Lock()
	view.label.Color = value
	view.mu.Unlock()
	view.label.Refresh()
}

// SetOuterCircleSize sets the progress arc width. Call Refresh to redraw.
func (view *RateRing) SetOuterCircleSize(width float32) {
	view.ring.SetOuterCircleSize(width)
}

// OuterCircleSize returns the progress arc width.
func (view *RateRing) OuterCircleSize() float32 {
	return view.ring.OuterCircleSize()
}

// SetInnerCircleSize sets the track width. Call Refresh to redraw.
func (view *RateRing) SetInnerCircleSize(width float32) {
	view.ring.SetInnerCircleSize(width)
}

// InnerCircleSize returns the track width.
func (view *RateRing) InnerCircleSize() float32 {
	return view.ring.InnerCircleSize()
}

// SetOuterCircleColor sets the progress arc colour. Call Refresh to redraw.
func (view *RateRing) SetOuterCircleColor(value color.NRGBA) {
	view.ring.SetOuterCircleColor(value)
}

// OuterCircleColor returns the progress arc colour.
func (view *RateRing) OuterCircleColor() color.NRGBA {
	return view.ring.OuterCircleColor()
}

// SetInnerCircleColor sets the track colour. Call Refresh to redraw.
func (view *RateRing) SetInnerCircleColor(value color.NRGBA) {
	view.ring.SetInnerCircleColor(value)
}

// InnerCircleColor returns the track colour.
func (view *RateRing) InnerCircleColor() color.NRGBA {
	return view.ring.InnerCircleColor()
}

type rateRingRenderer struct {
	view    *RateRing
	surface *canvasSurface
	layout  *centerLayout
	size    fyne.Size
}

func (renderer *rateRingRenderer) Layout(size fyne.Size) {
	renderer.size = size
	renderer.surface.reset()
	renderer.view.ring.Draw(renderer.surface, size.Width, size.Height)
	renderer.layout.Layout([]fyne.CanvasObject{renderer.view.label}, size)
}

func (renderer *rateRingRenderer) MinSize() fyne.Size {
	style := renderer.view.ring.Style()
	labelMin := renderer.layout.MinSize([]fyne.CanvasObject{renderer.view.label})
	side := 2*(style.OuterWidth+style.InnerWidth) + labelMin.Width
	if labelMin.Height+2*(style.OuterWidth+style.InnerWidth) > side {
		side = labelMin.Height + 2*(style.OuterWidth+style.InnerWidth)
	}
	if side < minRingSide {
		side = minRingSide
	}
	return fyne.NewSize(side, side)
}

func (renderer *rateRingRenderer) Refresh() {
	renderer.Layout(renderer.size)
	renderer.surface.refresh()
	renderer.view.label.Refresh()
}

func (renderer *rateRingRenderer) Objects() []fyne.CanvasObject {
	return append(renderer.surface.objects(), renderer.view.label)
}

func (renderer *rateRingRenderer) Destroy() {}

// centerLayout places every child at its minimum size in the middle of the container.
type centerLayout struct{}

func (layout *centerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, object := range objects {
		childSize := object.MinSize()
		if childSize.Width > size.Width {
			childSize.Width = size.Width
		}
		if childSize.Height > size.Height {
			childSize.Height = size.Height
		}
		object.Resize(childSize)
		object.Move(fyne.NewPos((size.Width-childSize.Width)/2, (size.Height-childSize.Height)/2))
	}
}

func (layout *centerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for _, object := range objects {
		childSize := object.MinSize()
		if childSize.Width > minSize.Width {
			minSize.Width = childSize.Width
		}
		if childSize.Height > minSize.Height {
			minSize.Height = childSize.Height
		}
	}
	return minSize
}
