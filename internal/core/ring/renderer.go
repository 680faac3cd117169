package ring

import (
	"image/color"
	"sync"

	"ringtimer/internal/core/model"
)

// ProgressChangeEvent is emitted on every progress mutation.
type ProgressChangeEvent struct {
	Max     int
	Current int
	Rate    float32
}

// Renderer holds the progress state and ring style and turns them into draw commands.
type Renderer struct {
	mu         sync.RWMutex
	max        int
	current    int
	style      model.RingStyle
	onChange   func(ProgressChangeEvent)
	invalidate func()
}

// New creates a renderer with the given style and the default maximum.
func New(style model.RingStyle) *Renderer {
	return &Renderer{
		max:   model.DefaultMax,
		style: style,
	}
}

// SetOnProgressChange registers the progress listener. Passing nil clears it.
func (renderer *Renderer) SetOnProgressChange(handler func(ProgressChangeEvent)) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.onChange = handler
}

// SetInvalidator registers the redraw request hook.
func (renderer *Renderer) SetInvalidator(invalidate func()) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.invalidate = invalidate
}

// SetMax stores the progress maximum. Negative values are clamped to 0.
// The current progress is not rescaled.
func (renderer *Renderer) SetMax(max int) {
	if max < 0 {
		max = 0
	}
	renderer.mu.Lock()
	renderer.max = max
	renderer.mu.Unlock()
}

// Max returns the progress maximum.
func (renderer *Renderer) Max() int {
	renderer.mu.RLock()
	defer renderer.mu.RUnlock()
	return renderer.max
}

// SetProgress stores value clamped to [0, max], notifies the listener and requests a redraw.
func (renderer *Renderer) SetProgress(value int) {
	renderer.mu.Lock()
	if value > renderer.max {
		value = renderer.max
	}
	if value < 0 {
		value = 0
	}
	renderer.current = value
	event := ProgressChangeEvent{
		Max:     renderer.max,
		Current: value,
		Rate:    renderer.rateLocked(),
	}
	handler := renderer.onChange
	invalidate := renderer.invalidate
	renderer.mu.Unlock()

	if handler != nil {
		handler(event)
	}
	if invalidate != nil {
		invalidate()
	}
}

// Progress returns the current progress value.
func (renderer *Renderer) Progress() int {
	renderer.mu.RLock()
	defer renderer.mu.RUnlock()
	return renderer.current
}

// Rate returns current/max, or 0 when max is 0.
func (renderer *Renderer) Rate() float32 {
	renderer.mu.RLock()
	defer renderer.mu.RUnlock()
	return renderer.rateLocked()
}

func (renderer *Renderer) rateLocked() float32 {
	if renderer.max <= 0 {
		return 0
	}
	rate := float32(renderer.current) / float32(renderer.max)
	// max may have been lowered below current since the last SetProgress.
	if rate > 1 {
		return 1
	}
	return rate
}

// Style returns a copy of the ring style.
func (renderer *Renderer) Style() model.RingStyle {
	renderer.mu.RLock()
	defer renderer.mu.RUnlock()
	return renderer.style
}

// SetStyle replaces the whole ring style.
func (renderer *Renderer) SetStyle(style model.RingStyle) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.style = style
}

// SetOuterCircleSize sets the stroke width of the progress arc.
func (renderer *Renderer) SetOuterCircleSize(width float32) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.style.OuterWidth = width
}

// OuterCircleSize returns the stroke width of the progress arc.
func (renderer *Renderer) OuterCircleSize() float32 {
	renderer.mu.RLock()
	defer renderer.mu.RUnlock()
	return renderer.style.OuterWidth
}

// SetInnerCircleSize sets the stroke width of the inner track.
func (renderer *Renderer) SetInnerCircleSize(width float32) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.style.InnerWidth = width
}

// InnerCircleSize returns the stroke width of the inner track.
func (renderer *Renderer) InnerCircleSize() float32 {
	renderer.mu.RLock()
	defer renderer.mu.RUnlock()
	return renderer.style.InnerWidth
}

// SetOuterCircleColor sets the colour of the progress arc.
func (renderer *Renderer) SetOuterCircleColor(value color.NRGBA) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.style.OuterColor = value
}

// OuterCircleColor returns the colour of the progress arc.
func (renderer *Renderer) OuterCircleColor() color.NRGBA {
	renderer.mu.RLock()
	defer renderer.mu.RUnlock()
	return renderer.style.OuterColor
}

// SetInnerCircleColor sets the colour of the inner track.
func (renderer *Renderer) SetInnerCircleColor(value color.NRGBA) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.style.InnerColor = value
}

// InnerCircleColor returns the colour of the inner track.
func (renderer *Renderer) InnerCircleColor() color.NRGBA {
	renderer.mu.RLock()
	defer renderer.mu.RUnlock()
	return renderer.style.InnerColor
}
