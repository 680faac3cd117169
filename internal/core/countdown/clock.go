package countdown

import "time"

// Clock abstracts the scheduling primitives so tests can drive time by hand.
type Clock interface {
	Now() time.Time
	// NewTicker returns a ticker firing every d. d must be positive.
	NewTicker(d time.Duration) Ticker
	// NewTimer returns a timer firing once after d. A non-positive d fires immediately.
	NewTimer(d time.Duration) Timer
}

// Ticker is a cancelable repeating schedule.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Timer is a cancelable one-shot schedule.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// RealClock implements Clock with package time.
type RealClock struct{}

// Now returns the wall clock time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NewTicker wraps time.NewTicker.
func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{ticker: time.NewTicker(d)}
}

// NewTimer wraps time.NewTimer.
func (RealClock) NewTimer(d time.Duration) Timer {
	return realTimer{timer: time.NewTimer(d)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (t realTicker) C() <-chan time.Time { return t.ticker.C }

func (t realTicker) Stop() { t.ticker.Stop() }

type realTimer struct {
	timer *time.Timer
}

func (t realTimer) C() <-chan time.Time { return t.timer.C }

func (t realTimer) Stop() bool { return t.timer.Stop() }
