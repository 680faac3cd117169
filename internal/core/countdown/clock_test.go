package countdown

import (
	"sync"
	"time"
)

// fakeClock only moves when Advance is called.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
	timers  []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) NewTicker(d time.Duration) Ticker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	ticker := &fakeTicker{
		clock:  clock,
		ch:     make(chan time.Time, 1),
		period: d,
		next:   clock.now.Add(d),
	}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func (clock *fakeClock) NewTimer(d time.Duration) Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	timer := &fakeTimer{
		clock: clock,
		ch:    make(chan time.Time, 1),
		at:    clock.now.Add(d),
	}
	if d <= 0 {
		timer.ch <- clock.now
		timer.fired = true
	}
	clock.timers = append(clock.timers, timer)
	return timer
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(d)
	for _, ticker := range clock.tickers {
		if ticker.stopped {
			continue
		}
		for !ticker.next.After(clock.now) {
			select {
			case ticker.ch <- clock.now:
			default:
			}
			ticker.next = ticker.next.Add(ticker.period)
		}
	}
	for _, timer := range clock.timers {
		if timer.fired || timer.stopped || timer.at.After(clock.now) {
			continue
		}
		timer.ch <- clock.now
		timer.fired = true
	}
}

func (clock *fakeClock) allStopped() bool {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	for _, ticker := range clock.tickers {
		if !ticker.stopped {
			return false
		}
	}
	for _, timer := range clock.timers {
		if !timer.stopped {
			return false
		}
	}
	return true
}

func (clock *fakeClock) scheduleCount() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.tickers) + len(clock.timers)
}

type fakeTicker struct {
	clock   *fakeClock
	ch      chan time.Time
	period  time.Duration
	next    time.Time
	stopped bool
}

func (ticker *fakeTicker) C() <-chan time.Time { return ticker.ch }

func (ticker *fakeTicker) Stop() {
	ticker.clock.mu.Lock()
	defer ticker.clock.mu.Unlock()
	ticker.stopped = true
}

type fakeTimer struct {
	clock   *fakeClock
	ch      chan time.Time
	at      time.Time
	fired   bool
	stopped bool
}

func (timer *fakeTimer) C() <-chan time.Time { return timer.ch }

func (timer *fakeTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	wasActive := !timer.fired && !timer.stopped
	timer.stopped = true
	return wasActive
}
