package countdown

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"
)

// ErrNegativeDuration indicates Start was called with a negative total duration.
var ErrNegativeDuration = errors.New("countdown duration is negative")

// ProgressSink receives the ring progress derived from each tick.
type ProgressSink interface {
	Max() int
	SetProgress(progress int)
}

// TextSink receives the formatted remaining time.
type TextSink interface {
	SetText(text string)
}

// Config contains runtime options for Controller.
type Config struct {
	TickInterval time.Duration
	QueueSize    int
	Clock        Clock
	Logger       *slog.Logger
	// Dispatch runs fn on the rendering goroutine. Nil runs it inline on the consumer goroutine.
	Dispatch func(fn func())
}

// schedule owns the periodic ticker and the completion deadline of one countdown cycle.
type schedule struct {
	ticker   Ticker
	deadline Timer
	once     sync.Once
}

func (handle *schedule) release() {
	handle.once.Do(func() {
		handle.ticker.Stop()
		handle.deadline.Stop()
	})
}

// Controller drives a single-use countdown and forwards every tick to the rendering side.
type Controller struct {
	mu           sync.Mutex
	options      Config
	logger       *slog.Logger
	progress     ProgressSink
	label        TextSink
	totalSeconds int
	runTotal     int
	state        State
	locked       bool
	completed    bool
	schedule     *schedule
	events       []chan Event
	onComplete   func()
	done         chan struct{}
}

// New creates a Controller in the idle state.
func New(progress ProgressSink, label TextSink, options Config) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.QueueSize <= 0 {
		options.QueueSize = 16
	}
	if options.Clock == nil {
		options.Clock = RealClock{}
	}
	if options.Dispatch == nil {
		options.Dispatch = func(fn func()) { fn() }
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		options:  options,
		logger:   logger.With("component", "countdown"),
		progress: progress,
		label:    label,
		state:    StateIdle,
		done:     make(chan struct{}),
	}
}

// SetTime sets the total duration to minutes and seconds.
func (controller *Controller) SetTime(minutes, seconds int) {
	controller.setTotal(minutes*60 + seconds)
}

// SetMinute sets the total duration to whole minutes.
func (controller *Controller) SetMinute(minutes int) {
	controller.setTotal(minutes * 60)
}

// SetSecond sets the total duration in seconds.
func (controller *Controller) SetSecond(seconds int) {
	controller.setTotal(seconds)
}

func (controller *Controller) setTotal(seconds int) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.state != StateIdle {
		controller.logger.Warn("duration changed after start is ignored", "seconds", seconds, "state", controller.state)
	}
	controller.totalSeconds = seconds
}

// TotalSeconds returns the configured duration.
func (controller *Controller) TotalSeconds() int {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.totalSeconds
}

// State returns the lifecycle stage.
func (controller *Controller) State() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// Locked reports whether the countdown has finished and released its scheduler.
// It is true no later than the moment Done is closed.
func (controller *Controller) Locked() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.locked
}

// Done is closed once the completion message has been handled.
func (controller *Controller) Done() <-chan struct{} {
	return controller.done
}

// SetOnComplete sets a hook run on the rendering goroutine when the countdown completes.
func (controller *Controller) SetOnComplete(handler func()) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.onComplete = handler
}

// Subscribe registers a new observer channel. Channels are closed on completion.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.completed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// Start launches the countdown. It runs at most once per Controller: calls while
// running or after completion do nothing.
func (controller *Controller) Start() error {
	controller.mu.Lock()
	if controller.locked || controller.state != StateIdle {
		state := controller.state
		controller.mu.Unlock()
		controller.logger.Debug("start ignored", "state", state)
		return nil
	}
	total := controller.totalSeconds
	if total < 0 {
		controller.mu.Unlock()
		return fmt.Errorf("start countdown: %w: %d", ErrNegativeDuration, total)
	}

	interval := controller.options.TickInterval
	handle := &schedule{
		ticker:   controller.options.Clock.NewTicker(interval),
		deadline: controller.options.Clock.NewTimer(time.Duration(total) * interval),
	}
	queue := make(chan Message, controller.options.QueueSize)
	controller.schedule = handle
	controller.runTotal = total
	controller.state = StateRunning
	controller.mu.Unlock()

	controller.logger.Info("countdown started", "total_seconds", total, "tick_interval", interval)

	go controller.consume(queue)
	go controller.run(handle, queue, total)
	return nil
}

// run is the single scheduler goroutine. It is the only sender on queue.
func (controller *Controller) run(handle *schedule, queue chan<- Message, total int) {
	counter := total
	queue <- Message{Type: MessageTick, Remaining: counter}
	counter--

	for {
		select {
		case <-handle.ticker.C():
			if counter < 0 {
				continue
			}
			queue <- Message{Type: MessageTick, Remaining: counter}
			counter--
		case <-handle.deadline.C():
			handle.release()
			controller.mu.Lock()
			controller.schedule = nil
			controller.locked = true
			controller.mu.Unlock()
			controller.logger.Debug("scheduler released")

			// Locked is already true when the completion reaches the UI side.
			queue <- Message{Type: MessageComplete}
			close(queue)
			return
		}
	}
}

func (controller *Controller) consume(queue <-chan Message) {
	for message := range queue {
		controller.options.Dispatch(func() {
			controller.handle(message)
		})
	}
}

// handle runs on the rendering goroutine, one message at a time.
func (controller *Controller) handle(message Message) {
	controller.mu.Lock()
	if controller.completed {
		controller.mu.Unlock()
		controller.logger.Debug("message after completion dropped", "type", message.Type)
		return
	}
	total := controller.runTotal
	controller.mu.Unlock()

	switch message.Type {
	case MessageTick:
		progress := 0
		if controller.progress != nil {
			progress = scaleProgress(message.Remaining, total, controller.progress.Max())
			controller.progress.SetProgress(progress)
		}
		text := FormatTime(message.Remaining)
		if controller.label != nil {
			controller.label.SetText(text)
		}
		controller.emit(Event{
			Type:      EventTick,
			State:     StateRunning,
			Remaining: message.Remaining,
			Progress:  progress,
			Text:      text,
			At:        controller.options.Clock.Now(),
		})
	case MessageComplete:
		controller.mu.Lock()
		controller.completed = true
		controller.state = StateCompleted
		hook := controller.onComplete
		controller.mu.Unlock()

		if hook != nil {
			hook()
		}
		controller.emit(Event{
			Type:  EventComplete,
			State: StateCompleted,
			At:    controller.options.Clock.Now(),
		})
		controller.closeSubscribers()
		close(controller.done)
		controller.logger.Info("countdown completed")
	}
}

func scaleProgress(remaining, total, max int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(remaining) / float64(total) * float64(max)))
}

func (controller *Controller) emit(event Event) {
	controller.mu.Lock()
	events := append([]chan Event(nil), controller.events...)
	controller.mu.Unlock()
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (controller *Controller) closeSubscribers() {
	controller.mu.Lock()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()
	for _, ch := range events {
		close(ch)
	}
}
