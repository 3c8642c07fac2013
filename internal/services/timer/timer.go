package timer

import (
	"sync"
	"time"

	"github.com/nkuznetsov/wordduel/internal/dependencies/clock"
	"github.com/nkuznetsov/wordduel/internal/model"
)

const (
	// DefaultTurnSeconds is the per-turn countdown duration
	DefaultTurnSeconds = 15

	// tickInterval is the countdown cadence; fixed, not configurable
	tickInterval = time.Second
)

// State represents the timer lifecycle
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateExpired State = "expired"
	StateStopped State = "stopped"
)

// Timer is a cancellable per-turn countdown.
//
// One background goroutine decrements the remaining seconds once per tick;
// reaching zero is a one-way transition to Expired, signalled by closing the
// Expired channel. All shared state sits behind one mutex, so a reset can
// never tear against a concurrent decrement.
type Timer struct {
	clock clock.Clock

	mu         sync.Mutex
	state      State
	remaining  int
	hasExpired bool

	expired chan struct{}
	stop    chan struct{}
}

// New creates an idle timer
func New(clk clock.Clock) *Timer {
	return &Timer{
		clock:   clk,
		state:   StateIdle,
		expired: make(chan struct{}),
		stop:    make(chan struct{}),
	}
}

// Start begins the countdown from the given number of seconds.
// Only an idle timer can be started.
func (t *Timer) Start(seconds int) error {
	t.mu.Lock()
	if t.state != StateIdle {
		t.mu.Unlock()
		return model.ErrTimerAlreadyStarted
	}
	t.state = StateRunning
	t.remaining = seconds
	t.mu.Unlock()

	// The ticker is created before Start returns so the countdown is
	// already subscribed to the clock; created inside the goroutine, a
	// tick could fire (or a mocked clock advance) before registration.
	ticker := t.clock.NewTicker(tickInterval)
	go t.run(ticker)
	return nil
}

func (t *Timer) run(ticker clock.Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C():
			if t.tick() {
				return
			}
		}
	}
}

// tick decrements the countdown; returns true when the timer is done
func (t *Timer) tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return true
	}

	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = StateExpired
		t.hasExpired = true
		close(t.expired)
		return true
	}
	return false
}

// Reset restores the countdown to the given number of seconds without
// touching the tick cadence. Only a running timer can be reset.
func (t *Timer) Reset(seconds int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return model.ErrTimerNotRunning
	}
	t.remaining = seconds
	return nil
}

// Stop cancels the countdown from any state; idempotent.
// After Stop returns, no tick will mutate the timer again.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateStopped {
		return
	}
	if t.state != StateExpired {
		// The run goroutine exits via the stop channel; an expired
		// timer's goroutine has already returned.
		close(t.stop)
	}
	t.state = StateStopped
}

// Remaining returns the seconds left on the countdown
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// IsExpired reports whether the countdown has ever run out.
// Expiry is one-way: it survives a later Stop.
func (t *Timer) IsExpired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasExpired
}

// Expired returns a channel closed exactly once, when the countdown
// reaches zero. It is never closed on Stop.
func (t *Timer) Expired() <-chan struct{} {
	return t.expired
}

// State returns the current lifecycle state
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
