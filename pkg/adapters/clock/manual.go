package clock

import (
	"sync"
	"time"

	"github.com/aretw0/fling/pkg/ports"
)

// DefaultFrameInterval is the display refresh cadence (about 60 Hz).
const DefaultFrameInterval = 16 * time.Millisecond

var _ ports.Scheduler = (*Manual)(nil)

// Manual is a ports.Scheduler on a virtual clock.
// Frame boundaries fall on origin + k*FrameInterval. Callbacks run on the
// goroutine that calls Advance or Flush.
type Manual struct {
	mu       sync.Mutex
	origin   time.Time
	now      time.Time
	interval time.Duration
	pending  queue
	posts    []func()
}

// ManualOption configures a Manual scheduler.
type ManualOption func(*Manual)

// WithFrameInterval overrides the frame cadence.
func WithFrameInterval(d time.Duration) ManualOption {
	return func(m *Manual) {
		if d > 0 {
			m.interval = d
		}
	}
}

// NewManual creates a scheduler whose clock starts at start.
func NewManual(start time.Time, opts ...ManualOption) *Manual {
	m := &Manual{
		origin:   start,
		now:      start,
		interval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// FrameInterval returns the frame cadence.
func (m *Manual) FrameInterval() time.Duration {
	return m.interval
}

// RequestFrame schedules fn on the first frame boundary after now.
func (m *Manual) RequestFrame(fn func(now time.Time)) ports.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &entry{owner: &m.mu, due: m.boundaryAfter(m.now), frame: fn}
	m.pending.push(e)
	return e
}

// AfterFunc schedules fn at now+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) ports.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	e := &entry{owner: &m.mu, due: m.now.Add(d), timer: fn}
	m.pending.push(e)
	return e
}

// Post queues fn for the next Advance or Flush.
func (m *Manual) Post(fn func()) {
	m.mu.Lock()
	m.posts = append(m.posts, fn)
	m.mu.Unlock()
}

// Flush runs posted work without moving the clock.
func (m *Manual) Flush() {
	for {
		m.mu.Lock()
		if len(m.posts) == 0 {
			m.mu.Unlock()
			return
		}
		fn := m.posts[0]
		m.posts = m.posts[1:]
		m.mu.Unlock()

		fn()
	}
}

// Advance moves the clock forward by d, running every frame and timer that
// falls due on the way, in time order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.Flush()

		m.mu.Lock()
		e := m.pending.popDue(target)
		if e == nil {
			m.now = target
			m.mu.Unlock()
			break
		}
		if e.due.After(m.now) {
			m.now = e.due
		}
		now := m.now
		m.mu.Unlock()

		e.run(now)
	}
	m.Flush()
}

// AdvanceFrames advances by n frame intervals.
func (m *Manual) AdvanceFrames(n int) {
	m.Advance(time.Duration(n) * m.interval)
}

// Pending returns the number of scheduled frames and timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending.len()
}

// boundaryAfter returns the first frame boundary strictly after t.
func (m *Manual) boundaryAfter(t time.Time) time.Time {
	elapsed := t.Sub(m.origin)
	k := elapsed/m.interval + 1
	return m.origin.Add(k * m.interval)
}
