package clock

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/pkg/ports"
)

var _ ports.Scheduler = (*Loop)(nil)

// Loop is a ports.Scheduler backed by the wall clock.
// Run owns the goroutine every callback executes on; frame callbacks fire on
// a fixed ticker and timers fire as soon as they fall due.
type Loop struct {
	mu       sync.Mutex
	interval time.Duration
	pending  queue
	frames   []*entry
	posts    []func()
	wake     chan struct{}
	running  atomic.Bool
	logger   *slog.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLoopInterval overrides the frame cadence.
func WithLoopInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithLoopLogger configures a logger for the loop.
func WithLoopLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a stopped loop.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		interval: DefaultFrameInterval,
		wake:     make(chan struct{}, 1),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now returns the wall clock.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// RequestFrame runs fn on the next tick.
func (l *Loop) RequestFrame(fn func(now time.Time)) ports.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := &entry{owner: &l.mu, frame: fn}
	l.frames = append(l.frames, e)
	return e
}

// AfterFunc runs fn once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) ports.Handle {
	l.mu.Lock()
	e := &entry{owner: &l.mu, due: time.Now().Add(d), timer: fn}
	l.pending.push(e)
	l.mu.Unlock()

	l.notify()
	return e
}

// Post queues fn. Safe for concurrent use.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.posts = append(l.posts, fn)
	l.mu.Unlock()

	l.notify()
}

// Run executes callbacks until ctx is done. It must be called once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	l.logger.Debug("scheduler loop started", "interval", l.interval)

	for {
		l.drainPosts()
		l.runTimers(time.Now())
		l.resetTimer(timer)

		select {
		case <-ctx.Done():
			l.logger.Debug("scheduler loop stopped")
			return ctx.Err()
		case <-l.wake:
		case <-timer.C:
		case now := <-ticker.C:
			l.runFrames(now)
		}
	}
}

func (l *Loop) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) drainPosts() {
	for {
		l.mu.Lock()
		if len(l.posts) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.posts[0]
		l.posts = l.posts[1:]
		l.mu.Unlock()

		fn()
	}
}

func (l *Loop) runTimers(now time.Time) {
	for {
		l.mu.Lock()
		e := l.pending.popDue(now)
		l.mu.Unlock()
		if e == nil {
			return
		}
		e.run(now)
	}
}

// runFrames runs the callbacks requested before this tick. Requests made
// while running land on the next tick.
func (l *Loop) runFrames(now time.Time) {
	l.mu.Lock()
	batch := l.frames
	l.frames = nil
	l.mu.Unlock()

	for _, e := range batch {
		l.mu.Lock()
		skip := e.done
		e.done = true
		l.mu.Unlock()
		if !skip {
			e.run(now)
		}
	}
}

func (l *Loop) resetTimer(timer *time.Timer) {
	l.mu.Lock()
	due, ok := l.pending.next()
	l.mu.Unlock()

	wait := time.Hour
	if ok {
		wait = time.Until(due)
		if wait < 0 {
			wait = 0
		}
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(wait)
}
