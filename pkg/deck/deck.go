// Package deck stacks swipeable cards on one shared processing flag and
// records every committed swipe in a ports.SwipeStore.
package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/internal/runtime"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
)

// DefaultStoreTimeout bounds a single Record call.
const DefaultStoreTimeout = 5 * time.Second

// Card is one item of the stack.
type Card struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Deck shows its cards one at a time. Only the top card takes input.
//
// Like the engine, a Deck is driven from the scheduler goroutine. Store
// writes run on their own goroutine and report back through Scheduler.Post.
type Deck struct {
	sched    ports.Scheduler
	store    ports.SwipeStore
	flag     *domain.ProcessingFlag
	cards    []Card
	pos      int
	top      *runtime.Engine
	source   domain.Source
	renderer ports.Renderer
	viewport func() float64
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	ctx      context.Context
	timeout  time.Duration

	onAdvance func(next *Card)
	onError   func(card Card, err error)
}

// Option configures a Deck.
type Option func(*Deck)

// WithRenderer sets the frame sink shared by every card.
func WithRenderer(r ports.Renderer) Option {
	return func(d *Deck) {
		d.renderer = r
	}
}

// WithViewport sets the viewport width accessor.
func WithViewport(width func() float64) Option {
	return func(d *Deck) {
		d.viewport = width
	}
}

// WithLifecycleHooks registers observability hooks for every card.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(d *Deck) {
		d.hooks = d.hooks.Merge(hooks)
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deck) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithContext sets the parent context of store calls.
func WithContext(ctx context.Context) Option {
	return func(d *Deck) {
		d.ctx = ctx
	}
}

// WithStoreTimeout bounds each Record call.
func WithStoreTimeout(timeout time.Duration) Option {
	return func(d *Deck) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// OnAdvance is called after a swipe was stored and the next card is on top.
// next is nil once the deck is exhausted.
func OnAdvance(fn func(next *Card)) Option {
	return func(d *Deck) {
		d.onAdvance = fn
	}
}

// OnError is called when a swipe could not be stored. The card is put back.
func OnError(fn func(card Card, err error)) Option {
	return func(d *Deck) {
		d.onError = fn
	}
}

// New creates a deck with cards on top of each other, first card on top.
func New(sched ports.Scheduler, store ports.SwipeStore, cards []Card, opts ...Option) *Deck {
	d := &Deck{
		sched:   sched,
		store:   store,
		flag:    &domain.ProcessingFlag{},
		cards:   append([]Card(nil), cards...),
		logger:  logging.NewNop(),
		ctx:     context.Background(),
		timeout: DefaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.mount()
	return d
}

// Top returns the card taking input, or nil when the deck is empty.
func (d *Deck) Top() *Card {
	if d.pos >= len(d.cards) {
		return nil
	}
	c := d.cards[d.pos]
	return &c
}

// Remaining returns the number of cards not yet swiped.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.pos
}

// Busy reports whether a swipe is being stored.
func (d *Deck) Busy() bool {
	return d.flag.Busy()
}

// Frame returns the top card's frame.
func (d *Deck) Frame() (domain.Frame, bool) {
	if d.top == nil {
		return domain.Frame{}, false
	}
	return d.top.Frame(), true
}

// PointerDown forwards to the top card.
func (d *Deck) PointerDown(ev domain.PointerEvent) bool {
	if d.top == nil {
		return false
	}
	return d.top.PointerDown(ev)
}

// PointerMove forwards to the top card.
func (d *Deck) PointerMove(ev domain.PointerEvent) {
	if d.top != nil {
		d.top.PointerMove(ev)
	}
}

// PointerUp forwards to the top card.
func (d *Deck) PointerUp() {
	if d.top != nil {
		d.top.PointerUp()
	}
}

// PointerCancel forwards to the top card.
func (d *Deck) PointerCancel() {
	if d.top != nil {
		d.top.PointerCancel()
	}
}

// Swipe commits the top card toward dir, as the pass/like buttons do.
func (d *Deck) Swipe(dir domain.Direction) bool {
	if d.top == nil {
		return false
	}
	return d.top.Swipe(dir)
}

// Close unmounts the top card.
func (d *Deck) Close() {
	if d.top != nil {
		d.top.Close()
		d.top = nil
	}
}

func (d *Deck) mount() {
	card := d.Top()
	if card == nil {
		d.top = nil
		return
	}

	track := domain.LifecycleHooks{
		OnDecision: func(e *domain.DecisionEvent) {
			d.source = e.Source
		},
	}
	opts := []runtime.EngineOption{
		runtime.WithID(card.ID),
		runtime.WithProcessingFlag(d.flag),
		runtime.WithLifecycleHooks(track.Merge(d.hooks)),
		runtime.WithLogger(d.logger),
		runtime.WithRenderer(d.renderer),
		runtime.WithCallbacks(runtime.Callbacks{
			OnCommitLeft:  func() { d.commit(*card, domain.Left) },
			OnCommitRight: func() { d.commit(*card, domain.Right) },
		}),
	}
	if d.viewport != nil {
		opts = append(opts, runtime.WithViewport(d.viewport))
	}
	d.top = runtime.NewEngine(d.sched, opts...)
	if d.renderer != nil {
		d.renderer.Render(d.top.Frame())
	}
}

// commit runs on the scheduler goroutine with the flag held. The store write
// happens off-loop; its completion is posted back, releases the flag and
// either advances or restores the card.
func (d *Deck) commit(card Card, dir domain.Direction) {
	rec := domain.NewSwipeRecord(card.ID, dir, d.source, d.sched.Now())
	d.logger.Info("recording swipe", "card", card.ID, "action", rec.Action, "source", rec.Source)

	go func() {
		ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
		defer cancel()

		err := d.store.Record(ctx, rec)
		if errors.Is(err, domain.ErrAlreadySwiped) {
			err = nil
		}
		d.sched.Post(func() {
			d.flag.Release()
			d.finish(card, err)
		})
	}()
}

func (d *Deck) finish(card Card, err error) {
	top := d.Top()
	if top == nil || top.ID != card.ID {
		return
	}

	old := d.top
	if err != nil {
		d.logger.Error("failed to record swipe", "card", card.ID, "error", err)
		old.Close()
		d.mount()
		if d.onError != nil {
			d.onError(card, fmt.Errorf("card %s: %w", card.ID, err))
		}
		return
	}

	old.Close()
	d.pos++
	d.mount()
	d.logger.Debug("deck advanced", "remaining", d.Remaining())
	if d.onAdvance != nil {
		d.onAdvance(d.Top())
	}
}
