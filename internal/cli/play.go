package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/internal/presentation/tui"
	"github.com/aretw0/fling/pkg/adapters/clock"
	"github.com/aretw0/fling/pkg/deck"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/observability"
	"github.com/aretw0/fling/pkg/ports"
	"github.com/aretw0/fling/pkg/render"
	"github.com/gdamore/tcell/v2"
)

// PlayOptions configures `fling play`.
type PlayOptions struct {
	Cards  []deck.Card
	Store  ports.SwipeStore
	Logger *slog.Logger
	// Screen defaults to the controlling terminal.
	Screen tcell.Screen
}

// player owns the terminal while a deck is being swiped. Every field is
// touched only from the scheduler loop.
type player struct {
	screen  tcell.Screen
	loop    *clock.Loop
	view    tui.CardView
	deck    *deck.Deck
	tween   render.Tween
	pressed bool
	status  string
	stop    context.CancelFunc
}

// RunPlay swipes through a deck with the mouse or the arrow keys until the
// user quits or ctx is done.
func RunPlay(ctx context.Context, opts PlayOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := &player{
		screen: screen,
		loop:   clock.NewLoop(clock.WithLoopLogger(logger)),
		view:   tui.NewCardView(),
		stop:   cancel,
	}
	p.deck = deck.New(p.loop, opts.Store, opts.Cards,
		deck.WithRenderer(ports.RenderFunc(func(f domain.Frame) {
			p.tween.Apply(f, p.loop.Now())
		})),
		deck.WithViewport(func() float64 {
			w, _ := screen.Size()
			return p.view.Viewport(w)
		}),
		deck.WithLogger(logger),
		deck.WithLifecycleHooks(observability.LogHooks(logger)),
		deck.WithContext(ctx),
		deck.OnAdvance(func(next *deck.Card) {
			p.status = ""
		}),
		deck.OnError(func(card deck.Card, err error) {
			p.status = fmt.Sprintf("could not save %s, try again", card.ID)
		}),
	)
	defer p.deck.Close()

	var tick func(now time.Time)
	tick = func(now time.Time) {
		p.draw(now)
		p.loop.RequestFrame(tick)
	}
	p.loop.RequestFrame(tick)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			p.loop.Post(func() { p.handle(ev) })
		}
	}()

	err := p.loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (p *player) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
			ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			p.stop()
		case ev.Key() == tcell.KeyLeft, ev.Key() == tcell.KeyRune && ev.Rune() == 'h':
			p.deck.Swipe(domain.Left)
		case ev.Key() == tcell.KeyRight, ev.Key() == tcell.KeyRune && ev.Rune() == 'l':
			p.deck.Swipe(domain.Right)
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		pt := p.view.Pointer(col, row)
		mouse := domain.MouseEvent{ClientX: pt.X, ClientY: pt.Y}

		switch {
		case ev.Buttons()&tcell.Button1 != 0 && !p.pressed:
			p.pressed = p.deck.PointerDown(mouse)
		case ev.Buttons()&tcell.Button1 != 0:
			p.deck.PointerMove(mouse)
		case p.pressed:
			p.pressed = false
			p.deck.PointerMove(mouse)
			p.deck.PointerUp()
		}

	case *tcell.EventResize:
		p.screen.Sync()
	}
}

func (p *player) draw(now time.Time) {
	p.screen.Clear()

	status := "no more cards, press q to quit"
	if top := p.deck.Top(); top != nil {
		frame, _ := p.deck.Frame()
		p.view.Draw(p.screen, p.tween.At(now), frame.Feedback, top.Title)
		status = fmt.Sprintf("%d left | drag with the mouse or use ←/→ | q quits", p.deck.Remaining())
	}
	if p.status != "" {
		status += " | " + p.status
	}
	tui.DrawStatus(p.screen, status)
	p.screen.Show()
}
