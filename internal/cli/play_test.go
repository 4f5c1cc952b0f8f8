package cli_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/fling/internal/cli"
	"github.com/aretw0/fling/pkg/adapters/memory"
	"github.com/aretw0/fling/pkg/deck"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startPlay(t *testing.T, store *memory.Store) (tcell.SimulationScreen, <-chan error) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	done := make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		done <- cli.RunPlay(ctx, cli.PlayOptions{
			Cards: []deck.Card{
				{ID: "ada", Title: "Ada"},
				{ID: "ken", Title: "Ken"},
			},
			Store:  store,
			Screen: screen,
		})
	}()

	require.Eventually(t, screenHas(screen, "2 left"), 2*time.Second, 10*time.Millisecond)
	return screen, done
}

func screenHas(screen tcell.SimulationScreen, text string) func() bool {
	return func() bool {
		width, height := screen.Size()
		var b strings.Builder
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, _, _, _ := screen.GetContent(x, y)
				b.WriteRune(r)
			}
			b.WriteRune('\n')
		}
		return strings.Contains(b.String(), text)
	}
}

func recorded(store *memory.Store, id string) func() bool {
	return func() bool {
		_, err := store.Load(context.Background(), id)
		return err == nil
	}
}

func TestRunPlay_Keyboard(t *testing.T) {
	store := memory.NewStore()
	screen, done := startPlay(t, store)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	require.Eventually(t, recorded(store, "ada"), 3*time.Second, 20*time.Millisecond)
	require.Eventually(t, screenHas(screen, "1 left"), 3*time.Second, 20*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	require.Eventually(t, recorded(store, "ken"), 3*time.Second, 20*time.Millisecond)

	rec, err := store.Load(context.Background(), "ken")
	require.NoError(t, err)
	assert.Equal(t, domain.Left, rec.Direction)
	assert.Equal(t, domain.SourceButton, rec.Source)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("play did not quit")
	}
}

func TestRunPlay_MouseDrag(t *testing.T) {
	store := memory.NewStore()
	screen, done := startPlay(t, store)

	// 30 columns at 8px each is well past the distance threshold.
	screen.InjectMouse(40, 12, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(55, 12, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(70, 12, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(70, 12, tcell.ButtonNone, tcell.ModNone)

	require.Eventually(t, recorded(store, "ada"), 3*time.Second, 20*time.Millisecond)
	rec, err := store.Load(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, domain.Right, rec.Direction)
	assert.Equal(t, domain.SourceDrag, rec.Source)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("play did not quit")
	}
}
