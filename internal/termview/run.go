package termview

import (
	"context"
	"log"
	"time"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"

	"github.com/gdamore/tcell/v2"
)

// Run plays g in the terminal until the player quits, ctx ends or, with
// exitWhenDone, the last wave is over. Waves start on space; autoStart
// starts each one as soon as it can.
func Run(ctx context.Context, screen tcell.Screen, g *app.Game, autoStart, exitWhenDone bool) error {
	view := NewView(screen, g.Grid)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(config.TermFrameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := handleKey(g, ev); quit {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if autoStart {
				g.StartNextWave()
			}
			g.Update(dt, nil)
			drawFrame(view, g)
			if exitWhenDone && g.Finished() {
				log.Printf("All waves finished after %.1fs", g.GameTime())
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func handleKey(g *app.Game, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch ev.Rune() {
		case 'q':
			return true
		case ' ', 'n':
			g.StartNextWave()
		case 'f':
			g.ToggleSpeed()
		case 'p':
			g.SetPaused(!g.IsPaused())
		}
	}
	return false
}

func drawFrame(view *View, g *app.Game) {
	wm := g.WaveManager
	cur, total := wm.Progress()
	stats := g.Stats()
	view.Draw(g.Towers(), g.Enemies(), Status(
		wm.CurrentWaveIndex()+1, wm.WaveCount(), wm.State().String(),
		cur, total, stats.Killed, stats.Leaked, g.SpeedMultiplier))
}
