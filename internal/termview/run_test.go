package termview

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// busyScreen always has another key waiting.
type busyScreen struct {
	tcell.Screen
}

func (busyScreen) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	close(done)

	go pollEvents(busyScreen{}, events, done)

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event loop still sending after done was closed")
		}
	}
}
