// Package sfx plays short synthesized cues for game events.
package sfx

import (
	"log"
	"sync"
	"time"

	"go-grid-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a named sound.
type Cue int

const (
	CueWaveStarted Cue = iota
	CueWaveCompleted
	CueTowerPlaced
	CueEnemyLeaked
)

func (c Cue) String() string {
	switch c {
	case CueWaveStarted:
		return "wave-started"
	case CueWaveCompleted:
		return "wave-completed"
	case CueTowerPlaced:
		return "tower-placed"
	case CueEnemyLeaked:
		return "enemy-leaked"
	}
	return "unknown"
}

// Streamer builds a fresh stream for c.
func Streamer(c Cue) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueWaveStarted:
		return melody(sampleRate, 0.3, note{392, 120 * ms}, note{523, 180 * ms})
	case CueWaveCompleted:
		return melody(sampleRate, 0.3, note{523, 120 * ms}, note{659, 120 * ms}, note{0, 30 * ms}, note{784, 240 * ms})
	case CueTowerPlaced:
		return melody(sampleRate, 0.25, note{220, 80 * ms})
	case CueEnemyLeaked:
		return melody(sampleRate, 0.3, note{330, 100 * ms}, note{196, 200 * ms})
	}
	return beep.Silence(0)
}

// Player mixes cues into the speaker. A Player that failed to open the
// audio device, or is muted, silently drops cues.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	played  map[Cue]int
}

func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
	}
}

// Init opens the speaker. On failure the player stays muted.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Play queues c. Counts are kept even when muted.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	p.played[c]++
	enabled := p.enabled
	p.mu.Unlock()
	if !enabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(Streamer(c))
	speaker.Unlock()
}

// Played returns how many times c was requested.
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// Subscribe connects the player to game events.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.WaveStarted, p)
	d.Subscribe(event.WaveCompleted, p)
	d.Subscribe(event.TowerPlaced, p)
	d.Subscribe(event.EnemyRemoved, p)
}

// Unsubscribe undoes Subscribe.
func (p *Player) Unsubscribe(d *event.Dispatcher) {
	d.Unsubscribe(event.WaveStarted, p)
	d.Unsubscribe(event.WaveCompleted, p)
	d.Unsubscribe(event.TowerPlaced, p)
	d.Unsubscribe(event.EnemyRemoved, p)
}

func (p *Player) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		p.Play(CueWaveStarted)
	case event.WaveCompleted:
		p.Play(CueWaveCompleted)
	case event.TowerPlaced:
		p.Play(CueTowerPlaced)
	case event.EnemyRemoved:
		if info, ok := e.Data.(event.EnemyInfo); ok && info.ReachedEnd {
			p.Play(CueEnemyLeaked)
		}
	}
}

// Close stops every queued cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Clear()
	p.enabled = false
	log.Printf("Audio closed")
}
