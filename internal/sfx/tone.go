package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine oscillator with a linear fade-out so cues end without a click.
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
	volume   float64
}

func newTone(freq float64, d time.Duration, volume float64, rate beep.SampleRate) *tone {
	return &tone{freq: freq, length: rate.N(d), rate: rate, volume: volume}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		fade := 1 - float64(t.position)/float64(t.length)
		v := math.Sin(2*math.Pi*t.phase) * t.volume * fade
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// note is one step of a cue.
type note struct {
	freq float64 // 0 is a rest
	dur  time.Duration
}

func melody(rate beep.SampleRate, volume float64, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(n.dur)))
			continue
		}
		parts = append(parts, newTone(n.freq, n.dur, volume, rate))
	}
	return beep.Seq(parts...)
}
