package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BuzzGenerator generates a harmonic-rich low buzz with a linear fade in
type BuzzGenerator struct {
	sr     beep.SampleRate
	freq   float64
	attack int
	pos    int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64, attack time.Duration) *BuzzGenerator {
	return &BuzzGenerator{
		sr:     sr,
		freq:   freq,
		attack: sr.N(attack),
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := 1.0
		if g.attack > 0 && g.pos < g.attack {
			envelope = float64(g.pos) / float64(g.attack)
		}
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// envelope applies a linear release over the last samples of a finite streamer
type envelope struct {
	s       beep.Streamer
	total   int
	release int
	pos     int
}

// NewEnvelope wraps s, whose length is total samples, with a release tail
func NewEnvelope(s beep.Streamer, total, release int) beep.Streamer {
	return &envelope{s: s, total: total, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.release > 0 && e.pos >= releaseStart {
			vol := float64(e.total-e.pos) / float64(e.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}
