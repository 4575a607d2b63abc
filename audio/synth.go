package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/nongravitar/asset"
)

const (
	// Per-note envelope, as fractions of a beat
	attackFraction  = 0.05
	releaseFraction = 0.35
	amplitude       = 0.2
)

// sample returns the oscillator value in [-1, 1] for phase in [0, 1)
func sample(wave asset.Wave, phase float64) float64 {
	switch wave {
	case asset.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case asset.WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case asset.WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// trackStreamer plays the notes of a track in an endless loop
type trackStreamer struct {
	track    asset.Track
	rate     beep.SampleRate
	beat     int // Samples per note
	attack   int
	release  int
	note     int
	position int // Sample index inside the current note
	phase    float64
}

// NewTrackStreamer synthesizes track at rate, the stream never drains
func NewTrackStreamer(track asset.Track, rate beep.SampleRate) beep.Streamer {
	beat := rate.N(track.Beat())
	if beat < 1 {
		beat = 1
	}
	return &trackStreamer{
		track:   track,
		rate:    rate,
		beat:    beat,
		attack:  int(float64(beat) * attackFraction),
		release: int(float64(beat) * releaseFraction),
	}
}

func (s *trackStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if len(s.track.Notes) == 0 {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}

	for i := range samples {
		note := s.track.Notes[s.note]

		var val float64
		if !note.Rest() {
			val = amplitude * s.envelope() * sample(s.track.Wave, s.phase)
			s.phase += note.Frequency / float64(s.rate)
			s.phase -= math.Floor(s.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		s.position++
		if s.position >= s.beat {
			s.position = 0
			s.phase = 0
			s.note = (s.note + 1) % len(s.track.Notes)
		}
	}
	return len(samples), true
}

func (s *trackStreamer) Err() error { return nil }

// envelope is a linear attack and release around a flat sustain
func (s *trackStreamer) envelope() float64 {
	if s.attack > 0 && s.position < s.attack {
		return float64(s.position) / float64(s.attack)
	}
	if remaining := s.beat - s.position; s.release > 0 && remaining < s.release {
		return float64(remaining) / float64(s.release)
	}
	return 1
}
