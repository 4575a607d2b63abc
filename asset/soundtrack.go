package asset

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Wave selects the oscillator a track is synthesized with
type Wave string

const (
	WaveSine     Wave = "sine"
	WaveSquare   Wave = "square"
	WaveTriangle Wave = "triangle"
	WaveSaw      Wave = "saw"
)

// Note is one beat of a track, a zero frequency is a rest
type Note struct {
	Frequency float64
}

// Rest reports whether the note is silent
func (n Note) Rest() bool { return n.Frequency == 0 }

// Track describes a looping melody
type Track struct {
	Name   string
	Tempo  int // Beats per minute
	Wave   Wave
	Volume float64 // beep effects.Volume exponent, base 2
	Notes  []Note
}

// Beat returns the duration of one note
func (t Track) Beat() time.Duration {
	return time.Minute / time.Duration(t.Tempo)
}

type trackFile struct {
	Name   string   `yaml:"name"`
	Tempo  int      `yaml:"tempo"`
	Wave   string   `yaml:"wave"`
	Volume float64  `yaml:"volume"`
	Notes  []string `yaml:"notes"`
}

// ParseTrack decodes a YAML track file
func ParseTrack(raw []byte) (Track, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var f trackFile
	if err := dec.Decode(&f); err != nil {
		return Track{}, fmt.Errorf("decode: %v: %w", err, ErrMalformed)
	}
	if f.Tempo <= 0 {
		return Track{}, fmt.Errorf("tempo %d: %w", f.Tempo, ErrMalformed)
	}
	if len(f.Notes) == 0 {
		return Track{}, fmt.Errorf("no notes: %w", ErrMalformed)
	}

	t := Track{Name: f.Name, Tempo: f.Tempo, Wave: Wave(f.Wave), Volume: f.Volume}
	switch t.Wave {
	case WaveSine, WaveSquare, WaveTriangle, WaveSaw:
	case "":
		t.Wave = WaveSine
	default:
		return Track{}, fmt.Errorf("wave %q: %w", f.Wave, ErrMalformed)
	}

	t.Notes = make([]Note, len(f.Notes))
	for i, name := range f.Notes {
		freq, err := NoteFrequency(name)
		if err != nil {
			return Track{}, fmt.Errorf("note %d: %w", i, err)
		}
		t.Notes[i] = Note{Frequency: freq}
	}
	return t, nil
}

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// NoteFrequency converts scientific pitch notation ("A4", "C#5", "Bb3") to Hz, "-" is a rest
func NoteFrequency(name string) (float64, error) {
	if name == "-" {
		return 0, nil
	}
	if len(name) < 2 {
		return 0, fmt.Errorf("note %q: %w", name, ErrMalformed)
	}

	semi, ok := semitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("note %q: %w", name, ErrMalformed)
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		semi++
		rest = rest[1:]
	case 'b':
		semi--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil || octave < 0 || octave > 8 {
		return 0, fmt.Errorf("note %q: %w", name, ErrMalformed)
	}

	midi := (octave+1)*12 + semi
	return 440 * math.Pow(2, float64(midi-69)/12), nil
}
