// Package audio plays the synthesized background tracks
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/nongravitar/asset"
	"go.uber.org/zap"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Manager owns the speaker and the currently looping track
// Track state is kept whether or not the speaker could be opened
type Manager struct {
	mu          sync.Mutex
	tracks      map[asset.SoundTrackID]asset.Track
	log         *zap.Logger
	mixer       *beep.Mixer
	master      *effects.Volume
	current     *beep.Ctrl
	playing     asset.SoundTrackID
	hasTrack    bool
	muted       bool
	initialized bool
}

// NewManager creates a manager for the given tracks, log may be nil
func NewManager(tracks map[asset.SoundTrackID]asset.Track, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	mixer := &beep.Mixer{}
	return &Manager{
		tracks: tracks,
		log:    log,
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Init opens the audio device, a failure leaves the manager silent
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		m.log.Warn("audio unavailable", zap.Error(err))
		return err
	}

	// A track selected before the device opened is already in the mixer
	speaker.Play(m.master)
	m.initialized = true
	return nil
}

// Play switches the looping track, playing the current track again is a no-op
func (m *Manager) Play(id asset.SoundTrackID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasTrack && m.playing == id {
		return
	}

	track, ok := m.tracks[id]
	if !ok {
		m.log.Warn("unknown track", zap.Stringer("track", id))
		return
	}

	ctrl := &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: NewTrackStreamer(track, sampleRate),
		Base:     2,
		Volume:   track.Volume,
	}}

	m.locked(func() {
		if m.current != nil {
			m.current.Paused = true
		}
		m.mixer.Clear()
		m.mixer.Add(ctrl)
	})

	m.current = ctrl
	m.playing = id
	m.hasTrack = true
	m.log.Debug("track", zap.Stringer("track", id))
}

// Playing returns the selected track
func (m *Manager) Playing() (asset.SoundTrackID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing, m.hasTrack
}

// Toggle flips mute and returns the new state
func (m *Manager) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	muted := m.muted
	m.locked(func() { m.master.Silent = muted })
	return muted
}

// Muted reports whether output is muted
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Close stops playback and releases the device
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	if m.current != nil {
		m.current.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	m.initialized = false
}

// locked runs fn under the speaker lock when the device is open
func (m *Manager) locked(fn func()) {
	if !m.initialized {
		fn()
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}
