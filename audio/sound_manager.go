package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bomaye/parameter"
)

// SoundManager owns the speaker and the mixer every cue plays through
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	hum         *beep.Ctrl
	initialized bool
	played      uint64
}

// NewSoundManager creates a manager for settings
func NewSoundManager(s Settings) *SoundManager {
	return &SoundManager{
		rate:  s.SampleRate,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.hum != nil {
		sm.hum.Paused = true
		sm.hum = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play mixes a one-shot cue in
func (sm *SoundManager) Play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

// StartHum starts a continuous cue; a running one is left alone
func (sm *SoundManager) StartHum(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.hum != nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: s, Paused: false}
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	sm.hum = ctrl
}

// StopHum silences the continuous cue
func (sm *SoundManager) StopHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.hum == nil {
		return
	}

	speaker.Lock()
	sm.hum.Paused = true
	sm.hum.Streamer = nil
	speaker.Unlock()
	sm.hum = nil
}

// Played returns the number of one-shot cues mixed in
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
