package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default master volume (0.0-1.0)
	AudioMasterVolume = 0.6
)

// Shutter Sound (one per flash batch)
const (
	ShutterSoundDuration = 40 * time.Millisecond
	ShutterSoundAttack   = 2 * time.Millisecond
	ShutterSoundRelease  = 25 * time.Millisecond
)

// Hum Sound (loops while the waveform plays)
const (
	HumSoundFrequency = 110.0
	HumSoundAttack    = 250 * time.Millisecond
	HumSoundVolume    = 0.35
)

// Chime Sound (one per revealed letter)
const (
	ChimeSoundDuration = 180 * time.Millisecond
	ChimeSoundAttack   = 4 * time.Millisecond
	ChimeSoundRelease  = 120 * time.Millisecond

	// ChimeBaseFrequency is the pitch of the first letter (E5)
	ChimeBaseFrequency = 659.25
)
