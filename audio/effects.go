package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Settings are the audio parameters cue synthesis reads
type Settings struct {
	SampleRate beep.SampleRate
	Volume     float64
}

// NewSettings derives synthesis settings from the audio configuration
func NewSettings(cfg config.Audio) Settings {
	return Settings{
		SampleRate: beep.SampleRate(parameter.AudioSampleRate),
		Volume:     cfg.Volume,
	}
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int // samples; 0 streams until stopped
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
// A non-positive duration gives an endless tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := 0
	if duration > 0 {
		samples = rate.N(duration)
	}
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
// A non-positive duration applies the attack only and sustains forever
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := 0
	if duration > 0 {
		total = rate.N(duration)
	}
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.totalSamples > 0 && e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.totalSamples > 0 && e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShutterSound generates a short noise click for one flash batch
func CreateShutterSound(s Settings) beep.Streamer {
	noise := NewOscillator(0, parameter.ShutterSoundDuration, WaveNoise, s.SampleRate)
	shaped := NewEnvelope(noise, parameter.ShutterSoundDuration, parameter.ShutterSoundAttack, parameter.ShutterSoundRelease, s.SampleRate)
	return newVolume(shaped, s.Volume)
}

// CreateHumSound generates the endless low tone under the waveform
func CreateHumSound(s Settings) beep.Streamer {
	fund := NewOscillator(parameter.HumSoundFrequency, 0, WaveSine, s.SampleRate)
	buzz := NewOscillator(parameter.HumSoundFrequency*2, 0, WaveSaw, s.SampleRate)
	mixed := beep.Mix(
		newVolume(fund, 0.8),
		newVolume(buzz, 0.2),
	)
	shaped := NewEnvelope(mixed, 0, parameter.HumSoundAttack, 0, s.SampleRate)
	return newVolume(shaped, s.Volume*parameter.HumSoundVolume)
}

// pentatonic semitone steps of the chime scale
var pentatonic = [...]int{0, 2, 4, 7, 9}

// ChimeFrequency returns the pitch of letter index of token; the last name sits a fourth lower
func ChimeFrequency(token, index int) float64 {
	index = max(index, 0)
	step := pentatonic[index%len(pentatonic)] + 12*(index/len(pentatonic))
	if token != 0 {
		step -= 5
	}
	return parameter.ChimeBaseFrequency * math.Pow(2, float64(step)/12)
}

// CreateChimeSound generates a bell tone for one revealed letter
func CreateChimeSound(s Settings, freq float64) beep.Streamer {
	fund := NewOscillator(freq, parameter.ChimeSoundDuration, WaveSine, s.SampleRate)
	fundShaped := NewEnvelope(fund, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundRelease, s.SampleRate)

	over := NewOscillator(freq*2, parameter.ChimeSoundDuration, WaveSine, s.SampleRate)
	overShaped := NewEnvelope(over, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundRelease/2, s.SampleRate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, s.Volume)
}
