package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorNoise verifies noise generation
func TestOscillatorNoise(t *testing.T) {
	osc := NewOscillator(0, 50*time.Millisecond, WaveNoise, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	allSame := true
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Noise sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[0][0] {
			allSame = false
		}
	}
	if allSame {
		t.Error("Expected noise samples to vary, but all were the same")
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expectedSamples := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expectedSamples*2)
	n, ok := osc.Stream(samples)
	if n != expectedSamples || !ok {
		t.Errorf("Expected %d samples and ok, got %d and %v", expectedSamples, n, ok)
	}

	n2, ok2 := osc.Stream(make([][2]float64, 10))
	if ok2 || n2 != 0 {
		t.Errorf("Expected drained oscillator, got %d samples ok=%v", n2, ok2)
	}
}

// TestOscillatorEndless verifies a zero duration never drains
func TestOscillatorEndless(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(110.0, 0, WaveSine, rate)

	samples := make([][2]float64, 4096)
	for range 50 {
		n, ok := osc.Stream(samples)
		if !ok || n != len(samples) {
			t.Fatalf("Expected endless tone, got %d samples ok=%v", n, ok)
		}
	}
}

// TestEnvelopeAttackPhase verifies the attack ramps up from silence
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(10*time.Millisecond))
	n, _ := env.Stream(samples)

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if math.Abs(samples[n-1][0]) <= math.Abs(samples[n/4][0]) {
		t.Errorf("Expected rising amplitude during attack")
	}
}

// TestNewVolumeZero verifies zero volume handling
func TestNewVolumeZero(t *testing.T) {
	osc := NewOscillator(440.0, 50*time.Millisecond, WaveSine, beep.SampleRate(44100))
	vol := newVolume(osc, 0.0)

	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)
	if !ok || n == 0 {
		t.Fatal("Expected volume effect to stream")
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", samples[i][0], i)
		}
	}
}

// TestCueSoundsStream verifies every cue produces bounded audio
func TestCueSoundsStream(t *testing.T) {
	s := Settings{SampleRate: beep.SampleRate(44100), Volume: 0.6}

	cues := map[string]beep.Streamer{
		"shutter": CreateShutterSound(s),
		"hum":     CreateHumSound(s),
		"chime":   CreateChimeSound(s, ChimeFrequency(0, 0)),
	}
	for name, cue := range cues {
		samples := make([][2]float64, 512)
		n, ok := cue.Stream(samples)
		if !ok || n == 0 {
			t.Errorf("%s: expected samples, got %d ok=%v", name, n, ok)
			continue
		}
		for i := 0; i < n; i++ {
			if math.Abs(samples[i][0]) > 1.0 {
				t.Errorf("%s: sample %d out of range: %f", name, i, samples[i][0])
				break
			}
		}
	}
}

// TestChimeFrequencyRises verifies the letter scale climbs and wraps by octave
func TestChimeFrequencyRises(t *testing.T) {
	prev := 0.0
	for i := 0; i < 10; i++ {
		f := ChimeFrequency(0, i)
		if f <= prev {
			t.Errorf("Expected letter %d pitch above %f, got %f", i, prev, f)
		}
		prev = f
	}
	if got, want := ChimeFrequency(0, 5), 2*ChimeFrequency(0, 0); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected octave at letter 5: %f vs %f", got, want)
	}
	if ChimeFrequency(1, 0) >= ChimeFrequency(0, 0) {
		t.Error("Expected last name pitched below first name")
	}
}
