package plan

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/bomaye/config"
)

func TestBuildDefaultTimeline(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 99

	p, err := Build(cfg, "KENNY_OMEGA")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []Stage{
		{"idle", 0},
		{"waveform", config.Duration(1700 * time.Millisecond)},
		{"flash", config.Duration(8 * time.Second)},
		{"filmstrip(repeat=false)", config.Duration(14200 * time.Millisecond)},
		{"name", config.Duration(21700 * time.Millisecond)},
		{"filmstrip(repeat=true)", config.Duration(23700 * time.Millisecond)},
	}
	if len(p.Stages) != len(want) {
		t.Fatalf("Expected %d stages, got %+v", len(want), p.Stages)
	}
	for i := range want {
		if p.Stages[i] != want[i] {
			t.Errorf("Stage %d: expected %+v, got %+v", i, want[i], p.Stages[i])
		}
	}

	if p.Finished.Std() != 23700*time.Millisecond {
		t.Errorf("Expected finish at 23.7s, got %v", p.Finished.Std())
	}
	if p.Waveform.Cancels != 1 || p.Waveform.CancelledAt.Std() != 8*time.Second {
		t.Errorf("Unexpected waveform summary %+v", p.Waveform)
	}
	if p.Burst.Batches != 61 || p.Burst.Ticks != 62 {
		t.Errorf("Unexpected burst summary %+v", p.Burst)
	}
	if p.Name.First != "KENNY" || p.Name.Last != "OMEGA" || p.Name.Fallback {
		t.Errorf("Unexpected name %+v", p.Name)
	}
	if len(p.Reveal) != 2 || len(p.Reveal[0].Letters) != 5 {
		t.Fatalf("Expected 5 letters in first token, got %+v", p.Reveal)
	}
	if p.Reveal[0].Cadence.Std() != 160*time.Millisecond {
		t.Errorf("Expected 160ms cadence, got %v", p.Reveal[0].Cadence.Std())
	}
	if p.Reveal[0].Letters[4].At.Std() != 21700*time.Millisecond+640*time.Millisecond {
		t.Errorf("Expected last letter at 22.34s, got %v", p.Reveal[0].Letters[4].At.Std())
	}
}

func TestBuildIsDeterministicForSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5

	a, err := Build(cfg, "KENNY_OMEGA")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, _ := Build(cfg, "KENNY_OMEGA")
	if a.Burst != b.Burst || a.Waveform != b.Waveform {
		t.Errorf("Expected identical plans for one seed: %+v vs %+v", a.Burst, b.Burst)
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Waveform.FrameInterval = 0

	if _, err := Build(cfg, ""); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected config.ErrInvalid, got %v", err)
	}
}

func TestPlanYAMLRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	p, err := Build(cfg, "a&b_c")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	p.RunID = "run-1"

	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	text := buf.String()
	if !strings.Contains(text, "at: 8s") || !strings.Contains(text, "fallback: true") {
		t.Errorf("Expected readable durations and fallback flag, got:\n%s", text)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.RunID != "run-1" || got.Finished != p.Finished || len(got.Stages) != len(p.Stages) {
		t.Errorf("Round trip lost data: %+v", got)
	}

	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := WritePlan(p, path); err != nil {
		t.Fatalf("WritePlan: %v", err)
	}
	fromFile, err := ReadPlan(path)
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}
	if fromFile.Name != p.Name {
		t.Errorf("Expected name %+v from file, got %+v", p.Name, fromFile.Name)
	}
}
