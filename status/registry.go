package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the presentation
const (
	KeyStage             = "stage"
	KeyName              = "name"
	KeyWaveformFrames    = "waveform.frames"
	KeyWaveformCancels   = "waveform.cancels"
	KeyFlashBatches      = "flash.batches"
	KeyFlashMarkers      = "flash.markers"
	KeyBurstCompletions  = "flash.completions"
	KeyLettersRevealed   = "reveal.letters"
	KeyRevealCompletions = "reveal.completions"
)

// Registry is the central metrics facade
// Writers cache pointers once; reads go straight to the atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Line renders every metric as "key=value" pairs, strings first, in key order
func (r *Registry) Line() string {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}
	r.Strings.Range(func(key string, v *AtomicString) {
		sep()
		fmt.Fprintf(&b, "%s=%s", key, v.Load())
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		sep()
		fmt.Fprintf(&b, "%s=%d", key, v.Load())
	})
	return b.String()
}
