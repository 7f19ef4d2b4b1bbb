package event

// StageChangedPayload describes a stage transition by stage name
type StageChangedPayload struct {
	From string
	To   string
}

// WaveformFramePayload counts waveform redraws
type WaveformFramePayload struct {
	Frame int
}

// WaveformCancelledPayload reports how many frames the waveform drew before it was cancelled
type WaveformCancelledPayload struct {
	Frames int
}

// FlashBatchPayload describes one emitted batch
type FlashBatchPayload struct {
	Index   int
	Markers int
}

// BurstCompletePayload totals the burst
type BurstCompletePayload struct {
	Batches int
	Markers int
	Ticks   int
}

// FilmstripPayload carries the filmstrip mode
type FilmstripPayload struct {
	Repeat bool
}

// NameResolvedPayload carries the display tokens and whether input was replaced
type NameResolvedPayload struct {
	First    string
	Last     string
	Fallback bool
}

// LetterRevealedPayload identifies one revealed cell
// Token is 0 for the first name and 1 for the last name
type LetterRevealedPayload struct {
	Token  int
	Index  int
	Rune   rune
	Offset float64
}
