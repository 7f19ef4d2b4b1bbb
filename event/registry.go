package event

var typeToName = map[EventType]string{
	EventStageChanged:         "StageChanged",
	EventWaveformFrame:        "WaveformFrame",
	EventWaveformCancelled:    "WaveformCancelled",
	EventFlashBatch:           "FlashBatch",
	EventBurstComplete:        "BurstComplete",
	EventFilmstripShown:       "FilmstripShown",
	EventFilmstripHidden:      "FilmstripHidden",
	EventNameResolved:         "NameResolved",
	EventLetterRevealed:       "LetterRevealed",
	EventRevealComplete:       "RevealComplete",
	EventPresentationFinished: "PresentationFinished",
}

// String returns the registered event name
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}

// AllTypes returns every registered event type in declaration order
func AllTypes() []EventType {
	types := make([]EventType, 0, len(typeToName))
	for t := EventStageChanged; t <= EventPresentationFinished; t++ {
		types = append(types, t)
	}
	return types
}
