package parameter

import "time"

// Letter Reveal
const (
	// RevealBudget is the total time to reveal one name token, split evenly per letter
	RevealBudget = 800 * time.Millisecond

	// RevealOffsetStep is the horizontal origin offset per letter of distance from the token midpoint
	RevealOffsetStep = 20

	// RevealLetterAnimation is the per-letter zoom-in duration
	RevealLetterAnimation = 500 * time.Millisecond
)
