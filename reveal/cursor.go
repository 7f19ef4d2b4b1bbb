package reveal

import "time"

// Cursor is the progress pointer through one token's letter reveal
// Cadence is fixed when the cursor is created and never re-derived
type Cursor struct {
	Index   int
	Length  int
	Cadence time.Duration
}

// NewCursor creates a cursor over length cells sharing budget evenly
// An empty token gets a zero cadence and is done immediately
func NewCursor(length int, budget time.Duration) *Cursor {
	c := &Cursor{Length: max(length, 0)}
	if c.Length > 0 {
		c.Cadence = budget / time.Duration(c.Length)
	}
	return c
}

// Done reports whether every cell has been revealed
func (c *Cursor) Done() bool {
	return c.Index >= c.Length
}

// Advance moves the cursor by one cell, returning the index it left
// Returns false without moving once the cursor is done
func (c *Cursor) Advance() (int, bool) {
	if c.Done() {
		return c.Index, false
	}
	i := c.Index
	c.Index++
	return i, true
}

// Remaining returns the number of cells still hidden
func (c *Cursor) Remaining() int {
	return c.Length - c.Index
}
