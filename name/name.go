// Package name turns untrusted input into the two display tokens of the name reveal
//
// The policy is a denylist: input is rejected when it carries one of a handful of
// markup or quote characters, and passed through otherwise. It is not a sanitizer in
// the escaping sense; lookalike characters and other encodings pass untouched.
// Hardening it would change which inputs fall back, so it is kept as is.
package name

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lixenwraith/bomaye/config"
)

// Verdict records which branch of the policy produced a name
type Verdict uint8

const (
	// Accepted means the input passed the policy unchanged
	Accepted Verdict = iota
	// Rejected means the input was absent, undelimited or contained a denylisted character
	Rejected
	// TooLong means the input exceeded the length ceiling
	TooLong
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case TooLong:
		return "too-long"
	default:
		return "unknown"
	}
}

// Token is the ordered, upper-cased display pair; each element is a sequence of cells
type Token struct {
	First []rune
	Last  []rune
}

// Strings returns both tokens as strings
func (t Token) Strings() (first, last string) {
	return string(t.First), string(t.Last)
}

// Sanitizer applies the display name policy
type Sanitizer struct {
	delimiter       string
	maxLength       int
	fallback        string
	fallbackTooLong string
	denylist        string
}

// NewSanitizer creates a sanitizer from the name configuration
func NewSanitizer(cfg config.Name) *Sanitizer {
	return &Sanitizer{
		delimiter:       cfg.Delimiter,
		maxLength:       cfg.MaxLength,
		fallback:        cfg.Fallback,
		fallbackTooLong: cfg.FallbackTooLong,
		denylist:        cfg.Denylist,
	}
}

// Sanitize returns raw when it passes the policy, or the matching fallback
// Absent input is the empty string
func (s *Sanitizer) Sanitize(raw string) string {
	name, _ := s.Check(raw)
	return name
}

// Check is Sanitize reporting which branch applied
func (s *Sanitizer) Check(raw string) (string, Verdict) {
	if raw == "" || !strings.Contains(raw, s.delimiter) || strings.ContainsAny(raw, s.denylist) {
		return s.fallback, Rejected
	}
	if utf8.RuneCountInString(raw) > s.maxLength {
		return s.fallbackTooLong, TooLong
	}
	return raw, Accepted
}

// Parse sanitizes raw and splits it into upper-cased first and last tokens
// Only the first two delimited fields are used
func (s *Sanitizer) Parse(raw string) (Token, Verdict) {
	name, verdict := s.Check(raw)

	fields := strings.Split(name, s.delimiter)
	first := fields[0]
	last := ""
	if len(fields) > 1 {
		last = fields[1]
	}

	upper := cases.Upper(language.Und)
	return Token{
		First: []rune(upper.String(first)),
		Last:  []rune(upper.String(last)),
	}, verdict
}

// FromURL extracts the raw name from a page address: the text after the first '?'
// up to the next '?', without percent-decoding
// Reports false when the address has no query
func FromURL(address string) (string, bool) {
	_, rest, found := strings.Cut(address, "?")
	if !found {
		return "", false
	}
	raw, _, _ := strings.Cut(rest, "?")
	return raw, true
}
