package name

import (
	"strings"
	"testing"

	"github.com/lixenwraith/bomaye/config"
)

func newTestSanitizer() *Sanitizer {
	return NewSanitizer(config.Default().Name)
}

func TestSanitize(t *testing.T) {
	s := newTestSanitizer()

	tests := []struct {
		name    string
		raw     string
		want    string
		verdict Verdict
	}{
		{"absent", "", "shinsuke_nakamura", Rejected},
		{"no delimiter", "kennyomega", "shinsuke_nakamura", Rejected},
		{"ampersand", "a&b_c", "shinsuke_nakamura", Rejected},
		{"angle bracket", "<b>_x", "shinsuke_nakamura", Rejected},
		{"double quote", `a"_b`, "shinsuke_nakamura", Rejected},
		{"single quote", "o'_reilly", "shinsuke_nakamura", Rejected},
		{"slash", "a/b_c", "shinsuke_nakamura", Rejected},
		{"valid", "shinsuke_nakamura", "shinsuke_nakamura", Accepted},
		{"exactly at ceiling", "abcdefghij_klmnopqrst", "abcdefghij_klmnopqrst", Accepted},
		{"over ceiling", "abcdefghijk_lmnopqrstu", "shorter_name", TooLong},
		{"denylist wins over length", strings.Repeat("a", 30) + "_<", "shinsuke_nakamura", Rejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verdict := s.Check(tt.raw)
			if got != tt.want {
				t.Errorf("Check(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if verdict != tt.verdict {
				t.Errorf("Check(%q) verdict = %v, want %v", tt.raw, verdict, tt.verdict)
			}
			if s.Sanitize(tt.raw) != tt.want {
				t.Errorf("Sanitize(%q) disagrees with Check", tt.raw)
			}
		})
	}
}

func TestParseUppercasesTokens(t *testing.T) {
	s := newTestSanitizer()

	tests := []struct {
		raw         string
		first, last string
	}{
		{"shinsuke_nakamura", "SHINSUKE", "NAKAMURA"},
		{"KENNY_OMEGA", "KENNY", "OMEGA"},
		{"a_b_c", "A", "B"},
		{"_solo", "", "SOLO"},
		{"", "SHINSUKE", "NAKAMURA"},
		{"waytoolongfirstname_andlast", "SHORTER", "NAME"},
	}

	for _, tt := range tests {
		tok, _ := s.Parse(tt.raw)
		first, last := tok.Strings()
		if first != tt.first || last != tt.last {
			t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)", tt.raw, first, last, tt.first, tt.last)
		}
	}
}

func TestFromURL(t *testing.T) {
	tests := []struct {
		address string
		want    string
		found   bool
	}{
		{"https://example.com/bomaye.html?KENNY_OMEGA", "KENNY_OMEGA", true},
		{"https://example.com/bomaye.html?a_b?c", "a_b", true},
		{"https://example.com/bomaye.html?", "", true},
		{"https://example.com/bomaye.html", "", false},
		{"https://example.com/?kenny%20_omega", "kenny%20_omega", true},
	}

	for _, tt := range tests {
		got, found := FromURL(tt.address)
		if got != tt.want || found != tt.found {
			t.Errorf("FromURL(%q) = (%q, %v), want (%q, %v)", tt.address, got, found, tt.want, tt.found)
		}
	}
}
