package sanitize

import (
	"strings"
	"testing"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Ada Lovelace", "Ada Lovelace"},
		{"hyphen and digits", "pilot-42", "pilot-42"},
		{"script tag", "<script>alert(1)</script>", "alert1"},
		{"nested keyword", "scrscriptipt", ""},
		{"javascript url", "javascript:void(0)", "void0"},
		{"mixed case keyword", "ScRiPt kiddie", "kiddie"},
		{"keyword rebuilt by filtering", "scr!ipt", ""},
		{"html attributes", `<img src=x onerror="x">bob`, "bob"},
		{"unterminated tag", "eve<b", "eve"},
		{"punctuation dropped", "o'brien!!", "obrien"},
		{"whitespace collapsed", "  a \t\n b  ", "a b"},
		{"unicode dropped", "Zoë 🚀", "Zo"},
		{"capped", "abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrst"},
		{"cap trims trailing space", "abcdefghijklmnopqrs tuv", "abcdefghijklmnopqrs"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayName(tc.raw); got != tc.want {
				t.Errorf("DisplayName(%q) = %q, expected %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestDisplayNameNeverLeaksMarkup(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"<SCRIPT SRC=//evil/x.js></SCRIPT>",
		"jav<b>ascript:alert(1)",
		"<<script>script>",
		strings.Repeat("<script>", 10),
	}

	for _, raw := range inputs {
		got := DisplayName(raw)
		lower := strings.ToLower(got)
		if strings.ContainsAny(got, "<>") || strings.Contains(lower, "script") || strings.Contains(lower, "javascript") {
			t.Errorf("DisplayName(%q) = %q still carries markup", raw, got)
		}
		if len(got) > MaxNameLength {
			t.Errorf("DisplayName(%q) length %d exceeds %d", raw, len(got), MaxNameLength)
		}
	}
}

func TestNameOr(t *testing.T) {
	if got := NameOr("<script></script>", "Anonymous"); got != "Anonymous" {
		t.Errorf("NameOr() = %q, expected fallback", got)
	}
	if got := NameOr("kit", "Anonymous"); got != "kit" {
		t.Errorf("NameOr() = %q, expected kit", got)
	}
}
