// Package sanitize cleans untrusted display names before they are stored,
// submitted or drawn.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxNameLength is the longest display name kept, in characters.
const MaxNameLength = 20

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>?`)
	keywordPattern = regexp.MustCompile(`(?i)javascript|script`)
	spacePattern   = regexp.MustCompile(` {2,}`)
)

// DisplayName strips markup and script-like words, keeps only ASCII letters,
// digits, spaces and hyphens, and caps the result at MaxNameLength. The result
// may be empty.
func DisplayName(raw string) string {
	s := tagPattern.ReplaceAllString(raw, "")
	s = strings.Map(keep, s)

	// Removing one keyword can join its neighbours into another.
	for {
		next := keywordPattern.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}

	s = strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
	if len(s) > MaxNameLength {
		s = strings.TrimSpace(s[:MaxNameLength])
	}
	return s
}

// NameOr returns the sanitized name, or fallback when nothing survives.
func NameOr(raw, fallback string) string {
	if name := DisplayName(raw); name != "" {
		return name
	}
	return fallback
}

func keep(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == ' ':
		return r
	case unicode.IsSpace(r):
		return ' '
	default:
		return -1
	}
}
