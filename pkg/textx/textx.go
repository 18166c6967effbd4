// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
)

// replacer maps punctuation that has no useful Latin-1 slot onto a close
// ASCII approximation before the lossy filter runs. The pairs are
// independent: no replacement output is itself a trigger for another pair.
var replacer = strings.NewReplacer(
	"₹", "Rs", // rupee sign
	"–", "-", // en dash
	"—", "-", // em dash
	"’", "'", // right single quote
	"‘", "'", // left single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
)

// Sanitize returns s reduced to characters representable in Latin-1.
// Known punctuation is first substituted with an ASCII approximation;
// every rune still above U+00FF after that is dropped, not replaced.
// The function is total and idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	out, _ := SanitizeCount(s)
	return out
}

// SanitizeCount is Sanitize plus the number of runes the lossy filter
// discarded. Substituted runes do not count as dropped.
func SanitizeCount(s string) (string, int) {
	s = replacer.Replace(s)
	dropped := 0
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > 0xFF {
			dropped++
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), dropped
}

// SanitizeAny sanitizes v when it is a string and returns "" for every
// other type, mirroring the defensive guard on untyped tabular cells.
func SanitizeAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Sanitize(s)
}
