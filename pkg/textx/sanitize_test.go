// Package textx contains tests for the text utilities.
package textx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_Empty(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitize_RupeeSign(t *testing.T) {
	assert.Equal(t, "Rs100", Sanitize("₹100"))
}

func TestSanitize_CurlyPunctuation(t *testing.T) {
	in := "‘Hello’ — “World”"
	assert.Equal(t, `'Hello' - "World"`, Sanitize(in))
}

func TestSanitize_EnDash(t *testing.T) {
	assert.Equal(t, "2010-2020", Sanitize("2010–2020"))
}

func TestSanitize_DropsUnrepresentable(t *testing.T) {
	// CJK-only input vanishes entirely, with no placeholder.
	assert.Equal(t, "", Sanitize("日本語"))
	// Mixed input keeps encodable runes in their original order.
	assert.Equal(t, "café news", Sanitize("café 世界news"))
}

func TestSanitize_Latin1Passthrough(t *testing.T) {
	in := "résumé ¿qué? ÿ"
	assert.Equal(t, in, Sanitize(in))
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"₹100 — “quoted”",
		"世界 mixed café",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

func TestSanitize_OutputStaysSingleByte(t *testing.T) {
	in := "₹ – — ’‘ “” 世界 café"
	for _, r := range Sanitize(in) {
		require.LessOrEqual(t, int(r), 0xFF)
	}
}

func TestSanitizeCount(t *testing.T) {
	out, dropped := SanitizeCount("a世b界c")
	assert.Equal(t, "abc", out)
	assert.Equal(t, 2, dropped)

	// Substituted runes are not counted as dropped.
	out, dropped = SanitizeCount("₹100")
	assert.Equal(t, "Rs100", out)
	assert.Equal(t, 0, dropped)
}

func TestSanitizeAny_NonText(t *testing.T) {
	for _, v := range []any{nil, 42, 3.14, true, []string{"x"}, map[string]int{"a": 1}} {
		assert.Equal(t, "", SanitizeAny(v))
	}
}

func TestSanitizeAny_Text(t *testing.T) {
	assert.Equal(t, "Rs100", SanitizeAny("₹100"))
}
