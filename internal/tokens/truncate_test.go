package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runeTokenizer maps every rune to one token, which makes budget math
// exact in tests.
type runeTokenizer struct{}

func (runeTokenizer) Encode(text string) []int {
	toks := make([]int, 0, len(text))
	for _, r := range text {
		toks = append(toks, int(r))
	}
	return toks
}

func (runeTokenizer) Decode(toks []int) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteRune(rune(t))
	}
	return b.String()
}

func TestTruncate_UnderBudgetUnchanged(t *testing.T) {
	tr := NewTruncator(runeTokenizer{}, 10)

	out, truncated := tr.Truncate("short")

	assert.False(t, truncated)
	assert.Equal(t, "short", out)
}

func TestTruncate_AtBudgetUnchanged(t *testing.T) {
	tr := NewTruncator(runeTokenizer{}, 5)

	out, truncated := tr.Truncate("12345")

	assert.False(t, truncated)
	assert.Equal(t, "12345", out)
}

func TestTruncate_OverBudgetKeepsTail(t *testing.T) {
	tr := NewTruncator(runeTokenizer{}, 5)

	out, truncated := tr.Truncate("abcdefghij")

	assert.True(t, truncated)
	// budget-1 = 4 most recent tokens survive.
	assert.Equal(t, TruncationMarker+"ghij", out)
}

func TestTruncate_OutputIsSuffixOfInput(t *testing.T) {
	tr := NewTruncator(runeTokenizer{}, 100)
	input := strings.Repeat("0123456789", 50)

	out, truncated := tr.Truncate(input)

	assert.True(t, truncated)
	tail := strings.TrimPrefix(out, TruncationMarker)
	assert.True(t, strings.HasSuffix(input, tail))
}

func TestTruncate_DefaultBudget(t *testing.T) {
	tr := NewTruncator(runeTokenizer{}, 0)
	assert.Equal(t, DefaultBudget, tr.Budget())
}
