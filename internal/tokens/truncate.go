// Package tokens bounds rendered shell output to a token budget.
package tokens

// TruncationMarker is prepended to output that lost its oldest content.
const TruncationMarker = "...(truncated)\n"

// DefaultBudget is the maximum token count returned when none is
// configured.
const DefaultBudget = 2048

// Tokenizer is the encode/decode capability consumed by the truncator.
// Construction of concrete tokenizers happens in the composition root.
type Tokenizer interface {
	Encode(text string) []int
	Decode(tokens []int) string
}

// Truncator caps text to a fixed token budget, always dropping from the
// front so the most recent output survives.
type Truncator struct {
	tok    Tokenizer
	budget int
}

// NewTruncator creates a truncator. A non-positive budget falls back to
// DefaultBudget.
func NewTruncator(tok Tokenizer, budget int) *Truncator {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Truncator{tok: tok, budget: budget}
}

// Budget returns the configured token budget.
func (t *Truncator) Budget() int { return t.budget }

// Truncate returns text unchanged when it fits the budget. Otherwise it
// keeps the last budget-1 tokens and prepends the truncation marker. The
// second return reports whether truncation occurred.
func (t *Truncator) Truncate(text string) (string, bool) {
	toks := t.tok.Encode(text)
	if len(toks) <= t.budget {
		return text, false
	}
	tail := t.tok.Decode(toks[len(toks)-(t.budget-1):])
	return TruncationMarker + tail, true
}
