package tokens

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Tiktoken adapts a BPE encoder to the Tokenizer capability. Encoder data
// is embedded in the library, so construction never touches the network.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

// NewTiktoken loads the encoding for the given model name.
func NewTiktoken(model string) (*Tiktoken, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("load encoding for %q: %w", model, err)
	}
	return &Tiktoken{enc: enc}, nil
}

// Encode converts text to token ids.
func (t *Tiktoken) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

// Decode converts token ids back to text.
func (t *Tiktoken) Decode(toks []int) string {
	return t.enc.Decode(toks)
}
