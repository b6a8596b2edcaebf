package term

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen_WriteAndRender(t *testing.T) {
	s := NewScreen(10, 4)
	s.WriteText("hello")

	// Lines above the write position stay blank until they scroll away.
	assert.Equal(t, "\n\n\nhello", s.Render())
}

func TestScreen_ScrollOnWidthOverflow(t *testing.T) {
	s := NewScreen(5, 3)
	s.WriteText("abcde")
	s.WriteText("f")

	// Overflow wraps to a fresh tail line.
	assert.Equal(t, "\nabcde\nf", s.Render())
}

func TestScreen_RenderDropsTrailingBlankLines(t *testing.T) {
	s := NewScreen(10, 5)
	s.WriteText("one")
	s.ScrollUp()
	s.WriteText("two")
	s.ScrollUp()
	s.ScrollUp()

	assert.Equal(t, "\none\ntwo", s.Render())
}

func TestScreen_BlankInteriorLinesPreserved(t *testing.T) {
	s := NewScreen(10, 5)
	s.WriteText("a")
	s.ScrollUp()
	s.ScrollUp()
	s.WriteText("b")

	assert.Equal(t, "\n\na\n\nb", s.Render())
}

func TestRenderer_PlainText(t *testing.T) {
	out := Render([]byte("hello world\n"))
	assert.Equal(t, "hello world", out)
}

func TestRenderer_LineFeedScrolls(t *testing.T) {
	out := Render([]byte("one\ntwo\nthree"))
	assert.Equal(t, "one\ntwo\nthree", out)
}

func TestRenderer_StripsColorSequences(t *testing.T) {
	out := Render([]byte("\x1b[31mred\x1b[0m text"))
	assert.Equal(t, "red text", out)
}

func TestRenderer_CursorSequencesDoNotMoveWritePosition(t *testing.T) {
	// Cursor-up would rewrite a previous line in a real terminal; here the
	// sequence is swallowed and text stays appended at the tail.
	out := Render([]byte("first\n\x1b[Asecond"))
	assert.Equal(t, "first\nsecond", out)
}

func TestRenderer_TabExpansion(t *testing.T) {
	out := Render([]byte("a\tb"))
	assert.Equal(t, "a    b", out)
}

func TestRenderer_CarriageReturnIgnored(t *testing.T) {
	out := Render([]byte("progress 1\rprogress 2"))
	assert.Equal(t, "progress 1progress 2", out)
}

func TestRenderer_LeadingWhitespaceTrimmed(t *testing.T) {
	out := Render([]byte("\n\n   hello"))
	assert.Equal(t, "hello", out)
}

func TestRenderer_IdempotentForCleanInput(t *testing.T) {
	input := []byte("alpha\nbeta\ngamma\n")

	first := Render(input)
	second := Render([]byte(first))

	assert.Equal(t, first, second)
}

func TestRenderer_HeightBoundsOutput(t *testing.T) {
	r := NewRenderer(160, 500)
	for i := 0; i < 5000; i++ {
		r.Feed([]byte(fmt.Sprintf("line %d\n", i)))
	}

	out := r.Render()
	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), 500)
	// Most recent output is retained.
	assert.Equal(t, "line 4999", lines[len(lines)-1])
}

func TestRenderer_IncrementalFeedMatchesOneShot(t *testing.T) {
	input := []byte("chunk one\nchunk \x1b[1mtwo\x1b[0m\nchunk three\n")

	r := NewRenderer(DefaultWidth, DefaultHeight)
	for _, b := range input {
		r.Feed([]byte{b})
	}

	assert.Equal(t, Render(input), r.Render())
}

func TestRenderer_LongLineWraps(t *testing.T) {
	r := NewRenderer(10, 20)
	r.Feed([]byte(strings.Repeat("x", 25)))

	out := r.Render()
	lines := strings.Split(out, "\n")
	assert.Equal(t, 3, len(lines))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 10)
	}
}
