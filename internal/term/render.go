package term

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Renderer feeds a raw terminal byte stream through an escape-aware parser
// into a Screen and produces clean text snapshots. Only printable
// characters and line feeds affect the screen; every other control or
// escape sequence the parser recognizes is consumed without moving the
// write position. Cursor addressing and colors are deliberately not
// emulated.
type Renderer struct {
	screen *Screen
	parser *ansi.Parser
}

// NewRenderer creates a renderer with a fresh screen of the given
// dimensions.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		screen: NewScreen(width, height),
		parser: ansi.NewParser(),
	}
	r.parser.SetHandler(ansi.Handler{
		Print:   r.print,
		Execute: r.execute,
	})
	return r
}

func (r *Renderer) print(ru rune) {
	r.screen.WriteText(string(ru))
}

func (r *Renderer) execute(b byte) {
	if b == '\n' {
		r.screen.ScrollUp()
	}
}

// Feed advances the parser over p. Horizontal tabs are expanded to four
// spaces before parsing since the screen does not track tab stops.
func (r *Renderer) Feed(p []byte) {
	expanded := strings.ReplaceAll(string(p), "\t", "    ")
	for i := 0; i < len(expanded); i++ {
		r.parser.Advance(expanded[i])
	}
}

// Render returns the current screen contents with trailing blank lines
// dropped and leading whitespace trimmed.
func (r *Renderer) Render() string {
	return strings.TrimLeftFunc(r.screen.Render(), unicode.IsSpace)
}

// Render normalizes a complete byte stream in one shot using default
// dimensions.
func Render(p []byte) string {
	return RenderSized(p, DefaultWidth, DefaultHeight)
}

// RenderSized normalizes a complete byte stream in one shot.
func RenderSized(p []byte, width, height int) string {
	r := NewRenderer(width, height)
	r.Feed(p)
	return r.Render()
}
