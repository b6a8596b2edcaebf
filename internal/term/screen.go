package term

import (
	"strings"
	"unicode/utf8"
)

// Default terminal dimensions for rendered output.
const (
	DefaultWidth  = 160
	DefaultHeight = 500
)

// Screen is a fixed-size scrolling line buffer. Text is only ever appended
// at the tail line; when the tail would exceed the configured width the
// buffer scrolls, dropping the oldest line. It performs no I/O and knows
// nothing about escape sequences.
type Screen struct {
	lines  []string
	width  int
	height int
}

// NewScreen creates a screen with the given dimensions. Non-positive
// dimensions fall back to the defaults.
func NewScreen(width, height int) *Screen {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Screen{
		lines:  make([]string, height),
		width:  width,
		height: height,
	}
}

// ScrollUp drops the oldest line and appends a fresh empty tail line.
func (s *Screen) ScrollUp() {
	copy(s.lines, s.lines[1:])
	s.lines[s.height-1] = ""
}

// WriteText appends text to the tail line, scrolling first if the tail
// would exceed the screen width.
func (s *Screen) WriteText(text string) {
	tail := s.lines[s.height-1]
	if utf8.RuneCountInString(tail)+utf8.RuneCountInString(text) > s.width {
		s.ScrollUp()
	}
	s.lines[s.height-1] += text
}

// Render joins the buffer into a single string, dropping all-whitespace
// lines from the tail. Lines above the last non-blank line are preserved
// in original order.
func (s *Screen) Render() string {
	end := s.height
	for end > 0 && strings.TrimSpace(s.lines[end-1]) == "" {
		end--
	}
	return strings.Join(s.lines[:end], "\n")
}

// Width returns the configured line width.
func (s *Screen) Width() int { return s.width }

// Height returns the configured line capacity.
func (s *Screen) Height() int { return s.height }
