// Package term normalizes raw terminal output into bounded plain text.
//
// It models a minimal scrolling screen: printable characters append to the
// tail line, line feeds scroll, and all other recognized control/escape
// sequences are swallowed. This is a deliberate fidelity limit — there is
// no cursor emulation, color tracking, or alternate screen support. The
// result is deterministic text bounded by the configured width and height
// regardless of how noisy the raw stream is.
package term
