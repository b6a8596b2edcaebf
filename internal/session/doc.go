// Package session drives a single long-lived interactive shell attached
// to a pseudo-terminal.
//
// A PTY owns the subprocess and its raw read/write channel; completion of
// a command is only inferable from the reappearance of a synthetic prompt
// marker. The Controller sequences exactly one command at a time on top
// of that channel: it writes the command, waits for the marker under a
// hard per-call timeout, normalizes whatever bytes arrived through the
// term package, bounds the text to a token budget, and retrieves the exit
// status. A command that outlives its timeout is not an error — the
// partial output is returned with a "(pending)" suffix and the session
// accepts only special input (typically an interrupt) until the marker is
// finally observed.
package session
