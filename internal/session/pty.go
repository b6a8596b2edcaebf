package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
)

// PromptMarker is the synthetic prompt substituted for the shell's normal
// prompt. Its reappearance in the output stream is the sole signal that a
// command has completed.
const PromptMarker = "shellpilot→ "

// readPollInterval bounds each blocking read so the wait loop can check
// its deadline without busy-spinning.
const readPollInterval = 100 * time.Millisecond

// Options configures the shell subprocess.
type Options struct {
	Shell        string
	Cols         int
	Rows         int
	Env          []string
	WorkingDir   string
	StartTimeout time.Duration
}

// WaitResult is the outcome of waiting for the prompt marker. Complete
// means the marker was observed and Output holds everything before it;
// otherwise the timeout elapsed and Output holds the partial accumulation.
type WaitResult struct {
	Output   string
	Complete bool
}

// PTY owns an interactive shell subprocess attached to a pseudo-terminal.
// It is not safe for concurrent use; the caller provides single-writer
// discipline.
type PTY struct {
	ptmx   *os.File
	cmd    *exec.Cmd
	marker []byte

	// Bytes read past the last observed marker, carried into the next
	// wait so nothing already read is lost.
	pending []byte

	closed bool
}

var _ Transport = (*PTY)(nil)

// StartPTY spawns an interactive shell with the synthetic prompt and
// echo/canonical modes disabled, then confirms the first prompt within
// StartTimeout.
func StartPTY(opts Options) (*PTY, error) {
	shell := opts.Shell
	if shell == "" {
		shell = "/bin/bash"
	}
	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 {
		cols = 160
	}
	if rows <= 0 {
		rows = 500
	}
	startTimeout := opts.StartTimeout
	if startTimeout <= 0 {
		startTimeout = 10 * time.Second
	}

	// --norc keeps rc files from overriding the inherited PS1;
	// --noediting keeps readline from echoing input on its own.
	cmd := exec.Command(shell, "--noprofile", "--norc", "--noediting")
	if opts.WorkingDir != "" {
		cmd.Dir = opts.WorkingDir
	}
	cmd.Env = append(os.Environ(),
		"PS1="+PromptMarker,
		"PS2=",
		"PROMPT_COMMAND=",
		"TERM=xterm-256color",
		"GIT_PAGER=cat",
		"PAGER=cat",
	)
	cmd.Env = append(cmd.Env, opts.Env...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, &SessionError{Op: "spawn shell", Err: err}
	}

	p := &PTY{ptmx: ptmx, cmd: cmd, marker: []byte(PromptMarker)}

	if err := disableEchoAndCanon(int(ptmx.Fd())); err != nil {
		p.Close()
		return nil, &SessionError{Op: "set terminal modes", Err: err}
	}

	res, err := p.WaitForMarker(context.Background(), startTimeout)
	if err != nil {
		p.Close()
		return nil, err
	}
	if !res.Complete {
		p.Close()
		return nil, &SessionError{
			Op:  "confirm prompt",
			Err: errors.New("prompt marker not observed before timeout"),
		}
	}
	return p, nil
}

// SendLine writes text followed by a line terminator to the shell's input.
func (p *PTY) SendLine(text string) error {
	if _, err := p.ptmx.WriteString(text + "\n"); err != nil {
		return &SessionError{Op: "send line", Err: err}
	}
	return nil
}

// SendRaw writes bytes verbatim, bypassing line framing.
func (p *PTY) SendRaw(b []byte) error {
	if _, err := p.ptmx.Write(b); err != nil {
		return &SessionError{Op: "send raw", Err: err}
	}
	return nil
}

// WaitForMarker blocks until the prompt marker appears in the output
// stream or the timeout elapses. On timeout the partial accumulation is
// returned and also retained, so a later wait still sees every byte.
func (p *PTY) WaitForMarker(ctx context.Context, timeout time.Duration) (WaitResult, error) {
	acc := p.pending
	p.pending = nil
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 4096)

	for {
		if before, rest, found := splitMarker(acc, p.marker); found {
			p.pending = rest
			return WaitResult{Output: string(before), Complete: true}, nil
		}

		if err := ctx.Err(); err != nil {
			p.pending = acc
			return WaitResult{Output: string(acc)}, &SessionError{Op: "wait for prompt", Err: err}
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			p.pending = acc
			return WaitResult{Output: string(acc)}, nil
		}

		poll := readPollInterval
		if remaining < poll {
			poll = remaining
		}
		if err := p.ptmx.SetReadDeadline(time.Now().Add(poll)); err != nil {
			p.pending = acc
			return WaitResult{Output: string(acc)}, &SessionError{Op: "set read deadline", Err: err}
		}

		n, err := p.ptmx.Read(buf)
		if n > 0 {
			acc = append(acc, buf[:n]...)
		}
		if err != nil && !os.IsTimeout(err) {
			p.pending = acc
			return WaitResult{Output: string(acc)}, &SessionError{Op: "read output", Err: err}
		}
	}
}

// Resize changes the pseudo-terminal dimensions.
func (p *PTY) Resize(cols, rows int) error {
	err := pty.Setsize(p.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return &SessionError{Op: "resize", Err: err}
	}
	return nil
}

// Close kills the shell subprocess and releases the pseudo-terminal.
func (p *PTY) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
	err := p.ptmx.Close()
	p.cmd.Wait()

	if err != nil {
		return &SessionError{Op: "close pty", Err: err}
	}
	return nil
}

// splitMarker splits buf around the first occurrence of marker.
func splitMarker(buf, marker []byte) (before, rest []byte, found bool) {
	idx := bytes.Index(buf, marker)
	if idx < 0 {
		return nil, nil, false
	}
	return buf[:idx], append([]byte(nil), buf[idx+len(marker):]...), true
}
