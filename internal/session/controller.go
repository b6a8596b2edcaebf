package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/halcyonlabs/shellpilot/internal/monitoring"
	"github.com/halcyonlabs/shellpilot/internal/shared/id"
	"github.com/halcyonlabs/shellpilot/internal/term"
	"github.com/halcyonlabs/shellpilot/internal/tokens"
)

// State is the controller's command-acceptance state.
type State int

const (
	// StateIdle means no command is outstanding and new input is accepted.
	StateIdle State = iota
	// StateWaitingForInput means a prior command timed out without
	// reaching the prompt; only special input is accepted until it
	// resolves.
	StateWaitingForInput
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaitingForInput:
		return "waiting_for_input"
	default:
		return "unknown"
	}
}

// Logger is the line-oriented logging sink consumed by the controller.
// Each submitted command is logged once as "$ <command>".
type Logger interface {
	Log(message string)
}

type nopLogger struct{}

func (nopLogger) Log(string) {}

// Transport abstracts the pseudo-terminal session so the controller can
// be exercised without a subprocess.
type Transport interface {
	SendLine(text string) error
	SendRaw(b []byte) error
	WaitForMarker(ctx context.Context, timeout time.Duration) (WaitResult, error)
	Close() error
}

// Request carries either a single-line command or a special input, never
// both. Build one with Command or Special.
type Request struct {
	command    string
	hasCommand bool
	special    *SpecialInput
}

// Command builds a request carrying a textual command.
func Command(cmd string) Request {
	return Request{command: cmd, hasCommand: true}
}

// Special builds a request carrying raw or named-key input.
func Special(si SpecialInput) Request {
	return Request{special: &si}
}

// exitCodeProbe prints the last exit status once a command's prompt has
// been observed.
const exitCodeProbe = "echo $?"

// maxExitCodeWaits bounds the status parse loop so a marker that never
// reappears surfaces as a fault instead of looping forever.
const maxExitCodeWaits = 100

const pendingSuffix = "(pending)"

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	Transport  Transport
	Truncator  *tokens.Truncator
	Logger     Logger
	Metrics    *monitoring.Metrics
	Timeout    time.Duration
	TermWidth  int
	TermHeight int
}

// Controller sequences one command at a time over a single shell session
// and produces bounded textual results with exit status. It is not safe
// for concurrent use; single-writer discipline is a precondition.
type Controller struct {
	id         id.SessionID
	transport  Transport
	truncator  *tokens.Truncator
	logger     Logger
	metrics    *monitoring.Metrics
	timeout    time.Duration
	termWidth  int
	termHeight int
	state      State
	startedAt  time.Time
}

// NewController creates a controller over the given transport.
func NewController(opts ControllerOptions) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	width := opts.TermWidth
	if width <= 0 {
		width = term.DefaultWidth
	}
	height := opts.TermHeight
	if height <= 0 {
		height = term.DefaultHeight
	}

	c := &Controller{
		id:         id.NewSessionID(),
		transport:  opts.Transport,
		truncator:  opts.Truncator,
		logger:     logger,
		metrics:    opts.Metrics,
		timeout:    timeout,
		termWidth:  width,
		termHeight: height,
		state:      StateIdle,
		startedAt:  time.Now(),
	}
	c.metrics.SessionStarted()
	return c
}

// ID returns the session identifier.
func (c *Controller) ID() id.SessionID { return c.id }

// State returns the current command-acceptance state.
func (c *Controller) State() State { return c.state }

// Status is a point-in-time snapshot of the session.
type Status struct {
	ID     id.SessionID
	State  State
	Uptime time.Duration
}

// Status returns a snapshot of the session.
func (c *Controller) Status() Status {
	return Status{
		ID:     c.id,
		State:  c.state,
		Uptime: time.Since(c.startedAt),
	}
}

// Execute runs one command or delivers one special input and returns the
// normalized, token-bounded output. Successful results end with either
// "(exit <code>)" or "(pending)"; the latter means the command is still
// in flight and the session accepts only special input until it resolves.
func (c *Controller) Execute(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	out, err := c.execute(ctx, req)

	switch {
	case err != nil:
		var wf *WorkflowError
		if !errors.As(err, &wf) {
			c.metrics.ObserveCommand(monitoring.StatusError, time.Since(start))
		}
	case strings.HasSuffix(out, pendingSuffix):
		c.metrics.ObserveCommand(monitoring.StatusPending, time.Since(start))
	default:
		c.metrics.ObserveCommand(monitoring.StatusExit, time.Since(start))
	}
	return out, err
}

func (c *Controller) execute(ctx context.Context, req Request) (string, error) {
	switch {
	case req.hasCommand:
		return c.executeCommand(ctx, req.command)
	case req.special != nil:
		return c.executeSpecial(ctx, *req.special)
	default:
		return "", workflowErrorf("no command or special input to send")
	}
}

func (c *Controller) executeCommand(ctx context.Context, command string) (string, error) {
	if c.state == StateWaitingForInput {
		return "", workflowErrorf(
			"command already running: interrupt it with special input before issuing a new command")
	}

	command = strings.TrimSpace(command)
	if strings.ContainsRune(command, '\n') {
		return "", workflowErrorf(
			"command must not contain a newline: run one command at a time")
	}

	c.logger.Log("$ " + command)
	if err := c.transport.SendLine(command); err != nil {
		return "", err
	}
	return c.collect(ctx)
}

func (c *Controller) executeSpecial(ctx context.Context, si SpecialInput) (string, error) {
	b, err := si.Bytes()
	if err != nil {
		return "", err
	}
	if err := c.transport.SendRaw(b); err != nil {
		return "", err
	}
	return c.collect(ctx)
}

// collect waits for the prompt marker and assembles the result string.
func (c *Controller) collect(ctx context.Context) (string, error) {
	c.state = StateIdle

	res, err := c.transport.WaitForMarker(ctx, c.timeout)
	if err != nil {
		return "", err
	}

	output := c.bound(c.render(res.Output))

	if !res.Complete {
		c.state = StateWaitingForInput
		return output + "\n" + pendingSuffix, nil
	}

	code, err := c.exitCode(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n(exit %d)", output, code), nil
}

// exitCode retrieves the last command's exit status. The probe's own
// residual buffered bytes may occupy the first prompt cycle(s), so
// non-numeric text is discarded and the wait repeats, up to
// maxExitCodeWaits cycles.
func (c *Controller) exitCode(ctx context.Context) (int, error) {
	if err := c.transport.SendLine(exitCodeProbe); err != nil {
		return 0, err
	}

	var text string
	for attempt := 0; attempt < maxExitCodeWaits; attempt++ {
		if code, perr := strconv.Atoi(strings.TrimSpace(text)); perr == nil {
			return code, nil
		}

		res, err := c.transport.WaitForMarker(ctx, c.timeout)
		if err != nil {
			return 0, err
		}
		if !res.Complete {
			return 0, &SessionError{
				Op:  "read exit status",
				Err: errors.New("prompt marker not observed"),
			}
		}
		text = c.render(res.Output)
	}
	return 0, &SessionError{
		Op:  "read exit status",
		Err: fmt.Errorf("no integer status after %d prompt cycles", maxExitCodeWaits),
	}
}

func (c *Controller) render(raw string) string {
	return term.RenderSized([]byte(raw), c.termWidth, c.termHeight)
}

func (c *Controller) bound(text string) string {
	if c.truncator == nil {
		return text
	}
	out, truncated := c.truncator.Truncate(text)
	if truncated {
		c.metrics.ObserveTruncation()
	}
	return out
}

// Close tears down the underlying session.
func (c *Controller) Close() error {
	err := c.transport.Close()
	c.metrics.SessionClosed()
	return err
}
