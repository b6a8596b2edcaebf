package session

import "fmt"

// WorkflowError reports caller misuse: a malformed request or a request
// the current state cannot accept. The session itself is unaffected and
// the caller may retry with a corrected request.
type WorkflowError struct {
	Reason string
}

func (e *WorkflowError) Error() string { return e.Reason }

func workflowErrorf(format string, args ...any) *WorkflowError {
	return &WorkflowError{Reason: fmt.Sprintf(format, args...)}
}

// SessionError reports a transport or subprocess fault: the shell could
// not be spawned, or its channel could not be written or read for reasons
// other than a timeout. It is fatal for the call; the session is not
// restarted automatically.
type SessionError struct {
	Op  string
	Err error
}

func (e *SessionError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *SessionError) Unwrap() error { return e.Err }
