package ffmpeg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument indicates a caller-supplied parameter violated a
	// precondition. It is returned before any subprocess is spawned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFFmpegNotFound indicates the ffmpeg binary is missing from the
	// environment (not in PATH and no explicit path configured).
	ErrFFmpegNotFound = errors.New("ffmpeg not found")

	// ErrFFmpegFailure indicates ffmpeg exited non-zero, was killed on
	// timeout, or produced output that cannot be decoded into the expected
	// sample framing.
	ErrFFmpegFailure = errors.New("ffmpeg failure")

	// ErrUnsupportedParameter indicates a value that is technically valid
	// but outside what a single ffmpeg invocation can express.
	ErrUnsupportedParameter = errors.New("unsupported parameter")
)

// CommandError carries the rendered command line and captured stderr of a
// failed ffmpeg invocation. It wraps ErrFFmpegFailure (or ErrFFmpegNotFound
// when the process could not be started), so errors.Is works on both.
type CommandError struct {
	Command []string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Err, strings.Join(e.Command, " "))
	if e.Stderr != "" {
		msg += "\nstderr: " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func newCommandError(sentinel error, command []string, stderr string) *CommandError {
	return &CommandError{
		Command: command,
		Stderr:  strings.TrimSpace(stderr),
		Err:     sentinel,
	}
}
