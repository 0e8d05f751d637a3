package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Bridge performs one-shot sample transformations by piping raw PCM through
// an ffmpeg subprocess. Each call is a single synchronous round trip: the
// full input is fed on stdin, stdout is captured, and the process is waited
// on before the call returns. A Bridge holds no per-call state and is safe
// for concurrent use.
type Bridge struct {
	Options Options
}

// New creates a Bridge with default options
func New() *Bridge {
	return &Bridge{
		Options: DefaultOptions(),
	}
}

// WithOptions sets custom invocation options
func (b *Bridge) WithOptions(opts Options) *Bridge {
	b.Options = opts
	return b
}

// Process runs the generic round trip: the buffer is declared as raw s16le
// input, beforeInput/afterInput are spliced around -i pipe:0 (ffmpeg applies
// options positionally), and the output is decoded using the same framing.
// The two named operations, Atempo and Trim, are built on this.
func (b *Bridge) Process(ctx context.Context, buf *SampleBuffer, beforeInput, afterInput []string) (*SampleBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	format := buf.format()
	args := b.buildCommandArgs(format, beforeInput, afterInput)

	raw, err := b.run(ctx, args, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return SampleBufferFromBytes(raw, buf.SampleRate, buf.Channels), nil
}

// run spawns ffmpeg, feeds input on stdin, and captures stdout and exit
// status synchronously. On non-zero exit the captured stderr is surfaced
// in the returned error.
func (b *Bridge) run(ctx context.Context, args []string, input []byte) ([]byte, error) {
	path, err := exec.LookPath(b.Options.path())
	if err != nil {
		return nil, newCommandError(ErrFFmpegNotFound, append([]string{b.Options.path()}, args...), err.Error())
	}

	if b.Options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Options.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(input)

	stdout := &bytes.Buffer{}
	if b.Options.BufferSize > 0 {
		stdout.Grow(b.Options.BufferSize)
	}
	cmd.Stdout = stdout

	stderr := &bytes.Buffer{}
	if b.Options.Verbose {
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stderr = stderr
	}

	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, newCommandError(ErrFFmpegFailure, cmd.Args, ctxErr.Error())
		}
		return nil, newCommandError(ErrFFmpegNotFound, cmd.Args, err.Error())
	}

	GetMonitor().TrackProcess(cmd.Process.Pid)
	defer GetMonitor().UntrackProcess(cmd.Process.Pid)

	if err := cmd.Wait(); err != nil {
		GetMonitor().RecordFailure()

		// CommandContext kills on deadline; report the cause, not just
		// the "signal: killed" exit error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, newCommandError(ErrFFmpegFailure, cmd.Args, fmt.Sprintf("%v: %s", ctxErr, stderr.String()))
		}

		return nil, newCommandError(ErrFFmpegFailure, cmd.Args, stderr.String())
	}

	return stdout.Bytes(), nil
}

// buildCommandArgs constructs the complete ffmpeg command arguments:
// global options, input framing, input pipe, filter/operation options,
// output framing, output pipe. Output framing always mirrors the input.
func (b *Bridge) buildCommandArgs(format Format, beforeInput, afterInput []string) []string {
	args := b.Options.buildGlobalArgs()
	args = append(args, format.buildInputArgs(beforeInput)...)
	args = append(args, format.buildOutputArgs(afterInput)...)
	return args
}

// CheckFFmpegInstalled verifies that ffmpeg is installed and accessible
func CheckFFmpegInstalled(ffmpegPath string) error {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}

	cmd := exec.Command(ffmpegPath, "-version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %q not executable: %v", ErrFFmpegNotFound, ffmpegPath, err)
	}

	return nil
}
