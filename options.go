package ffmpeg

import "time"

// Options provides additional options for bridge invocations
type Options struct {
	// FFmpegPath specifies the path to the ffmpeg binary (defaults to "ffmpeg").
	// Making this explicit lets tests inject a stub executable.
	FFmpegPath string

	// LogLevel sets ffmpeg's -loglevel (defaults to "error" so stderr only
	// carries diagnostics worth surfacing on failure)
	LogLevel string

	// Verbose lets ffmpeg's stderr pass through to the parent process
	// instead of being captured, for debugging
	Verbose bool

	// Timeout sets the maximum duration for one invocation (0 = no timeout).
	// On expiry the subprocess is killed and the call fails.
	Timeout time.Duration

	// BufferSize pre-sizes the output buffer in bytes (0 = let it grow)
	BufferSize int
}

// DefaultOptions returns Options with sensible defaults
func DefaultOptions() Options {
	return Options{
		FFmpegPath: "ffmpeg",
		LogLevel:   "error",
		Verbose:    false,
	}
}

// buildGlobalArgs converts Options to ffmpeg global arguments
func (o *Options) buildGlobalArgs() []string {
	args := []string{"-hide_banner"}

	level := o.LogLevel
	if o.Verbose {
		level = "info"
	} else if level == "" {
		level = "error"
	}

	return append(args, "-loglevel", level)
}

func (o *Options) path() string {
	if o.FFmpegPath == "" {
		return "ffmpeg"
	}
	return o.FFmpegPath
}
