// Package ffmpeg provides a Go wrapper for the ffmpeg CLI that applies
// simple transformations (tempo change, trim) to in-memory PCM sample
// buffers.
//
// The library owns the full round trip for each operation: a SampleBuffer
// is encoded to raw little-endian bytes, fed to an ffmpeg subprocess over
// stdin, and the subprocess stdout is decoded back into a SampleBuffer.
// No audio codec or resampling math is implemented here; all signal
// processing is delegated to the ffmpeg binary.
//
// # Basic Usage
//
// Tempo change (factor 2.0 halves the duration):
//
//	buf := ffmpeg.NewSampleBuffer(samples, 16000, 1)
//	out, err := ffmpeg.New().Atempo(buf, 2.0)
//
// Trim to a time range:
//
//	out, err := ffmpeg.New().Trim(buf, 0.5, 2.0)
//
// Or use the package-level entry points when the samples are a bare slice:
//
//	out, err := ffmpeg.AudioAtempo(samples, 2.0, 16000, 1)
//	out, err := ffmpeg.AudioTrim(samples, 0, 0.01, 16000, 1)
//
// # Concurrency
//
// Each call spawns its own subprocess with its own pipes and blocks until
// the process exits; calls share no mutable state. A Pool can bound the
// number of concurrent ffmpeg processes under high load:
//
//	pool := ffmpeg.NewPoolWithLimit(32)
//	bridge := ffmpeg.NewPooledBridge(pool)
//	out, err := bridge.Atempo(ctx, buf, 1.5)
//
// # Errors
//
// Failures are distinguishable with errors.Is:
//   - ErrInvalidArgument: a precondition was violated; no subprocess spawned
//   - ErrFFmpegNotFound: the ffmpeg binary is missing from the environment
//   - ErrFFmpegFailure: ffmpeg exited non-zero or produced unusable output
//   - ErrUnsupportedParameter: a value no single invocation can express
//
// # Requirements
//
// ffmpeg must be installed and accessible in PATH (or an explicit path
// set via Options.FFmpegPath):
//   - macOS: brew install ffmpeg
//   - Ubuntu/Debian: apt-get install ffmpeg
//   - RHEL/CentOS: yum install ffmpeg
//
// Verify installation:
//
//	err := ffmpeg.CheckFFmpegInstalled("")
package ffmpeg
