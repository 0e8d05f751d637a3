package ffmpeg

import "fmt"

// SampleFormat names a raw sample encoding the way ffmpeg's -f flag expects
// it. SampleBuffer always uses S16LE; the other formats are available to
// callers driving Process with their own byte slices.
type SampleFormat string

const (
	S16LE SampleFormat = "s16le" // signed 16-bit little-endian
	S32LE SampleFormat = "s32le" // signed 32-bit little-endian
	U32LE SampleFormat = "u32le" // unsigned 32-bit little-endian
	F32LE SampleFormat = "f32le" // 32-bit float little-endian
	F64LE SampleFormat = "f64le" // 64-bit float little-endian
)

// Width returns the sample width in bytes, or 0 for an unknown format.
func (f SampleFormat) Width() int {
	switch f {
	case S16LE:
		return 2
	case S32LE, U32LE, F32LE:
		return 4
	case F64LE:
		return 8
	}
	return 0
}

// Format defines the raw framing declared to ffmpeg for one side of the
// pipe: sample encoding, sample rate and channel count. Framing is passed
// via command-line arguments, never via file headers.
type Format struct {
	SampleFormat SampleFormat // raw sample encoding (e.g. s16le)
	SampleRate   int          // sample rate in Hz (e.g. 8000, 16000, 44100)
	Channels     int          // number of channels: 1 = mono, 2 = stereo
}

// Common format presets for convenience

var (
	// PCM_8K_MONO - 8kHz mono 16-bit (common for telephony)
	PCM_8K_MONO = Format{
		SampleFormat: S16LE,
		SampleRate:   8000,
		Channels:     1,
	}

	// PCM_16K_MONO - 16kHz mono 16-bit (common for speech recognition)
	PCM_16K_MONO = Format{
		SampleFormat: S16LE,
		SampleRate:   16000,
		Channels:     1,
	}

	// PCM_44K_STEREO - 44.1kHz stereo 16-bit (CD quality)
	PCM_44K_STEREO = Format{
		SampleFormat: S16LE,
		SampleRate:   44100,
		Channels:     2,
	}

	// PCM_48K_STEREO - 48kHz stereo 16-bit (professional audio)
	PCM_48K_STEREO = Format{
		SampleFormat: S16LE,
		SampleRate:   48000,
		Channels:     2,
	}
)

// buildInputArgs renders the framing declaration for the input side,
// ending with the stdin pipe: -f s16le -ar 16000 -ac 1 ... -i pipe:0
// (extra comes between the framing and -i, matching ffmpeg's requirement
// that input options precede the input).
func (f *Format) buildInputArgs(extra []string) []string {
	args := f.buildArgs()
	args = append(args, extra...)
	return append(args, "-i", "pipe:0")
}

// buildOutputArgs renders the framing declaration for the output side,
// ending with the stdout pipe.
func (f *Format) buildOutputArgs(extra []string) []string {
	args := append(extra, f.buildArgs()...)
	return append(args, "pipe:1")
}

func (f *Format) buildArgs() []string {
	var args []string

	if f.SampleFormat != "" {
		args = append(args, "-f", string(f.SampleFormat))
	}

	if f.SampleRate > 0 {
		args = append(args, "-ar", fmt.Sprintf("%d", f.SampleRate))
	}

	if f.Channels > 0 {
		args = append(args, "-ac", fmt.Sprintf("%d", f.Channels))
	}

	return args
}

// Validate checks if the Format has valid parameters.
func (f *Format) Validate() error {
	if f.SampleFormat.Width() == 0 {
		return fmt.Errorf("%w: unsupported sample format %q", ErrInvalidArgument, f.SampleFormat)
	}

	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidArgument, f.SampleRate)
	}

	if f.Channels <= 0 {
		return fmt.Errorf("%w: channel count must be positive, got %d", ErrInvalidArgument, f.Channels)
	}

	return nil
}
