package ffmpeg

import (
	"encoding/binary"
	"fmt"
	"time"
)

// SampleBuffer is an ordered sequence of interleaved signed 16-bit samples
// tagged with its sample rate and channel count. It is the unit of exchange
// with the ffmpeg subprocess: inputs are encoded from it, outputs decoded
// back into it. The bridge never retains or mutates a caller's buffer.
type SampleBuffer struct {
	Samples    []int16 // interleaved PCM samples
	SampleRate int     // sample rate in Hz
	Channels   int     // number of channels: 1 = mono, 2 = stereo
}

// NewSampleBuffer creates a SampleBuffer over the given samples.
func NewSampleBuffer(samples []int16, sampleRate, channels int) *SampleBuffer {
	return &SampleBuffer{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// SampleBufferFromBytes decodes raw little-endian 16-bit PCM into a
// SampleBuffer. A trailing partial frame, if any, is discarded: the sample
// count is len(raw) / (2 * channels) frames.
func SampleBufferFromBytes(raw []byte, sampleRate, channels int) *SampleBuffer {
	if channels < 1 {
		channels = 1
	}

	frameSize := 2 * channels
	numFrames := len(raw) / frameSize

	samples := make([]int16, numFrames*channels)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
	}

	return &SampleBuffer{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// Bytes encodes the samples as raw little-endian 16-bit PCM, the framing
// declared to ffmpeg as s16le.
func (b *SampleBuffer) Bytes() []byte {
	raw := make([]byte, len(b.Samples)*2)
	for i, s := range b.Samples {
		binary.LittleEndian.PutUint16(raw[2*i:2*i+2], uint16(s))
	}
	return raw
}

// NumFrames returns the number of sample frames (samples per channel).
func (b *SampleBuffer) NumFrames() int {
	if b.Channels < 1 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the playback duration of the buffer.
func (b *SampleBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.NumFrames()) / float64(b.SampleRate) * float64(time.Second))
}

// Seconds returns the playback duration in seconds.
func (b *SampleBuffer) Seconds() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.NumFrames()) / float64(b.SampleRate)
}

// Equal reports whether two buffers carry identical samples and metadata.
func (b *SampleBuffer) Equal(other *SampleBuffer) bool {
	if other == nil {
		return false
	}
	if b.SampleRate != other.SampleRate || b.Channels != other.Channels {
		return false
	}
	if len(b.Samples) != len(other.Samples) {
		return false
	}
	for i := range b.Samples {
		if b.Samples[i] != other.Samples[i] {
			return false
		}
	}
	return true
}

// Validate checks the buffer metadata before a subprocess is spawned.
func (b *SampleBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}

	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidArgument, b.SampleRate)
	}

	if b.Channels <= 0 {
		return fmt.Errorf("%w: channel count must be positive, got %d", ErrInvalidArgument, b.Channels)
	}

	if len(b.Samples)%b.Channels != 0 {
		return fmt.Errorf("%w: sample count %d is not a multiple of %d channels",
			ErrInvalidArgument, len(b.Samples), b.Channels)
	}

	return nil
}

// format returns the raw framing this buffer declares to ffmpeg.
func (b *SampleBuffer) format() Format {
	return Format{
		SampleFormat: S16LE,
		SampleRate:   b.SampleRate,
		Channels:     b.Channels,
	}
}
