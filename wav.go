package ffmpeg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV interop for inspecting buffers outside the bridge. The subprocess
// exchange itself never uses file headers; these helpers only exist so
// callers can round-trip a SampleBuffer to a .wav on disk.

// IntBuffer converts the buffer to a go-audio IntBuffer.
func (b *SampleBuffer) IntBuffer() *audio.IntBuffer {
	data := make([]int, len(b.Samples))
	for i, s := range b.Samples {
		data[i] = int(s)
	}

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: b.Channels,
			SampleRate:  b.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}

// SampleBufferFromIntBuffer converts a go-audio IntBuffer to a SampleBuffer,
// clamping values outside the 16-bit range.
func SampleBufferFromIntBuffer(ib *audio.IntBuffer) (*SampleBuffer, error) {
	if ib == nil || ib.Format == nil {
		return nil, fmt.Errorf("%w: nil int buffer", ErrInvalidArgument)
	}

	samples := make([]int16, len(ib.Data))
	for i, v := range ib.Data {
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		samples[i] = int16(v)
	}

	return &SampleBuffer{
		Samples:    samples,
		SampleRate: ib.Format.SampleRate,
		Channels:   ib.Format.NumChannels,
	}, nil
}

// WriteWAV writes the buffer as a 16-bit PCM WAV. A WriteSeeker is required
// because the encoder patches chunk sizes in the header after writing.
func (b *SampleBuffer) WriteWAV(ws io.WriteSeeker) error {
	if err := b.Validate(); err != nil {
		return err
	}

	enc := wav.NewEncoder(ws, b.SampleRate, 16, b.Channels, 1)
	if err := enc.Write(b.IntBuffer()); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav finalize: %w", err)
	}

	return nil
}

// ReadWAV decodes a PCM WAV stream into a SampleBuffer.
func ReadWAV(rs io.ReadSeeker) (*SampleBuffer, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a valid wav stream", ErrInvalidArgument)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav decode: %w", err)
	}

	return SampleBufferFromIntBuffer(ib)
}

// ReadWAVBytes decodes an in-memory PCM WAV into a SampleBuffer.
func ReadWAVBytes(data []byte) (*SampleBuffer, error) {
	return ReadWAV(bytes.NewReader(data))
}
