package ffmpeg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSampleBuffer_BytesRoundTrip verifies little-endian encode/decode
func TestSampleBuffer_BytesRoundTrip(t *testing.T) {
	samples := []int16{-32768, -1, 0, 1, 256, 32767}
	buf := NewSampleBuffer(samples, 16000, 1)

	raw := buf.Bytes()
	require.Len(t, raw, len(samples)*2)

	// spot-check byte order: 1 encodes as 0x01 0x00
	assert.Equal(t, byte(0x01), raw[6])
	assert.Equal(t, byte(0x00), raw[7])

	decoded := SampleBufferFromBytes(raw, 16000, 1)
	assert.True(t, buf.Equal(decoded))
}

// TestSampleBufferFromBytes_PartialFrame verifies a trailing partial frame
// is discarded: length = byte count / (width * channels)
func TestSampleBufferFromBytes_PartialFrame(t *testing.T) {
	// 7 bytes of stereo s16le: one full frame (4 bytes), 3 bytes left over
	raw := []byte{1, 0, 2, 0, 3, 0, 4}

	buf := SampleBufferFromBytes(raw, 44100, 2)
	assert.Equal(t, 2, len(buf.Samples))
	assert.Equal(t, 1, buf.NumFrames())
	assert.Equal(t, []int16{1, 2}, buf.Samples)
}

// TestSampleBuffer_Duration verifies duration math
func TestSampleBuffer_Duration(t *testing.T) {
	buf := NewSampleBuffer(make([]int16, 16000), 16000, 1)
	assert.Equal(t, time.Second, buf.Duration())
	assert.InDelta(t, 1.0, buf.Seconds(), 1e-12)

	stereo := NewSampleBuffer(make([]int16, 16000), 16000, 2)
	assert.Equal(t, 500*time.Millisecond, stereo.Duration())
	assert.Equal(t, 8000, stereo.NumFrames())
}

// TestSampleBuffer_Validate covers the precondition checks
func TestSampleBuffer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		buf     *SampleBuffer
		wantErr bool
	}{
		{"valid mono", NewSampleBuffer([]int16{1, 2, 3}, 16000, 1), false},
		{"valid stereo", NewSampleBuffer([]int16{1, 2, 3, 4}, 44100, 2), false},
		{"valid empty", NewSampleBuffer(nil, 8000, 1), false},
		{"nil buffer", nil, true},
		{"zero rate", NewSampleBuffer([]int16{1}, 0, 1), true},
		{"negative rate", NewSampleBuffer([]int16{1}, -1, 1), true},
		{"zero channels", NewSampleBuffer([]int16{1}, 16000, 0), true},
		{"ragged stereo", NewSampleBuffer([]int16{1, 2, 3}, 16000, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buf.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestSampleBuffer_Equal verifies comparison semantics
func TestSampleBuffer_Equal(t *testing.T) {
	a := NewSampleBuffer([]int16{1, 2, 3}, 16000, 1)

	assert.True(t, a.Equal(NewSampleBuffer([]int16{1, 2, 3}, 16000, 1)))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(NewSampleBuffer([]int16{1, 2}, 16000, 1)))
	assert.False(t, a.Equal(NewSampleBuffer([]int16{1, 2, 4}, 16000, 1)))
	assert.False(t, a.Equal(NewSampleBuffer([]int16{1, 2, 3}, 8000, 1)))
	assert.False(t, a.Equal(NewSampleBuffer([]int16{1, 2, 3}, 16000, 3)))
}
