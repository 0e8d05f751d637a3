package ffmpeg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWAV_FileRoundTrip writes a buffer to a wav file and reads it back
func TestWAV_FileRoundTrip(t *testing.T) {
	buf := NewSampleBuffer([]int16{-32768, -100, 0, 100, 32767, 5}, 16000, 1)

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, buf.WriteWAV(f))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "RIFF", string(data[:4]))

	decoded, err := ReadWAVBytes(data)
	require.NoError(t, err)
	assert.True(t, buf.Equal(decoded), "wav round trip should preserve samples and metadata")
}

// TestWAV_StereoRoundTrip verifies channel metadata survives the trip
func TestWAV_StereoRoundTrip(t *testing.T) {
	buf := NewSampleBuffer([]int16{1, -1, 2, -2, 3, -3}, 44100, 2)

	path := filepath.Join(t.TempDir(), "stereo.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, buf.WriteWAV(f))
	require.NoError(t, f.Close())

	rf, err := os.Open(path)
	require.NoError(t, err)
	defer rf.Close()

	decoded, err := ReadWAV(rf)
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.Channels)
	assert.Equal(t, 44100, decoded.SampleRate)
	assert.Equal(t, buf.Samples, decoded.Samples)
}

// TestWAV_WriteInvalidBuffer verifies validation runs before encoding
func TestWAV_WriteInvalidBuffer(t *testing.T) {
	buf := NewSampleBuffer([]int16{1, 2}, 0, 1)

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	require.NoError(t, err)
	defer f.Close()

	assert.ErrorIs(t, buf.WriteWAV(f), ErrInvalidArgument)
}

// TestReadWAVBytes_Garbage verifies non-wav input is rejected
func TestReadWAVBytes_Garbage(t *testing.T) {
	_, err := ReadWAVBytes([]byte("definitely not a wav file"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestIntBuffer_Conversion verifies the go-audio bridge, including clamping
func TestIntBuffer_Conversion(t *testing.T) {
	buf := NewSampleBuffer([]int16{-5, 0, 5}, 8000, 1)

	ib := buf.IntBuffer()
	assert.Equal(t, []int{-5, 0, 5}, ib.Data)
	assert.Equal(t, 8000, ib.Format.SampleRate)
	assert.Equal(t, 1, ib.Format.NumChannels)
	assert.Equal(t, 16, ib.SourceBitDepth)

	back, err := SampleBufferFromIntBuffer(ib)
	require.NoError(t, err)
	assert.True(t, buf.Equal(back))

	// out-of-range values clamp to the 16-bit limits
	clamped, err := SampleBufferFromIntBuffer(&audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{100000, -100000},
	})
	require.NoError(t, err)
	assert.Equal(t, []int16{32767, -32768}, clamped.Samples)

	_, err = SampleBufferFromIntBuffer(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
