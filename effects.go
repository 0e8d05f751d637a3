package ffmpeg

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ffmpeg's atempo filter accepts factors in [0.5, 2.0] per stage; values
// outside that range are expressed by chaining stages inside a single
// filtergraph, so one subprocess still covers the whole operation.
const (
	atempoStageMin = 0.5
	atempoStageMax = 2.0

	// maxAtempoStages bounds the chain length. 16 stages already cover
	// factors beyond 2^16, far past anything audible.
	maxAtempoStages = 16
)

// Atempo changes the playback tempo of the buffer without altering pitch.
// A factor of 2.0 halves the duration; 0.5 doubles it. The output keeps the
// input's sample rate and channel count.
func (b *Bridge) Atempo(buf *SampleBuffer, factor float64) (*SampleBuffer, error) {
	return b.AtempoContext(context.Background(), buf, factor)
}

// AtempoContext is Atempo with context cancellation.
func (b *Bridge) AtempoContext(ctx context.Context, buf *SampleBuffer, factor float64) (*SampleBuffer, error) {
	filter, err := atempoFilter(factor)
	if err != nil {
		return nil, err
	}

	var afterInput []string
	if filter != "" {
		afterInput = []string{"-af", filter}
	}

	out, err := b.Process(ctx, buf, nil, afterInput)
	if err != nil {
		return nil, err
	}

	// A tempo change never empties non-empty input; an empty result means
	// the output stream could not be produced as framed.
	if len(out.Samples) == 0 && len(buf.Samples) > 0 {
		return nil, fmt.Errorf("%w: atempo produced no output for %d input samples",
			ErrFFmpegFailure, len(buf.Samples))
	}

	return out, nil
}

// Trim extracts the sub-range [start, end) seconds from the buffer. end may
// exceed the buffer's duration; the range then clamps to the buffer's end.
func (b *Bridge) Trim(buf *SampleBuffer, start, end float64) (*SampleBuffer, error) {
	return b.TrimContext(context.Background(), buf, start, end)
}

// TrimContext is Trim with context cancellation.
func (b *Bridge) TrimContext(ctx context.Context, buf *SampleBuffer, start, end float64) (*SampleBuffer, error) {
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(end) || math.IsInf(end, 0) {
		return nil, fmt.Errorf("%w: trim range must be finite", ErrInvalidArgument)
	}

	if start < 0 {
		return nil, fmt.Errorf("%w: trim start must be non-negative, got %v", ErrInvalidArgument, start)
	}

	if end < start {
		return nil, fmt.Errorf("%w: trim start %v exceeds end %v", ErrInvalidArgument, start, end)
	}

	afterInput := []string{
		"-ss", formatSeconds(start),
		"-t", formatSeconds(end - start),
	}

	return b.Process(ctx, buf, nil, afterInput)
}

// atempoFilter renders the filtergraph expression for a tempo factor, or ""
// when no filter is needed (factor 1.0 is the identity).
func atempoFilter(factor float64) (string, error) {
	stages, err := planAtempoChain(factor)
	if err != nil {
		return "", err
	}

	if len(stages) == 0 {
		return "", nil
	}

	exprs := make([]string, len(stages))
	for i, stage := range stages {
		exprs[i] = "atempo=" + strconv.FormatFloat(stage, 'f', -1, 64)
	}

	return strings.Join(exprs, ","), nil
}

// planAtempoChain decomposes a tempo factor into per-stage factors inside
// ffmpeg's supported range. The product of the stages equals the requested
// factor. An empty plan means no filter is needed.
func planAtempoChain(factor float64) ([]float64, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: tempo factor must be finite", ErrUnsupportedParameter)
	}

	if factor <= 0 {
		return nil, fmt.Errorf("%w: tempo factor must be positive, got %v", ErrInvalidArgument, factor)
	}

	if factor == 1.0 {
		return nil, nil
	}

	var stages []float64
	remaining := factor

	for remaining > atempoStageMax {
		stages = append(stages, atempoStageMax)
		remaining /= atempoStageMax
		if len(stages) > maxAtempoStages {
			return nil, fmt.Errorf("%w: tempo factor %v needs more than %d atempo stages",
				ErrUnsupportedParameter, factor, maxAtempoStages)
		}
	}

	for remaining < atempoStageMin {
		stages = append(stages, atempoStageMin)
		remaining /= atempoStageMin
		if len(stages) > maxAtempoStages {
			return nil, fmt.Errorf("%w: tempo factor %v needs more than %d atempo stages",
				ErrUnsupportedParameter, factor, maxAtempoStages)
		}
	}

	// Drop a trailing identity stage left over from an exact power split.
	if remaining != 1.0 || len(stages) == 0 {
		stages = append(stages, remaining)
	}

	return stages, nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AudioAtempo changes the tempo of bare interleaved 16-bit samples using a
// default Bridge. See Bridge.Atempo.
func AudioAtempo(samples []int16, factor float64, sampleRate, channels int) (*SampleBuffer, error) {
	return New().Atempo(NewSampleBuffer(samples, sampleRate, channels), factor)
}

// AudioTrim extracts [start, end) seconds from bare interleaved 16-bit
// samples using a default Bridge. See Bridge.Trim.
func AudioTrim(samples []int16, start, end float64, sampleRate, channels int) (*SampleBuffer, error) {
	return New().Trim(NewSampleBuffer(samples, sampleRate, channels), start, end)
}
