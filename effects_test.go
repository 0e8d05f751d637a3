package ffmpeg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlanAtempoChain verifies chain planning: every stage stays inside
// ffmpeg's per-stage range and the product equals the requested factor
func TestPlanAtempoChain(t *testing.T) {
	tests := []struct {
		name       string
		factor     float64
		wantStages int
	}{
		{"identity", 1.0, 0},
		{"in range", 1.5, 1},
		{"lower bound", 0.5, 1},
		{"upper bound", 2.0, 1},
		{"double chained", 3.0, 2},
		{"exact power of two", 4.0, 2},
		{"eightfold", 8.0, 3},
		{"slow", 0.25, 2},
		{"very slow", 0.1, 4},
		{"slightly over", 2.1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages, err := planAtempoChain(tt.factor)
			require.NoError(t, err)
			assert.Len(t, stages, tt.wantStages)

			product := 1.0
			for _, stage := range stages {
				assert.GreaterOrEqual(t, stage, atempoStageMin)
				assert.LessOrEqual(t, stage, atempoStageMax)
				product *= stage
			}

			if len(stages) > 0 {
				assert.InEpsilon(t, tt.factor, product, 1e-9,
					"stage product must equal the requested factor")
			}
		})
	}
}

// TestPlanAtempoChain_Invalid covers the rejection cases
func TestPlanAtempoChain_Invalid(t *testing.T) {
	_, err := planAtempoChain(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = planAtempoChain(-2.0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = planAtempoChain(math.NaN())
	assert.ErrorIs(t, err, ErrUnsupportedParameter)

	_, err = planAtempoChain(math.Inf(1))
	assert.ErrorIs(t, err, ErrUnsupportedParameter)

	// Past the stage cap the chain would be degenerate
	_, err = planAtempoChain(math.Pow(2, 20))
	assert.ErrorIs(t, err, ErrUnsupportedParameter)
}

// TestAtempoFilter verifies filtergraph rendering
func TestAtempoFilter(t *testing.T) {
	tests := []struct {
		factor float64
		want   string
	}{
		{1.0, ""},
		{2.0, "atempo=2"},
		{0.5, "atempo=0.5"},
		{1.5, "atempo=1.5"},
		{4.0, "atempo=2,atempo=2"},
		{0.25, "atempo=0.5,atempo=0.5"},
	}

	for _, tt := range tests {
		got, err := atempoFilter(tt.factor)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "factor %v", tt.factor)
	}
}

// TestTrim_NonFinite verifies NaN and Inf ranges are rejected up front
func TestTrim_NonFinite(t *testing.T) {
	buf := NewSampleBuffer([]int16{1, 2, 3, 4}, 16000, 1)

	_, err := New().Trim(buf, math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New().Trim(buf, 0, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestFormatSeconds verifies trim arguments render compactly
func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0", formatSeconds(0))
	assert.Equal(t, "0.01", formatSeconds(0.01))
	assert.Equal(t, "1.5", formatSeconds(1.5))
	assert.Equal(t, "10", formatSeconds(10))
}
