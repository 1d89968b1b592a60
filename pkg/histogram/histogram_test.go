package histogram

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTBurke/normcheck/pkg/describe"
	"github.com/BTBurke/normcheck/pkg/sample"
)

func TestScott(t *testing.T) {
	// n=8, sigma=sqrt(6), range=7: h = 3.5*sqrt(6)/2, two bins
	s := sample.Values{1, 2, 3, 4, 5, 6, 7, 8}
	sum, err := describe.Summarize(s)
	require.NoError(t, err)

	spec := Scott(sum, s)
	assert.InDelta(t, 3.5*math.Sqrt(6)/2, spec.BinWidth, 1e-9)
	assert.Equal(t, 2, spec.BinCount)
}

func TestScottMinimumOneBin(t *testing.T) {
	// range smaller than the bin width must still produce one bin
	s := sample.Values{10.0, 10.1, 10.2, 9.9, 9.8}
	sum, err := describe.Summarize(s)
	require.NoError(t, err)

	spec := Scott(sum, s)
	assert.GreaterOrEqual(t, spec.BinCount, 1)
	assert.Greater(t, spec.BinWidth, 0.0)
}

func TestScottDegenerate(t *testing.T) {
	s := sample.Values{5, 5, 5, 5}
	sum, err := describe.Summarize(s)
	require.NoError(t, err)

	spec := Scott(sum, s)
	assert.Equal(t, 1, spec.BinCount)
	assert.Equal(t, 0.0, spec.BinWidth)
}

func TestOverlay(t *testing.T) {
	s := sample.Values{1, 2, 3, 4, 5, 6, 7, 8}
	sum, err := describe.Summarize(s)
	require.NoError(t, err)
	spec := Scott(sum, s)

	c, err := Overlay(sum, spec)
	require.NoError(t, err)
	require.Len(t, c.X, 1000)
	require.Len(t, c.Y, 1000)

	assert.InDelta(t, sum.Mean-3*sum.Sigma, c.X[0], 1e-9)
	assert.InDelta(t, sum.Mean+3*sum.Sigma, c.X[999], 1e-9)

	// peak is at the mean with height h*n/(sigma*sqrt(2*pi))
	peak := spec.BinWidth * float64(sum.N) / (sum.Sigma * math.Sqrt(2*math.Pi))
	max := 0.0
	for _, y := range c.Y {
		if y > max {
			max = y
		}
	}
	assert.InDelta(t, peak, max, peak*1e-4)

	// symmetric about the mean
	assert.InDelta(t, c.Y[0], c.Y[999], 1e-9)
}

func TestOverlayDegenerate(t *testing.T) {
	sum := describe.Summary{N: 4, Mean: 5, Sigma: 0}
	_, err := Overlay(sum, Spec{BinWidth: 0, BinCount: 1})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, sample.ErrDegenerateSample))
}
