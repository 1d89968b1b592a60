package normtest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTBurke/normcheck/pkg/sample"
)

func TestShapiroWilkTextbook(t *testing.T) {
	// Cross-checked two ways: the published Shapiro-Wilk (1965) n=8 table
	// a = {.6052, .3164, .1743, .0561} gives (sum a_i x_(i))^2 / 32 = 0.9166
	// for this set, and R's shapiro.test reports W = 0.91663, p = 0.4032.
	r, err := ShapiroWilk(sample.Values{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, "Shapiro-Wilk", r.Method)
	assert.InDelta(t, 0.91663, r.Statistic, 1e-3)
	assert.InDelta(t, 0.40315, r.P, 1e-3)
}

func TestShapiroWilkWeightsMatchPublishedTable(t *testing.T) {
	// The approximated weights must agree with the exact Shapiro-Wilk
	// (1965) n=8 table. The weights are antisymmetric, so W computed with
	// the table reduces to spread terms a_k (x_(n+1-k) - x_(k)) over the
	// top half; the approximation should land within Royston's reported
	// accuracy of that value.
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	w := shapiroW(x)

	table := []float64{0.6052, 0.3164, 0.1743, 0.0561}
	num := 0.0
	for k, a := range table {
		num += a * (x[7-k] - x[k])
	}
	want := num * num / 32.0

	assert.InDelta(t, want, w, 5e-4)
}

func TestShapiroWilkSmallestSample(t *testing.T) {
	// three equally spaced points correlate perfectly with the expected
	// order statistics, so W=1 and the arcsine branch gives p=1
	r, err := ShapiroWilk(sample.Values{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.Statistic, 1e-9)
	assert.InDelta(t, 1.0, r.P, 1e-9)
}

func TestShapiroWilkRejectsOutlier(t *testing.T) {
	r, err := ShapiroWilk(sample.Values{1, 1, 1, 1, 1, 2, 1, 1, 1, 100})
	require.NoError(t, err)
	assert.Less(t, r.P, 0.01)
}

func TestShapiroWilkSampleSize(t *testing.T) {
	tt := []struct {
		name string
		n    int
	}{
		{name: "too small", n: 2},
		{name: "too large", n: 5001},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := make(sample.Values, tc.n)
			for i := range s {
				s[i] = float64(i)
			}
			_, err := ShapiroWilk(s)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, sample.ErrSampleSizeOutOfRange))
		})
	}
}

func TestShapiroWilkDegenerate(t *testing.T) {
	_, err := ShapiroWilk(sample.Values{3, 3, 3, 3, 3})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, sample.ErrDegenerateSample))
}
