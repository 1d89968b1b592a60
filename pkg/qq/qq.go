package qq

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/BTBurke/normcheck/pkg/describe"
	"github.com/BTBurke/normcheck/pkg/sample"
)

// Result pairs the sample order statistics with matching theoretical normal
// quantiles, both in data units, plus the parameters of a reference line
// y = Intercept + Slope·x through the quantile pairs.
type Result struct {
	Sample      []float64
	Theoretical []float64
	Slope       float64
	Intercept   float64
}

// Compute builds the Q-Q data for s against a normal distribution fitted
// with sum. Plotting positions follow the (i − 0.5)/n convention, and the
// reference line is anchored at the 25th/75th percentile pair of the sample
// versus theoretical quantiles (the qqline convention), so a few extreme
// observations cannot tilt it. Ties keep their relative input order.
//
// Returns ErrDegenerateSample when sigma is 0: every theoretical quantile
// would collapse to the mean and the line is undefined.
func Compute(s sample.Values, sum describe.Summary) (Result, error) {
	if sum.Degenerate() {
		return Result{}, fmt.Errorf("qq: quantiles undefined at sigma=0: %w", sample.ErrDegenerateSample)
	}
	n := len(s)
	ordered := make([]float64, n)
	copy(ordered, s)
	sort.Stable(sort.Float64Slice(ordered))

	theoretical := make([]float64, n)
	for i := 0; i < n; i++ {
		p := (float64(i) + 0.5) / float64(n)
		theoretical[i] = sum.Mean + sum.Sigma*distuv.UnitNormal.Quantile(p)
	}

	slope, intercept := referenceLine(ordered, sum)
	return Result{
		Sample:      ordered,
		Theoretical: theoretical,
		Slope:       slope,
		Intercept:   intercept,
	}, nil
}

// referenceLine fits the line through the first and third quartiles of the
// sample against the corresponding theoretical quantiles.
func referenceLine(ordered []float64, sum describe.Summary) (slope, intercept float64) {
	q25 := stat.Quantile(0.25, stat.Empirical, ordered, nil)
	q75 := stat.Quantile(0.75, stat.Empirical, ordered, nil)
	t25 := sum.Mean + sum.Sigma*distuv.UnitNormal.Quantile(0.25)
	t75 := sum.Mean + sum.Sigma*distuv.UnitNormal.Quantile(0.75)

	slope = (q75 - q25) / (t75 - t25)
	intercept = q25 - slope*t25
	return slope, intercept
}
