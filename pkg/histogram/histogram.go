package histogram

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/BTBurke/normcheck/pkg/describe"
	"github.com/BTBurke/normcheck/pkg/sample"
)

// Spec holds the bin parameters derived from Scott's rule. A rendering layer
// must reuse BinCount unchanged so the bars and the overlay curve stay on the
// same scale. BinWidth is 0 only for a degenerate (zero variance) sample, in
// which case BinCount is 1.
type Spec struct {
	BinWidth float64
	BinCount int
}

// Curve is the fitted normal density sampled on a dense grid over
// mean ± 3 sigma, scaled by BinWidth × n so its heights compare directly to
// absolute histogram bar counts.
type Curve struct {
	X []float64
	Y []float64
}

// curvePoints is the grid resolution of the overlay.
const curvePoints = 1000

// Scott derives bin width and bin count from Scott's rule,
// h = 3.5 σ n^(−1/3). BinCount is ceil(range/h) floored at 1; a zero-variance
// sample collapses to a single bin.
func Scott(sum describe.Summary, s sample.Values) Spec {
	h := 3.5 * sum.Sigma * math.Pow(float64(sum.N), -1.0/3.0)
	if h <= 0 {
		return Spec{BinWidth: 0, BinCount: 1}
	}
	count := int(math.Ceil(s.Range() / h))
	if count < 1 {
		count = 1
	}
	return Spec{BinWidth: h, BinCount: count}
}

// Overlay evaluates the fitted normal density on curvePoints evenly spaced
// values spanning mean ± 3 sigma, scaled by spec.BinWidth × n. Returns
// ErrDegenerateSample when sigma is 0 since the density is a point mass at
// the mean and no finite curve exists.
func Overlay(sum describe.Summary, spec Spec) (Curve, error) {
	if sum.Degenerate() {
		return Curve{}, fmt.Errorf("overlay: density undefined at sigma=0: %w", sample.ErrDegenerateSample)
	}
	dist := distuv.Normal{Mu: sum.Mean, Sigma: sum.Sigma}
	scale := spec.BinWidth * float64(sum.N)

	lo := sum.Mean - 3*sum.Sigma
	hi := sum.Mean + 3*sum.Sigma
	step := (hi - lo) / float64(curvePoints-1)

	c := Curve{
		X: make([]float64, curvePoints),
		Y: make([]float64, curvePoints),
	}
	for i := 0; i < curvePoints; i++ {
		x := lo + float64(i)*step
		c.X[i] = x
		c.Y[i] = dist.Prob(x) * scale
	}
	return c, nil
}
