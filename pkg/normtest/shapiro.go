package normtest

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/BTBurke/normcheck/pkg/sample"
)

// Validated sample-size range of the AS R94 approximation.
const (
	shapiroMinN = 3
	shapiroMaxN = 5000
)

// Polynomial coefficients from Royston (1995), applied statistics algorithm
// AS R94. The first two adjust the tail weights a_n and a_{n-1} as
// polynomials in 1/sqrt(n); the rest parameterize the null distribution of
// the transformed W statistic on its two branches.
var (
	swTailN  = []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swTailN1 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swMeanSm = []float64{0.5440, -0.39978, 0.025054, -0.0006714}
	swSdSm   = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swMeanLg = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swSdLg   = []float64{-0.4803, -0.082676, 0.0030302}
)

// ShapiroWilk computes the W statistic and its p-value for s. W is the
// squared correlation between the sample order statistics and weights
// derived from expected normal order statistics; the p-value follows
// Royston's two-branch fit (a log-gamma transform of W for n <= 11, a
// log(1-W) transform for larger n). Supported for 3 <= n <= 5000.
func ShapiroWilk(s sample.Values) (Result, error) {
	n := len(s)
	if n < shapiroMinN || n > shapiroMaxN {
		return Result{}, fmt.Errorf("shapiro-wilk: n=%d outside [%d, %d]: %w", n, shapiroMinN, shapiroMaxN, sample.ErrSampleSizeOutOfRange)
	}
	x := make([]float64, n)
	copy(x, s)
	sort.Float64s(x)
	if x[n-1] == x[0] {
		return Result{}, fmt.Errorf("shapiro-wilk: all observations equal: %w", sample.ErrDegenerateSample)
	}

	w := shapiroW(x)
	return Result{
		Method:    "Shapiro-Wilk",
		Statistic: w,
		P:         shapiroP(w, n),
	}, nil
}

// shapiroW computes the W statistic from the sorted sample.
func shapiroW(x []float64) float64 {
	n := len(x)
	fn := float64(n)

	// Blom-style scores approximating expected normal order statistics.
	m := make([]float64, n)
	ssq := 0.0
	for i := range m {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (fn + 0.25))
		ssq += m[i] * m[i]
	}

	a := make([]float64, n)
	if n == 3 {
		a[0] = -math.Sqrt(0.5)
		a[2] = math.Sqrt(0.5)
	} else {
		u := 1 / math.Sqrt(fn)
		a[n-1] = m[n-1]/math.Sqrt(ssq) + poly(swTailN, u)
		a[0] = -a[n-1]
		var phi float64
		if n > 5 {
			a[n-2] = m[n-2]/math.Sqrt(ssq) + poly(swTailN1, u)
			a[1] = -a[n-2]
			phi = (ssq - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) /
				(1 - 2*a[n-1]*a[n-1] - 2*a[n-2]*a[n-2])
			for i := 2; i < n-2; i++ {
				a[i] = m[i] / math.Sqrt(phi)
			}
		} else {
			phi = (ssq - 2*m[n-1]*m[n-1]) / (1 - 2*a[n-1]*a[n-1])
			for i := 1; i < n-1; i++ {
				a[i] = m[i] / math.Sqrt(phi)
			}
		}
	}

	mean := stat.Mean(x, nil)
	num, den := 0.0, 0.0
	for i, v := range x {
		num += a[i] * v
		den += (v - mean) * (v - mean)
	}
	w := num * num / den
	if w > 1 {
		w = 1
	}
	return w
}

// shapiroP maps W to a p-value. Royston's fit normalizes a transform of W
// separately for small (n <= 11) and large samples; n = 3 has the exact
// arcsine form.
func shapiroP(w float64, n int) float64 {
	fn := float64(n)
	switch {
	case n == 3:
		return clampP((6.0 / math.Pi) * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75))))
	case n <= 11:
		gamma := -2.273 + 0.459*fn
		y := -math.Log(gamma - math.Log1p(-w))
		mu := poly(swMeanSm, fn)
		sigma := math.Exp(poly(swSdSm, fn))
		return clampP(distuv.UnitNormal.Survival((y - mu) / sigma))
	default:
		y := math.Log1p(-w)
		logn := math.Log(fn)
		mu := poly(swMeanLg, logn)
		sigma := math.Exp(poly(swSdLg, logn))
		return clampP(distuv.UnitNormal.Survival((y - mu) / sigma))
	}
}
