// Package normtest implements formal goodness-of-fit tests for normality.
// Both tests are one-shot pure functions over an extracted sample: they sort
// a private copy and never touch shared state, so they can run concurrently
// with the other analysis stages.
package normtest

// Result reports one goodness-of-fit test. P is always in [0, 1].
type Result struct {
	Method    string
	Statistic float64
	P         float64
}

func clampP(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// poly evaluates c[0] + c[1]·x + c[2]·x² + ... by Horner's method.
func poly(c []float64, x float64) float64 {
	v := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}
