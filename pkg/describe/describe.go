package describe

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/BTBurke/normcheck/pkg/sample"
)

// Summary holds the descriptive statistics of one extracted sample. Sigma is
// the Bessel-corrected sample standard deviation. A Summary is recomputed on
// every analysis call and shared by the histogram, overlay, and Q-Q stages so
// they cannot drift apart.
type Summary struct {
	N     int
	Mean  float64
	Sigma float64
}

// Degenerate reports whether every observation was identical. Consumers that
// divide by Sigma must check this before doing so.
func (s Summary) Degenerate() bool {
	return s.Sigma == 0
}

// Summarize computes the descriptive summary of s. Returns
// ErrInsufficientData for fewer than 2 observations because sigma is
// undefined there.
func Summarize(s sample.Values) (Summary, error) {
	if len(s) < 2 {
		return Summary{}, fmt.Errorf("summarize: sigma undefined for n=%d: %w", len(s), sample.ErrInsufficientData)
	}
	return Summary{
		N:     len(s),
		Mean:  stat.Mean(s, nil),
		Sigma: stat.StdDev(s, nil),
	}, nil
}
