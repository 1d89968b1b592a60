package normcheck

import (
	"fmt"
	"io"
)

// writeReport formats the two test results for the optional report channel.
// The library never writes anywhere the caller did not pass in.
func writeReport(w io.Writer, res *AnalysisResult) error {
	_, err := fmt.Fprintf(w, "Normality tests for %s (n=%d, mean=%.4f, sigma=%.4f)\n  %-16s statistic=%.4f p=%.4f\n  %-16s statistic=%.4f p=%.4f\n",
		res.Name, res.Summary.N, res.Summary.Mean, res.Summary.Sigma,
		res.ShapiroWilk.Method, res.ShapiroWilk.Statistic, res.ShapiroWilk.P,
		res.AndersonDarling.Method, res.AndersonDarling.Statistic, res.AndersonDarling.P,
	)
	return err
}
