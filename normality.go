// Package normcheck assesses whether a univariate sample of process-quality
// measurements is plausibly drawn from a normal distribution, a prerequisite
// check before computing process-capability indices. It produces the numeric
// inputs for the visual diagnostics (histogram bin parameters with a fitted
// density overlay, normal Q-Q data) and two formal goodness-of-fit tests.
// Rendering and report layout belong to a separate consumer of
// AnalysisResult.
package normcheck

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/BTBurke/normcheck/pkg/describe"
	"github.com/BTBurke/normcheck/pkg/histogram"
	"github.com/BTBurke/normcheck/pkg/normtest"
	"github.com/BTBurke/normcheck/pkg/qq"
	"github.com/BTBurke/normcheck/pkg/sample"
)

// Tests below are undefined for smaller samples.
const minSampleSize = 3

// AnalysisResult bundles every derived artifact of one analysis call. All
// fields are pure functions of the extracted sample; calling Analyze twice
// on the same input yields identical results. Histogram and Overlay are
// computed from the same summary, so a renderer can draw them on one scale
// without recomputing anything.
type AnalysisResult struct {
	Name            string
	Summary         describe.Summary
	Histogram       histogram.Spec
	Overlay         histogram.Curve
	QQ              qq.Result
	ShapiroWilk     normtest.Result
	AndersonDarling normtest.Result
}

type config struct {
	report io.Writer
}

// Option configures a single analysis call.
type Option func(*config) error

// WithReport additionally writes the two test results to w. The default is
// silent: results are only returned to the caller.
func WithReport(w io.Writer) Option {
	return func(c *config) error {
		if w == nil {
			return fmt.Errorf("report writer must not be nil")
		}
		c.report = w
		return nil
	}
}

// Analyze extracts the sample from m and computes the descriptive summary,
// Scott's-rule histogram parameters with the scaled normal overlay, the Q-Q
// data, and the Shapiro-Wilk and Anderson-Darling tests. The downstream
// computations only read the extracted sample and run concurrently; the call
// either returns a complete result or fails atomically on the first error.
//
// Because the Anderson-Darling approximation needs n >= 7 and no partial
// result is ever returned, Analyze succeeds only for n >= 7. Callers with
// smaller samples can invoke the individual stages (normtest.ShapiroWilk
// accepts n >= 3) directly.
func Analyze(m sample.Matrix, opts ...Option) (*AnalysisResult, error) {
	var cfg config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	s, err := sample.Extract(m)
	if err != nil {
		return nil, err
	}
	if len(s) < minSampleSize {
		return nil, fmt.Errorf("analyze %q: n=%d below minimum %d: %w", m.Name, len(s), minSampleSize, sample.ErrInsufficientData)
	}
	summary, err := describe.Summarize(s)
	if err != nil {
		return nil, err
	}

	res := &AnalysisResult{
		Name:    m.Name,
		Summary: summary,
	}

	var g errgroup.Group
	g.Go(func() error {
		// The overlay shares the binner's width so the curve and the bars
		// stay on the same scale.
		res.Histogram = histogram.Scott(summary, s)
		curve, err := histogram.Overlay(summary, res.Histogram)
		if err != nil {
			return err
		}
		res.Overlay = curve
		return nil
	})
	g.Go(func() error {
		r, err := qq.Compute(s, summary)
		if err != nil {
			return err
		}
		res.QQ = r
		return nil
	})
	g.Go(func() error {
		r, err := normtest.ShapiroWilk(s)
		if err != nil {
			return err
		}
		res.ShapiroWilk = r
		return nil
	})
	g.Go(func() error {
		r, err := normtest.AndersonDarling(s)
		if err != nil {
			return err
		}
		res.AndersonDarling = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg.report != nil {
		if err := writeReport(cfg.report, res); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
	}
	return res, nil
}
