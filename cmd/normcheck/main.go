// normcheck reads newline-separated process-quality measurements from stdin
// or a file and reports whether the sample is plausibly normal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/BTBurke/normcheck"
	"github.com/BTBurke/normcheck/pkg/normtest"
	"github.com/BTBurke/normcheck/pkg/sample"
)

func main() {
	opts, err := normcheck.ParseCommandLine()
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Could not parse configuration: %s\n\nUse normcheck --help for options\n", err)
		}
		os.Exit(1)
	}
	cfg, errs := normcheck.NewConfig(opts...)
	if len(errs) > 0 {
		fmt.Println("Error in config:")
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	}

	row, name, err := readInput(cfg.File)
	if err != nil {
		fmt.Println("Could not read measurements:", err)
		os.Exit(1)
	}

	var analyzeOpts []normcheck.Option
	if cfg.Verbose {
		analyzeOpts = append(analyzeOpts, normcheck.WithReport(os.Stdout))
	}
	res, err := normcheck.Analyze(sample.Matrix{Name: name, Rows: [][]float64{row}}, analyzeOpts...)
	if err != nil {
		fmt.Println("Analysis failed:", err)
		os.Exit(1)
	}

	fmt.Printf("%s: n=%d mean=%.6g sigma=%.6g\n", res.Name, res.Summary.N, res.Summary.Mean, res.Summary.Sigma)
	fmt.Printf("histogram: %d bins of width %.6g\n", res.Histogram.BinCount, res.Histogram.BinWidth)
	fmt.Println(verdict(res.ShapiroWilk, cfg.Alpha))
	fmt.Println(verdict(res.AndersonDarling, cfg.Alpha))
	os.Exit(0)
}

// readInput reads the measurement row from path, or stdin when path is
// empty. File handles are closed here, before main reaches os.Exit.
func readInput(path string) ([]float64, string, error) {
	if path == "" {
		row, err := readMeasurements(os.Stdin)
		return row, "stdin", err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	row, err := readMeasurements(f)
	return row, path, err
}

// readMeasurements parses one finite measurement per line. Blank lines are
// skipped; anything else that fails to parse aborts the run.
func readMeasurements(r io.Reader) ([]float64, error) {
	var out []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func verdict(r normtest.Result, alpha float64) string {
	conclusion := "no evidence against normality"
	if r.P < alpha {
		conclusion = "reject normality"
	}
	return fmt.Sprintf("%s: statistic=%.4f p=%.4f -> %s at alpha=%.2g", r.Method, r.Statistic, r.P, conclusion, alpha)
}
