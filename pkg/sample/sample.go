package sample

import (
	"fmt"
	"math"
)

// Matrix is the narrow contract with the upstream control-chart step: rows
// are subgroups in collection order, columns are repeated measurements within
// a subgroup. Rows may be ragged. Name identifies the measured
// characteristic and is carried through to the analysis result.
type Matrix struct {
	Name string
	Rows [][]float64
}

// Values is a flat, row-major sequence of finite observations extracted from
// a Matrix. It must not be mutated after extraction; computations that need
// a different ordering work on their own copy.
type Values []float64

// Extract flattens m into a single ordered sequence, dropping NaN and
// infinite entries. Row and column order is preserved. Returns
// ErrInvalidInput if nothing survives the filtering.
func Extract(m Matrix) (Values, error) {
	capacity := 0
	for _, row := range m.Rows {
		capacity += len(row)
	}
	out := make(Values, 0, capacity)
	for _, row := range m.Rows {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("extract %q: %w", m.Name, ErrInvalidInput)
	}
	return out, nil
}

// Range returns max − min of the observations.
func (s Values) Range() float64 {
	if len(s) == 0 {
		return 0
	}
	min, max := s[0], s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}
