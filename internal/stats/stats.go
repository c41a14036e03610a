// Package stats implements the numerical routines behind moodwatch's
// analyzers: descriptive statistics, correlation with significance testing,
// nested autoregressive model comparison, autocorrelation, principal
// component decomposition, and seeded k-means clustering. Everything works
// on plain float64 slices so each routine can be tested with literal
// fixtures.
package stats

import (
	"errors"
	"math"
)

// ErrDegenerate is returned when a series has no variance or too few
// observations for the requested computation.
var ErrDegenerate = errors.New("stats: degenerate input")

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// PopStd returns the population standard deviation of xs.
func PopStd(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mu := Mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// Sum returns the sum of xs.
func Sum(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum
}

// MinMax returns the smallest and largest values in xs.
// Both are 0 for an empty slice.
func MinMax(xs []float64) (min, max float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

// Standardize returns a copy of the matrix with every column scaled to zero
// mean and unit variance. Zero-variance columns are centered but not scaled.
// Rows are observations, columns are variables.
func Standardize(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	means := make([]float64, cols)
	scales := make([]float64, cols)

	for j := 0; j < cols; j++ {
		col := make([]float64, len(rows))
		for i := range rows {
			col[i] = rows[i][j]
		}
		means[j] = Mean(col)
		scales[j] = PopStd(col)
		if scales[j] == 0 {
			scales[j] = 1
		}
	}

	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = (rows[i][j] - means[j]) / scales[j]
		}
	}
	return out
}
