package stats

import (
	"fmt"
	"math"
)

// Pearson returns the sample correlation coefficient between x and y and
// its two-sided p-value under the t distribution with n-2 degrees of
// freedom. Returns ErrDegenerate when either series is constant or fewer
// than 3 paired observations exist.
func Pearson(x, y []float64) (r, p float64, err error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("stats: length mismatch %d vs %d", len(x), len(y))
	}
	n := len(x)
	if n < 3 {
		return 0, 0, ErrDegenerate
	}

	mx, my := Mean(x), Mean(y)
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, 0, ErrDegenerate
	}

	r = sxy / math.Sqrt(sxx*syy)
	// Guard against rounding drift outside [-1, 1].
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	if math.Abs(r) == 1 {
		return r, 0, nil
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	return r, TTailTwoSided(t, df), nil
}
