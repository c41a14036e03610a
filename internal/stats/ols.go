package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned when a least-squares system has no unique
// solution, typically from collinear or constant regressors.
var ErrSingular = errors.New("stats: singular system")

// Slope returns the ordinary least-squares slope of ys regressed against
// the index sequence 0..n-1. Returns 0 for fewer than 2 points.
func Slope(ys []float64) float64 {
	n := len(ys)
	if n < 2 {
		return 0
	}
	xbar := float64(n-1) / 2
	ybar := Mean(ys)
	var num, den float64
	for i, y := range ys {
		dx := float64(i) - xbar
		num += dx * (y - ybar)
		den += dx * dx
	}
	return num / den
}

// OLS fits y = Xb by ordinary least squares via the normal equations and
// returns the coefficients and the residual sum of squares. X rows are
// observations; callers include an intercept column themselves.
func OLS(X [][]float64, y []float64) (beta []float64, rss float64, err error) {
	n := len(X)
	if n == 0 || n != len(y) {
		return nil, 0, fmt.Errorf("stats: bad design matrix %dx? vs %d responses", n, len(y))
	}
	k := len(X[0])
	if k == 0 || n < k {
		return nil, 0, ErrDegenerate
	}

	// Normal equations: (X'X) b = X'y.
	a := make([][]float64, k)
	for i := range a {
		a[i] = make([]float64, k+1)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			var s float64
			for t := 0; t < n; t++ {
				s += X[t][i] * X[t][j]
			}
			a[i][j] = s
		}
		var s float64
		for t := 0; t < n; t++ {
			s += X[t][i] * y[t]
		}
		a[i][k] = s
	}

	beta, err = solveAugmented(a)
	if err != nil {
		return nil, 0, err
	}

	for t := 0; t < n; t++ {
		pred := 0.0
		for j := 0; j < k; j++ {
			pred += X[t][j] * beta[j]
		}
		resid := y[t] - pred
		rss += resid * resid
	}
	return beta, rss, nil
}

// solveAugmented solves the k x (k+1) augmented system by Gaussian
// elimination with partial pivoting.
func solveAugmented(a [][]float64) ([]float64, error) {
	k := len(a)
	const pivotFloor = 1e-10

	for col := 0; col < k; col++ {
		pivot := col
		for row := col + 1; row < k; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < pivotFloor {
			return nil, ErrSingular
		}
		a[col], a[pivot] = a[pivot], a[col]

		for row := col + 1; row < k; row++ {
			factor := a[row][col] / a[col][col]
			for j := col; j <= k; j++ {
				a[row][j] -= factor * a[col][j]
			}
		}
	}

	x := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		s := a[i][k]
		for j := i + 1; j < k; j++ {
			s -= a[i][j] * x[j]
		}
		x[i] = s / a[i][i]
	}
	return x, nil
}

// GrangerCause tests whether lagged values of x improve an order-`lag`
// autoregression of y, using an F-test on the nested models
//
//	restricted:   y_t = c + a_1 y_{t-1} + ... + a_lag y_{t-lag}
//	unrestricted: restricted + b_1 x_{t-1} + ... + b_lag x_{t-lag}
//
// Returns the F statistic and its p-value. ErrDegenerate or ErrSingular
// indicate the test could not be run on this data.
func GrangerCause(y, x []float64, lag int) (f, p float64, err error) {
	n := len(y)
	if len(x) != n {
		return 0, 0, fmt.Errorf("stats: length mismatch %d vs %d", n, len(x))
	}
	if lag < 1 {
		return 0, 0, fmt.Errorf("stats: lag must be >= 1, got %d", lag)
	}
	m := n - lag
	df2 := float64(m - (2*lag + 1))
	if df2 < 1 {
		return 0, 0, ErrDegenerate
	}

	restricted := make([][]float64, 0, m)
	full := make([][]float64, 0, m)
	resp := make([]float64, 0, m)
	for t := lag; t < n; t++ {
		r := make([]float64, 1+lag)
		u := make([]float64, 1+2*lag)
		r[0] = 1
		u[0] = 1
		for i := 1; i <= lag; i++ {
			r[i] = y[t-i]
			u[i] = y[t-i]
			u[lag+i] = x[t-i]
		}
		restricted = append(restricted, r)
		full = append(full, u)
		resp = append(resp, y[t])
	}

	_, rssR, err := OLS(restricted, resp)
	if err != nil {
		return 0, 0, err
	}
	_, rssU, err := OLS(full, resp)
	if err != nil {
		return 0, 0, err
	}
	if rssU < 1e-12 {
		// Perfect fit leaves nothing to test against.
		return 0, 0, ErrDegenerate
	}

	f = ((rssR - rssU) / float64(lag)) / (rssU / df2)
	if f < 0 {
		f = 0
	}
	return f, FTail(f, float64(lag), df2), nil
}
