package stats

import "fmt"

// ACF returns the sample autocorrelation of xs at lags 0..maxLag.
// Lag 0 is always 1. Returns ErrDegenerate for a constant series.
func ACF(xs []float64, maxLag int) ([]float64, error) {
	n := len(xs)
	if maxLag < 0 || maxLag >= n {
		return nil, fmt.Errorf("stats: maxLag %d out of range for %d observations", maxLag, n)
	}

	mu := Mean(xs)
	denom := 0.0
	for _, x := range xs {
		d := x - mu
		denom += d * d
	}
	if denom == 0 {
		return nil, ErrDegenerate
	}

	out := make([]float64, maxLag+1)
	out[0] = 1
	for k := 1; k <= maxLag; k++ {
		num := 0.0
		for t := k; t < n; t++ {
			num += (xs[t] - mu) * (xs[t-k] - mu)
		}
		out[k] = num / denom
	}
	return out, nil
}

// PACF returns the partial autocorrelation of xs at lags 0..maxLag,
// computed from the ACF by the Durbin-Levinson recursion.
func PACF(xs []float64, maxLag int) ([]float64, error) {
	r, err := ACF(xs, maxLag)
	if err != nil {
		return nil, err
	}

	out := make([]float64, maxLag+1)
	out[0] = 1
	if maxLag == 0 {
		return out, nil
	}

	phi := make([]float64, maxLag+1)
	prev := make([]float64, maxLag+1)
	phi[1] = r[1]
	out[1] = r[1]

	for k := 2; k <= maxLag; k++ {
		copy(prev, phi)
		num := r[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= prev[j] * r[k-j]
			den -= prev[j] * r[j]
		}
		if den == 0 {
			return nil, ErrDegenerate
		}
		phi[k] = num / den
		for j := 1; j < k; j++ {
			phi[j] = prev[j] - phi[k]*prev[k-j]
		}
		out[k] = phi[k]
	}
	return out, nil
}
