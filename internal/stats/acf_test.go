package stats

import (
	"errors"
	"testing"
)

func alternating(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		if i%2 == 0 {
			xs[i] = 1
		} else {
			xs[i] = -1
		}
	}
	return xs
}

func TestACFAlternatingSeries(t *testing.T) {
	xs := alternating(20)
	acf, err := ACF(xs, 2)
	if err != nil {
		t.Fatalf("ACF: %v", err)
	}

	approx(t, acf[0], 1, 1e-12, "acf[0]")
	// Lag 1: 19 products of -1 over a denominator of 20.
	approx(t, acf[1], -0.95, 1e-12, "acf[1]")
	// Lag 2: 18 products of +1 over 20.
	approx(t, acf[2], 0.9, 1e-12, "acf[2]")
}

func TestACFConstantSeries(t *testing.T) {
	_, err := ACF([]float64{4, 4, 4, 4}, 2)
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
}

func TestACFBadLag(t *testing.T) {
	if _, err := ACF([]float64{1, 2, 3}, 5); err == nil {
		t.Error("expected error for maxLag >= n")
	}
	if _, err := ACF([]float64{1, 2, 3}, -1); err == nil {
		t.Error("expected error for negative maxLag")
	}
}

func TestPACFFirstLagMatchesACF(t *testing.T) {
	xs := []float64{1, 3, 2, 5, 4, 6, 5, 8, 7, 9, 8, 11}
	acf, err := ACF(xs, 4)
	if err != nil {
		t.Fatalf("ACF: %v", err)
	}
	pacf, err := PACF(xs, 4)
	if err != nil {
		t.Fatalf("PACF: %v", err)
	}

	approx(t, pacf[0], 1, 1e-12, "pacf[0]")
	approx(t, pacf[1], acf[1], 1e-12, "pacf[1] equals acf[1]")
}

func TestPACFWithinBounds(t *testing.T) {
	xs := alternating(30)
	pacf, err := PACF(xs, 10)
	if err != nil {
		t.Fatalf("PACF: %v", err)
	}
	for lag, v := range pacf {
		if v > 1.0001 || v < -1.0001 {
			t.Errorf("pacf[%d] = %v outside [-1, 1]", lag, v)
		}
	}
}
