package stats

import (
	"errors"
	"testing"
)

func TestPearsonPerfectCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	r, p, err := Pearson(x, y)
	if err != nil {
		t.Fatalf("Pearson: %v", err)
	}
	approx(t, r, 1, 1e-12, "r")
	approx(t, p, 0, 1e-12, "p")
}

func TestPearsonPerfectAnticorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{10, 8, 6, 4, 2}

	r, p, err := Pearson(x, y)
	if err != nil {
		t.Fatalf("Pearson: %v", err)
	}
	approx(t, r, -1, 1e-12, "r")
	approx(t, p, 0, 1e-12, "p")
}

func TestPearsonStrongCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 2, 3, 4, 6}

	r, p, err := Pearson(x, y)
	if err != nil {
		t.Fatalf("Pearson: %v", err)
	}
	// r = 12 / sqrt(10 * 14.8).
	approx(t, r, 0.98639, 1e-4, "r")
	if p >= 0.01 {
		t.Errorf("p = %v, want < 0.01", p)
	}
}

func TestPearsonConstantSeries(t *testing.T) {
	_, _, err := Pearson([]float64{1, 1, 1, 1}, []float64{1, 2, 3, 4})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
}

func TestPearsonTooFewPoints(t *testing.T) {
	_, _, err := Pearson([]float64{1, 2}, []float64{3, 4})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
}

func TestPearsonLengthMismatch(t *testing.T) {
	_, _, err := Pearson([]float64{1, 2, 3}, []float64{1, 2})
	if err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
