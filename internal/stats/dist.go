package stats

import "math"

// lgamma returns log|Γ(x)|, dropping the sign flag from math.Lgamma.
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// RegIncBeta computes the regularized incomplete beta function I_x(a, b),
// the CDF of the Beta(a, b) distribution at x. Evaluated via the continued
// fraction expansion using whichever tail converges faster.
func RegIncBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	ln := a*math.Log(x) + b*math.Log(1-x) + lgamma(a+b) - lgamma(a) - lgamma(b)
	front := math.Exp(ln)
	if x < (a+1)/(a+b+2) {
		return front * betacf(a, b, x) / a
	}
	return 1 - front*betacf(b, a, 1-x)/b
}

// betacf evaluates the continued fraction for the incomplete beta function
// by the modified Lentz method.
func betacf(a, b, x float64) float64 {
	const (
		maxIter = 300
		eps     = 3e-14
		fpmin   = 1e-300
	)

	qab := a + b
	qap := a + 1
	qam := a - 1

	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < fpmin {
		d = fpmin
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIter; m++ {
		fm := float64(m)
		m2 := 2 * fm

		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		h *= d * c

		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		del := d * c
		h *= del

		if math.Abs(del-1) < eps {
			break
		}
	}
	return h
}

// TTailTwoSided returns the two-sided tail probability P(|T| > |t|) of
// Student's t distribution with df degrees of freedom.
func TTailTwoSided(t, df float64) float64 {
	if df <= 0 {
		return 1
	}
	return RegIncBeta(df/2, 0.5, df/(df+t*t))
}

// FTail returns the upper tail probability P(X > f) of the F distribution
// with (d1, d2) degrees of freedom.
func FTail(f, d1, d2 float64) float64 {
	if f <= 0 {
		return 1
	}
	if d1 <= 0 || d2 <= 0 {
		return 1
	}
	return RegIncBeta(d2/2, d1/2, d2/(d2+d1*f))
}
