package stats

import (
	"fmt"
	"math"
	"sort"
)

// PCAResult holds the principal component decomposition of a data matrix.
type PCAResult struct {
	// Components holds one unit eigenvector per row, ordered by descending
	// eigenvalue. Components[i][j] is the loading of variable j on
	// component i.
	Components [][]float64

	// Eigenvalues of the covariance matrix, sorted descending.
	Eigenvalues []float64

	// ExplainedVariance is each eigenvalue as a fraction of the total.
	ExplainedVariance []float64
}

// PCA computes the principal components of the given observations (rows)
// by cyclic Jacobi rotation of the sample covariance matrix. Input is
// expected to be standardized already.
func PCA(rows [][]float64) (*PCAResult, error) {
	n := len(rows)
	if n < 2 {
		return nil, ErrDegenerate
	}
	p := len(rows[0])
	if p < 1 {
		return nil, fmt.Errorf("stats: empty observation rows")
	}

	// Sample covariance matrix.
	means := make([]float64, p)
	for j := 0; j < p; j++ {
		for i := 0; i < n; i++ {
			means[j] += rows[i][j]
		}
		means[j] /= float64(n)
	}
	cov := make([][]float64, p)
	for i := range cov {
		cov[i] = make([]float64, p)
	}
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			var s float64
			for t := 0; t < n; t++ {
				s += (rows[t][i] - means[i]) * (rows[t][j] - means[j])
			}
			s /= float64(n - 1)
			cov[i][j] = s
			cov[j][i] = s
		}
	}

	eig, vec, err := jacobiEigen(cov)
	if err != nil {
		return nil, err
	}

	// Sort eigenpairs by descending eigenvalue.
	order := make([]int, p)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return eig[order[a]] > eig[order[b]]
	})

	res := &PCAResult{
		Components:        make([][]float64, p),
		Eigenvalues:       make([]float64, p),
		ExplainedVariance: make([]float64, p),
	}
	total := 0.0
	for _, idx := range order {
		if eig[idx] > 0 {
			total += eig[idx]
		}
	}
	if total == 0 {
		return nil, ErrDegenerate
	}
	for rank, idx := range order {
		res.Eigenvalues[rank] = eig[idx]
		comp := make([]float64, p)
		for j := 0; j < p; j++ {
			comp[j] = vec[j][idx]
		}
		res.Components[rank] = comp
		if eig[idx] > 0 {
			res.ExplainedVariance[rank] = eig[idx] / total
		}
	}
	return res, nil
}

// jacobiEigen diagonalizes a symmetric matrix, returning eigenvalues and
// the matrix whose columns are the corresponding eigenvectors.
func jacobiEigen(m [][]float64) (eig []float64, vec [][]float64, err error) {
	p := len(m)
	a := make([][]float64, p)
	vec = make([][]float64, p)
	for i := 0; i < p; i++ {
		a[i] = make([]float64, p)
		copy(a[i], m[i])
		vec[i] = make([]float64, p)
		vec[i][i] = 1
	}

	const (
		maxSweeps = 100
		tol       = 1e-12
	)
	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := 0.0
		for i := 0; i < p; i++ {
			for j := i + 1; j < p; j++ {
				off += a[i][j] * a[i][j]
			}
		}
		if off < tol {
			break
		}

		for i := 0; i < p; i++ {
			for j := i + 1; j < p; j++ {
				if math.Abs(a[i][j]) < tol/float64(p*p) {
					continue
				}
				theta := (a[j][j] - a[i][i]) / (2 * a[i][j])
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c

				for k := 0; k < p; k++ {
					aki := a[k][i]
					akj := a[k][j]
					a[k][i] = c*aki - s*akj
					a[k][j] = s*aki + c*akj
				}
				for k := 0; k < p; k++ {
					aik := a[i][k]
					ajk := a[j][k]
					a[i][k] = c*aik - s*ajk
					a[j][k] = s*aik + c*ajk
				}
				for k := 0; k < p; k++ {
					vki := vec[k][i]
					vkj := vec[k][j]
					vec[k][i] = c*vki - s*vkj
					vec[k][j] = s*vki + c*vkj
				}
			}
		}
	}

	eig = make([]float64, p)
	for i := 0; i < p; i++ {
		eig[i] = a[i][i]
	}
	return eig, vec, nil
}
