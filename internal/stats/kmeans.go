package stats

import (
	"fmt"
	"math"
	"math/rand"
)

// KMeansResult holds cluster assignments and fit quality for one k-means run.
type KMeansResult struct {
	// Assignments maps each input point to its cluster index in [0, k).
	Assignments []int

	// Centroids holds the final cluster centers.
	Centroids [][]float64

	// Inertia is the within-cluster sum of squared distances.
	Inertia float64
}

// KMeans clusters points into k groups using k-means++ seeding and Lloyd
// iterations. The same seed and input always yield the same result.
func KMeans(points [][]float64, k int, seed int64) (*KMeansResult, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrDegenerate
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("stats: k=%d out of range for %d points", k, n)
	}
	dims := len(points[0])

	rng := rand.New(rand.NewSource(seed))
	centroids := seedCentroids(points, k, rng)
	assign := make([]int, n)

	const maxIter = 100
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, pt := range points {
			best := 0
			bestDist := sqDist(pt, centroids[0])
			for c := 1; c < k; c++ {
				if d := sqDist(pt, centroids[c]); d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}

		// Recompute centroids.
		counts := make([]int, k)
		next := make([][]float64, k)
		for c := range next {
			next[c] = make([]float64, dims)
		}
		for i, pt := range points {
			c := assign[i]
			counts[c]++
			for j, v := range pt {
				next[c][j] += v
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Repair an empty cluster with the point farthest from
				// its current centroid.
				far, farDist := 0, -1.0
				for i, pt := range points {
					if counts[assign[i]] <= 1 {
						continue
					}
					if d := sqDist(pt, centroids[assign[i]]); d > farDist {
						farDist = d
						far = i
					}
				}
				counts[assign[far]]--
				assign[far] = c
				counts[c] = 1
				copy(next[c], points[far])
				continue
			}
			for j := range next[c] {
				next[c][j] /= float64(counts[c])
			}
		}
		centroids = next
	}

	inertia := 0.0
	for i, pt := range points {
		inertia += sqDist(pt, centroids[assign[i]])
	}
	return &KMeansResult{Assignments: assign, Centroids: centroids, Inertia: inertia}, nil
}

// seedCentroids picks k initial centers with the k-means++ scheme.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	first := make([]float64, len(points[0]))
	copy(first, points[rng.Intn(n)])
	centroids = append(centroids, first)

	dist := make([]float64, n)
	for len(centroids) < k {
		total := 0.0
		for i, pt := range points {
			d := math.Inf(1)
			for _, c := range centroids {
				if dd := sqDist(pt, c); dd < d {
					d = dd
				}
			}
			dist[i] = d
			total += d
		}

		idx := 0
		if total > 0 {
			target := rng.Float64() * total
			acc := 0.0
			for i, d := range dist {
				acc += d
				if acc >= target {
					idx = i
					break
				}
			}
		} else {
			idx = rng.Intn(n)
		}
		c := make([]float64, len(points[idx]))
		copy(c, points[idx])
		centroids = append(centroids, c)
	}
	return centroids
}

func sqDist(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}
