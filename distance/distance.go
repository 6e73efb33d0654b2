// Package distance provides public API for vector distance calculations.
package distance

import "math"

// MaxSquaredL2 is the sentinel that exceeds every finite squared distance.
const MaxSquaredL2 float32 = math.MaxFloat32

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		d := a[i] - b[i]
		distance += d * d
	}

	return distance
}

// GridSquared returns the squared Euclidean distance between two lattice
// cells. The coordinate differences are taken as signed integers before
// promotion to float32.
func GridSquared(x0, y0, x1, y1 int) float32 {
	dx := float32(x0 - x1)
	dy := float32(y0 - y1)

	return dx*dx + dy*dy
}

// Nearest scans a contiguous buffer of count vectors of length dim and returns
// the index and squared distance of the first vector closest to query.
// Ties keep the earliest index. Returns -1 when count is zero.
func Nearest(buf []float32, dim, count int, query []float32) (int, float32) {
	best := -1
	bestDist := MaxSquaredL2

	for i, off := 0, 0; i < count; i, off = i+1, off+dim {
		d := SquaredL2(buf[off:off+dim], query)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best, bestDist
}
