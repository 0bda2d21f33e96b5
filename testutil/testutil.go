package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/diskpack/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates num points with integral coordinates in [0, side).
func (r *RNG) UniformPoints(num int, side int) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]geom.Point, num)
	for i := range pts {
		pts[i] = geom.Pt(float64(r.rand.Intn(side)), float64(r.rand.Intn(side)))
	}
	return pts
}

// UniformRangePoints generates num points with real coordinates in [minVal, maxVal).
func (r *RNG) UniformRangePoints(num int, minVal, maxVal float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	pts := make([]geom.Point, num)
	for i := range pts {
		pts[i] = geom.Pt(minVal+r.rand.Float64()*span, minVal+r.rand.Float64()*span)
	}
	return pts
}

// ClusteredPoints generates num points around clusters gaussian centers
// spread over [0, side). spread is the standard deviation of each cluster.
func (r *RNG) ClusteredPoints(num, clusters int, spread, side float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	if clusters < 1 {
		clusters = 1
	}
	centers := make([]geom.Point, clusters)
	for i := range centers {
		centers[i] = geom.Pt(r.rand.Float64()*side, r.rand.Float64()*side)
	}

	pts := make([]geom.Point, num)
	for i := range pts {
		c := centers[r.rand.Intn(clusters)]
		pts[i] = geom.Pt(c.X+r.rand.NormFloat64()*spread, c.Y+r.rand.NormFloat64()*spread)
	}
	return pts
}

// BruteForceNoOverlap reports whether every pair of selected centers is
// strictly farther apart than 2*radius. It runs in O(k^2).
func BruteForceNoOverlap(pts []geom.Point, radius float64, sol []int) bool {
	for a := 0; a < len(sol); a++ {
		for b := a + 1; b < len(sol); b++ {
			if geom.Within(pts[sol[a]], pts[sol[b]], 2*radius) {
				return false
			}
		}
	}
	return true
}

// BruteForceMaximal reports whether every candidate outside sol collides
// with at least one selected center. It runs in O(n*k).
func BruteForceMaximal(pts []geom.Point, radius float64, sol []int) bool {
	member := make(map[int]bool, len(sol))
	for _, i := range sol {
		member[i] = true
	}
	for i, p := range pts {
		if member[i] {
			continue
		}
		covered := false
		for _, j := range sol {
			if geom.Within(p, pts[j], 2*radius) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q geom.Point) float64 {
	return math.Sqrt(p.Dist2(q))
}
