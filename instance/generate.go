package instance

import (
	"math/rand"

	"github.com/hupe1980/diskpack/geom"
)

// Uniform returns n points with integral coordinates drawn uniformly from
// [0, side) x [0, side). The same seed always yields the same instance.
func Uniform(seed int64, n, side int, radius float64) *Instance {
	if n < 0 {
		n = 0
	}
	if side < 1 {
		side = 1
	}

	rng := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		x := rng.Intn(side)
		y := rng.Intn(side)
		pts[i] = geom.Pt(float64(x), float64(y))
	}
	return &Instance{Points: pts, Radius: radius}
}
