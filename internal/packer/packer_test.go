package packer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hupe1980/diskpack/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var directions = []geom.Point{
	geom.Direction(0),
	geom.Direction(math.Pi / 2),
	geom.Direction(math.Pi),
	geom.Direction(3 * math.Pi / 2),
	geom.Direction(math.Pi / 4),
}

func requireNoOverlap(t *testing.T, pts []geom.Point, radius float64, sel []int) {
	t.Helper()
	for a := 0; a < len(sel); a++ {
		for b := a + 1; b < len(sel); b++ {
			require.False(t, geom.Within(pts[sel[a]], pts[sel[b]], 2*radius),
				"indices %d and %d overlap", sel[a], sel[b])
		}
	}
}

func requireMaximal(t *testing.T, r *Result, n int) {
	t.Helper()
	inSol := make(map[int]bool, len(r.Selected))
	for _, i := range r.Selected {
		inSol[i] = true
	}
	for i := 0; i < n; i++ {
		require.Equal(t, inSol[i], r.Alive(i), "index %d", i)
	}
	require.Equal(t, len(r.Selected), r.AliveCount())
}

func TestRun_FarApartSquare(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(0, 10), geom.Pt(10, 10)}
	for _, dir := range directions {
		r := Run(pts, 1, dir)
		assert.Len(t, r.Selected, 4, "direction %v", dir)
		assert.Equal(t, 4, r.Cells)
		requireMaximal(t, r, len(pts))
	}
}

func TestRun_Colinear(t *testing.T) {
	// The ends are exactly 2r apart, which counts as touching.
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)}
	for _, dir := range directions {
		r := Run(pts, 1, dir)
		assert.Len(t, r.Selected, 1, "direction %v", dir)
		requireMaximal(t, r, len(pts))
	}
}

func TestRun_TouchingAtLargeCoordinates(t *testing.T) {
	// 537091786² + 536777448² = 759340250², so the pair touches exactly with
	// a squared diameter above 2^53.
	const radius = 379670125
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(537091786, 536777448)}

	r := Run(pts, radius, geom.Direction(0))
	assert.Equal(t, []int{1}, r.Selected)
	requireMaximal(t, r, len(pts))

	for _, dir := range directions {
		assert.Len(t, Run(pts, radius, dir).Selected, 1, "direction %v", dir)
	}
}

func TestRun_NearMissAtLargeCoordinates(t *testing.T) {
	// The squared distance exceeds the squared diameter by exactly one.
	const radius = 379670125
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(2*radius, 1)}

	r := Run(pts, radius, geom.Direction(0))
	assert.Equal(t, []int{1, 0}, r.Selected)
	requireNoOverlap(t, pts, radius, r.Selected)
	requireMaximal(t, r, len(pts))
}

func TestRun_SweepsFromLargestProjection(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)}

	east := Run(pts, 1, geom.Direction(0))
	assert.Equal(t, []int{2}, east.Selected)
	assert.Equal(t, []int{0, 1, 2}, east.Order)

	west := Run(pts, 1, geom.Direction(math.Pi))
	assert.Equal(t, []int{0}, west.Selected)
}

func TestRun_TieBreakByIndex(t *testing.T) {
	// All projections onto east are equal; the highest index is swept first.
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(0, 2)}
	r := Run(pts, 1, geom.Direction(0))
	assert.Equal(t, []int{0, 1, 2}, r.Order)
	assert.Equal(t, []int{2}, r.Selected)
}

func TestRun_SinglePoint(t *testing.T) {
	r := Run([]geom.Point{geom.Pt(3, 4)}, 5, geom.Direction(0))
	assert.Equal(t, []int{0}, r.Selected)
	assert.True(t, r.Alive(0))
}

func TestRun_Degenerate(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}

	tests := []struct {
		name   string
		pts    []geom.Point
		radius float64
	}{
		{"Empty", nil, 1},
		{"ZeroRadius", pts, 0},
		{"NegativeRadius", pts, -3},
		{"NaNRadius", pts, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Run(tt.pts, tt.radius, geom.Direction(0))
			assert.Empty(t, r.Selected)
			assert.Equal(t, 0, r.AliveCount())
			assert.False(t, r.Alive(0))
		})
	}
}

func TestRun_IdenticalPoints(t *testing.T) {
	pts := make([]geom.Point, 50)
	for i := range pts {
		pts[i] = geom.Pt(-7, 3)
	}
	r := Run(pts, 0.5, geom.Direction(1))
	assert.Len(t, r.Selected, 1)
	requireMaximal(t, r, len(pts))
}

func TestRun_NegativeCoordinates(t *testing.T) {
	// Points across the origin at distance 1 must eliminate each other.
	pts := []geom.Point{geom.Pt(-0.5, 0), geom.Pt(0.5, 0), geom.Pt(-0.5, -0.5)}
	r := Run(pts, 1, geom.Direction(0))
	assert.Len(t, r.Selected, 1)
	requireMaximal(t, r, len(pts))
}

func TestRun_RandomInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pts := make([]geom.Point, 1000)
	for i := range pts {
		pts[i] = geom.Pt(math.Floor(rng.Float64()*1000), math.Floor(rng.Float64()*1000))
	}
	const radius = 12.0

	for k := 0; k < 8; k++ {
		dir := geom.Direction(float64(k) * 2 * math.Pi / 8)
		r := Run(pts, radius, dir)
		require.NotEmpty(t, r.Selected)
		requireNoOverlap(t, pts, radius, r.Selected)
		requireMaximal(t, r, len(pts))

		again := Run(pts, radius, dir)
		require.Equal(t, r.Selected, again.Selected, "sweep must be deterministic")
	}
}

func BenchmarkRun(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	pts := make([]geom.Point, 100_000)
	for i := range pts {
		pts[i] = geom.Pt(rng.Float64()*10_000, rng.Float64()*10_000)
	}
	dir := geom.Direction(0.3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Run(pts, 5, dir)
	}
}
