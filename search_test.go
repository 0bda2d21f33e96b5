package diskpack

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/diskpack/geom"
	"github.com/hupe1980/diskpack/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		pts    []geom.Point
		radius float64
		want   int
	}{
		{
			name:   "FarApartSquare",
			pts:    []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(0, 10), geom.Pt(10, 10)},
			radius: 1,
			want:   4,
		},
		{
			name:   "ColinearTouching",
			pts:    []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)},
			radius: 1,
			want:   1,
		},
		{
			name:   "SinglePoint",
			pts:    []geom.Point{geom.Pt(3, 3)},
			radius: 5,
			want:   1,
		},
		{
			name:   "AllIdentical",
			pts:    []geom.Point{geom.Pt(1, 1), geom.Pt(1, 1), geom.Pt(1, 1)},
			radius: 1,
			want:   1,
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Search(ctx, tt.pts, tt.radius)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Best.Len())
			require.Len(t, res.Runs, DefaultAngleCount)
			for _, run := range res.Runs {
				// Every direction agrees on these inputs.
				assert.Equal(t, tt.want, run.Solution.Len())
			}
		})
	}
}

func TestSearch_SinglePointSolution(t *testing.T) {
	res, err := Search(context.Background(), []geom.Point{geom.Pt(-2, 7)}, 5)
	require.NoError(t, err)
	assert.Equal(t, Solution{0}, res.Best)
}

func TestSearch_Degenerate(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 10)}

	tests := []struct {
		name   string
		pts    []geom.Point
		radius float64
	}{
		{"Empty", nil, 3},
		{"ZeroRadius", pts, 0},
		{"NegativeRadius", pts, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Search(context.Background(), tt.pts, tt.radius)
			require.NoError(t, err)
			assert.NotNil(t, res.Best)
			assert.Empty(t, res.Best)
			assert.Empty(t, res.Runs)
			assert.Equal(t, -1, res.BestDirection)
		})
	}
}

func TestSearch_InvalidAngleCount(t *testing.T) {
	_, err := Search(context.Background(), []geom.Point{geom.Pt(0, 0)}, 1, WithAngleCount(0))
	require.ErrorIs(t, err, ErrInvalidAngleCount)
}

func TestSearch_RandomSquare(t *testing.T) {
	rng := testutil.NewRNG(42)
	pts := rng.UniformPoints(1000, 1000)
	const radius = 10.0

	res, err := Search(context.Background(), pts, radius, WithAngleCount(8))
	require.NoError(t, err)
	require.Len(t, res.Runs, 8)

	for k, run := range res.Runs {
		assert.InDelta(t, float64(k)*2*math.Pi/8, run.Angle, 1e-12)
		assert.True(t, testutil.BruteForceNoOverlap(pts, radius, run.Solution), "run %d overlaps", k)
		assert.True(t, testutil.BruteForceMaximal(pts, radius, run.Solution), "run %d not maximal", k)
		assert.GreaterOrEqual(t, res.Best.Len(), run.Solution.Len())
	}

	sizes := res.Sizes()
	assert.Equal(t, sizes[res.BestDirection], res.Best.Len())
	// Ties keep the first direction.
	for k := 0; k < res.BestDirection; k++ {
		assert.Less(t, sizes[k], res.Best.Len())
	}
}

func TestSearch_Deterministic(t *testing.T) {
	pts := testutil.NewRNG(7).UniformRangePoints(500, -50, 50)

	a, err := Search(context.Background(), pts, 2.5, WithAngleCount(12))
	require.NoError(t, err)
	b, err := Search(context.Background(), pts, 2.5, WithAngleCount(12))
	require.NoError(t, err)

	assert.Equal(t, a.Best, b.Best)
	assert.Equal(t, a.Sizes(), b.Sizes())
	for k := range a.Runs {
		assert.Equal(t, a.Runs[k].Solution, b.Runs[k].Solution)
	}
}

func TestSearch_ParallelMatchesSequential(t *testing.T) {
	pts := testutil.NewRNG(11).ClusteredPoints(2000, 6, 40, 800)

	seq, err := Search(context.Background(), pts, 4, WithAngleCount(16))
	require.NoError(t, err)

	par, err := Search(context.Background(), pts, 4, WithAngleCount(16), WithParallelism(4))
	require.NoError(t, err)

	assert.Equal(t, seq.Best, par.Best)
	assert.Equal(t, seq.BestDirection, par.BestDirection)
	assert.Equal(t, seq.Sizes(), par.Sizes())
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pts := testutil.NewRNG(1).UniformPoints(100, 100)
	_, err := Search(ctx, pts, 1)
	require.ErrorIs(t, err, context.Canceled)
}

type recordingCollector struct {
	mu         sync.Mutex
	directions []int
	searches   int
	best       int
}

func (c *recordingCollector) RecordDirection(angle float64, size int, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.directions = append(c.directions, size)
}

func (c *recordingCollector) RecordSearch(directions, best int, d time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searches++
	c.best = best
}

func TestSearch_Metrics(t *testing.T) {
	pts := testutil.NewRNG(5).UniformPoints(300, 200)
	mc := &recordingCollector{}

	res, err := Search(context.Background(), pts, 3, WithAngleCount(5), WithParallelism(2), WithMetricsCollector(mc))
	require.NoError(t, err)

	assert.Len(t, mc.directions, 5)
	assert.Equal(t, 1, mc.searches)
	assert.Equal(t, res.Best.Len(), mc.best)
}

func TestSearch_NilOptions(t *testing.T) {
	res, err := Search(context.Background(), []geom.Point{geom.Pt(0, 0)}, 1,
		nil, WithLogger(nil), WithMetricsCollector(nil), WithParallelism(-3))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Best.Len())
}

func BenchmarkSearch(b *testing.B) {
	pts := testutil.NewRNG(1).UniformRangePoints(50_000, 0, 5_000)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Search(ctx, pts, 5, WithParallelism(4))
	}
}
