package diskpack

import (
	"context"
	"math"
	"time"

	"github.com/hupe1980/diskpack/geom"
	"github.com/hupe1980/diskpack/internal/packer"
	"golang.org/x/sync/errgroup"
)

// Run describes a single direction sweep.
type Run struct {
	// Angle is the sweep angle in radians.
	Angle float64
	// Direction is the quantized projection vector used for the sweep.
	Direction geom.Point
	// Solution is the packing found along Direction.
	Solution Solution
	// Duration is the wall time spent on the sweep.
	Duration time.Duration
}

// Result is the outcome of Search.
type Result struct {
	// Best is the largest packing found over all directions.
	Best Solution
	// BestDirection is the index into Runs that produced Best, or -1 if no
	// direction ran.
	BestDirection int
	// Runs holds every direction sweep in angle order.
	Runs []Run
}

// Sizes returns the packing size achieved at every sampled direction.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Runs))
	for k, run := range r.Runs {
		sizes[k] = run.Solution.Len()
	}
	return sizes
}

// Search runs the greedy sweep along evenly spaced directions and returns
// the largest packing of disks with the given radius centered on pts.
//
// pts and radius are only read. An empty candidate set or a non-positive
// radius yields an empty Best without running any direction. The only
// errors are ErrInvalidAngleCount and the context's error if ctx is done
// before all directions completed.
func Search(ctx context.Context, pts []geom.Point, radius float64, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)
	if o.angleCount < 1 {
		return nil, ErrInvalidAngleCount
	}

	start := time.Now()
	logger := o.logger.WithCount(len(pts))

	if !packer.Valid(len(pts), radius) {
		logger.LogSearch(ctx, nil, 0, nil)
		o.metricsCollector.RecordSearch(0, 0, time.Since(start), nil)
		return &Result{Best: Solution{}, BestDirection: -1}, nil
	}

	runs := make([]Run, o.angleCount)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for k := range runs {
		if gctx.Err() != nil {
			break
		}
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			angle := float64(k) * 2 * math.Pi / float64(o.angleCount)
			dir := geom.Direction(angle)

			t0 := time.Now()
			r := packer.Run(pts, radius, dir)
			d := time.Since(t0)

			// Each goroutine owns its slot; the reduction happens after Wait.
			runs[k] = Run{
				Angle:     angle,
				Direction: dir,
				Solution:  newSolution(r.Selected),
				Duration:  d,
			}

			o.metricsCollector.RecordDirection(angle, r.Len(), d)
			logger.LogDirection(gctx, k, angle, r.Len(), r.Cells)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		logger.LogSearch(ctx, nil, 0, err)
		o.metricsCollector.RecordSearch(o.angleCount, 0, time.Since(start), err)
		return nil, err
	}

	best := 0
	for k := 1; k < len(runs); k++ {
		if runs[k].Solution.Len() > runs[best].Solution.Len() {
			best = k
		}
	}

	res := &Result{
		Best:          runs[best].Solution,
		BestDirection: best,
		Runs:          runs,
	}

	logger.LogSearch(ctx, res.Sizes(), res.Best.Len(), nil)
	o.metricsCollector.RecordSearch(len(runs), res.Best.Len(), time.Since(start), nil)
	return res, nil
}
