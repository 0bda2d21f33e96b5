// Package diskpack computes large packings of non-overlapping equal-radius
// disks chosen from a fixed set of candidate centers.
//
// The heuristic sweeps the candidates in the order of their projection onto
// a direction, greedily keeping every disk that does not collide with one
// already kept. A uniform hash grid keeps each collision query close to
// constant time. Search repeats the sweep for several evenly spaced
// directions and returns the largest packing found.
//
// # Quick Start
//
//	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(5, 5)}
//	res, err := diskpack.Search(ctx, pts, 1)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Best.Len(), res.Sizes())
//
// # Tuning
//
//	res, err := diskpack.Search(ctx, pts, radius,
//	    diskpack.WithAngleCount(32),   // more directions, more diversity
//	    diskpack.WithParallelism(4),   // run directions concurrently
//	    diskpack.WithLogLevel(slog.LevelDebug),
//	)
//
// The returned packing does not depend on the parallelism: the best
// direction is chosen after all runs finish, and ties keep the lowest angle.
//
// # Collision Rule
//
// Two disks collide when their centers are at most 2*radius apart. Touching
// disks are therefore never selected together.
//
// # Verification
//
//	if err := diskpack.Verify(pts, radius, res.Best); err != nil {
//	    var oe *diskpack.OverlapError
//	    if errors.As(err, &oe) { ... }
//	}
package diskpack
