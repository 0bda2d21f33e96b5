package diskpack

import (
	"fmt"
	"slices"

	"github.com/hupe1980/diskpack/geom"
	"github.com/hupe1980/diskpack/internal/bitset"
	"github.com/hupe1980/diskpack/internal/grid"
)

// Verify checks that sol is a valid packing of disks with the given radius
// centered on pts: every index names a distinct candidate and no two
// selected disks collide (center distance at most 2*radius).
//
// The returned error is an *IndexError or an *OverlapError and matches
// ErrInvalidSolution.
func Verify(pts []geom.Point, radius float64, sol []int) error {
	if err := checkIndices(len(pts), sol); err != nil {
		return err
	}
	if len(sol) == 0 {
		return nil
	}
	if !(radius > 0) {
		return fmt.Errorf("%w: no packing is defined for radius %g", ErrInvalidSolution, radius)
	}

	cell := 2 * radius
	g := grid.BuildSubset(pts, sol, cell)

	var overlap *OverlapError
	for _, i := range sol {
		p := pts[i]
		g.Neighbors(p, func(j int) bool {
			if j == i {
				return true
			}
			if geom.Within(p, pts[j], cell) {
				overlap = &OverlapError{I: min(i, j), J: max(i, j), Dist2: p.Dist2(pts[j])}
				return false
			}
			return true
		})
		if overlap != nil {
			return overlap
		}
	}
	return nil
}

// Conflicts returns, sorted ascending, every entry of sol that is out of
// range, duplicated, or collides with another selected disk.
func Conflicts(pts []geom.Point, radius float64, sol []int) []int {
	bad := make(map[int]struct{})
	var valid []int

	seen := bitset.New(len(pts))
	for _, i := range sol {
		if i < 0 || i >= len(pts) || seen.TestAndSet(i) {
			bad[i] = struct{}{}
			continue
		}
		valid = append(valid, i)
	}

	if radius > 0 && len(valid) > 1 {
		cell := 2 * radius
		g := grid.BuildSubset(pts, valid, cell)
		for _, i := range valid {
			p := pts[i]
			g.Neighbors(p, func(j int) bool {
				if j != i && geom.Within(p, pts[j], cell) {
					bad[i] = struct{}{}
					return false
				}
				return true
			})
		}
	} else if !(radius > 0) {
		for _, i := range valid {
			bad[i] = struct{}{}
		}
	}

	out := make([]int, 0, len(bad))
	for i := range bad {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Uncovered returns the candidates outside sol that no selected disk
// collides with. Such a candidate could be added to sol, so an empty result
// means sol is maximal. Invalid entries of sol are ignored.
func Uncovered(pts []geom.Point, radius float64, sol []int) []int {
	if !(radius > 0) || len(pts) == 0 {
		return nil
	}

	member := bitset.New(len(pts))
	valid := make([]int, 0, len(sol))
	for _, i := range sol {
		if i >= 0 && i < len(pts) && !member.TestAndSet(i) {
			valid = append(valid, i)
		}
	}

	cell := 2 * radius
	g := grid.BuildSubset(pts, valid, cell)

	var out []int
	for i, p := range pts {
		if member.Test(i) {
			continue
		}
		covered := false
		g.Neighbors(p, func(j int) bool {
			covered = geom.Within(p, pts[j], cell)
			return !covered
		})
		if !covered {
			out = append(out, i)
		}
	}
	return out
}

// checkIndices reports the first out-of-range or duplicate index.
func checkIndices(n int, sol []int) error {
	seen := bitset.New(n)
	for _, i := range sol {
		if i < 0 || i >= n {
			return &IndexError{Index: i}
		}
		if seen.TestAndSet(i) {
			return &IndexError{Index: i, Duplicate: true}
		}
	}
	return nil
}
