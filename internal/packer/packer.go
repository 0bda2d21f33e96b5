// Package packer implements one greedy sweep of the disk packing heuristic.
//
// Candidates are ordered by their projection onto a direction and swept
// from the largest projection down. Every still alive candidate is selected
// and every candidate overlapping it is killed. The result is a maximal set
// of pairwise non-overlapping disks for that scan order.
package packer

import (
	"cmp"
	"slices"

	"github.com/hupe1980/diskpack/geom"
	"github.com/hupe1980/diskpack/internal/bitset"
	"github.com/hupe1980/diskpack/internal/grid"
)

// Result is the outcome of one greedy sweep.
type Result struct {
	// Selected holds the chosen candidate indices in selection order.
	Selected []int
	// Order is the ascending projection order used by the sweep.
	Order []int
	// Cells is the number of occupied grid cells the sweep indexed.
	Cells int

	dead *bitset.Set
}

// Alive reports whether candidate i survived the sweep without being
// eliminated. After a completed sweep only selected candidates are alive.
func (r *Result) Alive(i int) bool {
	if r.dead == nil || i < 0 || i >= r.dead.Len() {
		return false
	}
	return !r.dead.Test(i)
}

// AliveCount returns the number of candidates still alive.
func (r *Result) AliveCount() int {
	if r.dead == nil {
		return 0
	}
	return r.dead.Len() - r.dead.Count()
}

// Len returns the number of selected candidates.
func (r *Result) Len() int {
	return len(r.Selected)
}

// Valid reports whether a packing is defined for radius and the candidate count.
func Valid(n int, radius float64) bool {
	return n > 0 && radius > 0
}

// Run performs one greedy sweep of pts along dir.
//
// A non-positive (or NaN) radius, or an empty candidate set, yields an
// empty Result.
func Run(pts []geom.Point, radius float64, dir geom.Point) *Result {
	if !Valid(len(pts), radius) {
		return &Result{}
	}

	order := sortByProjection(pts, dir)

	cell := 2 * radius
	g := grid.Build(pts, cell)

	// Aliveness is tracked as a dead bit per candidate index.
	dead := bitset.New(len(pts))
	selected := make([]int, 0, len(pts)/4+1)

	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		if dead.Test(i) {
			continue
		}
		selected = append(selected, i)

		p := pts[i]
		g.Neighbors(p, func(j int) bool {
			if j != i && !dead.Test(j) && geom.Within(p, pts[j], cell) {
				dead.Set(j)
			}
			return true
		})
	}

	return &Result{
		Selected: selected,
		Order:    order,
		Cells:    g.Cells(),
		dead:     dead,
	}
}

// sortByProjection returns the candidate indices sorted ascending by their
// projection onto dir, breaking ties by ascending index.
func sortByProjection(pts []geom.Point, dir geom.Point) []int {
	proj := make([]float64, len(pts))
	order := make([]int, len(pts))
	for i, p := range pts {
		proj[i] = p.Dot(dir)
		order[i] = i
	}

	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(proj[a], proj[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return order
}
