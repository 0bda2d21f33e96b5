package diskpack

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/diskpack/geom"
)

// Solution is a set of candidate indices, sorted ascending.
type Solution []int

func newSolution(selected []int) Solution {
	s := slices.Clone(selected)
	slices.Sort(s)
	if s == nil {
		s = Solution{}
	}
	return s
}

// Len returns the number of selected disks.
func (s Solution) Len() int {
	return len(s)
}

// Contains reports whether candidate i is selected.
func (s Solution) Contains(i int) bool {
	_, ok := slices.BinarySearch(s, i)
	return ok
}

// Points returns the centers of the selected disks.
func (s Solution) Points(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(s))
	for _, i := range s {
		if i >= 0 && i < len(pts) {
			out = append(out, pts[i])
		}
	}
	return out
}

// Bitmap returns the solution as a roaring bitmap. Negative indices and
// indices above MaxUint32 are skipped.
func (s Solution) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	for _, i := range s {
		if i >= 0 && uint64(i) <= uint64(^uint32(0)) {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// SolutionFromBitmap builds a Solution from a roaring bitmap.
func SolutionFromBitmap(rb *roaring.Bitmap) Solution {
	s := make(Solution, 0, rb.GetCardinality())
	it := rb.Iterator()
	for it.HasNext() {
		s = append(s, int(it.Next()))
	}
	return s
}

// SolutionOf builds a Solution from arbitrary indices, sorting and
// removing duplicates.
func SolutionOf(idx ...int) Solution {
	s := newSolution(idx)
	return slices.Compact(s)
}
