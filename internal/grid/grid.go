// Package grid implements a uniform hash grid over candidate points.
//
// The grid answers "which candidates can lie within one cell width of p" by
// scanning the block of cells covering [p-cell, p+cell] on each axis, which
// is the 3x3 block around p in all but rounding corner cases. With the cell
// size equal to the packing diameter this block contains every candidate
// that can collide with a disk centered at p.
package grid

import (
	"math"

	"github.com/hupe1980/diskpack/geom"
)

// CellKey identifies a grid cell.
type CellKey struct {
	X, Y int64
}

// KeyOf returns the cell containing p.
//
// The division and floor are taken in float64 before converting to an
// integer coordinate, so negative coordinates map to the cell below zero
// instead of being truncated towards it.
func KeyOf(p geom.Point, cellSize float64) CellKey {
	return CellKey{
		X: int64(math.Floor(p.X / cellSize)),
		Y: int64(math.Floor(p.Y / cellSize)),
	}
}

// Grid maps cells to the indices of the points they contain.
//
// A Grid is immutable after Build and safe for concurrent reads.
type Grid struct {
	cellSize float64
	cells    map[CellKey][]int
	n        int
}

// Build indexes every point of pts. Buckets keep indices in ascending order.
func Build(pts []geom.Point, cellSize float64) *Grid {
	g := &Grid{
		cellSize: cellSize,
		cells:    make(map[CellKey][]int),
		n:        len(pts),
	}
	for i, p := range pts {
		k := KeyOf(p, cellSize)
		g.cells[k] = append(g.cells[k], i)
	}
	return g
}

// BuildSubset indexes only the listed indices of pts.
func BuildSubset(pts []geom.Point, idx []int, cellSize float64) *Grid {
	g := &Grid{
		cellSize: cellSize,
		cells:    make(map[CellKey][]int),
		n:        len(idx),
	}
	for _, i := range idx {
		k := KeyOf(pts[i], cellSize)
		g.cells[k] = append(g.cells[k], i)
	}
	return g
}

// Len returns the number of indexed points.
func (g *Grid) Len() int {
	return g.n
}

// Cells returns the number of non-empty cells.
func (g *Grid) Cells() int {
	return len(g.cells)
}

// Neighbors calls fn for every index stored in a cell that can hold a point
// within one cell width of p on both axes, including p's own index if it is
// indexed. Iteration stops early when fn returns false.
func (g *Grid) Neighbors(p geom.Point, fn func(i int) bool) {
	x0, x1 := g.span(p.X)
	y0, y1 := g.span(p.Y)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for _, i := range g.cells[CellKey{X: x, Y: y}] {
				if !fn(i) {
					return
				}
			}
		}
	}
}

// span returns the cell coordinates covering [v-cell, v+cell].
//
// Subtraction, division and floor are all monotone in float64, so any
// stored coordinate inside the interval keys into the returned range even
// when v/cell rounds across a cell boundary.
func (g *Grid) span(v float64) (lo, hi int64) {
	a := math.Floor((v - g.cellSize) / g.cellSize)
	b := math.Floor((v + g.cellSize) / g.cellSize)
	if math.IsNaN(a) || math.IsNaN(b) {
		k := int64(math.Floor(v / g.cellSize))
		return k - 1, k + 1
	}
	return int64(a), int64(b)
}
