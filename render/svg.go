package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/diskpack/geom"
)

const (
	colorCandidate = "black"
	colorSelected  = "blue"
	colorConflict  = "red"
)

// frame maps instance coordinates to image coordinates. The instance
// bounding box is padded by the radius so border disks are fully visible,
// and the y axis points down as SVG expects.
type frame struct {
	x0, y1 float64
	scale  float64
	width  float64
	height float64
	radius float64
}

func newFrame(pts []geom.Point, radius float64, imageSize int) frame {
	lo, hi, _ := geom.Bounds(pts)
	x0, y0 := lo.X-radius, lo.Y-radius
	x1, y1 := hi.X+radius, hi.Y+radius

	size := math.Max(x1-x0, y1-y0)
	scale := float64(imageSize) / size
	return frame{
		x0:     x0,
		y1:     y1,
		scale:  scale,
		width:  (x1 - x0) * scale,
		height: (y1 - y0) * scale,
		radius: radius * scale,
	}
}

func (f frame) project(p geom.Point) (float64, float64) {
	return (p.X - f.x0) * f.scale, (f.y1 - p.Y) * f.scale
}

func bitmapOf(idx []int, n int) *roaring.Bitmap {
	rb := roaring.New()
	for _, i := range idx {
		if i >= 0 && i < n {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// WriteSVG renders the candidate disks of pts with the selection sol.
// Indices outside pts are ignored. A non-positive radius or an empty point
// set produces an empty image of the configured size.
func WriteSVG(w io.Writer, pts []geom.Point, radius float64, sol []int, optFns ...Option) error {
	o := applyOptions(optFns)
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, `<?xml version="1.0" encoding="utf-8"?>`)

	if len(pts) == 0 || !(radius > 0) || math.IsInf(radius, 1) {
		fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%d\" height=\"%d\">\n", o.imageSize, o.imageSize)
		fmt.Fprintln(bw, "</svg>")
		return bw.Flush()
	}

	f := newFrame(pts, radius, o.imageSize)
	selected := bitmapOf(sol, len(pts))
	conflicts := bitmapOf(o.conflicts, len(pts))

	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%g\" height=\"%g\">\n", f.width, f.height)
	if o.summary {
		fmt.Fprintf(bw, " <text x=\"0\" y=\"20\">|S|=%d</text>\n", selected.GetCardinality())
	}

	circle := func(i int, stroke string) {
		cx, cy := f.project(pts[i])
		fmt.Fprintf(bw, " <circle stroke=\"%s\" fill=\"none\" stroke-width=\"%g\" cx=\"%g\" cy=\"%g\" r=\"%g\">\n",
			stroke, o.strokeWidth, cx, cy, f.radius)
		fmt.Fprintf(bw, "  <title>%s</title>\n", pts[i])
		fmt.Fprintln(bw, " </circle>")
	}

	// Unselected disks first so the selection is drawn on top.
	for i := range pts {
		if selected.Contains(uint32(i)) {
			continue
		}
		stroke := colorCandidate
		if conflicts.Contains(uint32(i)) {
			stroke = colorConflict
		}
		circle(i, stroke)
	}

	it := selected.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		stroke := colorSelected
		if conflicts.Contains(uint32(i)) {
			stroke = colorConflict
		}
		circle(i, stroke)
	}

	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}
