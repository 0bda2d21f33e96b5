package instance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/diskpack/geom"
)

var (
	// ErrCorrupt is returned when a compressed stream cannot be decompressed.
	ErrCorrupt = errors.New("instance: corrupt compressed data")
	// ErrMalformed is returned when the decompressed bytes are not JSON.
	ErrMalformed = errors.New("instance: malformed JSON")
)

// SchemaError lists every violation found while validating a document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("instance: schema validation failed: %s", strings.Join(e.Violations, "; "))
}

// Instance is a candidate point set and the radius shared by every disk.
type Instance struct {
	Points []geom.Point `json:"points"`
	Radius float64      `json:"radius"`
}

// Len returns the number of candidate points.
func (in *Instance) Len() int {
	return len(in.Points)
}

// Bounds returns the bounding box of the candidate centers.
func (in *Instance) Bounds() (lo, hi geom.Point, ok bool) {
	return geom.Bounds(in.Points)
}
