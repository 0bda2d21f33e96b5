package diskpack

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAngleCount is returned when the number of sweep directions is not positive.
	ErrInvalidAngleCount = errors.New("angle count must be positive")

	// ErrInvalidSolution is the sentinel matched by every verification failure.
	ErrInvalidSolution = errors.New("invalid solution")
)

// OverlapError reports two selected disks that collide.
type OverlapError struct {
	I, J  int
	Dist2 float64
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("disks %d and %d overlap: squared distance %g", e.I, e.J, e.Dist2)
}

// Is makes errors.Is(err, ErrInvalidSolution) hold.
func (e *OverlapError) Is(target error) bool { return target == ErrInvalidSolution }

// IndexError reports a solution index that does not name a distinct candidate.
type IndexError struct {
	Index     int
	Duplicate bool
}

func (e *IndexError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("duplicate index %d", e.Index)
	}
	return fmt.Sprintf("index %d out of range", e.Index)
}

// Is makes errors.Is(err, ErrInvalidSolution) hold.
func (e *IndexError) Is(target error) bool { return target == ErrInvalidSolution }
