package mapgen

import "fmt"

// ShapeError indicates a zero dimension, or a bitmask/constraint grid whose
// shape disagrees with the requested grid shape. Generators surface this
// before allocating any state.
type ShapeError struct {
	Op  string
	Msg string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func newShapeError(op, msg string) error {
	return &ShapeError{Op: op, Msg: msg}
}
