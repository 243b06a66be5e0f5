package mapgen

// WrapLevel controls how the grid's edges wrap around when stepping off a
// boundary. Levels are ordered; a wrap level of N permits every wrap
// requiring cost <= N.
type WrapLevel int

const (
	// WrapNone is a flat plane; stepping off any edge fails.
	WrapNone WrapLevel = 0
	// WrapCylinder wraps east-west only.
	WrapCylinder WrapLevel = 1
	// WrapTorus wraps both east-west and north-south.
	WrapTorus WrapLevel = 2
)

func (w WrapLevel) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapCylinder:
		return "cylinder"
	case WrapTorus:
		return "torus"
	}
	return "unknown"
}
