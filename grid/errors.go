package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is the parent of every error caused by the shape or
// content of the input; match it with errors.Is to catch all of them.
var ErrMalformedGrid = errors.New("grid: malformed grid")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrNoStart indicates the input has no start marker.
	ErrNoStart = fmt.Errorf("%w: no start marker", ErrMalformedGrid)
	// ErrMultipleStarts indicates more than one start marker.
	ErrMultipleStarts = fmt.Errorf("%w: more than one start marker", ErrMalformedGrid)
	// ErrUnknownCell indicates a character outside the cell alphabet.
	ErrUnknownCell = fmt.Errorf("%w: unknown cell character", ErrMalformedGrid)
)

var (
	// ErrOutOfBounds indicates a coordinate outside [0,W)×[0,H) was passed to
	// a constructor. Point queries never return it.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrObstacleOnStart indicates an obstacle was requested on the start cell.
	ErrObstacleOnStart = errors.New("grid: obstacle on start cell")
	// ErrInvalidHeading indicates a Heading outside North..West.
	ErrInvalidHeading = errors.New("grid: invalid heading")
)
