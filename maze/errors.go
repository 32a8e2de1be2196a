package maze

import (
	"errors"
	"fmt"
)

// ErrMalformed is the root of every construction failure; test with errors.Is.
var ErrMalformed = errors.New("maze: malformed input")

var (
	// ErrEmptyMaze indicates the input has no rows or no columns.
	ErrEmptyMaze = fmt.Errorf("%w: maze must have at least one row and one column", ErrMalformed)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformed)
	// ErrUnknownCell indicates a character outside the recognized cell set.
	ErrUnknownCell = fmt.Errorf("%w: unrecognized cell character", ErrMalformed)
	// ErrNoEntry indicates the maze has no 'I' cell.
	ErrNoEntry = fmt.Errorf("%w: no entry cell", ErrMalformed)
	// ErrMultipleEntries indicates the maze has more than one 'I' cell.
	ErrMultipleEntries = fmt.Errorf("%w: more than one entry cell", ErrMalformed)
	// ErrMultipleKeys indicates more than one 'K' cell while Options.MultiKey is off.
	ErrMultipleKeys = fmt.Errorf("%w: more than one key cell", ErrMalformed)
	// ErrUnknownMove indicates a move token other than U, D, L or R.
	ErrUnknownMove = errors.New("maze: unknown move token")
)
