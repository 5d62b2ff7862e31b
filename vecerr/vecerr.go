// Package vecerr defines the error-kind taxonomy shared by the flat
// vector and bit vector (spec §7): sentinel errors identifying the kind
// of failure, wrapped with positional context via fmt.Errorf's %w so
// errors.Is/errors.As keep working through the call stack.
package vecerr

import "errors"

var (
	// ErrState is returned when an operation is invoked on a
	// not-yet-built or cleared instance (e.g. rank1 with no rank index).
	ErrState = errors.New("vecerr: operation requires a built index")

	// ErrBound is returned when an index is out of range for the
	// operation's precondition.
	ErrBound = errors.New("vecerr: index out of bounds")

	// ErrRange is returned when a value does not fit the configured
	// value size of a flat vector.
	ErrRange = errors.New("vecerr: value exceeds configured width")

	// ErrSize is returned when a persisted size exceeds the running
	// architecture's addressable range.
	ErrSize = errors.New("vecerr: persisted size exceeds addressable range")

	// ErrFormat is returned when persisted bytes violate the layout
	// invariants: tag mismatch, oversized scalar, truncated array.
	ErrFormat = errors.New("vecerr: malformed persisted layout")

	// ErrIO is returned when the underlying reader/writer/mapper
	// reports a short transfer.
	ErrIO = errors.New("vecerr: short transfer")
)
