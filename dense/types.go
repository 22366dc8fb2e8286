// Package dense defines sentinel errors shared by the dense containers.
package dense

import "errors"

// Sentinel errors for dense container construction.
var (
	// ErrLengthMismatch indicates that the slice handed to FromSlice does
	// not contain exactly Indexer.Len() values.
	ErrLengthMismatch = errors.New("dense: data length does not match indexer length")

	// ErrNilIndexer indicates that a nil Indexer was passed to a container
	// constructor.
	ErrNilIndexer = errors.New("dense: indexer is nil")
)
