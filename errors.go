package turing

import "errors"

var (
	// ErrEmptySequence is returned when a composition operator (MultiConcat,
	// MultiUnion, Expect, UnionOfSequences) is given a nonempty-sequence
	// precondition it cannot satisfy.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrEmptyState reports an empty state label (state labels must be
	// non-empty strings). No function in this package returns it; labels
	// are not checked for emptiness during construction.
	ErrEmptyState = errors.New("empty state label")

	// ErrMismatchedLengths is returned when Expect or UnionOfSequences is
	// given sequence/distance slices whose lengths disagree.
	ErrMismatchedLengths = errors.New("mismatched sequence and distance lengths")
)
