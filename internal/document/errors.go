package document

import "errors"

// Errors returned by document operations.
var (
	// ErrLineOutOfRange indicates a line number has no line in the document.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrOffsetOutOfRange indicates an offset is outside the document text.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates an invalid range (negative length or past the end).
	ErrRangeInvalid = errors.New("invalid range")
)
