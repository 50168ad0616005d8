package social

import (
	"errors"
)

var (
	// ErrTruncatedData indicates fewer bytes remained than a declared
	// length required.
	ErrTruncatedData = errors.New("truncated data")

	// ErrInvalidEncoding indicates a structural defect other than
	// truncation: an oversized length prefix, non-UTF-8 string bytes, or
	// trailing garbage after an instruction payload.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrUnknownInstruction indicates a discriminant outside the
	// instruction table.
	ErrUnknownInstruction = errors.New("unknown instruction")
)
