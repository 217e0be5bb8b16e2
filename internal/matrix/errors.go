package matrix

import "errors"

// Sentinel errors for matrix and network operations.
// Failures wrap one of these with the offending values; test with errors.Is.
var (
	// ErrShapeMismatch indicates flat data whose length is not rows*cols.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOutOfRange indicates element access outside the declared bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidDimensions indicates a negative or otherwise unusable size.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)
