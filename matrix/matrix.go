// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/neuralnet/internal/matrix"
	"github.com/born-ml/neuralnet/internal/parallel"
)

// Dense is a row-major float64 matrix.
type Dense = matrix.Dense

// ParallelConfig controls how products are split across goroutines.
type ParallelConfig = parallel.Config

// Errors returned by matrix operations.
var (
	ErrShapeMismatch     = matrix.ErrShapeMismatch
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrIndexOutOfRange   = matrix.ErrIndexOutOfRange
	ErrInvalidDimensions = matrix.ErrInvalidDimensions
)

// New returns a zero-filled rows×cols matrix.
//
// Example:
//
//	m, err := matrix.New(2, 3)
func New(rows, cols int) (*Dense, error) {
	return matrix.New(rows, cols)
}

// NewFromSlice returns a rows×cols matrix holding a copy of values in row-major order.
//
// Example:
//
//	m, err := matrix.NewFromSlice(2, 2, []float64{1, 2, 3, 4})
func NewFromSlice(rows, cols int, values []float64) (*Dense, error) {
	return matrix.NewFromSlice(rows, cols, values)
}

// Multiply returns the product a×b.
func Multiply(a, b *Dense) (*Dense, error) {
	return matrix.Multiply(a, b)
}

// MultiplyWith returns the product a×b using the given parallel settings.
func MultiplyWith(a, b *Dense, cfg ParallelConfig) (*Dense, error) {
	return matrix.MultiplyWith(a, b, cfg)
}

// DefaultParallelConfig returns parallel settings sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns settings that keep products on the calling goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
