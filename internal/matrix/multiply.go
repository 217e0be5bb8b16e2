package matrix

import (
	"fmt"

	"github.com/born-ml/neuralnet/internal/parallel"
)

// Multiply returns the matrix product a×b.
//
// Requires a.Cols() == b.Rows(), otherwise fails with ErrDimensionMismatch.
// The result has shape (a.Rows(), b.Cols()). Each element is accumulated
// in ascending k with plain float64 addition.
//
// Example:
//
//	a, _ := matrix.NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	b, _ := matrix.NewFromSlice(3, 2, []float64{7, 8, 9, 10, 11, 12})
//	c, _ := matrix.Multiply(a, b)
//	c.Data() // [58 64 139 154]
func Multiply(a, b *Dense) (*Dense, error) {
	return MultiplyWith(a, b, parallel.DefaultConfig())
}

// MultiplyWith is Multiply with explicit control over parallelism.
//
// Result rows are split across workers; every element is still summed in
// ascending k, so the output does not depend on cfg.
func MultiplyWith(a, b *Dense, cfg parallel.Config) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("matrix: multiply with nil operand: %w", ErrDimensionMismatch)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("matrix: multiply %dx%d by %dx%d: %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	out, err := New(a.rows, b.cols)
	if err != nil {
		return nil, err
	}

	n, p := a.cols, b.cols
	parallel.For(a.rows, func(i int) {
		row := a.data[i*n : (i+1)*n]
		dst := out.data[i*p : (i+1)*p]
		for j := 0; j < p; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += row[k] * b.data[k*p+j]
			}
			dst[j] = sum
		}
	}, cfg)

	return out, nil
}
