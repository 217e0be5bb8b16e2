// Package matrix implements a dense, row-major float64 matrix.
//
// A Dense owns a flat buffer of rows*cols values. Element (i, j) lives at
// index i*cols+j, and that layout is visible through Data.
//
// Transform and Scale mutate the receiver in place and must not run
// concurrently with any other use of the same matrix. Read-only methods
// (Get, Data, and use as a Multiply operand) may run concurrently.
package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Dense is a rows×cols matrix of float64 values stored in row-major order.
type Dense struct {
	rows int
	cols int
	data []float64
}

// New returns a zero-filled matrix with the given shape.
//
// Zero rows or columns are allowed and give an empty matrix.
// Negative sizes fail with ErrInvalidDimensions.
//
// Example:
//
//	m, err := matrix.New(2, 3)
//	m.Data() // [0 0 0 0 0 0]
func New(rows, cols int) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// NewFromSlice returns a matrix populated from values in row-major order:
// values[k] becomes data[k]. The slice is copied.
//
// Fails with ErrShapeMismatch when len(values) != rows*cols.
//
// Example:
//
//	m, err := matrix.NewFromSlice(2, 3, []float64{
//	    1, 2, 3,
//	    4, 5, 6,
//	})
func NewFromSlice(rows, cols int, values []float64) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("matrix: %d values for a %dx%d matrix (want %d): %w",
			len(values), rows, cols, rows*cols, ErrShapeMismatch)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Dense{rows: rows, cols: cols, data: data}, nil
}

func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("matrix: %dx%d (sizes must be >= 0): %w", rows, cols, ErrInvalidDimensions)
	}
	if cols != 0 && rows > maxInt/cols {
		return fmt.Errorf("matrix: %dx%d overflows element count: %w", rows, cols, ErrInvalidDimensions)
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)

// Rows returns the number of rows.
func (m *Dense) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Dense) Cols() int {
	return m.cols
}

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// Data returns a copy of the row-major buffer.
//
// Example:
//
//	m, _ := matrix.New(2, 3)
//	m.Transform(func(_ float64, r, c int) float64 { return float64(r + c) })
//	m.Data() // [0 1 2 1 2 3]
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Get returns the element at (row, col).
func (m *Dense) Get(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("matrix: (%d, %d) outside %dx%d: %w",
			row, col, m.rows, m.cols, ErrIndexOutOfRange)
	}
	return m.data[m.index(row, col)], nil
}

// Transform replaces every element with f(value, row, col).
//
// Elements are visited top-left first, left to right, then row by row.
func (m *Dense) Transform(f func(v float64, row, col int) float64) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			idx := m.index(i, j)
			m.data[idx] = f(m.data[idx], i, j)
		}
	}
}

// Scale multiplies every element by k in place.
// NaN and infinities propagate as usual.
func (m *Dense) Scale(k float64) {
	floats.Scale(k, m.data)
}

// AddScalar adds k to every element in place.
func (m *Dense) AddScalar(k float64) {
	floats.AddConst(k, m.data)
}

// Clone returns an independent copy of m.
func (m *Dense) Clone() *Dense {
	return &Dense{rows: m.rows, cols: m.cols, data: m.Data()}
}

// String formats the matrix one row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dense(%dx%d)", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		sb.WriteString("\n[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[m.index(i, j)])
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// index converts a 2D position into an offset into data.
func (m *Dense) index(row, col int) int {
	return row*m.cols + col
}
