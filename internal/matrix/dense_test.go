package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroFilled(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"2x3", 2, 3},
		{"1x1", 1, 1},
		{"column", 5, 1},
		{"empty rows", 0, 4},
		{"empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.rows, tt.cols)
			require.NoError(t, err)

			assert.Equal(t, tt.rows, m.Rows())
			assert.Equal(t, tt.cols, m.Cols())

			data := m.Data()
			assert.Len(t, data, tt.rows*tt.cols)
			for _, v := range data {
				assert.Zero(t, v)
			}
		})
	}
}

func TestNew_InvalidDimensions(t *testing.T) {
	for _, shape := range [][2]int{{-1, 3}, {3, -1}, {-2, -2}, {maxInt, 2}} {
		_, err := New(shape[0], shape[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "shape %v", shape)
	}
}

func TestNewFromSlice_RoundTrip(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}

	m, err := NewFromSlice(2, 3, values)
	require.NoError(t, err)
	assert.Equal(t, values, m.Data())

	// The input slice is copied.
	values[0] = 100
	v, err := m.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestNewFromSlice_ShapeMismatch(t *testing.T) {
	_, err := NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewFromSlice(2, 2, []float64{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewFromSlice(-1, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestGet_RowMajor(t *testing.T) {
	rows, cols := 3, 4
	values := make([]float64, rows*cols)
	for i := range values {
		values[i] = float64(i) * 1.5
	}

	m, err := NewFromSlice(rows, cols, values)
	require.NoError(t, err)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.Get(i, j)
			require.NoError(t, err)
			assert.Equal(t, values[i*cols+j], v)
		}
	}
}

func TestGet_OutOfRange(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)

	for _, pos := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}, {5, 5}} {
		_, err := m.Get(pos[0], pos[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "position %v", pos)
	}
}

func TestData_IsCopy(t *testing.T) {
	m, err := NewFromSlice(1, 2, []float64{1, 2})
	require.NoError(t, err)

	data := m.Data()
	data[0] = 42

	assert.Equal(t, []float64{1, 2}, m.Data())
}

func TestTransform(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)

	m.Transform(func(_ float64, r, c int) float64 {
		return float64(r + c)
	})

	assert.Equal(t, []float64{
		0, 1, 2,
		1, 2, 3,
	}, m.Data())
}

func TestTransform_VisitOrder(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)

	var visited [][2]int
	step := 0.0
	m.Transform(func(_ float64, r, c int) float64 {
		visited = append(visited, [2]int{r, c})
		step++
		return step
	})

	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, visited)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())
}

func TestScale(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)
	m.Transform(func(_ float64, r, c int) float64 { return float64(r + c) })

	m.Scale(3)
	assert.Equal(t, []float64{
		0, 3, 6,
		3, 6, 9,
	}, m.Data())
}

func TestScale_IdentityAndZero(t *testing.T) {
	values := []float64{-1.5, 0, 2.25, 1e10}

	m, err := NewFromSlice(2, 2, values)
	require.NoError(t, err)
	m.Scale(1)
	assert.Equal(t, values, m.Data())

	m.Scale(0)
	assert.Equal(t, []float64{0, 0, 0, 0}, m.Data())
}

func TestScale_PropagatesNonFinite(t *testing.T) {
	m, err := NewFromSlice(1, 2, []float64{1, -1})
	require.NoError(t, err)

	m.Scale(math.Inf(1))
	data := m.Data()
	assert.True(t, math.IsInf(data[0], 1))
	assert.True(t, math.IsInf(data[1], -1))

	m.Scale(math.NaN())
	for _, v := range m.Data() {
		assert.True(t, math.IsNaN(v))
	}
}

func TestAddScalar(t *testing.T) {
	m, err := NewFromSlice(2, 2, []float64{0, 1, -1, 2.5})
	require.NoError(t, err)

	m.AddScalar(1)
	assert.Equal(t, []float64{1, 2, 0, 3.5}, m.Data())
}

func TestClone(t *testing.T) {
	m, err := NewFromSlice(2, 1, []float64{3, 4})
	require.NoError(t, err)

	c := m.Clone()
	c.Scale(2)

	assert.Equal(t, []float64{3, 4}, m.Data())
	assert.Equal(t, []float64{6, 8}, c.Data())

	rows, cols := c.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 1, cols)
}

func TestString(t *testing.T) {
	m, err := NewFromSlice(2, 2, []float64{1, 2.5, -3, 4})
	require.NoError(t, err)

	assert.Equal(t, "Dense(2x2)\n[1 2.5]\n[-3 4]", m.String())
}
