package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/neuralnet/internal/matrix"
)

// Initializer fills a freshly allocated, zero-valued weight matrix in place.
//
// layer is the index of the weight matrix (0 for input→first layer).
// The matrix has shape fanOut×fanIn, so w.Cols() is the fan-in.
type Initializer func(layer int, w *matrix.Dense)

// Zeros leaves weights at zero. It is the default and makes every output
// independent of the input until weights are set another way.
func Zeros() Initializer {
	return func(int, *matrix.Dense) {}
}

// Constant sets every weight to v.
func Constant(v float64) Initializer {
	return func(_ int, w *matrix.Dense) {
		w.Transform(func(float64, int, int) float64 { return v })
	}
}

// XavierUniform draws weights from U(-b, b) with b = sqrt(6 / (fanIn + fanOut)).
//
// Each layer uses its own source derived from seed, so construction is
// reproducible and the initializer is safe to share between goroutines.
func XavierUniform(seed int64) Initializer {
	return func(layer int, w *matrix.Dense) {
		fanIn, fanOut := w.Cols(), w.Rows()
		if fanIn+fanOut == 0 {
			return
		}
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		rng := rand.New(rand.NewSource(seed + int64(layer)))
		w.Transform(func(float64, int, int) float64 {
			return (rng.Float64()*2.0 - 1.0) * bound
		})
	}
}
