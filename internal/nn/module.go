// Package nn implements a layered feed-forward neural network on top of
// the dense matrix package.
//
// A network is described by its topology: an input size, zero or more
// hidden layer sizes and an output size. Each transition between two
// layers owns one weight matrix of shape next×previous. Inference
// multiplies through the weights in order, adding a constant bias and
// applying an activation (sigmoid by default) after every product.
package nn

// Predictor maps an input vector to an output vector.
//
// Implementations must not mutate their own state in Forward, so a single
// Predictor can serve concurrent callers.
type Predictor interface {
	Forward(input []float64) ([]float64, error)
}

var _ Predictor = (*FeedForward)(nil)
