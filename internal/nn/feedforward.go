package nn

import (
	"fmt"

	"github.com/born-ml/neuralnet/internal/matrix"
	"github.com/born-ml/neuralnet/internal/parallel"
)

// FeedForward is a fully connected network with a fixed topology.
//
// Weights are allocated at construction and never changed by Forward,
// so one network may be used from many goroutines at once.
//
// Example:
//
//	net, err := nn.NewFeedForward(2, []int{3}, 1)
//	out, err := net.Forward([]float64{0.5, -0.5})  // len(out) == 1
type FeedForward struct {
	inputSize   int
	hiddenSizes []int
	outputSize  int

	weights    []*matrix.Dense // weights[i]: layers[i+1] × layers[i]
	bias       int
	activation Activation
	parallel   parallel.Config

	hyper Hyperparameters
}

// NewFeedForward builds a network with the given topology.
//
// With no hidden layers the network is a single-layer perceptron holding
// one weight matrix of shape outputSize×inputSize. All sizes must be
// positive, otherwise ErrInvalidDimensions is returned.
//
// Weights start at zero unless WithInitializer is given.
func NewFeedForward(inputSize int, hiddenSizes []int, outputSize int, opts ...Option) (*FeedForward, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	layers := make([]int, 0, len(hiddenSizes)+2)
	layers = append(layers, inputSize)
	layers = append(layers, hiddenSizes...)
	layers = append(layers, outputSize)

	for i, size := range layers {
		if size <= 0 {
			return nil, fmt.Errorf("nn: layer %d has size %d (must be > 0): %w",
				i, size, matrix.ErrInvalidDimensions)
		}
	}

	weights := make([]*matrix.Dense, len(layers)-1)
	for i := range weights {
		w, err := matrix.New(layers[i+1], layers[i])
		if err != nil {
			return nil, fmt.Errorf("nn: allocate weights %d: %w", i, err)
		}
		cfg.initializer(i, w)
		weights[i] = w
	}

	hidden := make([]int, len(hiddenSizes))
	copy(hidden, hiddenSizes)

	return &FeedForward{
		inputSize:   inputSize,
		hiddenSizes: hidden,
		outputSize:  outputSize,
		weights:     weights,
		bias:        cfg.bias,
		activation:  cfg.activation,
		parallel:    cfg.parallel,
		hyper:       cfg.hyper,
	}, nil
}

// Forward propagates input through every layer and returns the output
// layer's activations, len == OutputSize().
//
// Fails with ErrDimensionMismatch when len(input) != InputSize().
func (n *FeedForward) Forward(input []float64) ([]float64, error) {
	if len(input) != n.inputSize {
		return nil, fmt.Errorf("nn: input has %d values, network expects %d: %w",
			len(input), n.inputSize, matrix.ErrDimensionMismatch)
	}

	a, err := matrix.NewFromSlice(len(input), 1, input)
	if err != nil {
		return nil, err
	}

	bias := float64(n.bias)
	act := n.activation.Func
	for i, w := range n.weights {
		z, err := matrix.MultiplyWith(w, a, n.parallel)
		if err != nil {
			return nil, fmt.Errorf("nn: layer %d: %w", i, err)
		}
		z.AddScalar(bias)
		z.Transform(func(v float64, _, _ int) float64 {
			return act(v)
		})
		a = z
	}

	return a.Data(), nil
}

// InputSize returns the number of input values.
func (n *FeedForward) InputSize() int {
	return n.inputSize
}

// HiddenSizes returns a copy of the hidden layer sizes.
func (n *FeedForward) HiddenSizes() []int {
	out := make([]int, len(n.hiddenSizes))
	copy(out, n.hiddenSizes)
	return out
}

// OutputSize returns the number of output values.
func (n *FeedForward) OutputSize() int {
	return n.outputSize
}

// Topology returns [input, hidden..., output].
func (n *FeedForward) Topology() []int {
	layers := make([]int, 0, len(n.hiddenSizes)+2)
	layers = append(layers, n.inputSize)
	layers = append(layers, n.hiddenSizes...)
	return append(layers, n.outputSize)
}

// NumLayers returns the number of weight matrices.
func (n *FeedForward) NumLayers() int {
	return len(n.weights)
}

// Weights returns copies of all weight matrices in layer order.
func (n *FeedForward) Weights() []*matrix.Dense {
	out := make([]*matrix.Dense, len(n.weights))
	for i, w := range n.weights {
		out[i] = w.Clone()
	}
	return out
}

// Weight returns a copy of the i-th weight matrix.
func (n *FeedForward) Weight(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(n.weights) {
		return nil, fmt.Errorf("nn: weight %d of %d: %w", i, len(n.weights), matrix.ErrIndexOutOfRange)
	}
	return n.weights[i].Clone(), nil
}

// Bias returns the constant added before each activation.
func (n *FeedForward) Bias() int {
	return n.bias
}

// Activation returns the activation applied after every layer.
func (n *FeedForward) Activation() Activation {
	return n.activation
}

// LearningRate returns the stored learning rate.
func (n *FeedForward) LearningRate() float64 {
	return n.hyper.LearningRate
}

// Hyperparameters returns the training settings.
func (n *FeedForward) Hyperparameters() Hyperparameters {
	return n.hyper
}
