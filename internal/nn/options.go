package nn

import (
	"github.com/born-ml/neuralnet/internal/parallel"
)

// Default construction values.
const (
	DefaultLearningRate = 0.1
	DefaultBias         = 1
)

// Hyperparameters holds the training-only settings of a network.
// Inference never reads them.
type Hyperparameters struct {
	LearningRate float64
}

type config struct {
	bias        int
	hyper       Hyperparameters
	activation  Activation
	initializer Initializer
	parallel    parallel.Config
}

func defaultConfig() config {
	return config{
		bias:        DefaultBias,
		hyper:       Hyperparameters{LearningRate: DefaultLearningRate},
		activation:  SigmoidActivation,
		initializer: Zeros(),
		parallel:    parallel.DefaultConfig(),
	}
}

// Option configures a FeedForward network at construction.
type Option func(*config)

// WithBias sets the constant added to every neuron's pre-activation sum.
func WithBias(b int) Option {
	return func(c *config) { c.bias = b }
}

// WithLearningRate sets the stored learning rate.
func WithLearningRate(lr float64) Option {
	return func(c *config) { c.hyper.LearningRate = lr }
}

// WithActivation replaces the sigmoid activation.
func WithActivation(a Activation) Option {
	return func(c *config) {
		if a.Func != nil {
			c.activation = a
		}
	}
}

// WithInitializer sets how weight matrices are filled after allocation.
func WithInitializer(fill Initializer) Option {
	return func(c *config) {
		if fill != nil {
			c.initializer = fill
		}
	}
}

// WithParallel controls how matrix products are split across goroutines.
func WithParallel(cfg parallel.Config) Option {
	return func(c *config) { c.parallel = cfg }
}
