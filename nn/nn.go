// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/neuralnet/internal/matrix"
	"github.com/born-ml/neuralnet/internal/nn"
	"github.com/born-ml/neuralnet/internal/parallel"
)

// FeedForward is a fully connected network with a fixed topology.
type FeedForward = nn.FeedForward

// Option configures a FeedForward network at construction.
type Option = nn.Option

// Hyperparameters holds the training-only settings of a network.
type Hyperparameters = nn.Hyperparameters

// Default construction values.
const (
	DefaultLearningRate = nn.DefaultLearningRate
	DefaultBias         = nn.DefaultBias
)

// Errors returned by network construction and inference.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrInvalidDimensions = matrix.ErrInvalidDimensions
	ErrIndexOutOfRange   = matrix.ErrIndexOutOfRange
)

// NewFeedForward builds a network with the given topology.
//
// Example:
//
//	net, err := nn.NewFeedForward(2, []int{3, 4, 5}, 2)  // 4 weight matrices
//	net, err := nn.NewFeedForward(2, nil, 1)             // perceptron
func NewFeedForward(inputSize int, hiddenSizes []int, outputSize int, opts ...Option) (*FeedForward, error) {
	return nn.NewFeedForward(inputSize, hiddenSizes, outputSize, opts...)
}

// Options

// WithBias sets the constant added to every neuron's pre-activation sum.
func WithBias(b int) Option {
	return nn.WithBias(b)
}

// WithLearningRate sets the stored learning rate.
func WithLearningRate(lr float64) Option {
	return nn.WithLearningRate(lr)
}

// WithActivation replaces the sigmoid activation.
func WithActivation(a Activation) Option {
	return nn.WithActivation(a)
}

// WithInitializer sets how weight matrices are filled after allocation.
func WithInitializer(fill Initializer) Option {
	return nn.WithInitializer(fill)
}

// WithParallel controls how matrix products are split across goroutines.
func WithParallel(cfg parallel.Config) Option {
	return nn.WithParallel(cfg)
}

// Activations

// Activation is an element-wise nonlinearity applied after each layer.
type Activation = nn.Activation

// SigmoidActivation is the default activation.
var SigmoidActivation = nn.SigmoidActivation

// TanhActivation squashes values to (-1, 1).
var TanhActivation = nn.TanhActivation

// Sigmoid computes 1 / (1 + exp(-x)).
func Sigmoid(x float64) float64 {
	return nn.Sigmoid(x)
}

// SigmoidDerivative returns y * (1 - y) for an activated value y.
func SigmoidDerivative(y float64) float64 {
	return nn.SigmoidDerivative(y)
}

// Initialization

// Initializer fills a freshly allocated weight matrix in place.
type Initializer = nn.Initializer

// Zeros leaves weights at zero.
func Zeros() Initializer {
	return nn.Zeros()
}

// Constant sets every weight to v.
func Constant(v float64) Initializer {
	return nn.Constant(v)
}

// XavierUniform draws weights from the Glorot uniform distribution, seeded per layer.
func XavierUniform(seed int64) Initializer {
	return nn.XavierUniform(seed)
}
