// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a layered feed-forward neural network.
//
// # Overview
//
// This package contains:
//   - FeedForward: fully connected network built from a layer topology
//   - Activations: Sigmoid (default), Tanh
//   - Initialization: Zeros (default), Constant, XavierUniform
//   - Options: bias, learning rate, activation, initializer, parallelism
//
// # Basic Usage
//
//	import "github.com/born-ml/neuralnet/nn"
//
//	func main() {
//	    // 2 inputs, hidden layers of 3 and 4 nodes, 1 output.
//	    net, err := nn.NewFeedForward(2, []int{3, 4}, 1,
//	        nn.WithInitializer(nn.XavierUniform(42)),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.Forward([]float64{0.5, -0.25})  // len(out) == 1
//	}
//
// # Topology
//
// Every transition between consecutive layers owns one weight matrix of
// shape next×previous. With no hidden layers the network is a single-layer
// perceptron holding one outputSize×inputSize matrix.
//
// # Forward Pass
//
// For each weight matrix in order the current activation column is
// multiplied by the weights, the bias constant (default 1) is added to
// every element and the activation is applied element-wise.
//
// Forward never mutates the network and may be called concurrently.
//
// # Initialization
//
// Weights start at zero, which makes outputs independent of the input.
// Pass WithInitializer to fill them differently.
package nn
