package nn

import "math"

// Sigmoid computes σ(x) = 1 / (1 + exp(-x)).
//
// The result lies in (0, 1); very large |x| rounds to the bounds in float64.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidDerivative returns the sigmoid slope expressed through its output:
// for y = σ(x), σ'(x) = y * (1 - y).
func SigmoidDerivative(y float64) float64 {
	return y * (1 - y)
}

// Activation is an element-wise nonlinearity applied after each layer.
//
// Derivative takes the activated value, not the pre-activation input,
// matching SigmoidDerivative.
type Activation struct {
	Name       string
	Func       func(x float64) float64
	Derivative func(y float64) float64
}

// SigmoidActivation is the default activation of a FeedForward network.
var SigmoidActivation = Activation{
	Name:       "sigmoid",
	Func:       Sigmoid,
	Derivative: SigmoidDerivative,
}

// TanhActivation squashes values to (-1, 1).
var TanhActivation = Activation{
	Name:       "tanh",
	Func:       math.Tanh,
	Derivative: func(y float64) float64 { return 1 - y*y },
}
