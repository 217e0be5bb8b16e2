// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a dense, row-major float64 matrix.
//
// # Overview
//
// A Dense is a rows×cols grid of float64 values stored in one flat slice.
// Element (i, j) lives at index i*cols+j; Data exposes that buffer as a copy.
//
// # Basic Usage
//
//	import "github.com/born-ml/neuralnet/matrix"
//
//	func main() {
//	    a, _ := matrix.NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	    b, _ := matrix.NewFromSlice(3, 2, []float64{7, 8, 9, 10, 11, 12})
//
//	    c, err := matrix.Multiply(a, b)  // 2x2: [58 64 139 154]
//	    if err != nil {
//	        // errors.Is(err, matrix.ErrDimensionMismatch)
//	    }
//
//	    c.Scale(0.5)
//	    c.Transform(func(v float64, row, col int) float64 { return v + float64(row) })
//	}
//
// # Errors
//
// Constructors and accessors return errors wrapping ErrShapeMismatch,
// ErrDimensionMismatch, ErrIndexOutOfRange or ErrInvalidDimensions.
//
// # Concurrency
//
// Transform, Scale and AddScalar mutate the receiver and need exclusive
// access. Everything else only reads.
package matrix
