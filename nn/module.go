// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import "github.com/born-ml/neuralnet/internal/nn"

// Predictor maps an input vector to an output vector without mutating itself.
type Predictor = nn.Predictor
