// Copyright 2025 Gradtree ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/gradtree-ml/gradtree/internal/optim"
	"github.com/gradtree-ml/gradtree/internal/transform"
)

// Errors reported for adapter contract violations.
var (
	// ErrNotInitialized is returned when updates are requested before Init.
	ErrNotInitialized = optim.ErrNotInitialized

	// ErrParamsRequired is returned by ApplyUpdates when no parameter
	// tree is given to apply the updates to.
	ErrParamsRequired = optim.ErrParamsRequired
)

// Optimizer wraps a gradient transformation and carries its state.
type Optimizer = optim.Optimizer

// New creates an uninitialized optimizer wrapping the given transformation.
func New(tx transform.GradientTransformation) *Optimizer {
	return optim.New(tx)
}

// SGD returns an optimizer applying plain gradient descent.
func SGD(lr float32) *Optimizer {
	return optim.SGD(lr)
}

// Momentum returns an optimizer applying SGD with a momentum trace.
func Momentum(lr, decay float32) *Optimizer {
	return optim.Momentum(lr, decay)
}

// Adam returns an optimizer applying Adam with bias correction.
//
// Example:
//
//	opt, err := optim.Adam(transform.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float32{0.9, 0.999},
//	}).Init(params)
func Adam(config transform.AdamConfig) *Optimizer {
	return optim.Adam(config)
}

// AdamW returns an optimizer applying Adam with decoupled weight decay.
func AdamW(config transform.AdamWConfig) *Optimizer {
	return optim.AdamW(config)
}

// RMSProp returns an optimizer applying uncentered RMSProp.
func RMSProp(config transform.RMSPropConfig) *Optimizer {
	return optim.RMSProp(config)
}

// Adagrad returns an optimizer applying Adagrad.
func Adagrad(config transform.AdagradConfig) *Optimizer {
	return optim.Adagrad(config)
}

// Variant builds an optimizer from a variant name understood by
// transform.Variant.
func Variant(name string, config transform.Config) (*Optimizer, error) {
	return optim.Variant(name, config)
}
