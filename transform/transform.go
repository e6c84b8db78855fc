// Copyright 2025 Gradtree ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/gradtree-ml/gradtree/internal/transform"
)

// State is the opaque state threaded through a transformation.
type State = transform.State

// GradientTransformation is an (Init, Update) pair over gradient trees.
type GradientTransformation = transform.GradientTransformation

// EmptyState returns the state of a stateless transformation.
func EmptyState() State {
	return transform.EmptyState()
}

// Identity returns a transformation that passes gradients through unchanged.
func Identity() GradientTransformation {
	return transform.Identity()
}

// Chain composes transformations left to right.
func Chain(txs ...GradientTransformation) GradientTransformation {
	return transform.Chain(txs...)
}

// ApplyUpdates adds an update tree to a parameter tree elementwise.
func ApplyUpdates(params, updates any) (any, error) {
	return transform.ApplyUpdates(params, updates)
}

// Scale multiplies every gradient leaf by a fixed factor.
func Scale(factor float32) GradientTransformation {
	return transform.Scale(factor)
}

// Trace accumulates a momentum trace of the gradients.
func Trace(decay float32) GradientTransformation {
	return transform.Trace(decay)
}

// ScaleByAdam rescales gradients by the Adam moment estimates.
func ScaleByAdam(b1, b2, eps float32) GradientTransformation {
	return transform.ScaleByAdam(b1, b2, eps)
}

// ScaleByRMS rescales gradients by an exponential moving average of
// their squares.
func ScaleByRMS(decay, eps float32) GradientTransformation {
	return transform.ScaleByRMS(decay, eps)
}

// ScaleByRSS rescales gradients by the running sum of their squares.
func ScaleByRSS(initialAccumulator, eps float32) GradientTransformation {
	return transform.ScaleByRSS(initialAccumulator, eps)
}

// AddDecayedWeights adds weightDecay * param to every gradient leaf.
func AddDecayedWeights(weightDecay float32) GradientTransformation {
	return transform.AddDecayedWeights(weightDecay)
}

// ClipByGlobalNorm rescales the gradient tree when its global L2 norm
// exceeds maxNorm.
func ClipByGlobalNorm(maxNorm float32) GradientTransformation {
	return transform.ClipByGlobalNorm(maxNorm)
}

// Named optimizer variants.

// SGD returns plain gradient descent with a fixed step size.
func SGD(lr float32) GradientTransformation {
	return transform.SGD(lr)
}

// Momentum returns gradient descent with a momentum trace.
func Momentum(lr, decay float32) GradientTransformation {
	return transform.Momentum(lr, decay)
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig = transform.AdamConfig

// Adam returns the Adam optimizer with bias correction.
//
// Example:
//
//	tx := transform.Adam(transform.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float32{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func Adam(config AdamConfig) GradientTransformation {
	return transform.Adam(config)
}

// AdamWConfig holds configuration for the AdamW optimizer.
type AdamWConfig = transform.AdamWConfig

// AdamW returns Adam with decoupled weight decay.
func AdamW(config AdamWConfig) GradientTransformation {
	return transform.AdamW(config)
}

// RMSPropConfig holds configuration for the RMSProp optimizer.
type RMSPropConfig = transform.RMSPropConfig

// RMSProp returns the uncentered RMSProp optimizer.
func RMSProp(config RMSPropConfig) GradientTransformation {
	return transform.RMSProp(config)
}

// AdagradConfig holds configuration for the Adagrad optimizer.
type AdagradConfig = transform.AdagradConfig

// Adagrad returns the Adagrad optimizer.
func Adagrad(config AdagradConfig) GradientTransformation {
	return transform.Adagrad(config)
}

// Config collects the hyperparameters understood by the variant table.
type Config = transform.Config

// Variant builds a transformation by name.
func Variant(name string, config Config) (GradientTransformation, error) {
	return transform.Variant(name, config)
}

// Variants returns the supported variant names in sorted order.
func Variants() []string {
	return transform.Variants()
}
