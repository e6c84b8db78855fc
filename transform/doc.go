// Copyright 2025 Gradtree ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform provides stateless gradient transformations.
//
// # Overview
//
// A GradientTransformation is a pair of pure functions:
//   - Init: builds the transformation's state for a parameter tree
//   - Update: maps a gradient tree and the current state to an update
//     tree and the next state
//
// The pair carries no state of its own; callers thread the state
// through each step, or wrap the pair in an optim.Optimizer to have it
// carried for them.
//
// # Composition
//
// Transformations compose with Chain; the classic optimizers are just
// chains of simple stages:
//
//	// SGD with momentum and gradient clipping
//	tx := transform.Chain(
//	    transform.ClipByGlobalNorm(1.0),
//	    transform.Trace(0.9),
//	    transform.Scale(-0.01),
//	)
//
//	state, err := tx.Init(params)
//	for batch := range data {
//	    grads := computeGrads(params, batch)
//	    var updates any
//	    updates, state, err = tx.Update(grads, state, params)
//	    params, err = transform.ApplyUpdates(params, updates)
//	}
//
// # Named variants
//
// The usual optimizers are available as factories (SGD, Momentum, Adam,
// AdamW, RMSProp, Adagrad) and through the string-keyed variant table:
//
//	tx, err := transform.Variant("adamw", transform.Config{
//	    LR:          0.001,
//	    WeightDecay: 0.01,
//	})
package transform
