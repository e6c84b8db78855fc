// Copyright 2025 Gradtree ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides a stateful optimizer over stateless gradient
// transformations.
//
// # Overview
//
// This package contains:
//   - Optimizer: wraps a transform.GradientTransformation and carries
//     its state between steps
//   - Named constructors for the supported variants: SGD, Momentum,
//     Adam, AdamW, RMSProp, Adagrad
//   - Variant: the string-keyed constructor table
//
// # Basic Usage
//
//	import (
//	    "github.com/gradtree-ml/gradtree/optim"
//	    "github.com/gradtree-ml/gradtree/tensor"
//	    "github.com/gradtree-ml/gradtree/transform"
//	)
//
//	func main() {
//	    w, _ := tensor.FromSlice([]float32{0, 0}, tensor.Shape{2})
//	    params := map[string]any{"w": w}
//
//	    // Init returns a new initialized instance; the receiver is
//	    // left untouched.
//	    opt, err := optim.Adam(transform.AdamConfig{LR: 0.001}).Init(params)
//
//	    // Training loop
//	    var updated any = params
//	    for batch := range data {
//	        grads := computeGrads(updated, batch)
//	        updated, err = opt.ApplyUpdates(grads, updated)
//	    }
//	}
//
// # Differences from using a transformation directly
//
//   - Init returns a new Optimizer instance; there is no separate
//     state value to thread through the loop.
//   - ApplyUpdates does not take the state as an argument; it advances
//     the internal state in place.
//   - ApplyUpdates applies the updates to the params and returns them;
//     use Updates to get the raw update deltas instead. Both surfaces
//     advance the state identically.
//
// # Checkpointing
//
// The internal state is an opaque tree value. Capture it with State,
// persist it with the checkpoint package, and restore it with
// LoadState:
//
//	store, _ := checkpoint.NewStore("sqlite", "run.db")
//	_ = store.Init(ctx)
//	_ = store.SaveState(ctx, "run-1", opt.State())
package optim
