// Package optim implements a stateful optimizer over stateless
// gradient transformations.
//
// A transform.GradientTransformation is a pure (Init, Update) pair that
// makes the caller thread the optimizer state through every step. The
// Optimizer here wraps such a pair and carries the state itself, so a
// training loop reads like:
//
//	opt, err := optim.Adam(transform.AdamConfig{LR: 0.001}).Init(params)
//	...
//	for batch := range data {
//	    grads := computeGrads(params, batch)
//	    params, err = opt.ApplyUpdates(grads, params)
//	}
//
// Differences from using the transformation directly:
//   - Init returns a new Optimizer instance; there is no separate state value.
//   - ApplyUpdates does not take the state as an argument; it advances
//     the internal state in place.
//   - ApplyUpdates applies the updates to the params and returns them;
//     use Updates to get the raw update deltas instead.
package optim

import (
	"errors"

	"github.com/gradtree-ml/gradtree/internal/transform"
)

// Errors reported for adapter contract violations. Errors raised by the
// wrapped transformation or the tree machinery propagate unwrapped.
var (
	// ErrNotInitialized is returned when updates are requested before Init.
	ErrNotInitialized = errors.New("optimizer is not initialized; call Init with the model parameters first")

	// ErrParamsRequired is returned by ApplyUpdates when no parameter
	// tree is given to apply the updates to.
	ErrParamsRequired = errors.New("params must be provided if updates are being applied")
)

// Optimizer wraps a gradient transformation and carries its state.
type Optimizer struct {
	tx          transform.GradientTransformation
	state       transform.State
	initialized bool
}

// New creates an uninitialized optimizer wrapping the given transformation.
func New(tx transform.GradientTransformation) *Optimizer {
	return &Optimizer{tx: tx}
}

// Initialized reports whether Init has produced this optimizer's state.
func (o *Optimizer) Initialized() bool {
	return o.initialized
}

// State returns the current internal state, or nil before Init.
// The state is an opaque tree value; callers should only hand it to
// LoadState or a checkpoint store.
func (o *Optimizer) State() transform.State {
	return o.state
}

// Init builds the optimizer state for an initial set of parameters.
//
// The receiver is left unchanged; a new initialized Optimizer instance
// is returned.
func (o *Optimizer) Init(params any) (*Optimizer, error) {
	state, err := o.tx.Init(params)
	if err != nil {
		return nil, err
	}
	return &Optimizer{
		tx:          o.tx,
		state:       state,
		initialized: true,
	}, nil
}

// LoadState replaces the internal state with a previously captured one
// and marks the optimizer initialized. The state must come from State
// on an optimizer wrapping the same transformation.
func (o *Optimizer) LoadState(state transform.State) {
	o.state = state
	o.initialized = true
}

// ApplyUpdates computes the update deltas for a gradient tree, advances
// the internal state in place, and returns the parameters with the
// deltas applied.
//
// The gradient tree must match the parameter tree the optimizer was
// initialized with. Fails with ErrNotInitialized before Init and with
// ErrParamsRequired when params is nil.
func (o *Optimizer) ApplyUpdates(grads, params any) (any, error) {
	if !o.initialized {
		return nil, ErrNotInitialized
	}
	if params == nil {
		return nil, ErrParamsRequired
	}

	updates, err := o.step(grads, params)
	if err != nil {
		return nil, err
	}
	return transform.ApplyUpdates(params, updates)
}

// Updates computes and returns the raw update deltas without applying
// them, advancing the internal state exactly as ApplyUpdates does.
//
// params may be nil for transformations that do not consume it;
// transformations that do report their own error.
func (o *Optimizer) Updates(grads, params any) (any, error) {
	return o.step(grads, params)
}

func (o *Optimizer) step(grads, params any) (any, error) {
	if !o.initialized {
		return nil, ErrNotInitialized
	}

	updates, next, err := o.tx.Update(grads, o.state, params)
	if err != nil {
		return nil, err
	}
	o.state = next
	return updates, nil
}
