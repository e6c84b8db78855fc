// Package transform implements stateless gradient transformations.
//
// A GradientTransformation is a pair of pure functions: Init builds the
// transformation's state for a parameter tree, Update maps a gradient
// tree and the current state to an update tree and the next state. The
// pair itself carries no state; callers thread the state through, or
// wrap the pair in an optim.Optimizer to have it carried for them.
//
// Transformations compose with Chain:
//
//	tx := transform.Chain(
//	    transform.ClipByGlobalNorm(1.0),
//	    transform.Trace(0.9),
//	    transform.Scale(-0.01),
//	)
package transform

import (
	"fmt"

	"github.com/gradtree-ml/gradtree/internal/tensor"
	"github.com/gradtree-ml/gradtree/internal/tree"
)

func errInvalidState(name string, state State) error {
	return fmt.Errorf("%s: invalid state of type %T", name, state)
}

// State is the opaque state threaded through a transformation.
// It is always a tree value so it survives flattening and serialization.
type State = any

// GradientTransformation is an (Init, Update) pair over gradient trees.
type GradientTransformation struct {
	// Init builds the initial state for a parameter tree.
	Init func(params any) (State, error)

	// Update transforms a gradient tree given the current state and,
	// optionally, the current parameters. It returns the update tree
	// and the next state. Transformations that do not consume params
	// ignore a nil params argument.
	Update func(grads any, state State, params any) (updates any, next State, err error)
}

// EmptyState returns the state of a stateless transformation: an empty
// sequence, kept stable across every Update call.
func EmptyState() State {
	return []any{}
}

// Identity returns a transformation that passes gradients through unchanged.
func Identity() GradientTransformation {
	return GradientTransformation{
		Init: func(any) (State, error) {
			return EmptyState(), nil
		},
		Update: func(grads any, state State, _ any) (any, State, error) {
			return grads, state, nil
		},
	}
}

// Chain composes transformations left to right: the updates of each
// stage feed the next. The chained state is the sequence of per-stage
// states.
func Chain(txs ...GradientTransformation) GradientTransformation {
	return GradientTransformation{
		Init: func(params any) (State, error) {
			states := make([]any, len(txs))
			for i, tx := range txs {
				state, err := tx.Init(params)
				if err != nil {
					return nil, err
				}
				states[i] = state
			}
			return states, nil
		},
		Update: func(grads any, state State, params any) (any, State, error) {
			states, ok := state.([]any)
			if !ok || len(states) != len(txs) {
				return nil, nil, errInvalidState("chain", state)
			}

			updates := grads
			next := make([]any, len(txs))
			for i, tx := range txs {
				var err error
				updates, next[i], err = tx.Update(updates, states[i], params)
				if err != nil {
					return nil, nil, err
				}
			}
			return updates, next, nil
		},
	}
}

// ApplyUpdates adds an update tree to a parameter tree elementwise,
// preserving the parameter scaffold.
func ApplyUpdates(params, updates any) (any, error) {
	return tree.Map2(func(p, u *tensor.Tensor) (*tensor.Tensor, error) {
		return p.Add(u)
	}, params, updates)
}
