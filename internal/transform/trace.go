package transform

import (
	"github.com/gradtree-ml/gradtree/internal/tensor"
	"github.com/gradtree-ml/gradtree/internal/tree"
)

// Trace accumulates a momentum trace of the gradients:
//
//	trace = decay * trace + gradient
//
// The state is the trace tree, shaped like the parameters and
// initialized to zeros. Classic SGD momentum is Chain(Trace(m), Scale(-lr)).
func Trace(decay float32) GradientTransformation {
	return GradientTransformation{
		Init: func(params any) (State, error) {
			return tree.Map(func(p *tensor.Tensor) (*tensor.Tensor, error) {
				return tensor.ZerosLike(p), nil
			}, params)
		},
		Update: func(grads any, state State, _ any) (any, State, error) {
			next, err := tree.Map2(func(v, g *tensor.Tensor) (*tensor.Tensor, error) {
				return v.Scale(decay).Add(g)
			}, state, grads)
			if err != nil {
				return nil, nil, err
			}

			// The trace is the update; clone so callers mutating the
			// returned updates cannot corrupt the state.
			updates, err := tree.Clone(next)
			if err != nil {
				return nil, nil, err
			}
			return updates, next, nil
		},
	}
}
