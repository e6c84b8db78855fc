package transform

import (
	"errors"
	"math"

	"github.com/gradtree-ml/gradtree/internal/tensor"
	"github.com/gradtree-ml/gradtree/internal/tree"
)

// Scale multiplies every gradient leaf by a fixed factor.
// Stateless. Plain gradient descent is Scale(-lr).
func Scale(factor float32) GradientTransformation {
	return GradientTransformation{
		Init: func(any) (State, error) {
			return EmptyState(), nil
		},
		Update: func(grads any, state State, _ any) (any, State, error) {
			updates, err := tree.Map(func(g *tensor.Tensor) (*tensor.Tensor, error) {
				return g.Scale(factor), nil
			}, grads)
			if err != nil {
				return nil, nil, err
			}
			return updates, state, nil
		},
	}
}

// AddDecayedWeights adds weightDecay * param to every gradient leaf.
// Stateless, but requires the parameter tree at update time.
func AddDecayedWeights(weightDecay float32) GradientTransformation {
	return GradientTransformation{
		Init: func(any) (State, error) {
			return EmptyState(), nil
		},
		Update: func(grads any, state State, params any) (any, State, error) {
			if params == nil {
				return nil, nil, errors.New("add decayed weights: params must be provided")
			}
			updates, err := tree.Map2(func(g, p *tensor.Tensor) (*tensor.Tensor, error) {
				return g.AddScaled(p, weightDecay)
			}, grads, params)
			if err != nil {
				return nil, nil, err
			}
			return updates, state, nil
		},
	}
}

// ClipByGlobalNorm rescales the whole gradient tree when its global L2
// norm exceeds maxNorm. Stateless.
func ClipByGlobalNorm(maxNorm float32) GradientTransformation {
	return GradientTransformation{
		Init: func(any) (State, error) {
			return EmptyState(), nil
		},
		Update: func(grads any, state State, _ any) (any, State, error) {
			leaves, err := tree.Leaves(grads)
			if err != nil {
				return nil, nil, err
			}

			var sumSquares float64
			for _, leaf := range leaves {
				sumSquares += leaf.SumSquares()
			}
			norm := float32(math.Sqrt(sumSquares))
			if norm <= maxNorm {
				return grads, state, nil
			}

			scale := maxNorm / norm
			updates, err := tree.Map(func(g *tensor.Tensor) (*tensor.Tensor, error) {
				return g.Scale(scale), nil
			}, grads)
			if err != nil {
				return nil, nil, err
			}
			return updates, state, nil
		},
	}
}
