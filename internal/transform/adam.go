package transform

import (
	"fmt"
	"math"

	"github.com/gradtree-ml/gradtree/internal/tensor"
	"github.com/gradtree-ml/gradtree/internal/tree"
)

// ScaleByAdam rescales gradients by the Adam second-moment estimate.
//
// Update rule:
//
//	mu_t = b1 * mu_{t-1} + (1-b1) * gradient       // First moment
//	nu_t = b2 * nu_{t-1} + (1-b2) * gradient²      // Second moment
//	mu_hat = mu_t / (1 - b1^t)                     // Bias correction
//	nu_hat = nu_t / (1 - b2^t)                     // Bias correction
//	update = mu_hat / (sqrt(nu_hat) + eps)
//
// The sign of the learning rate is not applied here; chain with
// Scale(-lr) for the full Adam optimizer.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
func ScaleByAdam(b1, b2, eps float32) GradientTransformation {
	return GradientTransformation{
		Init: func(params any) (State, error) {
			mu, err := zerosLike(params)
			if err != nil {
				return nil, err
			}
			nu, err := zerosLike(params)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"count": tensor.Scalar(0),
				"mu":    mu,
				"nu":    nu,
			}, nil
		},
		Update: func(grads any, state State, _ any) (any, State, error) {
			st, ok := state.(map[string]any)
			if !ok {
				return nil, nil, errInvalidState("scale by adam", state)
			}
			count, ok := st["count"].(*tensor.Tensor)
			if !ok {
				return nil, nil, errInvalidState("scale by adam", state)
			}

			gradLeaves, gradStruct, err := tree.Flatten(grads)
			if err != nil {
				return nil, nil, err
			}
			muLeaves, muStruct, err := tree.Flatten(st["mu"])
			if err != nil {
				return nil, nil, err
			}
			nuLeaves, nuStruct, err := tree.Flatten(st["nu"])
			if err != nil {
				return nil, nil, err
			}
			if len(muLeaves) != len(gradLeaves) || len(nuLeaves) != len(gradLeaves) {
				return nil, nil, fmt.Errorf("%w: %d gradient leaves vs %d state leaves",
					tree.ErrMismatch, len(gradLeaves), len(muLeaves))
			}

			// Timestep for bias correction.
			t := count.Item() + 1
			biasCorrection1 := float32(1.0 - math.Pow(float64(b1), float64(t)))
			biasCorrection2 := float32(1.0 - math.Pow(float64(b2), float64(t)))

			updateLeaves := make([]*tensor.Tensor, len(gradLeaves))
			nextMu := make([]*tensor.Tensor, len(gradLeaves))
			nextNu := make([]*tensor.Tensor, len(gradLeaves))

			for i, grad := range gradLeaves {
				if !grad.Shape().Equal(muLeaves[i].Shape()) {
					return nil, nil, fmt.Errorf("%w: gradient leaf %d has shape %v, state has %v",
						tree.ErrMismatch, i, grad.Shape(), muLeaves[i].Shape())
				}

				mu := muLeaves[i].Clone()
				nu := nuLeaves[i].Clone()
				update := tensor.ZerosLike(grad)

				gradData := grad.Data()
				muData := mu.Data()
				nuData := nu.Data()
				updateData := update.Data()

				for j := range gradData {
					g := gradData[j]
					muData[j] = b1*muData[j] + (1.0-b1)*g
					nuData[j] = b2*nuData[j] + (1.0-b2)*g*g

					muHat := muData[j] / biasCorrection1
					nuHat := nuData[j] / biasCorrection2
					updateData[j] = muHat / (float32(math.Sqrt(float64(nuHat))) + eps)
				}

				updateLeaves[i] = update
				nextMu[i] = mu
				nextNu[i] = nu
			}

			updates, err := tree.Unflatten(gradStruct, updateLeaves)
			if err != nil {
				return nil, nil, err
			}
			mu, err := tree.Unflatten(muStruct, nextMu)
			if err != nil {
				return nil, nil, err
			}
			nu, err := tree.Unflatten(nuStruct, nextNu)
			if err != nil {
				return nil, nil, err
			}

			next := map[string]any{
				"count": tensor.Scalar(t),
				"mu":    mu,
				"nu":    nu,
			}
			return updates, next, nil
		},
	}
}

func zerosLike(params any) (any, error) {
	return tree.Map(func(p *tensor.Tensor) (*tensor.Tensor, error) {
		return tensor.ZerosLike(p), nil
	}, params)
}
