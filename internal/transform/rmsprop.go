package transform

import (
	"math"

	"github.com/gradtree-ml/gradtree/internal/tensor"
	"github.com/gradtree-ml/gradtree/internal/tree"
)

// ScaleByRMS rescales gradients by an exponential moving average of
// their squares (the uncentered RMSProp rule):
//
//	nu_t = decay * nu_{t-1} + (1-decay) * gradient²
//	update = gradient / (sqrt(nu_t) + eps)
//
// Chain with Scale(-lr) for the full RMSProp optimizer.
func ScaleByRMS(decay, eps float32) GradientTransformation {
	return GradientTransformation{
		Init: func(params any) (State, error) {
			return zerosLike(params)
		},
		Update: func(grads any, state State, _ any) (any, State, error) {
			next, err := tree.Map2(func(nu, g *tensor.Tensor) (*tensor.Tensor, error) {
				out := tensor.ZerosLike(nu)
				nuData := nu.Data()
				gradData := g.Data()
				outData := out.Data()
				for j := range outData {
					outData[j] = decay*nuData[j] + (1.0-decay)*gradData[j]*gradData[j]
				}
				return out, nil
			}, state, grads)
			if err != nil {
				return nil, nil, err
			}

			updates, err := tree.Map2(func(g, nu *tensor.Tensor) (*tensor.Tensor, error) {
				out := tensor.ZerosLike(g)
				gradData := g.Data()
				nuData := nu.Data()
				outData := out.Data()
				for j := range outData {
					outData[j] = gradData[j] / (float32(math.Sqrt(float64(nuData[j]))) + eps)
				}
				return out, nil
			}, grads, next)
			if err != nil {
				return nil, nil, err
			}
			return updates, next, nil
		},
	}
}

// ScaleByRSS rescales gradients by the running sum of their squares
// (the Adagrad accumulator):
//
//	acc_t = acc_{t-1} + gradient²
//	update = gradient / (sqrt(acc_t) + eps)
//
// The accumulator starts at initialAccumulator on every leaf. Chain
// with Scale(-lr) for the full Adagrad optimizer.
func ScaleByRSS(initialAccumulator, eps float32) GradientTransformation {
	return GradientTransformation{
		Init: func(params any) (State, error) {
			return tree.Map(func(p *tensor.Tensor) (*tensor.Tensor, error) {
				return tensor.FullLike(p, initialAccumulator), nil
			}, params)
		},
		Update: func(grads any, state State, _ any) (any, State, error) {
			next, err := tree.Map2(func(acc, g *tensor.Tensor) (*tensor.Tensor, error) {
				out := tensor.ZerosLike(acc)
				accData := acc.Data()
				gradData := g.Data()
				outData := out.Data()
				for j := range outData {
					outData[j] = accData[j] + gradData[j]*gradData[j]
				}
				return out, nil
			}, state, grads)
			if err != nil {
				return nil, nil, err
			}

			updates, err := tree.Map2(func(g, acc *tensor.Tensor) (*tensor.Tensor, error) {
				out := tensor.ZerosLike(g)
				gradData := g.Data()
				accData := acc.Data()
				outData := out.Data()
				for j := range outData {
					outData[j] = gradData[j] / (float32(math.Sqrt(float64(accData[j]))) + eps)
				}
				return out, nil
			}, grads, next)
			if err != nil {
				return nil, nil, err
			}
			return updates, next, nil
		},
	}
}
