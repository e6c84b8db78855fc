package optim

import "github.com/gradtree-ml/gradtree/internal/transform"

// Named constructors for the supported optimizer variants. Each wraps
// the matching transform factory; hyperparameters and defaults are
// documented there.

// SGD returns an optimizer applying plain gradient descent.
func SGD(lr float32) *Optimizer {
	return New(transform.SGD(lr))
}

// Momentum returns an optimizer applying SGD with a momentum trace.
func Momentum(lr, decay float32) *Optimizer {
	return New(transform.Momentum(lr, decay))
}

// Adam returns an optimizer applying Adam with bias correction.
func Adam(config transform.AdamConfig) *Optimizer {
	return New(transform.Adam(config))
}

// AdamW returns an optimizer applying Adam with decoupled weight decay.
func AdamW(config transform.AdamWConfig) *Optimizer {
	return New(transform.AdamW(config))
}

// RMSProp returns an optimizer applying uncentered RMSProp.
func RMSProp(config transform.RMSPropConfig) *Optimizer {
	return New(transform.RMSProp(config))
}

// Adagrad returns an optimizer applying Adagrad.
func Adagrad(config transform.AdagradConfig) *Optimizer {
	return New(transform.Adagrad(config))
}

// Variant builds an optimizer from a variant name understood by
// transform.Variant.
func Variant(name string, config transform.Config) (*Optimizer, error) {
	tx, err := transform.Variant(name, config)
	if err != nil {
		return nil, err
	}
	return New(tx), nil
}
