package transform

import (
	"fmt"
	"sort"
)

// SGD returns plain gradient descent with a fixed step size: Scale(-lr).
func SGD(lr float32) GradientTransformation {
	if lr == 0 {
		lr = 0.01
	}
	return Scale(-lr)
}

// Momentum returns gradient descent with a momentum trace.
func Momentum(lr, decay float32) GradientTransformation {
	if lr == 0 {
		lr = 0.01
	}
	return Chain(Trace(decay), Scale(-lr))
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float32    // Learning rate (default: 0.001)
	Betas [2]float32 // Coefficients for the moment averages (default: [0.9, 0.999])
	Eps   float32    // Term for numerical stability (default: 1e-8)
}

func (c *AdamConfig) setDefaults() {
	if c.LR == 0 {
		c.LR = 0.001
	}
	if c.Betas[0] == 0 {
		c.Betas[0] = 0.9
	}
	if c.Betas[1] == 0 {
		c.Betas[1] = 0.999
	}
	if c.Eps == 0 {
		c.Eps = 1e-8
	}
}

// Adam returns the Adam optimizer with bias correction.
func Adam(config AdamConfig) GradientTransformation {
	config.setDefaults()
	return Chain(
		ScaleByAdam(config.Betas[0], config.Betas[1], config.Eps),
		Scale(-config.LR),
	)
}

// AdamWConfig holds configuration for the AdamW optimizer.
type AdamWConfig struct {
	LR          float32    // Learning rate (default: 0.001)
	Betas       [2]float32 // Coefficients for the moment averages (default: [0.9, 0.999])
	Eps         float32    // Term for numerical stability (default: 1e-8)
	WeightDecay float32    // Decoupled weight decay factor (default: 0.01)
}

// AdamW returns Adam with decoupled weight decay.
//
// The decay is added after the Adam rescaling and before the learning
// rate is applied, so it is not normalized by the second moment.
func AdamW(config AdamWConfig) GradientTransformation {
	adam := AdamConfig{LR: config.LR, Betas: config.Betas, Eps: config.Eps}
	adam.setDefaults()
	if config.WeightDecay == 0 {
		config.WeightDecay = 0.01
	}
	return Chain(
		ScaleByAdam(adam.Betas[0], adam.Betas[1], adam.Eps),
		AddDecayedWeights(config.WeightDecay),
		Scale(-adam.LR),
	)
}

// RMSPropConfig holds configuration for the RMSProp optimizer.
type RMSPropConfig struct {
	LR    float32 // Learning rate (default: 0.01)
	Decay float32 // Moving-average decay (default: 0.9)
	Eps   float32 // Term for numerical stability (default: 1e-8)
}

// RMSProp returns the uncentered RMSProp optimizer.
func RMSProp(config RMSPropConfig) GradientTransformation {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Decay == 0 {
		config.Decay = 0.9
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return Chain(ScaleByRMS(config.Decay, config.Eps), Scale(-config.LR))
}

// AdagradConfig holds configuration for the Adagrad optimizer.
type AdagradConfig struct {
	LR                 float32 // Learning rate (default: 0.01)
	InitialAccumulator float32 // Starting value of the squared-gradient accumulator (default: 0.1)
	Eps                float32 // Term for numerical stability (default: 1e-7)
}

// Adagrad returns the Adagrad optimizer.
func Adagrad(config AdagradConfig) GradientTransformation {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.InitialAccumulator == 0 {
		config.InitialAccumulator = 0.1
	}
	if config.Eps == 0 {
		config.Eps = 1e-7
	}
	return Chain(ScaleByRSS(config.InitialAccumulator, config.Eps), Scale(-config.LR))
}

// Config collects the hyperparameters understood by the named variant
// table. Zero values fall back to each variant's defaults.
type Config struct {
	LR          float32
	Momentum    float32
	Betas       [2]float32
	Eps         float32
	WeightDecay float32
}

// Variant builds a transformation by name. Supported names are listed
// by Variants.
func Variant(name string, config Config) (GradientTransformation, error) {
	switch name {
	case "sgd":
		if config.Momentum != 0 {
			return Momentum(config.LR, config.Momentum), nil
		}
		return SGD(config.LR), nil
	case "momentum":
		return Momentum(config.LR, config.Momentum), nil
	case "adam":
		return Adam(AdamConfig{LR: config.LR, Betas: config.Betas, Eps: config.Eps}), nil
	case "adamw":
		return AdamW(AdamWConfig{
			LR:          config.LR,
			Betas:       config.Betas,
			Eps:         config.Eps,
			WeightDecay: config.WeightDecay,
		}), nil
	case "rmsprop":
		return RMSProp(RMSPropConfig{LR: config.LR, Eps: config.Eps}), nil
	case "adagrad":
		return Adagrad(AdagradConfig{LR: config.LR, Eps: config.Eps}), nil
	default:
		return GradientTransformation{}, fmt.Errorf("unsupported optimizer variant: %s", name)
	}
}

// Variants returns the supported variant names in sorted order.
func Variants() []string {
	names := []string{"sgd", "momentum", "adam", "adamw", "rmsprop", "adagrad"}
	sort.Strings(names)
	return names
}
