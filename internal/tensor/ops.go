package tensor

import "fmt"

// Add returns the elementwise sum of two tensors.
// Fails if the shapes differ.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.binaryOp(other, "add", func(a, b float32) float32 { return a + b })
}

// Sub returns the elementwise difference of two tensors.
// Fails if the shapes differ.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.binaryOp(other, "sub", func(a, b float32) float32 { return a - b })
}

// Mul returns the elementwise product of two tensors.
// Fails if the shapes differ.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.binaryOp(other, "mul", func(a, b float32) float32 { return a * b })
}

// Scale returns a new tensor with every element multiplied by factor.
func (t *Tensor) Scale(factor float32) *Tensor {
	out := ZerosLike(t)
	for i, v := range t.data {
		out.data[i] = v * factor
	}
	return out
}

// AddScaled returns t + factor*other elementwise.
// Fails if the shapes differ.
func (t *Tensor) AddScaled(other *Tensor, factor float32) (*Tensor, error) {
	return t.binaryOp(other, "add-scaled", func(a, b float32) float32 { return a + factor*b })
}

// SumSquares returns the sum of squared elements.
func (t *Tensor) SumSquares() float64 {
	var sum float64
	for _, v := range t.data {
		sum += float64(v) * float64(v)
	}
	return sum
}

func (t *Tensor) binaryOp(other *Tensor, name string, f func(a, b float32) float32) (*Tensor, error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%s: shape mismatch: %v vs %v", name, t.shape, other.shape)
	}
	out := ZerosLike(t)
	for i := range t.data {
		out.data[i] = f(t.data[i], other.data[i])
	}
	return out, nil
}
