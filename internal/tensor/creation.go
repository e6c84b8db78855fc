package tensor

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float32, shape.NumElements()),
	}
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// ZerosLike creates a zero tensor with the same shape as the given tensor.
func ZerosLike(t *Tensor) *Tensor {
	return Zeros(t.Shape())
}

// FullLike creates a tensor with the same shape as the given tensor,
// filled with a specific value.
func FullLike(t *Tensor, value float32) *Tensor {
	return Full(t.Shape(), value)
}
