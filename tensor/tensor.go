// Copyright 2025 Gradtree ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float32 arrays used as parameter
// tree leaves.
package tensor

import (
	"github.com/gradtree-ml/gradtree/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense float32 array with shape metadata.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	sum, err := t.Add(t)
type Tensor = tensor.Tensor

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar(value float32) *Tensor {
	return tensor.Scalar(value)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) *Tensor {
	return tensor.Full(shape, value)
}

// ZerosLike creates a zero tensor with the same shape as the given tensor.
func ZerosLike(t *Tensor) *Tensor {
	return tensor.ZerosLike(t)
}

// FullLike creates a tensor with the same shape as the given tensor,
// filled with a specific value.
func FullLike(t *Tensor, value float32) *Tensor {
	return tensor.FullLike(t, value)
}
