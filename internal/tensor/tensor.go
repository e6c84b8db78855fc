package tensor

import "fmt"

// Tensor is a dense float32 array with shape metadata.
//
// Tensors are the leaf values of parameter trees. All operations run on
// host memory; there is no device or graph tracking here.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	sum, err := t.Add(t)
type Tensor struct {
	shape Shape
	data  []float32
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t := &Tensor{
		shape: shape.Clone(),
		data:  make([]float32, len(data)),
	}
	copy(t.data, data)
	return t, nil
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar(value float32) *Tensor {
	return &Tensor{
		shape: Shape{},
		data:  []float32{value},
	}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the underlying data slice.
// Mutating the returned slice mutates the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Item returns the scalar value of a 0-D tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor) Item() float32 {
	if len(t.shape) != 0 || t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given flat index.
// Panics if the index is out of bounds.
func (t *Tensor) At(i int) float32 {
	if i < 0 || i >= len(t.data) {
		panic(fmt.Sprintf("index %d out of bounds for %d elements", i, len(t.data)))
	}
	return t.data[i]
}

// Set sets the element at the given flat index.
// Panics if the index is out of bounds.
func (t *Tensor) Set(value float32, i int) {
	if i < 0 || i >= len(t.data) {
		panic(fmt.Sprintf("index %d out of bounds for %d elements", i, len(t.data)))
	}
	t.data[i] = value
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	clone := &Tensor{
		shape: t.shape.Clone(),
		data:  make([]float32, len(t.data)),
	}
	copy(clone.data, t.data)
	return clone
}

// Equal reports whether two tensors have the same shape and data.
func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil {
		return false
	}
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}
