package tensor

import (
	"encoding/json"
	"fmt"
)

// jsonTensor is the wire form used for checkpoint serialization.
type jsonTensor struct {
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

// MarshalJSON encodes the tensor as {"shape": [...], "data": [...]}.
func (t *Tensor) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTensor{
		Shape: t.shape,
		Data:  t.data,
	})
}

// UnmarshalJSON decodes a tensor from its wire form.
func (t *Tensor) UnmarshalJSON(data []byte) error {
	var wire jsonTensor
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	shape := Shape(wire.Shape)
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.NumElements() != len(wire.Data) {
		return fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(wire.Data))
	}

	t.shape = shape
	t.data = wire.Data
	return nil
}
