package checkpoint

import (
	"encoding/json"
	"fmt"

	"github.com/gradtree-ml/gradtree/internal/tensor"
)

// EncodeState serializes a state tree to JSON. Tensor leaves marshal
// themselves as {"shape": [...], "data": [...]}.
func EncodeState(state any) ([]byte, error) {
	return json.Marshal(state)
}

// DecodeState rebuilds a state tree from its JSON form, converting
// {"shape", "data"} objects back into tensors.
func DecodeState(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return reify(raw)
}

func reify(v any) (any, error) {
	switch node := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		if isTensorNode(node) {
			return reifyTensor(node)
		}
		out := make(map[string]any, len(node))
		for key, child := range node {
			built, err := reify(child)
			if err != nil {
				return nil, err
			}
			out[key] = built
		}
		return out, nil
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			built, err := reify(child)
			if err != nil {
				return nil, err
			}
			out[i] = built
		}
		return out, nil
	default:
		return nil, fmt.Errorf("checkpoint: unexpected value of type %T in state payload", v)
	}
}

// isTensorNode recognizes the codec's tensor wire form: exactly the
// keys "shape" and "data", all-numeric arrays, and a data length that
// matches the shape. Mapping branches cannot collide with it: numbers
// are not tree nodes, so a valid tree's children under those keys are
// never non-empty numeric arrays, and the empty-sequence case fails
// the length check (a tensor holds at least one element).
func isTensorNode(node map[string]any) bool {
	if len(node) != 2 {
		return false
	}
	shape, ok := node["shape"].([]any)
	if !ok {
		return false
	}
	data, ok := node["data"].([]any)
	if !ok {
		return false
	}

	numElements := 1
	for _, dim := range shape {
		d, ok := dim.(float64)
		if !ok || d != float64(int(d)) || d < 0 {
			return false
		}
		numElements *= int(d)
	}
	if len(data) != numElements {
		return false
	}
	for _, v := range data {
		if _, ok := v.(float64); !ok {
			return false
		}
	}
	return true
}

func reifyTensor(node map[string]any) (*tensor.Tensor, error) {
	payload, err := json.Marshal(node)
	if err != nil {
		return nil, err
	}
	t := new(tensor.Tensor)
	if err := json.Unmarshal(payload, t); err != nil {
		return nil, fmt.Errorf("decode tensor leaf: %w", err)
	}
	return t, nil
}
