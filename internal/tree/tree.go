// Package tree implements nested containers of tensors.
//
// A tree value is one of:
//   - *tensor.Tensor: a leaf
//   - map[string]any: a mapping branch
//   - []any: a sequence branch
//   - nil: an empty subtree
//
// Branch container kinds are preserved across every operation, so the
// result of a Map over a {"w": ..., "b": ...} tree is again a mapping
// with the same keys. Mapping branches are always visited in sorted key
// order to keep leaf ordering deterministic.
package tree

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gradtree-ml/gradtree/internal/tensor"
)

// ErrMismatch is returned when two trees do not share the same structure.
var ErrMismatch = errors.New("tree structure mismatch")

// Leaves returns the tensors of a tree in deterministic order.
func Leaves(t any) ([]*tensor.Tensor, error) {
	var leaves []*tensor.Tensor
	err := walk(t, func(leaf *tensor.Tensor) error {
		leaves = append(leaves, leaf)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

// Map applies f to every leaf and rebuilds the tree with the same scaffold.
func Map(f func(*tensor.Tensor) (*tensor.Tensor, error), t any) (any, error) {
	switch node := t.(type) {
	case nil:
		return nil, nil
	case *tensor.Tensor:
		return f(node)
	case map[string]any:
		out := make(map[string]any, len(node))
		for _, key := range sortedKeys(node) {
			child, err := Map(f, node[key])
			if err != nil {
				return nil, err
			}
			out[key] = child
		}
		return out, nil
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			mapped, err := Map(f, child)
			if err != nil {
				return nil, err
			}
			out[i] = mapped
		}
		return out, nil
	default:
		return nil, fmt.Errorf("tree: unsupported node type %T", t)
	}
}

// Map2 applies f pairwise to the leaves of two trees with identical
// structure and rebuilds the scaffold of the first tree.
func Map2(f func(a, b *tensor.Tensor) (*tensor.Tensor, error), a, b any) (any, error) {
	switch nodeA := a.(type) {
	case nil:
		if b != nil {
			return nil, fmt.Errorf("%w: nil vs %T", ErrMismatch, b)
		}
		return nil, nil
	case *tensor.Tensor:
		nodeB, ok := b.(*tensor.Tensor)
		if !ok {
			return nil, fmt.Errorf("%w: leaf vs %T", ErrMismatch, b)
		}
		return f(nodeA, nodeB)
	case map[string]any:
		nodeB, ok := b.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: mapping vs %T", ErrMismatch, b)
		}
		if len(nodeA) != len(nodeB) {
			return nil, fmt.Errorf("%w: mapping sizes %d vs %d", ErrMismatch, len(nodeA), len(nodeB))
		}
		out := make(map[string]any, len(nodeA))
		for _, key := range sortedKeys(nodeA) {
			childB, ok := nodeB[key]
			if !ok {
				return nil, fmt.Errorf("%w: missing key %q", ErrMismatch, key)
			}
			child, err := Map2(f, nodeA[key], childB)
			if err != nil {
				return nil, err
			}
			out[key] = child
		}
		return out, nil
	case []any:
		nodeB, ok := b.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: sequence vs %T", ErrMismatch, b)
		}
		if len(nodeA) != len(nodeB) {
			return nil, fmt.Errorf("%w: sequence lengths %d vs %d", ErrMismatch, len(nodeA), len(nodeB))
		}
		out := make([]any, len(nodeA))
		for i := range nodeA {
			child, err := Map2(f, nodeA[i], nodeB[i])
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil
	default:
		return nil, fmt.Errorf("tree: unsupported node type %T", a)
	}
}

// SameStructure reports whether two trees share scaffold and leaf shapes.
func SameStructure(a, b any) bool {
	_, err := Map2(func(la, lb *tensor.Tensor) (*tensor.Tensor, error) {
		if !la.Shape().Equal(lb.Shape()) {
			return nil, fmt.Errorf("%w: leaf shapes %v vs %v", ErrMismatch, la.Shape(), lb.Shape())
		}
		return la, nil
	}, a, b)
	return err == nil
}

// Equal reports whether two trees share structure and leaf values.
func Equal(a, b any) bool {
	_, err := Map2(func(la, lb *tensor.Tensor) (*tensor.Tensor, error) {
		if !la.Equal(lb) {
			return nil, fmt.Errorf("%w: leaf values differ", ErrMismatch)
		}
		return la, nil
	}, a, b)
	return err == nil
}

// Clone deep-copies a tree, cloning every leaf tensor.
func Clone(t any) (any, error) {
	return Map(func(leaf *tensor.Tensor) (*tensor.Tensor, error) {
		return leaf.Clone(), nil
	}, t)
}

func walk(t any, visit func(*tensor.Tensor) error) error {
	switch node := t.(type) {
	case nil:
		return nil
	case *tensor.Tensor:
		return visit(node)
	case map[string]any:
		for _, key := range sortedKeys(node) {
			if err := walk(node[key], visit); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, child := range node {
			if err := walk(child, visit); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("tree: unsupported node type %T", t)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
