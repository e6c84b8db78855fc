package tree

import (
	"fmt"
	"strings"

	"github.com/gradtree-ml/gradtree/internal/tensor"
)

type nodeKind int

const (
	kindEmpty nodeKind = iota
	kindLeaf
	kindMapping
	kindSequence
)

// Structure describes the scaffold of a tree with leaves removed.
// Flatten produces one; Unflatten consumes one.
type Structure struct {
	kind     nodeKind
	keys     []string // mapping children, sorted
	children []*Structure
}

// NumLeaves returns the number of leaf slots in the structure.
func (s *Structure) NumLeaves() int {
	switch s.kind {
	case kindLeaf:
		return 1
	case kindEmpty:
		return 0
	default:
		n := 0
		for _, child := range s.children {
			n += child.NumLeaves()
		}
		return n
	}
}

// String returns a compact scaffold description like {b:*, w:*}.
func (s *Structure) String() string {
	var b strings.Builder
	s.format(&b)
	return b.String()
}

func (s *Structure) format(b *strings.Builder) {
	switch s.kind {
	case kindEmpty:
		b.WriteString("()")
	case kindLeaf:
		b.WriteString("*")
	case kindMapping:
		b.WriteString("{")
		for i, key := range s.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(key)
			b.WriteString(":")
			s.children[i].format(b)
		}
		b.WriteString("}")
	case kindSequence:
		b.WriteString("[")
		for i, child := range s.children {
			if i > 0 {
				b.WriteString(", ")
			}
			child.format(b)
		}
		b.WriteString("]")
	}
}

// Flatten splits a tree into its leaves and the scaffold needed to
// rebuild it. Leaves appear in deterministic order (sorted map keys).
func Flatten(t any) ([]*tensor.Tensor, *Structure, error) {
	switch node := t.(type) {
	case nil:
		return nil, &Structure{kind: kindEmpty}, nil
	case *tensor.Tensor:
		return []*tensor.Tensor{node}, &Structure{kind: kindLeaf}, nil
	case map[string]any:
		s := &Structure{kind: kindMapping}
		var leaves []*tensor.Tensor
		for _, key := range sortedKeys(node) {
			childLeaves, childStruct, err := Flatten(node[key])
			if err != nil {
				return nil, nil, err
			}
			leaves = append(leaves, childLeaves...)
			s.keys = append(s.keys, key)
			s.children = append(s.children, childStruct)
		}
		return leaves, s, nil
	case []any:
		s := &Structure{kind: kindSequence}
		var leaves []*tensor.Tensor
		for _, child := range node {
			childLeaves, childStruct, err := Flatten(child)
			if err != nil {
				return nil, nil, err
			}
			leaves = append(leaves, childLeaves...)
			s.children = append(s.children, childStruct)
		}
		return leaves, s, nil
	default:
		return nil, nil, fmt.Errorf("tree: unsupported node type %T", t)
	}
}

// Unflatten rebuilds a tree from a structure and a leaf list.
// The leaf count must match the structure exactly.
func Unflatten(s *Structure, leaves []*tensor.Tensor) (any, error) {
	built, rest, err := unflatten(s, leaves)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("tree: %d leftover leaves for structure %s", len(rest), s)
	}
	return built, nil
}

func unflatten(s *Structure, leaves []*tensor.Tensor) (any, []*tensor.Tensor, error) {
	switch s.kind {
	case kindEmpty:
		return nil, leaves, nil
	case kindLeaf:
		if len(leaves) == 0 {
			return nil, nil, fmt.Errorf("tree: not enough leaves for structure %s", s)
		}
		return leaves[0], leaves[1:], nil
	case kindMapping:
		out := make(map[string]any, len(s.keys))
		rest := leaves
		for i, key := range s.keys {
			var (
				child any
				err   error
			)
			child, rest, err = unflatten(s.children[i], rest)
			if err != nil {
				return nil, nil, err
			}
			out[key] = child
		}
		return out, rest, nil
	case kindSequence:
		out := make([]any, len(s.children))
		rest := leaves
		for i, childStruct := range s.children {
			var (
				child any
				err   error
			)
			child, rest, err = unflatten(childStruct, rest)
			if err != nil {
				return nil, nil, err
			}
			out[i] = child
		}
		return out, rest, nil
	default:
		return nil, nil, fmt.Errorf("tree: corrupt structure kind %d", s.kind)
	}
}
