// Copyright 2025 Gradtree ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tree provides nested containers of tensors.
//
// A tree value is one of:
//   - *tensor.Tensor: a leaf
//   - map[string]any: a mapping branch
//   - []any: a sequence branch
//   - nil: an empty subtree
//
// Branch container kinds are preserved across every operation, and
// mapping branches are visited in sorted key order so leaf ordering is
// deterministic.
//
// Example:
//
//	params := map[string]any{
//	    "w": weights,
//	    "b": bias,
//	}
//	doubled, err := tree.Map(func(l *tensor.Tensor) (*tensor.Tensor, error) {
//	    return l.Scale(2), nil
//	}, params)
package tree

import (
	"github.com/gradtree-ml/gradtree/internal/tensor"
	"github.com/gradtree-ml/gradtree/internal/tree"
)

// ErrMismatch is returned when two trees do not share the same structure.
var ErrMismatch = tree.ErrMismatch

// Structure describes the scaffold of a tree with leaves removed.
type Structure = tree.Structure

// Leaves returns the tensors of a tree in deterministic order.
func Leaves(t any) ([]*tensor.Tensor, error) {
	return tree.Leaves(t)
}

// Map applies f to every leaf and rebuilds the tree with the same scaffold.
func Map(f func(*tensor.Tensor) (*tensor.Tensor, error), t any) (any, error) {
	return tree.Map(f, t)
}

// Map2 applies f pairwise to the leaves of two trees with identical
// structure and rebuilds the scaffold of the first tree.
func Map2(f func(a, b *tensor.Tensor) (*tensor.Tensor, error), a, b any) (any, error) {
	return tree.Map2(f, a, b)
}

// Flatten splits a tree into its leaves and the scaffold needed to
// rebuild it.
func Flatten(t any) ([]*tensor.Tensor, *Structure, error) {
	return tree.Flatten(t)
}

// Unflatten rebuilds a tree from a structure and a leaf list.
func Unflatten(s *Structure, leaves []*tensor.Tensor) (any, error) {
	return tree.Unflatten(s, leaves)
}

// SameStructure reports whether two trees share scaffold and leaf shapes.
func SameStructure(a, b any) bool {
	return tree.SameStructure(a, b)
}

// Equal reports whether two trees share structure and leaf values.
func Equal(a, b any) bool {
	return tree.Equal(a, b)
}

// Clone deep-copies a tree, cloning every leaf tensor.
func Clone(t any) (any, error) {
	return tree.Clone(t)
}
