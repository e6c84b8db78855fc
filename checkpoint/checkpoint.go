// Copyright 2025 Gradtree ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package checkpoint persists optimizer state trees under a run name.
//
// Two backends are provided: an in-memory store (the default) and a
// SQLite store selected with NewStore("sqlite", path), available when
// building with -tags sqlite.
//
// Example:
//
//	store, err := checkpoint.NewStore("memory", "")
//	err = store.Init(ctx)
//	err = store.SaveState(ctx, "run-1", opt.State())
//	state, ok, err := store.GetState(ctx, "run-1")
package checkpoint

import (
	"github.com/gradtree-ml/gradtree/internal/checkpoint"
)

// Store defines persistence operations for optimizer state.
type Store = checkpoint.Store

// MemoryStore keeps encoded state payloads in process memory.
type MemoryStore = checkpoint.MemoryStore

// NewMemoryStore creates an in-memory store.
func NewMemoryStore() *MemoryStore {
	return checkpoint.NewMemoryStore()
}

// NewStore builds a store by backend kind: "memory" (the default) or
// "sqlite" (requires building with -tags sqlite).
func NewStore(kind, sqlitePath string) (Store, error) {
	return checkpoint.NewStore(kind, sqlitePath)
}

// CloseIfSupported closes the store when the backend holds resources.
func CloseIfSupported(store Store) error {
	return checkpoint.CloseIfSupported(store)
}

// EncodeState serializes a state tree to JSON.
func EncodeState(state any) ([]byte, error) {
	return checkpoint.EncodeState(state)
}

// DecodeState rebuilds a state tree from its JSON form.
func DecodeState(data []byte) (any, error) {
	return checkpoint.DecodeState(data)
}
