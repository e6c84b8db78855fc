// Package checkpoint persists optimizer state trees under a run name.
//
// Two backends are provided: an in-memory store and a SQLite store
// behind the "sqlite" build tag. State trees are serialized with the
// JSON codec in this package; tensors travel as {"shape", "data"}
// objects.
package checkpoint

import "context"

// Store defines persistence operations for optimizer state.
type Store interface {
	Init(ctx context.Context) error
	SaveState(ctx context.Context, runID string, state any) error
	GetState(ctx context.Context, runID string) (any, bool, error)
}

// CloseIfSupported closes the store when the backend holds resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
