//go:build sqlite

package checkpoint

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gradtree-ml/gradtree/internal/tree"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "states.db"))
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}()

	input := sampleState(t)
	if err := store.SaveState(ctx, "run-1", input); err != nil {
		t.Fatalf("save state: %v", err)
	}

	output, ok, err := store.GetState(ctx, "run-1")
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted state")
	}
	if !tree.Equal(input, output) {
		t.Fatalf("unexpected state: %v", output)
	}
}

func TestSQLiteStoreUpsert(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "states.db"))
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer store.Close()

	if err := store.SaveState(ctx, "run-1", []any{}); err != nil {
		t.Fatalf("save empty state: %v", err)
	}
	replacement := sampleState(t)
	if err := store.SaveState(ctx, "run-1", replacement); err != nil {
		t.Fatalf("overwrite state: %v", err)
	}

	output, ok, err := store.GetState(ctx, "run-1")
	if err != nil || !ok {
		t.Fatalf("get state: ok=%v err=%v", ok, err)
	}
	if !tree.Equal(replacement, output) {
		t.Fatalf("expected overwritten state, got %v", output)
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Init(context.Background()); err == nil {
		t.Fatal("expected error for missing path")
	}
}
