package checkpoint

import "fmt"

// NewStore builds a store by backend kind: "memory" (the default) or
// "sqlite" (requires building with -tags sqlite).
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}
