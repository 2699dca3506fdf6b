package storage

import (
	"fmt"
	"time"
)

const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
)

// DefaultStoreKind is the backend used when none is configured.
func DefaultStoreKind() string {
	return KindMemory
}

// NewStore builds an uninitialized store. ttl only applies to the memory
// backend; zero keeps runs until the process exits.
func NewStore(kind, sqlitePath string, ttl time.Duration) (Store, error) {
	switch kind {
	case "", KindMemory:
		return NewMemoryStore(ttl), nil
	case KindSQLite:
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
