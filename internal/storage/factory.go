package storage

import (
	"fmt"

	"github.com/yourname/sleeplog/internal"
)

// NewStore selects the storage backend. SQLite is the default local
// file-backed store; postgres is opted into via configuration.
func NewStore(backend, sqlitePath, postgresDSN string, logger internal.Logger) (Store, error) {
	switch backend {
	case "sqlite":
		return NewSQLiteStorage(sqlitePath, logger)
	case "postgres":
		return NewPostgresStorage(postgresDSN, logger)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
