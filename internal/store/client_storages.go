package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
)

// MemoryDSN selects the process-local session store instead of SQLite.
const MemoryDSN = "memory"

// ClientStorages groups all console-side storage into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Session is the durable slot for the bearer token.
	Session SessionStore

	db *DB
}

// NewClientStorages initialises the console storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [SessionStore] over the connection.
//
// A DSN of [MemoryDSN] or ":memory:" skips SQLite entirely and keeps the
// token in memory.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == MemoryDSN || dsn == ":memory:" {
		log.Warn().Msg("session store is in memory; the login will not survive a restart")
		return &ClientStorages{Session: NewMemorySessionStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Session: NewSQLiteSessionStore(db, log),
		db:      db,
	}, nil
}

// Close releases the underlying database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
