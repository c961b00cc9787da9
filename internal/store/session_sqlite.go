package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
)

type sqliteSessionStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteSessionStore returns a [SessionStore] persisted in the
// session_kv table of db.
func NewSQLiteSessionStore(db *DB, log *logger.Logger) SessionStore {
	return &sqliteSessionStore{
		DB:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqliteSessionStore) LoadToken(ctx context.Context) (string, error) {
	query, args, err := buildSelectValueQuery(tokenKey)
	if err != nil {
		return "", err
	}

	var token string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSessionStore.LoadToken").
			Msg("failed to read stored token")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if token == "" {
		return "", ErrLocalSessionNotFound
	}

	return token, nil
}

func (s *sqliteSessionStore) SaveToken(ctx context.Context, token string) error {
	query, args, err := buildUpsertValueQuery(tokenKey, token, s.now())
	if err != nil {
		return err
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSessionStore.SaveToken").
			Msg("failed to store token")
		return err
	}
	return nil
}

func (s *sqliteSessionStore) DeleteToken(ctx context.Context) error {
	query, args, err := buildDeleteValueQuery(tokenKey)
	if err != nil {
		return err
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSessionStore.DeleteToken").
			Msg("failed to delete stored token")
		return err
	}
	return nil
}

// exec runs a write statement once. Lock contention is reported as
// ErrDatabaseBusy so callers can tell it apart from a broken database; the
// next login, logout or periodic flush writes the token again.
func (s *sqliteSessionStore) exec(ctx context.Context, query string, args ...any) error {
	_, err := s.DB.ExecContext(ctx, query, args...)
	if err == nil {
		return nil
	}
	if s.errorClassificator != nil && s.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrExecutingStatement, ErrDatabaseBusy, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
