package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "session_kv"

	// tokenKey is the session slot holding the bearer token.
	tokenKey = "idd_token"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectValueQuery(key string) (string, []any, error) {
	query, args, err := sqlite.
		Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertValueQuery(key, value string, at time.Time) (string, []any, error) {
	query, args, err := sqlite.
		Insert(sessionTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	query, args, err := sqlite.
		Delete(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
