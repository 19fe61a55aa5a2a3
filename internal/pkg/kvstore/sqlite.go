package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const documentsTable = "content_documents"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS content_documents (
	doc_key    TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// upsertSuffix works for both SQLite and PostgreSQL.
const upsertSuffix = "ON CONFLICT (doc_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

// SQLiteStore keeps documents in a single SQLite file using the pure-Go driver.
type SQLiteStore struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewSQLiteStore opens (or creates) the database at path and ensures the schema exists.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// a single writer keeps SQLite from returning SQLITE_BUSY under concurrent saves
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}

	return &SQLiteStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.sb.Select("value").
		From(documentsTable).
		Where(squirrel.Eq{"doc_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var value string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := s.sb.Insert(documentsTable).
		Columns("doc_key", "value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.sb.Delete(documentsTable).
		Where(squirrel.Eq{"doc_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := s.keysQuery(prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// keysQuery selects the keys starting with prefix. SQLite's LIKE ignores ASCII case,
// so the prefix is compared with substr instead.
func (s *SQLiteStore) keysQuery(prefix string) (string, []interface{}, error) {
	q := s.sb.Select("doc_key").From(documentsTable)
	if prefix != "" {
		q = q.Where("substr(doc_key, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix)
	}
	return q.ToSql()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
