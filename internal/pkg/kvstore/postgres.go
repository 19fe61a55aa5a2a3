package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/forensicsite/internal/pkg/dberrors"
)

// ErrSchemaMissing means the content_documents table has not been migrated.
var ErrSchemaMissing = errors.New("kvstore: content_documents table missing, run migrations")

// PostgresStore keeps documents in the content_documents table.
// The pool is owned by the caller and is not closed by Close.
type PostgresStore struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// NewPostgresStore creates a store over an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := p.sb.Select("value").
		From(documentsTable).
		Where(squirrel.Eq{"doc_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var value string
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapPgError(err)
	}
	return []byte(value), nil
}

func (p *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := p.sb.Insert(documentsTable).
		Columns("doc_key", "value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		return wrapPgError(err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	query, args, err := p.sb.Delete(documentsTable).
		Where(squirrel.Eq{"doc_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		return wrapPgError(err)
	}
	return nil
}

func (p *PostgresStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := p.keysQuery(prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPgError(err)
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
		return nil, wrapPgError(err)
	}
	sort.Strings(keys)
	return keys, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// keysQuery selects the keys starting with prefix. LIKE wildcards in prefix match
// literally.
func (p *PostgresStore) keysQuery(prefix string) (string, []interface{}, error) {
	q := p.sb.Select("doc_key").From(documentsTable)
	if prefix != "" {
		q = q.Where(squirrel.Like{"doc_key": likeEscaper.Replace(prefix) + "%"})
	}
	return q.ToSql()
}

func (p *PostgresStore) Close() error {
	return nil
}

func wrapPgError(err error) error {
	if dberrors.IsUndefinedTableError(err) {
		return fmt.Errorf("%w: %v", ErrSchemaMissing, err)
	}
	return err
}
