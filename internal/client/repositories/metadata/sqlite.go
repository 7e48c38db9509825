package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/planwise/internal/dbx"
)

// SQLiteRepository runs against whatever handle it is given, so the same
// code serves both plain connections and transactions.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns (nil, nil) when key is absent.
func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("metadata get %q: %w", key, err)
	}
	return value, nil
}

// Put upserts every entry of values. Keys are written in sorted order; the
// first failing key stops the batch.
func (r *SQLiteRepository) Put(ctx context.Context, values map[string][]byte) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO metadata (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, values[k])
		if err != nil {
			return fmt.Errorf("metadata put %q: %w", k, err)
		}
	}
	return nil
}

// Delete removes the listed keys. Missing keys are ignored.
func (r *SQLiteRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	in := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key IN (`+in+`)`, args...); err != nil {
		return fmt.Errorf("metadata delete %s: %w", strings.Join(keys, ","), err)
	}
	return nil
}

// Scan returns all entries whose key starts with prefix. An empty prefix
// matches every key.
func (r *SQLiteRepository) Scan(ctx context.Context, prefix string) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM metadata WHERE substr(key, 1, ?) = ?`, len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("metadata scan %q: %w", prefix, err)
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var (
			k string
			v []byte
		)
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("metadata scan %q: %w", prefix, err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("metadata scan %q: %w", prefix, err)
	}
	return out, nil
}

// DeletePrefix removes every key starting with prefix and reports how many
// rows went away.
func (r *SQLiteRepository) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE substr(key, 1, ?) = ?`, len(prefix), prefix)
	if err != nil {
		return 0, fmt.Errorf("metadata delete prefix %q: %w", prefix, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("metadata delete prefix %q: %w", prefix, err)
	}
	return n, nil
}
