// Package metadata is the CLI's local key/value store. It holds the cached
// login session so a restarted CLI can resume it.
//
// Keys are grouped by a dotted prefix ("session.token", "session.role");
// the prefix operations treat such a group as one record.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	Scan(ctx context.Context, prefix string) (map[string][]byte, error)
	DeletePrefix(ctx context.Context, prefix string) (int64, error)
}
