package sonicdb

import (
	"context"
	"fmt"
	"strings"

	"poe-show/pkg/types"
)

// keyReader is the pattern lookup both store flavours provide
type keyReader interface {
	Separator() string
	Keys(ctx context.Context, pattern string) ([]string, error)
	GetAll(ctx context.Context, key string) (types.Record, error)
}

// readTable returns every entry of table keyed by the part after
// "<table><separator>".
func readTable(ctx context.Context, r keyReader, table string) (map[string]types.Record, error) {
	prefix := table + r.Separator()
	keys, err := r.Keys(ctx, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s keys: %w", table, err)
	}

	entries := make(map[string]types.Record, len(keys))
	for _, key := range keys {
		record, err := r.GetAll(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		entries[strings.TrimPrefix(key, prefix)] = record
	}
	return entries, nil
}
