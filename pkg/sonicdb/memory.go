package sonicdb

import (
	"context"
	"fmt"
	"sort"

	"github.com/gobwas/glob"

	"poe-show/pkg/poe"
	"poe-show/pkg/types"
)

// DefaultSeparator is the key separator SONiC uses for CONFIG_DB and STATE_DB
const DefaultSeparator = "|"

// MemoryStore is an in-memory database used for snapshots and tests
type MemoryStore struct {
	separator string
	entries   map[string]types.Record
}

// NewMemoryStore creates a store holding entries keyed by full store key
func NewMemoryStore(separator string, entries map[string]types.Record) *MemoryStore {
	if separator == "" {
		separator = DefaultSeparator
	}
	if entries == nil {
		entries = make(map[string]types.Record)
	}
	return &MemoryStore{separator: separator, entries: entries}
}

// Set stores a record under key, replacing any previous value
func (m *MemoryStore) Set(key string, record types.Record) {
	m.entries[key] = record
}

// Separator returns the key separator
func (m *MemoryStore) Separator() string {
	return m.separator
}

// Keys returns the keys matching a glob pattern in sorted order.
// As with Redis KEYS, "*" also matches "/".
func (m *MemoryStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	var keys []string
	for key := range m.entries {
		if g.Match(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// GetAll returns a copy of the record under key, empty when missing
func (m *MemoryStore) GetAll(ctx context.Context, key string) (types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	record := make(types.Record, len(m.entries[key]))
	for k, v := range m.entries[key] {
		record[k] = v
	}
	return record, nil
}

// GetTable returns every entry of a table
func (m *MemoryStore) GetTable(ctx context.Context, table string) (map[string]types.Record, error) {
	return readTable(ctx, m, table)
}

// MemoryBackend serves both databases from memory
type MemoryBackend struct {
	Config *MemoryStore
	State  *MemoryStore
}

// NewMemoryBackend creates an empty backend
func NewMemoryBackend(separator string) *MemoryBackend {
	return &MemoryBackend{
		Config: NewMemoryStore(separator, nil),
		State:  NewMemoryStore(separator, nil),
	}
}

// ConfigDB returns the configuration store
func (b *MemoryBackend) ConfigDB() poe.ConfigStore {
	return b.Config
}

// StateDB returns the state store
func (b *MemoryBackend) StateDB() poe.StateStore {
	return b.State
}

// Close is a no-op
func (b *MemoryBackend) Close() {}
