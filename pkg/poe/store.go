package poe

import (
	"context"

	"poe-show/pkg/types"
)

// ConfigStore reads whole tables from the running configuration database.
// Keys of the returned map have the table name and separator stripped.
type ConfigStore interface {
	GetTable(ctx context.Context, table string) (map[string]types.Record, error)
}

// StateStore reads entries of the live state database by key pattern.
type StateStore interface {
	Separator() string
	Keys(ctx context.Context, pattern string) ([]string, error)
	GetAll(ctx context.Context, key string) (types.Record, error)
}

// Backend is the pair of stores the poe commands read from.
type Backend interface {
	ConfigDB() ConfigStore
	StateDB() StateStore
	Close()
}

// Opener connects to the stores. Commands call it only after their
// arguments are validated.
type Opener func(ctx context.Context) (Backend, error)
