package sonicdb

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"poe-show/pkg/poe"
	"poe-show/pkg/types"
)

// Snapshot is an offline dump of the databases, keyed by full store key.
// JSON dumps parse as well since JSON is valid YAML.
type Snapshot struct {
	Separator string                  `yaml:"separator"`
	ConfigDB  map[string]types.Record `yaml:"CONFIG_DB"`
	StateDB   map[string]types.Record `yaml:"STATE_DB"`
}

// LoadSnapshot reads a snapshot file into a MemoryBackend
func LoadSnapshot(path string) (*MemoryBackend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	return &MemoryBackend{
		Config: NewMemoryStore(snap.Separator, snap.ConfigDB),
		State:  NewMemoryStore(snap.Separator, snap.StateDB),
	}, nil
}

// SnapshotOpener returns a poe.Opener serving the snapshot at path
func SnapshotOpener(path string) poe.Opener {
	return func(ctx context.Context) (poe.Backend, error) {
		backend, err := LoadSnapshot(path)
		if err != nil {
			return nil, err
		}
		return backend, nil
	}
}
