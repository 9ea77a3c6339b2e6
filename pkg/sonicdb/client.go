package sonicdb

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/valkey-io/valkey-go"

	"poe-show/pkg"
	"poe-show/pkg/poe"
	"poe-show/pkg/types"
)

// Client reads one SONiC database over the Redis protocol
type Client struct {
	name      string
	separator string
	client    valkey.Client
}

// newClient is a variable so tests can avoid dialing a server
var newClient = valkey.NewClient

// Dial connects to the named database described by config. The deadline
// of ctx bounds the connection attempt.
func Dial(ctx context.Context, config *DatabaseConfig, name string) (*Client, error) {
	db, inst, err := config.Lookup(name)
	if err != nil {
		return nil, err
	}

	opt := valkey.ClientOption{
		InitAddress:  []string{inst.Address()},
		SelectDB:     db.ID,
		DisableCache: true,
	}
	if deadline, ok := ctx.Deadline(); ok {
		timeout := time.Until(deadline)
		if timeout <= 0 {
			return nil, fmt.Errorf("failed to connect to %s: %w", name, context.DeadlineExceeded)
		}
		opt.Dialer.Timeout = timeout
		opt.ConnWriteTimeout = timeout
	}

	pkg.WithFields(logrus.Fields{
		"db":        name,
		"address":   inst.Address(),
		"id":        db.ID,
		"separator": db.Separator,
	}).Debug("Connecting")
	c, err := newClient(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s at %s: %w", name, inst.Address(), err)
	}

	return &Client{
		name:      name,
		separator: db.Separator,
		client:    c,
	}, nil
}

// Separator returns the key separator of the database
func (c *Client) Separator() string {
	return c.separator
}

// Keys returns the keys matching a glob pattern
func (c *Client) Keys(ctx context.Context, pattern string) ([]string, error) {
	pkg.WithField("db", c.name).Debugf("KEYS %s", pattern)
	return c.client.Do(ctx, c.client.B().Keys().Pattern(pattern).Build()).AsStrSlice()
}

// GetAll returns every field of a hash key. A missing key yields an empty record.
func (c *Client) GetAll(ctx context.Context, key string) (types.Record, error) {
	pkg.WithField("db", c.name).Debugf("HGETALL %s", key)
	fields, err := c.client.Do(ctx, c.client.B().Hgetall().Key(key).Build()).AsStrMap()
	if err != nil {
		return nil, err
	}
	return types.Record(fields), nil
}

// GetTable returns every entry of a table
func (c *Client) GetTable(ctx context.Context, table string) (map[string]types.Record, error) {
	return readTable(ctx, c, table)
}

// Close releases the connection
func (c *Client) Close() {
	c.client.Close()
}

// Connector holds the CONFIG_DB and STATE_DB clients of one invocation
type Connector struct {
	config *Client
	state  *Client
}

// Connect dials CONFIG_DB and STATE_DB
func Connect(ctx context.Context, config *DatabaseConfig) (*Connector, error) {
	cfg, err := Dial(ctx, config, ConfigDB)
	if err != nil {
		return nil, err
	}
	state, err := Dial(ctx, config, StateDB)
	if err != nil {
		cfg.Close()
		return nil, err
	}
	pkg.Info("Connected to %s and %s", ConfigDB, StateDB)
	return &Connector{config: cfg, state: state}, nil
}

// Opener returns a poe.Opener dialing the databases of the config file at path
func Opener(path string) poe.Opener {
	return func(ctx context.Context) (poe.Backend, error) {
		config, err := LoadDatabaseConfig(path)
		if err != nil {
			return nil, err
		}
		connector, err := Connect(ctx, config)
		if err != nil {
			return nil, err
		}
		return connector, nil
	}
}

// ConfigDB returns the CONFIG_DB client
func (c *Connector) ConfigDB() poe.ConfigStore {
	return c.config
}

// StateDB returns the STATE_DB client
func (c *Connector) StateDB() poe.StateStore {
	return c.state
}

// Close closes both clients
func (c *Connector) Close() {
	c.config.Close()
	c.state.Close()
	pkg.Debug("Closed connections to %s and %s", ConfigDB, StateDB)
}
