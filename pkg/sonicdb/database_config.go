// Package sonicdb reads the SONiC Redis databases that back CONFIG_DB and
// STATE_DB.
package sonicdb

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
)

// Database names in database_config.json
const (
	ConfigDB = "CONFIG_DB"
	StateDB  = "STATE_DB"
)

const (
	defaultHostname = "127.0.0.1"
	defaultPort     = 6379
)

// Instance is one Redis server
type Instance struct {
	Hostname       string `json:"hostname"`
	Port           int    `json:"port"`
	UnixSocketPath string `json:"unix_socket_path,omitempty"`
}

// Address returns the TCP address of the instance
func (i Instance) Address() string {
	host := i.Hostname
	if host == "" {
		host = defaultHostname
	}
	port := i.Port
	if port == 0 {
		port = defaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Database is one logical database hosted by an instance
type Database struct {
	ID        int    `json:"id"`
	Separator string `json:"separator"`
	Instance  string `json:"instance"`
}

// DatabaseConfig mirrors database_config.json
type DatabaseConfig struct {
	Instances map[string]Instance `json:"INSTANCES"`
	Databases map[string]Database `json:"DATABASES"`
	Version   string              `json:"VERSION"`
}

// LoadDatabaseConfig loads a SONiC database_config.json file
func LoadDatabaseConfig(path string) (*DatabaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database config: %w", err)
	}

	var config DatabaseConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	return &config, nil
}

// Lookup returns a database and the instance hosting it
func (c *DatabaseConfig) Lookup(name string) (Database, Instance, error) {
	db, ok := c.Databases[name]
	if !ok {
		return Database{}, Instance{}, fmt.Errorf("database %s not found in database config", name)
	}
	if db.Separator == "" {
		return Database{}, Instance{}, fmt.Errorf("database %s has no key separator", name)
	}
	inst, ok := c.Instances[db.Instance]
	if !ok {
		return Database{}, Instance{}, fmt.Errorf("database %s: instance %q not found", name, db.Instance)
	}
	return db, inst, nil
}
