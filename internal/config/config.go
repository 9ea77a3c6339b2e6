package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is read when it exists and no --config flag is given
	DefaultPath = "/etc/sonic/poe-show.yaml"
	// DefaultDatabaseConfig is where SONiC publishes its Redis layout
	DefaultDatabaseConfig = "/var/run/redis/sonic-db/database_config.json"
)

// Config represents the poe show CLI configuration
type Config struct {
	DatabaseConfig string        `yaml:"database_config"`
	PortPrefix     string        `yaml:"port_prefix"`
	LogLevel       string        `yaml:"log_level"`
	Timeout        time.Duration `yaml:"timeout"`
	Snapshot       string        `yaml:"snapshot"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		DatabaseConfig: DefaultDatabaseConfig,
		PortPrefix:     "Ethernet",
		LogLevel:       "warn",
		Timeout:        5 * time.Second,
	}
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadOptional loads path when it exists and returns defaults otherwise
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadConfig(path)
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PortPrefix) == "" {
		return fmt.Errorf("port_prefix must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0, got %s", c.Timeout)
	}
	if c.Snapshot == "" && c.DatabaseConfig == "" {
		return fmt.Errorf("database_config is required unless snapshot is set")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	return nil
}
