package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poe-show.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	configContent := `
database_config: /tmp/database_config.json
port_prefix: Eth
log_level: debug
timeout: 2s
`
	config, err := LoadConfig(writeConfig(t, configContent))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.DatabaseConfig != "/tmp/database_config.json" {
		t.Errorf("Expected database_config /tmp/database_config.json, got %s", config.DatabaseConfig)
	}
	if config.PortPrefix != "Eth" {
		t.Errorf("Expected port_prefix Eth, got %s", config.PortPrefix)
	}
	if config.LogLevel != "debug" {
		t.Errorf("Expected log_level debug, got %s", config.LogLevel)
	}
	if config.Timeout != 2*time.Second {
		t.Errorf("Expected timeout 2s, got %s", config.Timeout)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, "snapshot: dump.yaml\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	def := Default()
	if config.PortPrefix != def.PortPrefix {
		t.Errorf("Expected default port_prefix %s, got %s", def.PortPrefix, config.PortPrefix)
	}
	if config.DatabaseConfig != def.DatabaseConfig {
		t.Errorf("Expected default database_config, got %s", config.DatabaseConfig)
	}
	if config.Snapshot != "dump.yaml" {
		t.Errorf("Expected snapshot dump.yaml, got %s", config.Snapshot)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "port_prefix: [unclosed\n"},
		{name: "empty port prefix", content: "port_prefix: \"\"\n"},
		{name: "bad timeout", content: "timeout: soon\n"},
		{name: "negative timeout", content: "timeout: -1s\n"},
		{name: "unknown log level", content: "log_level: chatty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}

	if _, err := LoadConfig("/nonexistent/poe-show.yaml"); err == nil {
		t.Error("Expected error when loading non-existent file")
	}
}

func TestLoadOptional(t *testing.T) {
	config, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if config.PortPrefix != "Ethernet" {
		t.Errorf("Expected defaults for missing file, got port_prefix %s", config.PortPrefix)
	}

	config, err = LoadOptional(writeConfig(t, "port_prefix: Ethernet1/\n"))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if config.PortPrefix != "Ethernet1/" {
		t.Errorf("Expected port_prefix Ethernet1/, got %s", config.PortPrefix)
	}
}

func TestValidateRequiresDatabaseConfig(t *testing.T) {
	config := Default()
	config.DatabaseConfig = ""
	if err := config.Validate(); err == nil {
		t.Error("Expected error without database_config or snapshot")
	}

	config.Snapshot = "dump.yaml"
	if err := config.Validate(); err != nil {
		t.Errorf("Expected snapshot to satisfy validation, got %v", err)
	}
}
