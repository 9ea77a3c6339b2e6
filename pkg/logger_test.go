package pkg

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestLogrusIntegration(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLogLevel(LogLevelInfo)
	defer SetLogLevel(LogLevelWarn)

	Info("connected to STATE_DB")
	Warn("field pwr_limit missing")
	Error("query failed")
	Debug("KEYS POE_PORT_STATE|*")

	output := buf.String()
	for _, want := range []string{"connected to STATE_DB", "field pwr_limit missing", "query failed"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got %q", want, output)
		}
	}
	if strings.Contains(output, "KEYS POE_PORT_STATE") {
		t.Error("debug message should be filtered at info level")
	}
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	WithField("port", "Ethernet0").Warn("unexpected status")
	WithFields(log.Fields{
		"db":    "STATE_DB",
		"table": "POE_PORT_STATE",
	}).Warn("empty table")

	output := buf.String()
	if !strings.Contains(output, "port=Ethernet0") {
		t.Error("port field not found in structured log")
	}
	if !strings.Contains(output, "table=POE_PORT_STATE") {
		t.Error("table field not found in structured log")
	}
}

func TestLogLevels(t *testing.T) {
	defer SetLogLevel(LogLevelWarn)

	tests := []struct {
		level     string
		wantDebug bool
		wantErr   bool
	}{
		{level: "debug", wantDebug: true},
		{level: "INFO", wantDebug: false},
		{level: "warning", wantDebug: false},
		{level: "error", wantDebug: false},
		{level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := SetLogLevelFromString(tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetLogLevelFromString(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if IsDebugEnabled() != tt.wantDebug {
				t.Errorf("IsDebugEnabled() = %v, want %v", IsDebugEnabled(), tt.wantDebug)
			}
		})
	}
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	WithError(errors.New("connection refused")).Error("failed to open STATE_DB")

	if !strings.Contains(buf.String(), "connection refused") {
		t.Error("error message not found in log output")
	}
}
