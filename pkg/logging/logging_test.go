package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestInitForCLIWritesSubsystemAttr(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Info("catalog", "discovered %d services", 3)

	out := buf.String()
	if !strings.Contains(out, "discovered 3 services") {
		t.Errorf("log output missing message: %q", out)
	}
	if !strings.Contains(out, "subsystem=catalog") {
		t.Errorf("log output missing subsystem attribute: %q", out)
	}
}

func TestFilterLevelSuppressesLowerLevels(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("exec", "+ docker-compose config --services")
	Info("exec", "nothing to see")

	if buf.Len() != 0 {
		t.Errorf("expected debug/info to be filtered, got %q", buf.String())
	}

	Warn("preflight", "docker group check skipped")
	if !strings.Contains(buf.String(), "docker group check skipped") {
		t.Errorf("warn message not written: %q", buf.String())
	}
}
