package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter_Level(t *testing.T) {
	tests := []struct {
		level   string
		logInfo bool
		logWarn bool
	}{
		{"debug", true, true},
		{"info", true, true},
		{"warn", false, true},
		{"error", false, false},
		{"WARN", false, true},
		{"bogus", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.level)

			log.Info("info message")
			log.Warn("warn message")

			out := buf.String()
			if got := strings.Contains(out, "info message"); got != tt.logInfo {
				t.Errorf("info logged = %v, want %v", got, tt.logInfo)
			}
			if got := strings.Contains(out, "warn message"); got != tt.logWarn {
				t.Errorf("warn logged = %v, want %v", got, tt.logWarn)
			}
		})
	}
}
