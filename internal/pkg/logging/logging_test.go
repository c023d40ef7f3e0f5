package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/ferdiebergado/thinkbox/internal/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := logging.ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want: %v", tt.in, got, tt.want)
			}
		})
	}
}

//nolint:paralleltest //SetupLogger replaces the default logger.
func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logger := logging.SetupLogger("production", "info", &buf)
	logger.Info("solved", "puzzle", "crossword")
	logger.Debug("hidden")

	line := strings.TrimSpace(buf.String())
	if strings.Contains(line, "hidden") {
		t.Errorf("debug record was written at info level: %s", line)
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("production log is not JSON: %v", err)
	}

	if got, want := record["puzzle"], "crossword"; got != want {
		t.Errorf("record[%q] = %v, want: %v", "puzzle", got, want)
	}

	if got, want := record["app"], "thinkbox"; got != want {
		t.Errorf("record[%q] = %v, want: %v", "app", got, want)
	}
}
