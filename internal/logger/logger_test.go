package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewParsesLevel(t *testing.T) {
	l, err := New(Config{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if l.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", l.GetLevel())
	}

	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewFileOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := New(Config{Level: "info", Format: "json", FileEnabled: true, FilePath: dir, RotationSize: 1, RetentionDays: 1})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	l.Info().Msg("hello")

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestUsePretty(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if !usePretty("pretty", f) {
		t.Error("pretty should force console output")
	}
	if usePretty("json", f) {
		t.Error("json should never use console output")
	}
	// A regular file is not a terminal.
	if usePretty("auto", f) {
		t.Error("auto picked console output for a regular file")
	}
}
