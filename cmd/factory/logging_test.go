package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestSetupLogging_Disabled(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, f := setupLogging(false, slog.LevelDebug)
	if f != nil {
		f.Close()
		t.Fatal("log file opened with debug off")
	}
	if logger.Handler() != slog.DiscardHandler {
		t.Errorf("handler = %T, want discard", logger.Handler())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("log directory created with debug off")
	}
}

func TestSetupLogging_LevelFilter(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, f := setupLogging(true, slog.LevelWarn)
	if f == nil {
		t.Fatal("no log file with debug on")
	}
	defer f.Close()

	logger.Info("quiet line")
	logger.Warn("loud line", "belt", 3)

	out := readLog(t)
	if strings.Contains(out, "quiet line") {
		t.Errorf("info record below warn level written:\n%s", out)
	}
	if !strings.Contains(out, "loud line") || !strings.Contains(out, "belt=3") {
		t.Errorf("warn record missing:\n%s", out)
	}
}

func TestRotateLog(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, logFileName)

	// At the cap the file stays in place
	if err := os.WriteFile(path, make([]byte, maxLogSize), 0644); err != nil {
		t.Fatal(err)
	}
	rotateLog(path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log at cap was rotated: %v", err)
	}

	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}
	_, f := setupLogging(true, slog.LevelInfo)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	defer f.Close()

	rotated, _ := filepath.Glob(filepath.Join(logDir, "factory-*.log"))
	if len(rotated) != 1 {
		t.Errorf("rotated files = %v, want one", rotated)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("fresh log is %d bytes", info.Size())
	}
}
