package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUsableBeforeInit(t *testing.T) {
	// Packages log during construction, before main calls Init. The
	// package-level logger must accept writes without panicking.
	Log.Info("before init")
	Sugar.Debugf("before init %d", 1)
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	tempDir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			cfg := FileConfig{
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}
			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			for _, exp := range tt.expected {
				if !strings.Contains(string(content), exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(string(content), exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "quest.log")

	// 1MB is the smallest size lumberjack accepts, so it takes a few
	// thousand fat lines to force a rollover.
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	filler := strings.Repeat("z", 200)
	for i := 0; i < 8000; i++ {
		Sugar.Infof("entry %d: %s", i, filler)
	}
	Sync()

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}
	count := 0
	for _, f := range files {
		if strings.HasPrefix(f.Name(), "quest") && strings.Contains(f.Name(), ".log") {
			count++
		}
	}
	if count < 2 {
		t.Errorf("expected current plus at least one rotated log file, got %d", count)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/quest.log")

	if cfg.Path != "/tmp/quest.log" {
		t.Errorf("expected path /tmp/quest.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
