package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	cases := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tc.level+".log")
			cfg := FileConfig{
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}

			if err := InitWithFileConfig(tc.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("carve window", zap.Int("zone", 0))
			Info("course loaded", zap.String("course", "test"))
			Warn("skipping hazard with bad geometry")
			Error("failed to save baked course")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tc.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tc.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tc.level)
				}
			}
		})
	}
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "carve.log")

	// 1MB is the smallest size lumberjack rotates at; write past it.
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	filler := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Debugf("carve pass %d: %s", i, filler)
	}
	Sync()

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Fatal("main log file does not exist")
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		name := e.Name()
		if name != "carve.log" && strings.HasPrefix(name, "carve") && strings.Contains(name, ".log") {
			rotated++
			// Rotated names carry a timestamp: carve-YYYY-MM-DD....log
			if !strings.Contains(name, "-20") {
				t.Errorf("rotated file %s has no timestamp", name)
			}
		}
	}
	if rotated == 0 {
		t.Error("expected at least one rotated log file")
	}
}

func TestNewLeavesGlobalsUntouched(t *testing.T) {
	tempDir := t.TempDir()

	if err := InitWithFileConfig("info", FileConfig{}, false); err != nil {
		t.Fatalf("failed to init global logger: %v", err)
	}
	globalBefore := Log

	injected, err := New("debug", filepath.Join(tempDir, "world.log"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if injected == nil {
		t.Fatal("New() returned nil logger")
	}
	if injected == globalBefore {
		t.Error("New() must build an independent logger")
	}
	if Log != globalBefore {
		t.Error("New() must not replace the global logger")
	}
}

func TestNewWritesToFile(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "roll.log")

	log, err := New("debug", logFile)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	log.Debug("simulating roll", zap.Float64("feet", 15))
	log.Info("course loaded")
	_ = log.Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	for _, want := range []string{"DEBUG", "simulating roll", "INFO", "course loaded"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected %q in injected logger output", want)
		}
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/greenside.log")

	if cfg.Path != "/tmp/greenside.log" {
		t.Errorf("expected path /tmp/greenside.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected rotation defaults: %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
