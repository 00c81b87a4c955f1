package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expectedDir := filepath.Join(home, DefaultConfigDirName)
	if got := DefaultConfigDir(); got != expectedDir {
		t.Fatalf("DefaultConfigDir() = %q, want %q", got, expectedDir)
	}

	expectedConfig := filepath.Join(expectedDir, DefaultConfigFileName)
	if got := DefaultConfigPath(); got != expectedConfig {
		t.Fatalf("DefaultConfigPath() = %q, want %q", got, expectedConfig)
	}

	expectedLog := filepath.Join(expectedDir, DefaultLogFileName)
	if got := DefaultLogPath(); got != expectedLog {
		t.Fatalf("DefaultLogPath() = %q, want %q", got, expectedLog)
	}

	expectedBaselines := filepath.Join(expectedDir, DefaultBaselinesDirName)
	if got := DefaultBaselinesDir(); got != expectedBaselines {
		t.Fatalf("DefaultBaselinesDir() = %q, want %q", got, expectedBaselines)
	}

	expectedDiffs := filepath.Join(expectedDir, DefaultDiffsDirName)
	if got := DefaultDiffsDir(); got != expectedDiffs {
		t.Fatalf("DefaultDiffsDir() = %q, want %q", got, expectedDiffs)
	}
}
