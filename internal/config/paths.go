package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the default Pixelproof config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultConfigDirName
	}
	return filepath.Join(home, DefaultConfigDirName)
}

// DefaultConfigPath returns the default Pixelproof config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultConfigFileName)
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultLogFileName)
}

// DefaultBaselinesDir returns the default baselines directory.
func DefaultBaselinesDir() string {
	return filepath.Join(DefaultConfigDir(), DefaultBaselinesDirName)
}

// DefaultDiffsDir returns the default diff artifact directory.
func DefaultDiffsDir() string {
	return filepath.Join(DefaultConfigDir(), DefaultDiffsDirName)
}
