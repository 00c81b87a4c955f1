package pixelproof

import "pkt.systems/pixelproof/internal/config"

// Config mirrors the Pixelproof configuration.
type Config = config.Config

// BaselinesConfig configures baseline and diff artifact storage.
type BaselinesConfig = config.BaselinesConfig

// CompareConfig configures the visual regression comparison.
type CompareConfig = config.CompareConfig

// StabilityConfig configures the screen stability waiter.
type StabilityConfig = config.StabilityConfig

// AnalyzeConfig configures screen content analysis.
type AnalyzeConfig = config.AnalyzeConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = config.DefaultConfigDirName
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = config.DefaultConfigFileName
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = config.DefaultLogFileName
	// DefaultBaselinesDirName is the baselines directory name.
	DefaultBaselinesDirName = config.DefaultBaselinesDirName
	// DefaultDiffsDirName is the diff artifact directory name.
	DefaultDiffsDirName = config.DefaultDiffsDirName

	// DefaultStabilityDuration is the default dwell for a stable screen.
	DefaultStabilityDuration = config.DefaultStabilityDuration
	// DefaultMaxWait is the default stability wait timeout.
	DefaultMaxWait = config.DefaultMaxWait
	// DefaultPollInterval is the default time between stability samples.
	DefaultPollInterval = config.DefaultPollInterval
	// DefaultChangeThreshold is the default frame change threshold.
	DefaultChangeThreshold = config.DefaultChangeThreshold

	// DefaultDiffThreshold is the default maximum diff percentage.
	DefaultDiffThreshold = config.DefaultDiffThreshold
	// DefaultBlurRadius is the default Gaussian pre-filter sigma.
	DefaultBlurRadius = config.DefaultBlurRadius
	// DefaultAADistance is the default anti-aliasing distance cutoff.
	DefaultAADistance = config.DefaultAADistance
	// DefaultDiffMaxAge is the default diff artifact retention age.
	DefaultDiffMaxAge = config.DefaultDiffMaxAge

	// DefaultColorTolerance is the default per-channel color tolerance.
	DefaultColorTolerance = config.DefaultColorTolerance
	// DefaultMinTextPixels is the default text presence pixel count.
	DefaultMinTextPixels = config.DefaultMinTextPixels
	// DefaultOCRThreshold is the default OCR fuzzy match threshold.
	DefaultOCRThreshold = config.DefaultOCRThreshold
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigDir returns the default Pixelproof config directory.
func DefaultConfigDir() string {
	return config.DefaultConfigDir()
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}

// DefaultBaselinesDir returns the default baselines directory.
func DefaultBaselinesDir() string {
	return config.DefaultBaselinesDir()
}

// DefaultDiffsDir returns the default diff artifact directory.
func DefaultDiffsDir() string {
	return config.DefaultDiffsDir()
}
