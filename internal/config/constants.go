package config

import "time"

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".pixelproof"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "pixelproof.log"
	// DefaultBaselinesDirName is the baselines directory name under the config directory.
	DefaultBaselinesDirName = "baselines"
	// DefaultDiffsDirName is the diff artifact directory name under the config directory.
	DefaultDiffsDirName = "diffs"
	// MetadataFileName is the baseline metadata file name inside the baselines directory.
	MetadataFileName = "metadata.json"

	// DefaultStabilityDuration is how long a frame must stay unchanged to count as stable.
	DefaultStabilityDuration = 300 * time.Millisecond
	// DefaultMaxWait is the hard timeout for the stability wait.
	DefaultMaxWait = 5 * time.Second
	// DefaultPollInterval is the time between stability samples.
	DefaultPollInterval = 100 * time.Millisecond
	// DefaultChangeThreshold is the minimum aggregate L1 pixel distance that counts as a change.
	DefaultChangeThreshold = 1000

	// DefaultDiffThreshold is the maximum allowed diff percentage for a passing comparison.
	DefaultDiffThreshold = 0.1
	// DefaultBlurRadius is the Gaussian blur sigma applied before diffing (0 disables).
	DefaultBlurRadius = 0.0
	// DefaultIgnoreAntialiasing enables the per-pixel distance tolerance.
	DefaultIgnoreAntialiasing = true
	// DefaultAADistance is the Euclidean RGB distance below which a pixel difference is
	// treated as anti-aliasing noise rather than a content change.
	DefaultAADistance = 25.0
	// DefaultDiffMaxAge is how long diff artifacts are kept before cleanup removes them.
	DefaultDiffMaxAge = 24 * time.Hour

	// DefaultColorTolerance is the per-channel tolerance for color presence analysis.
	DefaultColorTolerance = 50
	// DefaultMinTextPixels is the minimum foreground pixel count to consider text present.
	DefaultMinTextPixels = 100
	// DefaultOCRThreshold is the fuzzy match threshold for OCR text verification.
	DefaultOCRThreshold = 0.8
)
