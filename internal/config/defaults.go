package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Baselines: BaselinesConfig{
			Dir:      DefaultBaselinesDir(),
			DiffsDir: DefaultDiffsDir(),
		},
		Compare: CompareConfig{
			Threshold:          DefaultDiffThreshold,
			BlurRadius:         DefaultBlurRadius,
			IgnoreAntialiasing: DefaultIgnoreAntialiasing,
			AADistance:         DefaultAADistance,
		},
		Stability: StabilityConfig{
			Duration:        DefaultStabilityDuration,
			MaxWait:         DefaultMaxWait,
			PollInterval:    DefaultPollInterval,
			ChangeThreshold: DefaultChangeThreshold,
		},
		Analyze: AnalyzeConfig{
			ColorTolerance: DefaultColorTolerance,
			MinTextPixels:  DefaultMinTextPixels,
			OCRThreshold:   DefaultOCRThreshold,
		},
		LogFile: DefaultLogPath(),
	}
}
