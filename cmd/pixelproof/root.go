package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/pixelproof"
	"pkt.systems/pslog"
)

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *pixelproof.Loader) *cobra.Command {
	var configFile string

	v := loader.Viper()
	v.SetDefault("baselines.dir", pixelproof.DefaultBaselinesDir())
	v.SetDefault("baselines.diffs_dir", pixelproof.DefaultDiffsDir())
	v.SetDefault("compare.threshold", pixelproof.DefaultDiffThreshold)
	v.SetDefault("compare.blur_radius", pixelproof.DefaultBlurRadius)
	v.SetDefault("compare.ignore_antialiasing", true)
	v.SetDefault("compare.aa_distance", pixelproof.DefaultAADistance)
	v.SetDefault("stability.duration", pixelproof.DefaultStabilityDuration)
	v.SetDefault("stability.max_wait", pixelproof.DefaultMaxWait)
	v.SetDefault("stability.poll_interval", pixelproof.DefaultPollInterval)
	v.SetDefault("stability.change_threshold", pixelproof.DefaultChangeThreshold)
	v.SetDefault("analyze.color_tolerance", pixelproof.DefaultColorTolerance)
	v.SetDefault("analyze.min_text_pixels", pixelproof.DefaultMinTextPixels)
	v.SetDefault("analyze.ocr_threshold", pixelproof.DefaultOCRThreshold)
	v.SetDefault("log_file", pixelproof.DefaultLogPath())

	cmd := &cobra.Command{
		Use:   "pixelproof",
		Short: "Pixelproof visual regression toolkit",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewCompareCommand(loader))
	cmd.AddCommand(NewBaselinesCommand(loader))
	cmd.AddCommand(NewCleanupCommand(loader))
	cmd.AddCommand(NewWaitCommand(loader))
	cmd.AddCommand(NewConfigCommand(loader))

	return cmd
}

func commandLogger(cfg pixelproof.Config, component string) (pslog.Logger, func(), error) {
	logPath := strings.TrimSpace(cfg.LogFile)
	if logPath == "" {
		logPath = pixelproof.DefaultLogPath()
	}
	logger, closer, err := openLogger(logPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger = logger.With("component", component)
	return logger, func() { _ = closer.Close() }, nil
}

func buildEngine(cmd *cobra.Command, loader *pixelproof.Loader, baselinesDir, diffsDir string, component string) (*pixelproof.Engine, func(), error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("baselines-dir") {
		cfg.Baselines.Dir = baselinesDir
	}
	if cmd.Flags().Changed("diffs-dir") {
		cfg.Baselines.DiffsDir = diffsDir
	}
	logger, closeLogger, err := commandLogger(cfg, component)
	if err != nil {
		return nil, nil, err
	}
	engine, err := pixelproof.EngineFromConfig(cfg, logger)
	if err != nil {
		closeLogger()
		return nil, nil, err
	}
	return engine, closeLogger, nil
}
