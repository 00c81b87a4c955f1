package main

import (
	"fmt"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"pkt.systems/pixelproof"
)

// NewWaitCommand builds the screen stability wait command. It polls a frame
// file that an external capturer keeps overwriting.
func NewWaitCommand(loader *pixelproof.Loader) *cobra.Command {
	var outPath string
	var duration time.Duration
	var maxWait time.Duration
	var pollInterval time.Duration
	var changeThreshold int64

	cmd := &cobra.Command{
		Use:   "wait <frame.png>",
		Short: "Wait until the captured screen stops changing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			opts := pixelproof.WaitOptions{
				StabilityDuration: cfg.Stability.Duration,
				MaxWait:           cfg.Stability.MaxWait,
				PollInterval:      cfg.Stability.PollInterval,
				ChangeThreshold:   cfg.Stability.ChangeThreshold,
			}
			if cmd.Flags().Changed("stability-duration") {
				opts.StabilityDuration = duration
			}
			if cmd.Flags().Changed("max-wait") {
				opts.MaxWait = maxWait
			}
			if cmd.Flags().Changed("poll-interval") {
				opts.PollInterval = pollInterval
			}
			if cmd.Flags().Changed("change-threshold") {
				opts.ChangeThreshold = changeThreshold
			}
			logger, closeLogger, err := commandLogger(cfg, "wait")
			if err != nil {
				return err
			}
			defer closeLogger()
			opts.Logger = logger

			result, err := pixelproof.WaitForStableScreen(cmd.Context(), pixelproof.FileScreenshotSource(args[0]), opts)
			if err != nil {
				return err
			}
			if result.Stable {
				fmt.Fprintf(cmd.OutOrStdout(), "stable after %v (%d samples)\n", result.Elapsed.Round(time.Millisecond), result.Samples)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "timed out after %v (%d samples), using last frame\n", result.Elapsed.Round(time.Millisecond), result.Samples)
			}
			if outPath != "" {
				if err := imaging.Save(result.Image, outPath); err != nil {
					return fmt.Errorf("save stable frame: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "frame written to %s\n", outPath)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&outPath, "out", "", "write the resulting frame to this path")
	flags.DurationVar(&duration, "stability-duration", pixelproof.DefaultStabilityDuration, "how long the screen must stay unchanged")
	flags.DurationVar(&maxWait, "max-wait", pixelproof.DefaultMaxWait, "hard timeout for the wait")
	flags.DurationVar(&pollInterval, "poll-interval", pixelproof.DefaultPollInterval, "time between samples")
	flags.Int64Var(&changeThreshold, "change-threshold", pixelproof.DefaultChangeThreshold, "min summed pixel distance that counts as a change")

	return cmd
}
