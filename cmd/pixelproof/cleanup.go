package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/pixelproof"
)

// NewCleanupCommand builds the diff artifact cleanup command.
func NewCleanupCommand(loader *pixelproof.Loader) *cobra.Command {
	var baselinesDir string
	var diffsDir string
	var maxAge time.Duration

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete diff artifacts older than the retention age",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, closeLogger, err := buildEngine(cmd, loader, baselinesDir, diffsDir, "cleanup")
			if err != nil {
				return err
			}
			defer closeLogger()

			deleted, err := engine.CleanupDiffs(maxAge)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d diff artifact(s)\n", deleted)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&baselinesDir, "baselines-dir", pixelproof.DefaultBaselinesDir(), "baseline image directory")
	flags.StringVar(&diffsDir, "diffs-dir", pixelproof.DefaultDiffsDir(), "diff artifact directory")
	flags.DurationVar(&maxAge, "max-age", pixelproof.DefaultDiffMaxAge, "retention age for diff artifacts")

	return cmd
}
