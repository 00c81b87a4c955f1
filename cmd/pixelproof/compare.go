package main

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"pkt.systems/pixelproof"
)

// NewCompareCommand builds the compare command.
func NewCompareCommand(loader *pixelproof.Loader) *cobra.Command {
	var baselinesDir string
	var diffsDir string
	var threshold float64
	var update bool

	cmd := &cobra.Command{
		Use:   "compare <name> <image.png>",
		Short: "Compare a screenshot against its stored baseline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			candidate, err := imaging.Open(args[1])
			if err != nil {
				return fmt.Errorf("open candidate image: %w", err)
			}

			engine, closeLogger, err := buildEngine(cmd, loader, baselinesDir, diffsDir, "compare")
			if err != nil {
				return err
			}
			defer closeLogger()

			if update {
				path, err := engine.UpdateBaseline(name, candidate)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "baseline updated: %s\n", path)
				return nil
			}

			var result pixelproof.ComparisonResult
			if cmd.Flags().Changed("threshold") {
				result, err = engine.CompareWithThreshold(name, candidate, threshold)
			} else {
				result, err = engine.Compare(name, candidate)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			if !result.Passed {
				return fmt.Errorf("visual regression check failed for %q", name)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&baselinesDir, "baselines-dir", pixelproof.DefaultBaselinesDir(), "baseline image directory")
	flags.StringVar(&diffsDir, "diffs-dir", pixelproof.DefaultDiffsDir(), "diff artifact directory")
	flags.Float64Var(&threshold, "threshold", pixelproof.DefaultDiffThreshold, "max allowed diff percentage (0-100)")
	flags.BoolVar(&update, "update", false, "overwrite the baseline instead of comparing")

	return cmd
}
