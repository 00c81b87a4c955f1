package main

import (
	"encoding/json"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"pkt.systems/pixelproof"
	"pkt.systems/prettyx"
)

// NewBaselinesCommand builds the baselines management command.
func NewBaselinesCommand(loader *pixelproof.Loader) *cobra.Command {
	var baselinesDir string
	var diffsDir string

	cmd := &cobra.Command{
		Use:   "baselines",
		Short: "Manage baseline images",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.SetUsageTemplate(baselinesUsageTemplate)

	flags := cmd.PersistentFlags()
	flags.StringVar(&baselinesDir, "baselines-dir", pixelproof.DefaultBaselinesDir(), "baseline image directory")
	flags.StringVar(&diffsDir, "diffs-dir", pixelproof.DefaultDiffsDir(), "diff artifact directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List baselines with metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, closeLogger, err := buildEngine(cmd, loader, baselinesDir, diffsDir, "baselines")
			if err != nil {
				return err
			}
			defer closeLogger()

			list, err := engine.ListBaselines()
			if err != nil {
				return err
			}
			data, err := json.Marshal(list)
			if err != nil {
				return err
			}
			return prettyx.PrettyTo(cmd.OutOrStdout(), data, prettyx.DefaultOptions)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <name> <image.png>",
		Short: "Create or overwrite a baseline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := imaging.Open(args[1])
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}
			engine, closeLogger, err := buildEngine(cmd, loader, baselinesDir, diffsDir, "baselines")
			if err != nil {
				return err
			}
			defer closeLogger()

			path, err := engine.UpdateBaseline(args[0], img)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "baseline updated: %s\n", path)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, closeLogger, err := buildEngine(cmd, loader, baselinesDir, diffsDir, "baselines")
			if err != nil {
				return err
			}
			defer closeLogger()

			deleted, err := engine.DeleteBaseline(args[0])
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintln(cmd.OutOrStdout(), "baseline not found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "baseline deleted")
			return nil
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(updateCmd)
	cmd.AddCommand(deleteCmd)

	return cmd
}

const baselinesUsageTemplate = `Usage:
  {{.CommandPath}} [command] [flags]

{{if .HasAvailableSubCommands}}Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}{{rpad .Name .NamePadding }} {{.Short}}
{{end}}{{end}}{{end}}

{{if .HasAvailableLocalFlags}}Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

{{if .HasAvailableInheritedFlags}}Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
