package main

import (
	"github.com/spf13/cobra"
)

type globalOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "luminance",
		Short:         "Luminance terminal style engine",
		Long:          "Luminance merges utility tokens, resolves component variants and manages the light/dark theme preference for terminal UIs.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to luminance.yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newMergeCmd())
	cmd.AddCommand(newResolveCmd(opts))
	cmd.AddCommand(newThemeCmd(opts))
	cmd.AddCommand(newPaletteCmd(opts))
	cmd.AddCommand(newShowcaseCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
