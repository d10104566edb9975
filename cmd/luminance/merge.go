package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luminance/internal/style/tokens"
)

func newMergeCmd() *cobra.Command {
	var lines bool

	cmd := &cobra.Command{
		Use:   "merge [tokens...]",
		Short: "Merge utility tokens, later tokens winning conflicts",
		Example: `  luminance merge "px-2 py-1 bg-red-500" "p-3 bg-luminance-teal-500"
  # p-3 bg-luminance-teal-500`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged := tokens.Merge(args...)
			if lines {
				merged = strings.Join(strings.Fields(merged), "\n")
			}
			fmt.Fprintln(cmd.OutOrStdout(), merged)
			return nil
		},
	}

	cmd.Flags().BoolVar(&lines, "lines", false, "print one token per line")

	return cmd
}
