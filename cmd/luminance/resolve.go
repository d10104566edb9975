package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luminance/internal/style/variant"
)

type resolveOptions struct {
	options []string
	class   string
	list    bool
}

func newResolveCmd(global *globalOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Resolve a component's class string for a variant selection",
		Example: `  luminance resolve button --opt variant=secondary --opt size=sm --class px-8
  luminance resolve badge --list`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, global)
			if err != nil {
				return err
			}
			defer s.Close()

			spec, ok := s.catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown component %q (available: %s)", args[0], strings.Join(s.catalog.SortedNames(), ", "))
			}

			if opts.list {
				printAxes(cmd, spec)
				return nil
			}

			sel, err := parseSelection(opts.options)
			if err != nil {
				return err
			}
			sel.Class = opts.class

			resolver := variant.NewResolver(variant.WithLogger(s.log))
			fmt.Fprintln(cmd.OutOrStdout(), resolver.Resolve(spec, sel))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.options, "opt", "o", nil, "axis=option selection (repeatable); use !none to skip a nullable axis")
	cmd.Flags().StringVar(&opts.class, "class", "", "caller tokens applied last")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list axes, options and defaults instead of resolving")

	return cmd
}

func parseSelection(pairs []string) (variant.Selection, error) {
	sel := variant.Selection{Options: make(map[string]string, len(pairs))}
	for _, pair := range pairs {
		axis, option, ok := strings.Cut(pair, "=")
		axis, option = strings.TrimSpace(axis), strings.TrimSpace(option)
		if !ok || axis == "" {
			return variant.Selection{}, fmt.Errorf("invalid --opt %q: expected axis=option", pair)
		}
		sel.Options[axis] = option
	}
	return sel, nil
}

func printAxes(cmd *cobra.Command, spec *variant.Spec) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", spec.Name())
	for _, axis := range spec.Axes() {
		def, _ := spec.Default(axis)
		fmt.Fprintf(out, "  %s (default %s): %s\n", axis, def, strings.Join(spec.Options(axis), ", "))
	}
}
