package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luminance/internal/palette"
	"github.com/alexisbeaulieu97/luminance/internal/ui/render"
)

const swatch = "    "

func newPaletteCmd(global *globalOptions) *cobra.Command {
	var showRamps bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the bound palette slots and the colour ramps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, global)
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := render.FromContext(s.Context(cmd.Context()), render.WithOutput(cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := r.Palette()
			for _, slot := range palette.Slots() {
				ref := p.Slot(slot)
				fmt.Fprintf(out, "%-10s %s %s\n", slot, r.Render("bg-"+ref, swatch), ref)
			}

			if !showRamps {
				return nil
			}

			ramps := s.binding.Ramps()
			for _, name := range ramps.Names() {
				ramp, _ := ramps.Ramp(name)
				fmt.Fprintf(out, "\n%s\n", name)
				for _, shade := range ramp.Shades() {
					c, _ := ramp.Color(shade)
					block := r.Lipgloss().NewStyle().Background(c).Render(swatch)
					fmt.Fprintf(out, "  %-4d %s %s\n", shade, block, string(c))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRamps, "ramps", false, "also print every ramp shade")

	return cmd
}
