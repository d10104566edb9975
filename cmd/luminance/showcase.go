package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luminance/internal/tui"
	"github.com/alexisbeaulieu97/luminance/internal/ui/render"
)

func newShowcaseCmd(global *globalOptions) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Preview the built-in components interactively",
		Long:  "Preview buttons, badges and cards in the current theme. Keys cycle variants and the theme preference; preference changes are persisted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, global)
			if err != nil {
				return err
			}
			defer s.Close()

			model := tui.NewModel(s.binding, tui.Options{
				Catalog: s.catalog,
				Render:  []render.Option{render.WithOutput(cmd.OutOrStdout())},
				Refresh: s.signal.Refresh,
			})

			if once {
				fmt.Fprintln(cmd.OutOrStdout(), model.View())
				return nil
			}

			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			stop := tui.Forward(s.binding.Theme(), program.Send)
			defer stop()

			s.log.Debug("showcase started")
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run showcase: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "print a single frame and exit")

	return cmd
}
