package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luminance/internal/theme"
)

func newThemeCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect or change the persisted theme preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the theme preference and the effective theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, global)
			if err != nil {
				return err
			}
			defer s.Close()

			printState(cmd, s.binding.Theme())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Persist a theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.PreferenceLight), string(theme.PreferenceDark), string(theme.PreferenceSystem)},
		RunE: func(cmd *cobra.Command, args []string) error {
			pref, err := theme.ParsePreference(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(cmd, global)
			if err != nil {
				return err
			}
			defer s.Close()

			store := s.binding.Theme()
			if err := store.SetPreference(pref); err != nil {
				return err
			}
			printState(cmd, store)
			return nil
		},
	})

	return cmd
}

func printState(cmd *cobra.Command, store *theme.Store) {
	state := store.State()
	fmt.Fprintf(cmd.OutOrStdout(), "preference: %s\neffective: %s\n", state.Preference, state.Effective)
	if store.Degraded() {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: theme storage unavailable, preference is not persisted")
	}
}
