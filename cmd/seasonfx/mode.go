package main

import (
	"fmt"
	"io"
	"strings"

	"seasonfx/internal/controls"
	"seasonfx/internal/season"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func modeCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Show or store the mode preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the stored preference and the mode it resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*opts)
			if err != nil {
				return err
			}
			cfg, _, err := loadConfig(cmd, *opts)
			if err != nil {
				return err
			}
			resolver := season.NewResolver(store, nil)
			pref := resolver.ResolvePreference()
			mode := resolver.Resolve(pref)
			profile := tablesOrDefault(cfg).ProfileFor(mode)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "preference: %s\n", pref)
			fmt.Fprintf(out, "mode:       %s\n", mode)
			fmt.Fprintf(out, "pools:      %d particles, %d orbs\n", profile.Particles, profile.Orbs)
			fmt.Fprintf(out, "store:      %s\n", store.Path())

			keys, err := store.Keys()
			if err != nil {
				return errors.Wrap(err, "read store")
			}
			fmt.Fprintf(out, "keys:       %s\n", strings.Join(keys, ", "))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <token>",
		Short:     "Store a preference: " + strings.Join(controls.DefaultTokens(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: controls.DefaultTokens(),
		RunE: func(cmd *cobra.Command, args []string) error {
			pref, err := season.ParsePreference(args[0])
			if err != nil {
				return err
			}
			return storePreference(cmd.OutOrStdout(), *opts, pref)
		},
	})

	return cmd
}

func storePreference(out io.Writer, opts Options, pref season.Preference) error {
	store, err := openStore(opts)
	if err != nil {
		return err
	}
	if err := store.Write(season.PreferenceKey, string(pref)); err != nil {
		return errors.Wrap(err, "store preference")
	}
	mode := season.NewResolver(store, nil).Active()
	fmt.Fprintf(out, "stored %s (now %s)\n", pref, mode)
	return nil
}
