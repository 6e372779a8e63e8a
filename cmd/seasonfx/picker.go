package main

import (
	"seasonfx/internal/controls"
	"seasonfx/internal/season"
	"seasonfx/internal/utils"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// pickPreference opens a native list dialog. ok is false when the dialog was
// dismissed.
func pickPreference(current string) (token string, ok bool, err error) {
	options := []zenity.Option{
		zenity.Title("seasonfx"),
		zenity.DisallowEmpty(),
	}
	if current != "" {
		options = append(options, zenity.DefaultItems(current))
	}

	token, err = zenity.List("Choose a mode:", controls.DefaultTokens(), options...)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return token, token != "", nil
}

// startPicker runs the dialog off the frame loop and delivers the choice on
// results. A dismissed or failed dialog delivers "".
func startPicker(current string, results chan<- string) {
	go func() {
		token, ok, err := pickPreference(current)
		if err != nil {
			utils.Warn("Picker failed: %v", err)
		}
		if !ok {
			token = ""
		}
		results <- token
	}()
}

func pickCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose and store a preference in a dialog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*opts)
			if err != nil {
				return err
			}
			current := season.NewResolver(store, nil).ResolvePreference()

			token, ok, err := pickPreference(string(current))
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println("No change.")
				return nil
			}
			pref, err := season.ParsePreference(token)
			if err != nil {
				return err
			}
			return storePreference(cmd.OutOrStdout(), *opts, pref)
		},
	}
}
