package cmd

import (
	"fmt"

	"github.com/iksnae/ivr-call/internal"
	"github.com/iksnae/ivr-call/internal/render"
	"github.com/spf13/cobra"
)

var configShowOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the saved configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved credentials with the auth token masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, err := render.NewFormatter(configShowOutput)
		if err != nil {
			return err
		}

		store, err := openSettings()
		if err != nil {
			return err
		}

		record, loadErr := store.Load()
		if loadErr != nil {
			internal.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("Failed to load configuration, showing defaults: %v", loadErr))
		}

		view := internal.NewSettingsView(store.Path(), store.Exists(), record)
		return formatter.FormatSettings(view, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().StringVarP(&configShowOutput, "output", "o", "text", "Output format: text, json, yaml")
}
