package cmd

import (
	"io"
	"os"
	"time"

	"github.com/iksnae/ivr-call/internal"
	"github.com/iksnae/ivr-call/internal/tui"
	"github.com/spf13/cobra"
)

var tuiTimeoutArg time.Duration

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive configuration and call form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := callTimeout(cmd, tuiTimeoutArg)
		if err != nil {
			return err
		}
		store, err := openSettings()
		if err != nil {
			return err
		}

		// Log lines would tear the full-screen view.
		internal.SetLogOutput(io.Discard)
		defer internal.SetLogOutput(os.Stderr)

		workflow := internal.NewWorkflow(store, internal.NewDispatcher(timeout), clientFactory)
		return tui.Run(cmd.Context(), workflow)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().DurationVar(&tuiTimeoutArg, "timeout", defaultCallTimeout, "Give up waiting for the provider after this long (0 disables; default $IVR_CALL_TIMEOUT)")
}
