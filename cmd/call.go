package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/iksnae/ivr-call/internal"
	"github.com/iksnae/ivr-call/internal/render"
	"github.com/spf13/cobra"
)

var (
	callScript     string
	callScriptFile string
	callTimeoutArg time.Duration
	callOutput     string
)

var errCallNotPlaced = errors.New("call was not placed")

var callCmd = &cobra.Command{
	Use:   "call <phone-number>",
	Short: "Place an outbound call",
	Long: `Place an outbound call from the configured Twilio number.

The call runs the TwiML given with --script or --script-file exactly as
written. Without a script the callee hears a short default greeting. Any
relative URLs in the script (for example a Gather action) must be served by
your own webhook.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if callScript != "" && callScriptFile != "" {
			return fmt.Errorf("--script and --script-file are mutually exclusive")
		}
		formatter, err := render.NewFormatter(callOutput)
		if err != nil {
			return err
		}
		timeout, err := callTimeout(cmd, callTimeoutArg)
		if err != nil {
			return err
		}

		script := callScript
		if callScriptFile != "" {
			data, err := os.ReadFile(callScriptFile)
			if err != nil {
				return fmt.Errorf("failed to read script file: %w", err)
			}
			script = string(data)
		}

		store, err := openSettings()
		if err != nil {
			return err
		}
		record, loadErr := store.Load()
		if loadErr != nil {
			internal.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("Failed to load configuration: %v", loadErr))
		}

		workflow := internal.NewWorkflow(store, internal.NewDispatcher(timeout), clientFactory)
		if _, err := workflow.Activate(record); err != nil {
			return fmt.Errorf("%w (run 'ivr-call configure' first)", err)
		}

		ch, err := workflow.Dispatch(cmd.Context(), internal.CallRequest{To: args[0], Script: script})
		if err != nil {
			return err
		}

		outcome := internal.AwaitOutcome(cmd.ErrOrStderr(), fmt.Sprintf("Initiating call to %s...", args[0]), ch)
		if err := formatter.FormatOutcome(outcome, cmd.OutOrStdout()); err != nil {
			return err
		}
		if !outcome.OK() {
			return errCallNotPlaced
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().StringVar(&callScript, "script", "", "TwiML call-flow script")
	callCmd.Flags().StringVar(&callScriptFile, "script-file", "", "Read the TwiML call-flow script from a file")
	callCmd.Flags().DurationVar(&callTimeoutArg, "timeout", defaultCallTimeout, "Give up waiting for the provider after this long (0 disables; default $IVR_CALL_TIMEOUT)")
	callCmd.Flags().StringVarP(&callOutput, "output", "o", "text", "Output format: text, json, yaml")
}
