package cmd

import (
	"fmt"

	"github.com/iksnae/ivr-call/internal"
	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print starter TwiML call-flow scripts",
}

var scriptDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the sample IVR menu script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := internal.SampleMenuScript()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), doc)
		return err
	},
}

var scriptGreetingCmd = &cobra.Command{
	Use:   "greeting",
	Short: "Print the greeting sent when a call has no script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := internal.DefaultGreeting()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), doc)
		return err
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptDefaultCmd)
	scriptCmd.AddCommand(scriptGreetingCmd)
}
