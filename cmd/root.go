package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/iksnae/ivr-call/internal"
	"github.com/spf13/cobra"
)

const defaultCallTimeout = 30 * time.Second

var (
	verbose    bool
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// clientFactory builds provider clients; tests swap in a stub
var clientFactory internal.ClientFactory = internal.NewTwilioCaller

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ivr-call",
	Short: "Place IVR voice calls through Twilio from the terminal",
	Long: `A small CLI for placing outbound IVR calls with Twilio.

Credentials are kept in a local settings file (ivr_config.json by default)
and a call is placed with a TwiML call-flow script, or a short default
greeting when no script is given.

Quick Start:
  ivr-call configure                      # Save and verify Twilio credentials
  ivr-call call +15557654321              # Call with the default greeting
  ivr-call call +15557654321 --script-file menu.xml
  ivr-call tui                            # Interactive form

Get your credentials from https://www.twilio.com/console. Make sure your
Twilio account has sufficient credit, and only place calls you are
permitted to make under local telephony regulations.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file location (default $IVR_CONFIG_FILE or ./ivr_config.json)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openSettings resolves the settings file for the current invocation
func openSettings() (*internal.SettingsStore, error) {
	path, source, err := internal.ResolveSettingsPath(configPath)
	if err != nil {
		return nil, err
	}
	internal.LogDebug("Using settings file %s (from %s)", path, source)
	return internal.NewSettingsStore(path), nil
}

// callTimeout returns the --timeout flag when set, else $IVR_CALL_TIMEOUT,
// else the default.
func callTimeout(cmd *cobra.Command, flagValue time.Duration) (time.Duration, error) {
	if f := cmd.Flags().Lookup("timeout"); f != nil && f.Changed {
		if flagValue < 0 {
			return 0, fmt.Errorf("--timeout must not be negative")
		}
		return flagValue, nil
	}
	return internal.EnvCallTimeoutOr(defaultCallTimeout)
}
