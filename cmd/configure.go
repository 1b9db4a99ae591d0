package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iksnae/ivr-call/internal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configureAccountSID  string
	configureAuthToken   string
	configurePhoneNumber string
	configureNoPrompt    bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save Twilio credentials and initialize the client",
	Long: `Save the Twilio Account SID, Auth Token and phone number to the settings
file and initialize a Twilio client from them.

Values are taken from flags first, then from TWILIO_ACCOUNT_SID,
TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER, then from the existing settings
file. Anything still missing is prompted for when running in a terminal;
the auth token is read without echo. Prefer the environment or the prompt
over --auth-token, which leaves the token in your shell history.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSettings()
		if err != nil {
			return err
		}

		record, loadErr := store.Load()
		if loadErr != nil {
			internal.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("Failed to load configuration: %v", loadErr))
		}
		record = overlay(record, internal.EnvCredentials())
		record = overlay(record, internal.CredentialRecord{
			AccountSID:  configureAccountSID,
			AuthToken:   configureAuthToken,
			PhoneNumber: configurePhoneNumber,
		})

		if !record.Complete() && !configureNoPrompt && term.IsTerminal(int(os.Stdin.Fd())) {
			record, err = promptMissing(cmd.OutOrStdout(), os.Stdin, record)
			if err != nil {
				return err
			}
		}

		workflow := internal.NewWorkflow(store, nil, clientFactory)
		if err := workflow.Configure(record); err != nil {
			if workflow.State() == internal.StateReady {
				internal.PrintWarning(cmd.ErrOrStderr(), "Twilio client initialized, but the configuration was not saved")
			}
			return err
		}

		out := cmd.OutOrStdout()
		internal.PrintSuccess(out, fmt.Sprintf("Configuration saved to %s", store.Path()))
		internal.PrintSuccess(out, fmt.Sprintf("Twilio client initialized for account %s", workflow.Session().Record().AccountSID))
		return nil
	},
}

// overlay returns base with every non-blank field of top applied over it
func overlay(base, top internal.CredentialRecord) internal.CredentialRecord {
	if strings.TrimSpace(top.AccountSID) != "" {
		base.AccountSID = top.AccountSID
	}
	if strings.TrimSpace(top.AuthToken) != "" {
		base.AuthToken = top.AuthToken
	}
	if strings.TrimSpace(top.PhoneNumber) != "" {
		base.PhoneNumber = top.PhoneNumber
	}
	return base
}

func promptMissing(w io.Writer, in *os.File, record internal.CredentialRecord) (internal.CredentialRecord, error) {
	reader := bufio.NewReader(in)
	readLine := func(label string) (string, error) {
		fmt.Fprintf(w, "%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("failed to read %s: %w", label, err)
		}
		return strings.TrimSpace(line), nil
	}

	var err error
	if strings.TrimSpace(record.AccountSID) == "" {
		if record.AccountSID, err = readLine("Account SID"); err != nil {
			return record, err
		}
	}
	if strings.TrimSpace(record.AuthToken) == "" {
		fmt.Fprint(w, "Auth Token: ")
		secret, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(w)
		if err != nil {
			return record, fmt.Errorf("failed to read auth token: %w", err)
		}
		record.AuthToken = strings.TrimSpace(string(secret))
	}
	if strings.TrimSpace(record.PhoneNumber) == "" {
		if record.PhoneNumber, err = readLine("Twilio Phone Number"); err != nil {
			return record, err
		}
	}
	return record, nil
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().StringVar(&configureAccountSID, "account-sid", "", "Twilio Account SID")
	configureCmd.Flags().StringVar(&configureAuthToken, "auth-token", "", "Twilio Auth Token")
	configureCmd.Flags().StringVar(&configurePhoneNumber, "phone-number", "", "Twilio phone number calls are placed from")
	configureCmd.Flags().BoolVar(&configureNoPrompt, "no-prompt", false, "Never prompt for missing values")
}
