package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ivr-call/internal"
	"github.com/spf13/cobra"
)

const twilioModule = "github.com/twilio/twilio-go"

var (
	healthcheckOnline bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that ivr-call is ready to place calls",
	Long: `Check the health of ivr-call by verifying:
  • Build information and the Twilio SDK version
  • Settings file location and format
  • Credential completeness
  • Twilio client initialization
  • (with --online) that Twilio accepts the credentials

No call is placed. Only --online contacts Twilio.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sectionStyle.Render("🔍 IVR Call Health Check"))
		fmt.Fprintln(out)

		// Step 1: Build information
		fmt.Fprintln(out, infoStyle.Render("Step 1: Checking build..."))
		sdkVersion := moduleVersion(twilioModule)
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ %s, Twilio SDK %s", runtime.Version(), sdkVersion)))
		fmt.Fprintln(out)

		// Step 2: Settings file
		fmt.Fprintln(out, infoStyle.Render("Step 2: Checking settings file..."))
		store, err := openSettings()
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to resolve settings path:"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
		record, loadErr := store.Load()
		settingsOK := true
		switch {
		case loadErr != nil:
			settingsOK = false
			fmt.Fprintln(out, errorStyle.Render("❌ Settings file is unreadable, defaults in use:"), loadErr)
		case !store.Exists():
			fmt.Fprintln(out, warningStyle.Render("⚠️  Settings file not found"))
			detail(out, "Expected: %s", store.Path())
			detail(out, "Run 'ivr-call configure' to create it")
		default:
			fmt.Fprintln(out, successStyle.Render("✅ Settings file loaded"))
			detail(out, "Path: %s", store.Path())
		}
		fmt.Fprintln(out)

		// Step 3: Credentials
		fmt.Fprintln(out, infoStyle.Render("Step 3: Checking credentials..."))
		if missing := record.MissingField(); missing != "" {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("❌ Credentials incomplete: %s is empty", missing)))
			fmt.Fprintln(out)
			return summarize(out, false, "credentials are incomplete")
		}
		fmt.Fprintln(out, successStyle.Render("✅ Credentials complete"))
		detail(out, "Account SID: %s", record.AccountSID)
		detail(out, "Auth token: %s", internal.MaskSecret(record.AuthToken))
		detail(out, "Phone number: %s", record.PhoneNumber)
		fmt.Fprintln(out)

		// Step 4: Client
		fmt.Fprintln(out, infoStyle.Render("Step 4: Initializing Twilio client..."))
		session, err := internal.Activate(record, clientFactory)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to initialize Twilio client:"), err)
			fmt.Fprintln(out)
			return summarize(out, false, "client could not be initialized")
		}
		fmt.Fprintln(out, successStyle.Render("✅ Twilio client initialized"))
		detail(out, "Client: %T", session.Client())
		fmt.Fprintln(out)

		// Step 5: Provider
		if healthcheckOnline {
			fmt.Fprintln(out, infoStyle.Render("Step 5: Verifying credentials with Twilio..."))
			verifier, ok := session.Client().(internal.AccountVerifier)
			if !ok {
				fmt.Fprintln(out, warningStyle.Render("⚠️  Client cannot verify accounts, skipped"))
			} else {
				info, err := verifier.VerifyAccount(cmd.Context())
				if err != nil {
					fmt.Fprintln(out, errorStyle.Render("❌ Twilio rejected the credentials:"), err)
					fmt.Fprintln(out)
					return summarize(out, false, "provider verification failed")
				}
				fmt.Fprintln(out, successStyle.Render("✅ Twilio accepted the credentials"))
				detail(out, "Account: %s (%s)", info.FriendlyName, info.SID)
			}
			fmt.Fprintln(out)
		}

		if !settingsOK {
			return summarize(out, false, "settings file could not be read")
		}
		return summarize(out, true, "")
	},
}

// detail prints an indented diagnostic line in verbose mode
func detail(w io.Writer, format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(w, "   "+format+"\n", args...)
	}
}

func summarize(w io.Writer, ok bool, reason string) error {
	fmt.Fprintln(w, sectionStyle.Render("📊 Summary"))
	fmt.Fprintln(w)
	if ok {
		fmt.Fprintln(w, successStyle.Render("✅ Health check passed!"))
		fmt.Fprintln(w, "   You can now run: ivr-call call <phone-number>")
		return nil
	}
	fmt.Fprintln(w, errorStyle.Render("❌ Health check failed"))
	fmt.Fprintf(w, "   • %s\n", reason)
	return fmt.Errorf("health check failed: %s", reason)
}

func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(unknown)"
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return "(unknown)"
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckOnline, "online", false, "Also verify the credentials with Twilio")
}
