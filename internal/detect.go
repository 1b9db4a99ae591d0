package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultSettingsFile is the settings file name used when nothing else is configured
	DefaultSettingsFile = "ivr_config.json"

	EnvSettingsFile = "IVR_CONFIG_FILE"
	EnvCallTimeout  = "IVR_CALL_TIMEOUT"
	EnvAccountSID   = "TWILIO_ACCOUNT_SID"
	EnvAuthToken    = "TWILIO_AUTH_TOKEN"
	EnvPhoneNumber  = "TWILIO_PHONE_NUMBER"
)

// SettingsPathSource describes where a resolved settings path came from
type SettingsPathSource string

const (
	SourceFlag    SettingsPathSource = "flag"
	SourceEnv     SettingsPathSource = "env"
	SourceDefault SettingsPathSource = "default"
)

// ResolveSettingsPath picks the settings file: the explicit path if set,
// then $IVR_CONFIG_FILE, then ivr_config.json in the working directory.
func ResolveSettingsPath(explicit string) (string, SettingsPathSource, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", SourceFlag, fmt.Errorf("failed to resolve settings path %q: %w", explicit, err)
		}
		return abs, SourceFlag, nil
	}

	if env := os.Getenv(EnvSettingsFile); env != "" {
		abs, err := filepath.Abs(env)
		if err != nil {
			return "", SourceEnv, fmt.Errorf("%s has invalid path %q: %w", EnvSettingsFile, env, err)
		}
		return abs, SourceEnv, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", SourceDefault, fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(cwd, DefaultSettingsFile), SourceDefault, nil
}

// EnvCredentials returns the credential fields present in the environment.
// Fields not set stay empty.
func EnvCredentials() CredentialRecord {
	return CredentialRecord{
		AccountSID:  os.Getenv(EnvAccountSID),
		AuthToken:   os.Getenv(EnvAuthToken),
		PhoneNumber: os.Getenv(EnvPhoneNumber),
	}
}

// EnvCallTimeoutOr parses $IVR_CALL_TIMEOUT, falling back to def when unset.
func EnvCallTimeoutOr(def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(EnvCallTimeout)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s has invalid duration %q: %w", EnvCallTimeout, v, err)
	}
	if d < 0 {
		return def, fmt.Errorf("%s must not be negative, got %s", EnvCallTimeout, v)
	}
	return d, nil
}
