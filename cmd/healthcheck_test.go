package cmd

import (
	"strings"
	"testing"

	"github.com/iksnae/ivr-call/internal"
	"github.com/iksnae/ivr-call/testutil"
)

func TestHealthcheckCommandExists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "healthcheck" {
			found = true
			break
		}
	}
	if !found {
		t.Error("healthcheck command not found in root command")
	}
	if healthcheckCmd.Flags().Lookup("online") == nil {
		t.Error("healthcheck command should have --online flag")
	}
}

func TestHealthcheck_MissingSettings(t *testing.T) {
	path := isolate(t, &internal.StubCaller{})

	stdout, _, err := runCommand(t, "healthcheck", "--config", path, "--verbose")
	if err == nil {
		t.Fatal("healthcheck should fail without credentials")
	}
	if !strings.Contains(stdout, "Settings file not found") {
		t.Errorf("expected missing settings notice, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "account SID is empty") {
		t.Errorf("expected the first missing field, got:\n%s", stdout)
	}
}

func TestHealthcheck_Passes(t *testing.T) {
	path := isolate(t, &internal.StubCaller{})
	record := internal.CreateTestRecord()
	record.AuthToken = "0123456789abcdef"
	writeSettings(t, path, record)

	stdout, _, err := runCommand(t, "healthcheck", "--config", path, "--verbose")
	if err != nil {
		t.Fatalf("healthcheck failed: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "Health check passed") {
		t.Errorf("expected pass summary, got:\n%s", stdout)
	}
	if strings.Contains(stdout, record.AuthToken) {
		t.Error("auth token printed in plaintext")
	}
	if !strings.Contains(stdout, "****cdef") {
		t.Errorf("expected masked token, got:\n%s", stdout)
	}
}

func TestHealthcheck_OnlineWithoutVerifier(t *testing.T) {
	path := isolate(t, &internal.StubCaller{})
	writeSettings(t, path, internal.CreateTestRecord())

	stdout, _, err := runCommand(t, "healthcheck", "--config", path, "--online")
	if err != nil {
		t.Fatalf("healthcheck failed: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "cannot verify accounts") {
		t.Errorf("expected skipped verification, got:\n%s", stdout)
	}
}

func TestHealthcheck_UnreadableSettings(t *testing.T) {
	isolate(t, &internal.StubCaller{})
	path := testutil.WriteSettingsFile(t, testutil.CorruptSettingsJSON)

	stdout, _, err := runCommand(t, "healthcheck", "--config", path)
	if err == nil {
		t.Fatal("healthcheck should fail on a corrupt settings file")
	}
	if !strings.Contains(stdout, "unreadable") {
		t.Errorf("expected unreadable notice, got:\n%s", stdout)
	}
}
