package cmd

import (
	"strings"
	"testing"

	"github.com/iksnae/ivr-call/internal"
	"github.com/iksnae/ivr-call/testutil"
	"gopkg.in/yaml.v3"
)

func TestConfigShow_Missing(t *testing.T) {
	path := isolate(t, &internal.StubCaller{})

	stdout, _, err := runCommand(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{path, "no (defaults)", "(not set)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigShow_MasksToken(t *testing.T) {
	path := isolate(t, &internal.StubCaller{})
	record := internal.CreateTestRecord()
	record.AuthToken = "supersecrettoken1234"
	writeSettings(t, path, record)

	stdout, _, err := runCommand(t, "config", "show", "--config", path, "-o", "yaml")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if strings.Contains(stdout, record.AuthToken) {
		t.Fatal("auth token printed in plaintext")
	}

	var view internal.SettingsView
	if err := yaml.Unmarshal([]byte(stdout), &view); err != nil {
		t.Fatalf("invalid yaml output: %v\n%s", err, stdout)
	}
	if view.AuthToken != "****1234" || !view.Exists || !view.Complete {
		t.Errorf("view = %+v", view)
	}
}

func TestConfigShow_Corrupt(t *testing.T) {
	isolate(t, &internal.StubCaller{})
	path := testutil.WriteSettingsFile(t, testutil.WrongTypeSettingsJSON)

	stdout, stderr, err := runCommand(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("a corrupt file must not be fatal: %v", err)
	}
	if !strings.Contains(stderr, "Failed to load configuration") {
		t.Errorf("expected warning on stderr, got:\n%s", stderr)
	}
	if !strings.Contains(stdout, "(not set)") {
		t.Errorf("expected defaults, got:\n%s", stdout)
	}
}
