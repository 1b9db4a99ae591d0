package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// SettingsFileName matches the default settings file name
const SettingsFileName = "ivr_config.json"

// WriteSettingsFile writes body as a settings file in a fresh temp dir and
// returns its path
func WriteSettingsFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SettingsFileName)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("Failed to write settings fixture: %v", err)
	}
	return path
}

// ReadSettingsKeys decodes a settings file into a generic map so tests can
// check the exact keys on disk
func ReadSettingsKeys(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read settings file %s: %v", path, err)
	}
	keys := map[string]interface{}{}
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("Failed to unmarshal settings file: %v", err)
	}
	return keys
}

// BlockedSettingsPath returns a settings path whose parent is a regular
// file, so any attempt to write it fails
func BlockedSettingsPath(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}
	return filepath.Join(blocker, SettingsFileName)
}

// WriteScriptFile writes a TwiML script to a temp file and returns its path
func WriteScriptFile(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.xml")
	if err := os.WriteFile(path, []byte(script), 0600); err != nil {
		t.Fatalf("Failed to write script fixture: %v", err)
	}
	return path
}
