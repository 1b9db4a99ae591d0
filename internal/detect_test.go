package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResolveSettingsPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(EnvSettingsFile, filepath.Join(dir, "env.json"))
		want := filepath.Join(dir, "flag.json")

		got, source, err := ResolveSettingsPath(want)
		if err != nil {
			t.Fatalf("ResolveSettingsPath() error = %v", err)
		}
		if got != want || source != SourceFlag {
			t.Errorf("ResolveSettingsPath() = %q, %q; want %q, flag", got, source, want)
		}
	})

	t.Run("environment", func(t *testing.T) {
		want := filepath.Join(dir, "env.json")
		t.Setenv(EnvSettingsFile, want)

		got, source, err := ResolveSettingsPath("")
		if err != nil {
			t.Fatalf("ResolveSettingsPath() error = %v", err)
		}
		if got != want || source != SourceEnv {
			t.Errorf("ResolveSettingsPath() = %q, %q; want %q, env", got, source, want)
		}
	})

	t.Run("default in working directory", func(t *testing.T) {
		t.Setenv(EnvSettingsFile, "")
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })

		got, source, err := ResolveSettingsPath("")
		if err != nil {
			t.Fatalf("ResolveSettingsPath() error = %v", err)
		}
		if filepath.Base(got) != DefaultSettingsFile || source != SourceDefault {
			t.Errorf("ResolveSettingsPath() = %q, %q; want %s, default", got, source, DefaultSettingsFile)
		}
	})
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv(EnvAccountSID, "AC1")
	t.Setenv(EnvAuthToken, "tok")
	t.Setenv(EnvPhoneNumber, "")

	got := EnvCredentials()
	if got.AccountSID != "AC1" || got.AuthToken != "tok" || got.PhoneNumber != "" {
		t.Errorf("EnvCredentials() = %+v", got)
	}
}

func TestEnvCallTimeoutOr(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"unset", "", 30 * time.Second, false},
		{"valid", "5s", 5 * time.Second, false},
		{"zero disables", "0s", 0, false},
		{"garbage", "soon", 30 * time.Second, true},
		{"negative", "-1s", 30 * time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvCallTimeout, tt.value)
			got, err := EnvCallTimeoutOr(30 * time.Second)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EnvCallTimeoutOr() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("EnvCallTimeoutOr() = %v, want %v", got, tt.want)
			}
		})
	}
}
