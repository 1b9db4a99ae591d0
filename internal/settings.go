package internal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// SettingsStore persists a CredentialRecord as a flat JSON object
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a store backed by the file at path
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Path returns the settings file location
func (s *SettingsStore) Path() string {
	return s.path
}

// Exists reports whether the settings file is present
func (s *SettingsStore) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load reads the settings file. A missing file yields the empty record and
// no error. A read or parse failure yields the empty record together with a
// *ConfigIOError the caller may surface; it is never fatal.
func (s *SettingsStore) Load() (CredentialRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			LogDebug("No settings file at %s, using defaults", s.path)
			return CredentialRecord{}, nil
		}
		return CredentialRecord{}, &ConfigIOError{Path: s.path, Op: "read", Err: err}
	}

	var record CredentialRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return CredentialRecord{}, &ConfigIOError{Path: s.path, Op: "parse", Err: err}
	}

	LogDebug("Loaded settings from %s: %s", s.path, record)
	return record, nil
}

// Save overwrites the settings file with record. The write goes through a
// temporary file and a rename so a crash never leaves a partial document.
func (s *SettingsStore) Save(record CredentialRecord) error {
	data, err := encodeRecord(record)
	if err != nil {
		return &ConfigIOError{Path: s.path, Op: "encode", Err: err}
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return &ConfigIOError{Path: s.path, Op: "write", Err: err}
		}
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return &ConfigIOError{Path: s.path, Op: "write", Err: err}
	}
	if err := os.Chmod(s.path, 0600); err != nil {
		LogWarn("Could not restrict permissions on %s: %v", s.path, err)
	}

	LogDebug("Saved settings to %s", s.path)
	return nil
}

// encodeRecord renders the record as 4-space indented JSON with no trailing
// newline, so a load followed by a save leaves the file byte-identical.
func encodeRecord(record CredentialRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(record); err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
