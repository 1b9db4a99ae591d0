package internal

import (
	"fmt"
	"strings"
)

// CredentialRecord is the flat credential document kept in the settings file.
// AuthToken is sensitive: use String or Redacted when showing a record.
type CredentialRecord struct {
	AccountSID  string `json:"twilio_account_sid"`
	AuthToken   string `json:"twilio_auth_token"`
	PhoneNumber string `json:"twilio_phone_number"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (r CredentialRecord) Trimmed() CredentialRecord {
	return CredentialRecord{
		AccountSID:  strings.TrimSpace(r.AccountSID),
		AuthToken:   strings.TrimSpace(r.AuthToken),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
	}
}

// MissingField names the first field that is empty after trimming, or ""
// when the record is complete.
func (r CredentialRecord) MissingField() string {
	t := r.Trimmed()
	switch {
	case t.AccountSID == "":
		return "account SID"
	case t.AuthToken == "":
		return "auth token"
	case t.PhoneNumber == "":
		return "phone number"
	}
	return ""
}

// Complete reports whether all three fields are non-empty after trimming
func (r CredentialRecord) Complete() bool {
	return r.MissingField() == ""
}

// Redacted returns a copy whose auth token is masked
func (r CredentialRecord) Redacted() CredentialRecord {
	r.AuthToken = MaskSecret(r.AuthToken)
	return r
}

func (r CredentialRecord) String() string {
	return fmt.Sprintf("{account_sid:%s auth_token:%s phone_number:%s}",
		r.AccountSID, MaskSecret(r.AuthToken), r.PhoneNumber)
}

// SettingsView is the display form of a stored record
type SettingsView struct {
	Path        string `json:"path" yaml:"path"`
	Exists      bool   `json:"exists" yaml:"exists"`
	AccountSID  string `json:"account_sid" yaml:"account_sid"`
	AuthToken   string `json:"auth_token" yaml:"auth_token"`
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
	Complete    bool   `json:"complete" yaml:"complete"`
}

// NewSettingsView builds a masked view of record as loaded from path
func NewSettingsView(path string, exists bool, record CredentialRecord) SettingsView {
	masked := record.Redacted()
	return SettingsView{
		Path:        path,
		Exists:      exists,
		AccountSID:  masked.AccountSID,
		AuthToken:   masked.AuthToken,
		PhoneNumber: masked.PhoneNumber,
		Complete:    record.Complete(),
	}
}
