package internal

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRecord_Complete(t *testing.T) {
	tests := []struct {
		name    string
		record  CredentialRecord
		missing string
	}{
		{"complete", CreateTestRecord(), ""},
		{"empty account", CredentialRecord{AuthToken: "x", PhoneNumber: "+15551234567"}, "account SID"},
		{"blank token", CredentialRecord{AccountSID: "AC1", AuthToken: "   ", PhoneNumber: "+1"}, "auth token"},
		{"empty phone", CredentialRecord{AccountSID: "AC1", AuthToken: "tok"}, "phone number"},
		{"all empty", CredentialRecord{}, "account SID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, tt.record.MissingField())
			assert.Equal(t, tt.missing == "", tt.record.Complete())
		})
	}
}

func TestCredentialRecord_NeverPrintsToken(t *testing.T) {
	record := CredentialRecord{AccountSID: "AC1", AuthToken: "supersecrettoken", PhoneNumber: "+1"}

	for _, s := range []string{
		record.String(),
		fmt.Sprintf("%v", record),
		fmt.Sprintf("%s", record),
		record.Redacted().AuthToken,
	} {
		assert.NotContains(t, s, "supersecrettoken")
	}
	assert.Equal(t, "supersecrettoken", record.AuthToken, "Redacted must not modify the receiver")
}

func TestNewSettingsView_MasksToken(t *testing.T) {
	record := CredentialRecord{AccountSID: "AC1", AuthToken: "supersecrettoken", PhoneNumber: "+1"}
	view := NewSettingsView("/tmp/ivr_config.json", true, record)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "supersecrettoken")
	assert.Equal(t, "****oken", view.AuthToken)
	assert.True(t, view.Complete)
}
