package internal

import (
	"context"
	"fmt"
)

// CallCreator is the provider operation the dispatcher depends on: place a
// call from one number to another and return the provider's call id.
type CallCreator interface {
	CreateCall(ctx context.Context, to, from, twiml string) (string, error)
}

// AccountVerifier is implemented by clients that can confirm their
// credentials against the provider.
type AccountVerifier interface {
	VerifyAccount(ctx context.Context) (AccountInfo, error)
}

// AccountInfo is what the provider reports about the authenticated account
type AccountInfo struct {
	SID          string
	FriendlyName string
}

// ClientFactory builds an authenticated client from a complete record.
// Implementations must not contact the provider.
type ClientFactory func(record CredentialRecord) (CallCreator, error)

// Session pairs validated credentials with the client derived from them.
// It exists only in memory.
type Session struct {
	record CredentialRecord
	client CallCreator
}

// Activate validates record and builds a Session from it. An incomplete
// record fails with a *ValidationError before factory is called.
func Activate(record CredentialRecord, factory ClientFactory) (*Session, error) {
	if field := record.MissingField(); field != "" {
		return nil, &ValidationError{Kind: IncompleteCredentials, Field: field}
	}
	if factory == nil {
		factory = NewTwilioCaller
	}

	record = record.Trimmed()
	client, err := factory(record)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider client: %w", err)
	}

	LogDebug("Session activated for account %s", record.AccountSID)
	return &Session{record: record, client: client}, nil
}

// Record returns the credentials the session was activated with
func (s *Session) Record() CredentialRecord {
	return s.record
}

// From returns the originating phone number
func (s *Session) From() string {
	return s.record.PhoneNumber
}

// Client returns the authenticated provider client
func (s *Session) Client() CallCreator {
	return s.client
}
