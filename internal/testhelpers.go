package internal

import (
	"context"
	"sync"
)

// CreateTestRecord returns a complete credential record
func CreateTestRecord() CredentialRecord {
	return CredentialRecord{
		AccountSID:  "AC1",
		AuthToken:   "tok",
		PhoneNumber: "+15551234567",
	}
}

// StubCall records one CreateCall invocation
type StubCall struct {
	To    string
	From  string
	Twiml string
}

// StubCaller is a CallCreator that returns a fixed call id or error
type StubCaller struct {
	CallID string
	Err    error
	// Block, when set, holds every call until it is closed or ctx ends
	Block chan struct{}

	mu    sync.Mutex
	calls []StubCall
}

// CreateCall implements CallCreator
func (s *StubCaller) CreateCall(ctx context.Context, to, from, twiml string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, StubCall{To: to, From: from, Twiml: twiml})
	s.mu.Unlock()

	if s.Block != nil {
		select {
		case <-s.Block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.CallID, nil
}

// Calls returns a copy of every recorded invocation
func (s *StubCaller) Calls() []StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StubCall(nil), s.calls...)
}

// StubFactory returns a ClientFactory handing out stub and counting builds
func StubFactory(stub *StubCaller, built *int) ClientFactory {
	return func(record CredentialRecord) (CallCreator, error) {
		if built != nil {
			*built++
		}
		return stub, nil
	}
}
