package internal

import (
	"context"
	"fmt"
	"sync"
)

// State is the workflow position for the current process
type State int

const (
	StateUnconfigured State = iota
	StateReady
	StateDispatching
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDispatching:
		return "dispatching"
	default:
		return "unconfigured"
	}
}

// Workflow owns the active session and moves it through
// unconfigured -> ready -> dispatching -> ready. Only one call may be in
// flight at a time.
type Workflow struct {
	store      *SettingsStore
	dispatcher *Dispatcher
	factory    ClientFactory

	mu          sync.Mutex
	session     *Session
	dispatching bool
}

// NewWorkflow wires the settings store, dispatcher and client factory.
// A nil factory uses the Twilio client.
func NewWorkflow(store *SettingsStore, dispatcher *Dispatcher, factory ClientFactory) *Workflow {
	if dispatcher == nil {
		dispatcher = NewDispatcher(0)
	}
	if factory == nil {
		factory = NewTwilioCaller
	}
	return &Workflow{
		store:      store,
		dispatcher: dispatcher,
		factory:    factory,
	}
}

// Store returns the settings store
func (w *Workflow) Store() *SettingsStore {
	return w.store
}

// State returns the current workflow state
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Workflow) stateLocked() State {
	switch {
	case w.dispatching:
		return StateDispatching
	case w.session != nil:
		return StateReady
	default:
		return StateUnconfigured
	}
}

// Session returns the active session, or nil when unconfigured
func (w *Workflow) Session() *Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session
}

// Activate replaces the session with one built from record. On failure
// the previous session is discarded.
func (w *Workflow) Activate(record CredentialRecord) (*Session, error) {
	session, err := Activate(record, w.factory)

	w.mu.Lock()
	w.session = session
	w.mu.Unlock()

	if err != nil {
		LogDebug("Activation failed: %v", err)
		return nil, err
	}
	return session, nil
}

// Configure validates record, saves it and activates a session from it.
// A save failure is returned but leaves the new session active.
func (w *Workflow) Configure(record CredentialRecord) error {
	record = record.Trimmed()
	if _, err := w.Activate(record); err != nil {
		return err
	}
	if w.store == nil {
		return nil
	}
	if err := w.store.Save(record); err != nil {
		return fmt.Errorf("credentials activated but not saved: %w", err)
	}
	return nil
}

// Dispatch starts a call with the active session. It fails fast with
// ErrNoSession when unconfigured and ErrDispatchInProgress while another
// call is pending.
func (w *Workflow) Dispatch(ctx context.Context, req CallRequest) (<-chan CallOutcome, error) {
	w.mu.Lock()
	if w.dispatching {
		w.mu.Unlock()
		return nil, ErrDispatchInProgress
	}
	inner, err := w.dispatcher.Dispatch(ctx, w.session, req)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.dispatching = true
	w.mu.Unlock()

	out := make(chan CallOutcome, 1)
	go func() {
		defer close(out)
		outcome := <-inner

		w.mu.Lock()
		w.dispatching = false
		w.mu.Unlock()

		out <- outcome
	}()
	return out, nil
}
