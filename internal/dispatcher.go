package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OutcomeStatus tags a CallOutcome
type OutcomeStatus string

const (
	OutcomeDispatched OutcomeStatus = "dispatched"
	OutcomeFailed     OutcomeStatus = "failed"
)

// Reasons reported for outcomes that never reached the provider's answer
const (
	ReasonTimeout  = "timeout"
	ReasonCanceled = "canceled"
)

// CallRequest is a single outbound call to place
type CallRequest struct {
	ID     string // assigned on dispatch when empty
	To     string
	Script string // TwiML; blank means the default greeting
}

// CallOutcome is the result of one dispatch
type CallOutcome struct {
	RequestID string        `json:"request_id" yaml:"request_id"`
	To        string        `json:"to" yaml:"to"`
	Status    OutcomeStatus `json:"status" yaml:"status"`
	CallID    string        `json:"call_id,omitempty" yaml:"call_id,omitempty"`
	Reason    string        `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Dispatched builds a successful outcome for req
func Dispatched(req CallRequest, callID string) CallOutcome {
	return CallOutcome{RequestID: req.ID, To: req.To, Status: OutcomeDispatched, CallID: callID}
}

// Failed builds a failed outcome for req
func Failed(req CallRequest, reason string) CallOutcome {
	return CallOutcome{RequestID: req.ID, To: req.To, Status: OutcomeFailed, Reason: reason}
}

// OK reports whether the provider accepted the call
func (o CallOutcome) OK() bool {
	return o.Status == OutcomeDispatched
}

// Message is the one-line status shown to the user
func (o CallOutcome) Message() string {
	if o.OK() {
		return fmt.Sprintf("Call initiated! SID: %s", o.CallID)
	}
	return fmt.Sprintf("Call failed: %s", o.Reason)
}

// Dispatcher places calls on a background goroutine
type Dispatcher struct {
	// Timeout bounds the wait for the provider. Zero leaves it to the
	// provider client.
	Timeout time.Duration
}

// NewDispatcher creates a dispatcher with the given timeout
func NewDispatcher(timeout time.Duration) *Dispatcher {
	return &Dispatcher{Timeout: timeout}
}

// Dispatch validates the request and starts the provider call. The returned
// channel receives exactly one outcome and is then closed; it is safe to
// receive from any goroutine. A nil session or blank destination is
// rejected synchronously without contacting the provider.
func (d *Dispatcher) Dispatch(ctx context.Context, s *Session, req CallRequest) (<-chan CallOutcome, error) {
	if s == nil || s.client == nil {
		return nil, &ValidationError{Kind: NoSession}
	}
	req.To = strings.TrimSpace(req.To)
	if req.To == "" {
		return nil, &ValidationError{Kind: EmptyDestination, Field: "destination"}
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	out := make(chan CallOutcome, 1)
	go func() {
		defer close(out)
		out <- d.place(ctx, s, req)
	}()

	LogInfo("Dispatching call %s to %s from %s", req.ID, req.To, s.From())
	return out, nil
}

type createResult struct {
	callID string
	err    error
}

func (d *Dispatcher) place(ctx context.Context, s *Session, req CallRequest) CallOutcome {
	script, err := resolveScript(req.Script)
	if err != nil {
		return Failed(req, err.Error())
	}

	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	// The provider call may outlive ctx; the buffer lets it finish without
	// a receiver.
	done := make(chan createResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- createResult{err: fmt.Errorf("provider client panicked: %v", r)}
			}
		}()
		id, err := s.client.CreateCall(ctx, req.To, s.From(), script)
		done <- createResult{callID: id, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			if ctx.Err() != nil {
				return d.interrupted(ctx, req)
			}
			dispatchErr := &DispatchError{To: req.To, Err: res.err}
			LogWarn("Call %s failed: %v", req.ID, dispatchErr)
			return Failed(req, res.err.Error())
		}
		LogInfo("Call %s accepted by provider: %s", req.ID, res.callID)
		return Dispatched(req, res.callID)
	case <-ctx.Done():
		return d.interrupted(ctx, req)
	}
}

func (d *Dispatcher) interrupted(ctx context.Context, req CallRequest) CallOutcome {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		LogWarn("Call %s timed out after %s", req.ID, d.Timeout)
		return Failed(req, ReasonTimeout)
	}
	LogWarn("Call %s canceled while waiting for provider", req.ID)
	return Failed(req, ReasonCanceled)
}
