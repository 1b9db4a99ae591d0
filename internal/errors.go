package internal

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteCredentials = errors.New("incomplete credentials")
	ErrNoSession             = errors.New("no active session")
	ErrEmptyDestination      = errors.New("empty destination")
	ErrDispatchInProgress    = errors.New("a call is already being dispatched")
)

// ConfigIOError represents errors reading or writing the settings file
type ConfigIOError struct {
	Path string
	Op   string // "read", "parse", "encode", "write"
	Err  error
}

func (e *ConfigIOError) Error() string {
	return fmt.Sprintf("settings error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigIOError) Unwrap() error {
	return e.Err
}

// ValidationKind identifies which precondition a ValidationError reports.
type ValidationKind int

const (
	IncompleteCredentials ValidationKind = iota
	NoSession
	EmptyDestination
)

func (k ValidationKind) sentinel() error {
	switch k {
	case IncompleteCredentials:
		return ErrIncompleteCredentials
	case NoSession:
		return ErrNoSession
	default:
		return ErrEmptyDestination
	}
}

// ValidationError is returned when credentials or a call request are
// unusable. It is always shown to the user and never fatal.
type ValidationError struct {
	Kind  ValidationKind
	Field string // first offending field, if any
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case IncompleteCredentials:
		if e.Field != "" {
			return fmt.Sprintf("validation error: %v: %s is empty", ErrIncompleteCredentials, e.Field)
		}
		return fmt.Sprintf("validation error: %v", ErrIncompleteCredentials)
	case NoSession:
		return fmt.Sprintf("validation error: %v, configure credentials first", ErrNoSession)
	default:
		return fmt.Sprintf("validation error: %v", e.Kind.sentinel())
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

// DispatchError represents a provider or network failure while placing a call
type DispatchError struct {
	To  string
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch error [%s]: %v", e.To, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
