package certreg

import (
	"errors"
	"fmt"
)

// SchemeError signals a base URL whose scheme is not the single
// supported transport scheme. It is raised before any network I/O.
type SchemeError struct {
	URL    string
	Scheme string
}

func (e *SchemeError) Error() string {
	if e.Scheme == "" {
		return fmt.Sprintf("no scheme in URL: %s", e.URL)
	}
	return fmt.Sprintf("unsupported scheme (%s) in URL: %s", e.Scheme, e.URL)
}

// SigningError signals that the credential could not produce a
// signature. Fatal: a failed sign aborts the whole submission.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string { return fmt.Sprintf("signing: %v", e.Err) }
func (e *SigningError) Unwrap() error { return e.Err }

// SerializationError signals that a header, payload, or batch list
// could not be encoded.
type SerializationError struct {
	What string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serializing %s: %v", e.What, e.Err)
}
func (e *SerializationError) Unwrap() error { return e.Err }

// TransportError signals a network failure talking to the gateway.
// Never retried automatically: a regenerated nonce would give a
// resubmission a new transaction identity.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ResponseParseError signals a gateway response whose shape could not
// be decoded into the expected model.
type ResponseParseError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ResponseParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: unexpected response: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected response: %s", e.Op, e.Reason)
}
func (e *ResponseParseError) Unwrap() error { return e.Err }

// LedgerRejectionError signals a terminal INVALID batch status. The
// message is the ledger-supplied diagnostic of the first invalid
// transaction, surfaced verbatim.
type LedgerRejectionError struct {
	BatchID       string
	TransactionID string
	Message       string
}

func (e *LedgerRejectionError) Error() string { return e.Message }

// InputError signals malformed caller input, caught before any
// assembly or network activity.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// AsLedgerRejection checks whether an error is a LedgerRejectionError
// and returns it.
func AsLedgerRejection(err error) (*LedgerRejectionError, bool) {
	var r *LedgerRejectionError
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// AsScheme checks whether an error is a SchemeError and returns it.
func AsScheme(err error) (*SchemeError, bool) {
	var s *SchemeError
	if errors.As(err, &s) {
		return s, true
	}
	return nil, false
}
