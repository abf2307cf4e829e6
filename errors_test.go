package certreg

import (
	"fmt"
	"testing"
)

func TestSchemeError(t *testing.T) {
	err := &SchemeError{URL: "https://gateway:9009", Scheme: "https"}
	expected := "unsupported scheme (https) in URL: https://gateway:9009"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	missing := &SchemeError{URL: "gateway:9009"}
	expected = "no scheme in URL: gateway:9009"
	if missing.Error() != expected {
		t.Errorf("expected %q, got %q", expected, missing.Error())
	}
}

func TestLedgerRejectionError_MessageVerbatim(t *testing.T) {
	err := &LedgerRejectionError{
		BatchID:       "abc",
		TransactionID: "def",
		Message:       "insufficient permission",
	}
	if err.Error() != "insufficient permission" {
		t.Errorf("expected ledger message verbatim, got %q", err.Error())
	}
}

func TestAsLedgerRejection(t *testing.T) {
	rej := &LedgerRejectionError{BatchID: "b1", Message: "agent not authorized"}

	// Direct.
	r, ok := AsLedgerRejection(rej)
	if !ok {
		t.Fatal("expected AsLedgerRejection to return true")
	}
	if r.BatchID != "b1" {
		t.Errorf("expected batch id b1, got %s", r.BatchID)
	}

	// Wrapped.
	wrapped := fmt.Errorf("wrapped: %w", rej)
	r2, ok2 := AsLedgerRejection(wrapped)
	if !ok2 {
		t.Fatal("expected AsLedgerRejection to unwrap wrapped error")
	}
	if r2.Message != "agent not authorized" {
		t.Errorf("unexpected message: %s", r2.Message)
	}

	// Non-rejection error.
	_, ok3 := AsLedgerRejection(fmt.Errorf("just a regular error"))
	if ok3 {
		t.Fatal("expected AsLedgerRejection to return false for other errors")
	}

	// Nil.
	_, ok4 := AsLedgerRejection(nil)
	if ok4 {
		t.Fatal("expected AsLedgerRejection to return false for nil")
	}
}

func TestAsScheme(t *testing.T) {
	err := fmt.Errorf("submit: %w", &SchemeError{URL: "ftp://x", Scheme: "ftp"})
	s, ok := AsScheme(err)
	if !ok {
		t.Fatal("expected AsScheme to unwrap wrapped error")
	}
	if s.Scheme != "ftp" {
		t.Errorf("expected scheme ftp, got %s", s.Scheme)
	}
}

func TestUnwrapChains(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &TransportError{Op: "submit batch list", Err: cause}
	if err.Unwrap() != cause {
		t.Fatal("TransportError must unwrap to its cause")
	}

	ser := &SerializationError{What: "transaction header", Err: cause}
	if ser.Unwrap() != cause {
		t.Fatal("SerializationError must unwrap to its cause")
	}
}
