//revive:disable-next-line var-naming // keep same package for white-box testing
package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/aws/smithy-go"
)

func TestNewErrorWrapsCodeMessageAndOrig(t *testing.T) {
	orig := errors.New("boom")
	err := NewError("BadRequest", "something failed", orig)

	if err.Code() != "BadRequest" {
		t.Fatalf("expected code BadRequest, got %s", err.Code())
	}
	if err.Message() != "something failed" {
		t.Fatalf("expected message, got %s", err.Message())
	}
	if !errors.Is(err.OrigErr(), orig) {
		t.Fatalf("expected orig error")
	}

	// Error string should include code/message and orig cause
	if got := err.Error(); got == "" || !containsAll(got, []string{"BadRequest", "something failed", "boom"}) {
		t.Fatalf("error string missing parts: %s", got)
	}
}

func TestNewBatchErrorWrapsMultiple(t *testing.T) {
	errs := []error{errors.New("a"), errors.New("b")}
	be := NewBatchError("BatchedErrors", "multiple", errs)

	if len(be.OrigErrs()) != 2 {
		t.Fatalf("expected 2 orig errs, got %d", len(be.OrigErrs()))
	}
}

func TestNewRequestFailure(t *testing.T) {
	base := NewError("BadRequest", "bad", nil)
	rf := NewRequestFailure(base, 400, "req-1")

	if rf.StatusCode() != 400 {
		t.Fatalf("expected status 400, got %d", rf.StatusCode())
	}
	if rf.RequestID() != "req-1" {
		t.Fatalf("expected req id, got %s", rf.RequestID())
	}
	if got := rf.Error(); got == "" || !containsAll(got, []string{"BadRequest", "bad", "status code", "req-1"}) {
		t.Fatalf("error string missing parts: %s", got)
	}
}

func TestMapAPIErrorStripsNamespacePrefix(t *testing.T) {
	tests := []struct {
		typ      string
		expected string
	}{
		{"com.amazonaws.dynamodb.v20120810#ResourceNotFoundException", ErrCodeResourceNotFoundException},
		{"com.amazon.coral.validate#ValidationException", ErrCodeValidationException},
		{"ResourceInUseException", ErrCodeResourceInUseException},
		{"", ErrCodeRequestError},
	}

	for _, tt := range tests {
		rf := MapAPIError(tt.typ, "nope", 400, "req-9")

		if rf.Code() != tt.expected {
			t.Fatalf("%q: expected code %s, got %s", tt.typ, tt.expected, rf.Code())
		}
		if rf.StatusCode() != 400 {
			t.Fatalf("%q: expected status 400, got %d", tt.typ, rf.StatusCode())
		}
		if rf.RequestID() != "req-9" {
			t.Fatalf("%q: expected req id, got %s", tt.typ, rf.RequestID())
		}
	}
}

func TestMapAPIErrorSatisfiesSmithyAPIError(t *testing.T) {
	rf := MapAPIError("ValidationException", "bad input", 400, "req-2")

	var apiErr smithy.APIError
	if !errors.As(error(rf), &apiErr) {
		t.Fatalf("expected smithy.APIError, got %T", rf)
	}

	if apiErr.ErrorCode() != ErrCodeValidationException {
		t.Fatalf("expected code, got %s", apiErr.ErrorCode())
	}
	if apiErr.ErrorMessage() != "bad input" {
		t.Fatalf("expected message, got %s", apiErr.ErrorMessage())
	}
	if apiErr.ErrorFault() != smithy.FaultClient {
		t.Fatalf("expected client fault, got %v", apiErr.ErrorFault())
	}

	server := MapAPIError("InternalFailure", "down", 500, "req-3")
	if server.(smithy.APIError).ErrorFault() != smithy.FaultServer {
		t.Fatalf("expected server fault")
	}
}

func TestNewUnmarshalErrorCarriesBytes(t *testing.T) {
	body := []byte(`{"not": "json`)
	err := NewUnmarshalError(errors.New("unexpected end"), "decode response", body)

	if err.Code() != ErrCodeSerialization {
		t.Fatalf("expected code %s, got %s", ErrCodeSerialization, err.Code())
	}
	if string(err.Bytes()) != string(body) {
		t.Fatalf("expected bytes round trip")
	}
	if got := err.Error(); !containsAll(got, []string{ErrCodeSerialization, "decode response", "unexpected end"}) {
		t.Fatalf("error string missing parts: %s", got)
	}
}

func TestErrorListFormatting(t *testing.T) {
	el := errorList{errors.New("one"), errors.New("two")}
	s := el.Error()
	if s != "one\ntwo" {
		t.Fatalf("unexpected format: %q", s)
	}
}

func containsAll(s string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
