package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// Error codes returned by the service in the response envelope's __type
// field, stripped of any namespace prefix.
const (
	ErrCodeConditionalCheckFailedException          = "ConditionalCheckFailedException"
	ErrCodeInternalFailure                          = "InternalFailure"
	ErrCodeInternalServerError                      = "InternalServerError"
	ErrCodeItemCollectionSizeLimitExceededException = "ItemCollectionSizeLimitExceededException"
	ErrCodeLimitExceededException                   = "LimitExceededException"
	ErrCodeMissingParameter                         = "MissingParameter"
	ErrCodeProvisionedThroughputExceededException   = "ProvisionedThroughputExceededException"
	ErrCodeRequestExpired                           = "RequestExpired"
	ErrCodeResourceInUseException                   = "ResourceInUseException"
	ErrCodeResourceNotFoundException                = "ResourceNotFoundException"
	ErrCodeServiceUnavailable                       = "ServiceUnavailable"
	ErrCodeThrottlingException                      = "ThrottlingException"
	ErrCodeValidationException                      = "ValidationException"
)

// Error codes produced on the client side, before or after the request
// reaches the service.
const (
	ErrCodeConfigError    = "ConfigError"
	ErrCodeNoCredentials  = "NoCredentials"
	ErrCodeNoProfile      = "NoProfile"
	ErrCodeRequestError   = "RequestError"
	ErrCodeRequestTimeout = "RequestTimeout"
	ErrCodeSerialization  = "SerializationError"
)

// An Error wraps lower level errors with code, message and an original error.
// The underlying concrete error type may also satisfy other interfaces which
// can be to used to obtain more specific information about the error.
type Error interface {
	error

	Code() string
	Message() string
	OrigErr() error
}

// BatchedErrors is a batch of errors which also wraps lower level errors with
// code, message, and original errors. Calling Error() will include all errors
// that occurred in the batch.
type BatchedErrors interface {
	Error
	OrigErrs() []error
}

// NewError returns an Error object described by the code, message, and origErr.
func NewError(code, message string, origErr error) Error {
	var errs []error
	if origErr != nil {
		errs = append(errs, origErr)
	}

	return newBaseError(code, message, errs)
}

// NewBatchError returns an BatchedErrors with a collection of errors as an
// array of errors.
func NewBatchError(code, message string, errs []error) BatchedErrors {
	return newBaseError(code, message, errs)
}

// A RequestFailure is an interface to extract request failure information from
// an Error such as the request ID of the failed request returned by the
// service. RequestFailures may not always have a requestID value if the
// request failed prior to reaching the service such as a connection error.
type RequestFailure interface {
	Error
	StatusCode() int
	RequestID() string
}

// NewRequestFailure returns a wrapped error with additional information for
// request status code, and service requestID.
func NewRequestFailure(err Error, statusCode int, reqID string) RequestFailure {
	return newRequestError(err, statusCode, reqID)
}

// MapAPIError builds the typed error for a protocol error envelope. The
// service sends __type either bare ("ResourceNotFoundException") or prefixed
// with a namespace ("com.amazonaws.dynamodb.v20120810#ResourceNotFoundException",
// "com.amazon.coral.validate#ValidationException"); both forms map to the
// same code.
func MapAPIError(typ, message string, statusCode int, requestID string) RequestFailure {
	code := typ
	if i := strings.LastIndex(code, "#"); i >= 0 {
		code = code[i+1:]
	}

	if code == "" {
		code = ErrCodeRequestError
	}

	return NewRequestFailure(NewError(code, message, nil), statusCode, requestID)
}

// UnmarshalError provides the interface for a payload that failed to decode.
type UnmarshalError interface {
	apiError
	Bytes() []byte
}

// NewUnmarshalError returns an UnmarshalError for the payload that could not
// be decoded, carrying the raw bytes for inspection.
func NewUnmarshalError(err error, msg string, bytes []byte) UnmarshalError {
	return &unmarshalError{
		apiError: NewError(ErrCodeSerialization, msg, err),
		bytes:    bytes,
	}
}

// SprintError returns a string of the formatted error code.
func SprintError(code, message, extra string, origErr error) string {
	msg := fmt.Sprintf("%s: %s", code, message)
	if extra != "" {
		msg = fmt.Sprintf("%s\n\t%s", msg, extra)
	}

	if origErr != nil {
		msg = fmt.Sprintf("%s\ncaused by: %s", msg, origErr.Error())
	}

	return msg
}

// A baseError wraps the code and message which defines an error. It also
// can be used to wrap an original error object.
type baseError struct {
	code    string
	message string
	errs    []error
}

// newBaseError returns an error object for the code, message, and errors.
func newBaseError(code, message string, origErrs []error) *baseError {
	b := &baseError{
		code:    code,
		message: message,
		errs:    origErrs,
	}

	return b
}

// Error returns the string representation of the error.
func (b baseError) Error() string {
	size := len(b.errs)
	if size > 0 {
		return SprintError(b.code, b.message, "", errorList(b.errs))
	}

	return SprintError(b.code, b.message, "", nil)
}

// String returns the string representation of the error.
// Alias for Error to satisfy the stringer interface.
func (b baseError) String() string {
	return b.Error()
}

// Code returns the short phrase depicting the classification of the error.
func (b baseError) Code() string {
	return b.code
}

// Message returns the error details message.
func (b baseError) Message() string {
	return b.message
}

// OrigErr returns the original error if one was set. Nil is returned if no
// error was set. This only returns the first element in the list. If the full
// list is needed, use BatchedErrors.
func (b baseError) OrigErr() error {
	switch len(b.errs) {
	case 0:
		return nil
	case 1:
		return b.errs[0]
	default:
		if err, ok := b.errs[0].(Error); ok {
			return NewBatchError(err.Code(), err.Message(), b.errs[1:])
		}

		return NewBatchError("BatchedErrors",
			"multiple errors occurred", b.errs)
	}
}

// OrigErrs returns the original errors if one was set. An empty slice is
// returned if no error was set.
func (b baseError) OrigErrs() []error {
	return b.errs
}

// Unwrap exposes the original error to errors.Is and errors.As.
func (b baseError) Unwrap() error {
	return b.OrigErr()
}

// ErrorCode satisfies the smithy-go APIError interface.
func (b baseError) ErrorCode() string {
	return b.code
}

// ErrorMessage satisfies the smithy-go APIError interface.
func (b baseError) ErrorMessage() string {
	return b.message
}

// ErrorFault satisfies the smithy-go APIError interface. A bare error has no
// response status to classify the fault with.
func (b baseError) ErrorFault() smithy.ErrorFault {
	return smithy.FaultUnknown
}

// So that the Error interface type can be included as an anonymous field
// in the requestError struct and not conflict with the error.Error() method.
type apiError Error

// A requestError wraps a request or service error.
type requestError struct {
	apiError
	statusCode int
	requestID  string
}

// newRequestError returns a wrapped error with additional information for
// request status code, and service requestID.
func newRequestError(err Error, statusCode int, requestID string) *requestError {
	return &requestError{
		apiError:   err,
		statusCode: statusCode,
		requestID:  requestID,
	}
}

// Error returns the string representation of the error.
// Satisfies the error interface.
func (r requestError) Error() string {
	extra := fmt.Sprintf("status code: %d, request id: %s",
		r.statusCode, r.requestID)
	return SprintError(r.Code(), r.Message(), extra, r.OrigErr())
}

// String returns the string representation of the error.
// Alias for Error to satisfy the stringer interface.
func (r requestError) String() string {
	return r.Error()
}

// StatusCode returns the wrapped status code for the error
func (r requestError) StatusCode() int {
	return r.statusCode
}

// RequestID returns the wrapped requestID
func (r requestError) RequestID() string {
	return r.requestID
}

// OrigErrs returns the original errors if one was set. An empty slice is
// returned if no error was set.
func (r requestError) OrigErrs() []error {
	if b, ok := r.apiError.(BatchedErrors); ok {
		return b.OrigErrs()
	}

	return []error{r.OrigErr()}
}

// Unwrap exposes the original error to errors.Is and errors.As.
func (r requestError) Unwrap() error {
	return r.OrigErr()
}

// ErrorCode satisfies the smithy-go APIError interface.
func (r requestError) ErrorCode() string {
	return r.Code()
}

// ErrorMessage satisfies the smithy-go APIError interface.
func (r requestError) ErrorMessage() string {
	return r.Message()
}

// ErrorFault classifies the failure by response status so smithy-go aware
// callers can tell client faults from server faults.
func (r requestError) ErrorFault() smithy.ErrorFault {
	switch {
	case r.statusCode >= 500:
		return smithy.FaultServer
	case r.statusCode >= 400:
		return smithy.FaultClient
	}

	return smithy.FaultUnknown
}

type unmarshalError struct {
	apiError
	bytes []byte
}

// Error returns the string representation of the error.
// Satisfies the error interface.
func (e unmarshalError) Error() string {
	extra := hex.Dump(e.bytes)
	return SprintError(e.Code(), e.Message(), extra, e.OrigErr())
}

// String returns the string representation of the error.
// Alias for Error to satisfy the stringer interface.
func (e unmarshalError) String() string {
	return e.Error()
}

// Bytes returns the bytes that failed to unmarshal.
func (e unmarshalError) Bytes() []byte {
	return e.bytes
}

// Unwrap exposes the original error to errors.Is and errors.As.
func (e unmarshalError) Unwrap() error {
	return e.OrigErr()
}

// An error list that satisfies the golang interface
type errorList []error

// Error returns the string representation of the error.
//
// Satisfies the error interface.
func (e errorList) Error() string {
	msg := ""
	if size := len(e); size > 0 {
		for i := 0; i < size; i++ {
			msg += e[i].Error()
			if i+1 < size {
				msg += "\n"
			}
		}
	}

	return msg
}
