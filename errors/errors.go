package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

func BuildErrMsg(errorType string, err error) error {
	return fmt.Errorf("%s : %v", errorType, err)
}

const (
	MarshallError         = "Error marshalling structure into bytes"
	UnmarshallError       = "Error unmarshalling bytes into structure"
	QueryEncodeError      = "Error encoding query parameters"
	BaseURLError          = "Error parsing base url"
	UnsupportedChainError = "Error unsupported chain"
	IncorrectInputs       = "Error incorrect inputs"
	EmptyInputsError      = "Error empty inputs"
	ClientError           = "Error creating client"
)

// Kind is the class of a failure reported by the client.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindHTTP
	KindParse
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Error is implemented by exactly four types: *NetworkError, *HTTPError, *ParseError
// and *InternalError. Every failed client call returns one of them.
type Error interface {
	error
	Kind() Kind
	classified()
}

// Network causes with a fixed token
const (
	CauseTimeout  = "timeout"
	CauseCanceled = "canceled"
)

// NetworkError reports a transport failure before any HTTP response was received.
type NetworkError struct {
	Cause   string
	Timeout bool
	Err     error
}

func (e *NetworkError) Error() string { return "network error: " + e.Cause }
func (e *NetworkError) Unwrap() error { return e.Err }
func (e *NetworkError) Kind() Kind    { return KindNetwork }
func (*NetworkError) classified()     {}

// HTTPError reports a response with a non 2xx status. Body is an excerpt of the raw payload.
type HTTPError struct {
	Status      int
	Body        string
	ContentType string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status=%d, body=%s", e.Status, e.Body)
}
func (e *HTTPError) Kind() Kind { return KindHTTP }
func (*HTTPError) classified()  {}

// ParseError reports a 2xx response whose body did not match the expected shape.
// Path locates the failing field, e.g. data.path.routes[0].percentage; empty means the
// document itself.
type ParseError struct {
	Message string
	Path    string
	Body    string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "parse error: " + e.Message
	}
	return fmt.Sprintf("parse error at %s: %s", e.Path, e.Message)
}
func (e *ParseError) Unwrap() error { return e.Err }
func (e *ParseError) Kind() Kind    { return KindParse }
func (*ParseError) classified()     {}

// InternalError reports a client side precondition that failed before any request was sent.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string { return "internal error: " + e.Message }
func (e *InternalError) Unwrap() error { return e.Err }
func (e *InternalError) Kind() Kind    { return KindInternal }
func (*InternalError) classified()     {}

// Network classifies a transport error. Deadlines and net timeouts carry the timeout token.
func Network(err error) *NetworkError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &NetworkError{Cause: CauseTimeout, Timeout: true, Err: err}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &NetworkError{Cause: CauseTimeout, Timeout: true, Err: err}
	case errors.Is(err, context.Canceled):
		return &NetworkError{Cause: CauseCanceled, Err: err}
	}
	return &NetworkError{Cause: err.Error(), Err: err}
}

// HTTP builds an HTTPError keeping an excerpt of body.
func HTTP(status int, body []byte, contentType string) *HTTPError {
	return &HTTPError{Status: status, Body: Excerpt(body), ContentType: contentType}
}

// Parse builds a ParseError keeping an excerpt of body.
func Parse(err error, path string, body []byte) *ParseError {
	return &ParseError{Message: err.Error(), Path: path, Body: Excerpt(body), Err: err}
}

// Internal builds an InternalError with the "<type> : <cause>" message format.
func Internal(errorType string, err error) *InternalError {
	return &InternalError{Message: BuildErrMsg(errorType, err).Error(), Err: err}
}

// KindOf returns the class of err, KindUnknown when err was not produced by the client.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

// IsTimeout reports whether err is a network failure caused by a timeout.
func IsTimeout(err error) bool {
	var e *NetworkError
	return errors.As(err, &e) && e.Timeout
}

func New(message string) error {
	return errors.New(message)
}

// As and Is forward to the standard library so callers need a single import.
func As(err error, target interface{}) bool { return errors.As(err, target) }

func Is(err, target error) bool { return errors.Is(err, target) }
