// Package apperrors classifies assessment failures independently of HTTP.
package apperrors

import (
	"errors"
	"net/http"
)

// Code names a failure category of the assessment flow.
type Code string

const (
	CodeMissingInput            Code = "missing_input"
	CodeUpstreamFailure         Code = "upstream_failure"
	CodeMalformedUpstreamOutput Code = "malformed_upstream_output"
	CodeUnsupportedMethod       Code = "unsupported_method"
)

// Error wraps a failure with a stable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error renders "message: cause". The code stands in for an empty message.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches code to err. A code already present in err's chain wins.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the code of err, or CodeUpstreamFailure for uncoded errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUpstreamFailure
}

// HTTPStatus maps a code to its response status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeMissingInput:
		return http.StatusBadRequest
	case CodeUnsupportedMethod:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
