// Package apperr defines the coded business failures the API surfaces.
// Every failure carries a stable code plus a human message; the code/message
// pair passes through to the response body unchanged.
package apperr

import (
	"errors"
	"net/http"
)

// Error codes. SGR-001 is shared between sign-up (username taken) and
// sign-out (no active session); the two are unrelated operations that
// happen to reuse the code, so they stay distinguishable by message.
const (
	CodeNotSignedIn       = "ATHR-001"
	CodeSignedOut         = "ATHR-002"
	CodeAccessDenied      = "ATHR-003"
	CodeUnknownUsername   = "ATH-001"
	CodeWrongPassword     = "ATH-002"
	CodeUsernameTaken     = "SGR-001"
	CodeEmailRegistered   = "SGR-002"
	CodeSignOutRestricted = "SGR-001"
	CodeUserNotFound      = "USR-001"
	CodeQuestionNotFound  = "QUES-001"
	CodeAnswerNotFound    = "ANS-001"
)

// Kind decides how the boundary maps a failure to an HTTP status.
type Kind int

const (
	// KindUnauthorized covers authentication and authorization failures.
	KindUnauthorized Kind = iota + 1
	// KindUnprocessable covers domain validation failures (duplicates,
	// missing target resources).
	KindUnprocessable
)

// Error is a typed, recoverable business failure.
type Error struct {
	Code    string
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// HTTPStatus returns the response status for the failure's kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusUnprocessableEntity
	}
}

// AuthenticationFailed reports a sign-in failure (ATH-*).
func AuthenticationFailed(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindUnauthorized}
}

// AuthorizationFailed reports a session or role/ownership failure (ATHR-*).
func AuthorizationFailed(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindUnauthorized}
}

// SignUpRestricted reports a sign-up uniqueness violation (SGR-*).
func SignUpRestricted(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindUnprocessable}
}

// SignOutRestricted reports a sign-out without an active session.
func SignOutRestricted(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindUnauthorized}
}

// NotFound reports a missing target resource (USR/QUES/ANS-001).
func NotFound(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindUnprocessable}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
