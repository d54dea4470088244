// Package apperr defines the application error taxonomy shared by handlers,
// services, and the response layer. Every failure a client can observe is
// categorized by Kind; the HTTP mapping lives in the respond package so the
// translation to a status code happens in exactly one place.
package apperr

import "errors"

// Kind categorizes an application failure.
type Kind int

const (
	Internal Kind = iota
	MissingFields
	InvalidCredentials
	InvalidAdminSecret
	InvalidAdminCredentials
	RoleMismatch
	DuplicateResource
	NotFound
	InvalidToken
	Expired
	UploadFailed
	MailDeliveryFailed
	OrderCreationFailed
	SignatureMismatch
)

// Error is an application error with a client-safe message. The wrapped cause,
// if any, is for server-side logs only and never reaches the response body.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to a kinded error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or Internal when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

// MessageOf returns the client-safe message for err. Errors outside the
// taxonomy collapse to a generic message so internal detail never leaks.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error."
}
