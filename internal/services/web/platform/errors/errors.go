// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown  Kind = "unknown"
	KindNotFound Kind = "not_found"
	KindTemplate Kind = "template"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the wrapped cause.
func (e Error) Unwrap() error {
	return e.Err
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// Wrap builds a typed Error around a cause.
func Wrap(kind Kind, message string, err error) error {
	return Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of a typed error, or KindUnknown.
func KindOf(err error) Kind {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
