package gistview

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// ErrorKind classifies gist loading failures.
type ErrorKind int

// Error kinds. All are terminal and surfaced as text in place of content.
const (
	ErrFetchFailed ErrorKind = iota
	ErrInvalidURL
	ErrNotFound
	ErrRateLimited
	ErrNetwork
	ErrEmptyGist
)

// User-visible messages for each error kind.
const (
	MsgInvalidURL  = "Invalid Gist URL"
	MsgNotFound    = "Gist not found. Please check the URL."
	MsgRateLimited = "Rate limit exceeded. Please try again later."
	MsgNetwork     = "Network error. Please check your internet connection and try again."
	MsgEmptyGist   = "No files found in this gist"
)

// Error is a gist loading failure.
type Error struct {
	Kind   ErrorKind
	Status int   // HTTP status, when the provider answered
	Err    error // Underlying cause, if any
}

// Error returns the user-visible message.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidURL:
		return MsgInvalidURL
	case ErrNotFound:
		return MsgNotFound
	case ErrRateLimited:
		return MsgRateLimited
	case ErrNetwork:
		return MsgNetwork
	case ErrEmptyGist:
		return MsgEmptyGist
	}
	if e.Status != 0 {
		return fmt.Sprintf("Failed to fetch gist (%d)", e.Status)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "Failed to load gist"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so sentinel comparisons like
// errors.Is(err, &Error{Kind: ErrNotFound}) work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of err, or ErrFetchFailed for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrFetchFailed
}

// StatusError maps a non-success HTTP status to an *Error.
func StatusError(status int, cause error) *Error {
	switch status {
	case http.StatusNotFound:
		return &Error{Kind: ErrNotFound, Status: status, Err: cause}
	case http.StatusForbidden:
		return &Error{Kind: ErrRateLimited, Status: status, Err: cause}
	default:
		return &Error{Kind: ErrFetchFailed, Status: status, Err: cause}
	}
}

// Classify converts an arbitrary fetch error into an *Error.
// Context cancellation and existing *Error values are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if isNetworkError(err) {
		return &Error{Kind: ErrNetwork, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &Error{Kind: ErrFetchFailed, Err: err}
}

func isNetworkError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
