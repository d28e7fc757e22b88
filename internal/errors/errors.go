// Package errors provides custom error types for the application.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies an error for status mapping and client exposure.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindCast           Kind = "cast"
	KindDuplicate      Kind = "duplicate"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindOperational    Kind = "operational"
	KindInternal       Kind = "internal"
)

// AppError is an error that knows how it should be reported to the client.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error

	trace error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Operational reports whether the message is safe to show a client.
func (e *AppError) Operational() bool {
	return e.Kind != KindInternal
}

// StatusText is "fail" for client errors and "error" for server errors.
func (e *AppError) StatusText() string {
	if e.Status >= 400 && e.Status < 500 {
		return "fail"
	}
	return "error"
}

// Stack returns the stack captured at construction, if any.
func (e *AppError) Stack() string {
	if e.trace == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%+v", e.trace))
}

func newError(kind Kind, status int, message string, err error) *AppError {
	e := &AppError{Kind: kind, Status: status, Message: message, Err: err}
	if err != nil {
		e.trace = pkgerrors.WithStack(err)
	} else {
		e.trace = pkgerrors.New(message)
	}
	return e
}

// sentinel builds an AppError without a stack, for package-level values.
func sentinel(kind Kind, status int, message string) *AppError {
	return &AppError{Kind: kind, Status: status, Message: message}
}

// Validation reports violated schema constraints.
func Validation(messages ...string) *AppError {
	return newError(KindValidation, http.StatusBadRequest, "Invalid input data. "+strings.Join(messages, ". "), nil)
}

// Cast reports a malformed identifier or typed value.
func Cast(path string, value interface{}) *AppError {
	return newError(KindCast, http.StatusBadRequest, fmt.Sprintf("Invalid %s: %v.", path, value), nil)
}

// Duplicate reports a violated uniqueness constraint.
func Duplicate(value string, err error) *AppError {
	return newError(KindDuplicate, http.StatusBadRequest, fmt.Sprintf("Duplicate field value: %s. Please use another value!", value), err)
}

// NotFound reports a missing resource.
func NotFound(message string) *AppError {
	return newError(KindNotFound, http.StatusNotFound, message, nil)
}

// Unauthenticated reports a missing or rejected credential.
func Unauthenticated(message string, err error) *AppError {
	return newError(KindAuthentication, http.StatusUnauthorized, message, err)
}

// Operational reports an anticipated failure with an explicit status.
func Operational(status int, message string, err error) *AppError {
	return newError(KindOperational, status, message, err)
}

// Internal wraps an unexpected failure. Its message never reaches clients in
// production.
func Internal(err error) *AppError {
	return newError(KindInternal, http.StatusInternalServerError, "Something went very wrong!", err)
}

// Document errors
var (
	ErrDocumentNotFound = sentinel(KindNotFound, http.StatusNotFound, "No document found with that ID")
	ErrTourNotFound     = sentinel(KindNotFound, http.StatusNotFound, "There is no tour with that name.")
	ErrInvalidLatLng    = sentinel(KindOperational, http.StatusBadRequest, "Please provide latitude and longitude in the format lat,lng.")
	ErrInvalidUnit      = sentinel(KindOperational, http.StatusBadRequest, "Please provide the unit as mi or km.")
	ErrNotAnImage       = sentinel(KindOperational, http.StatusBadRequest, "Not an image! Please upload only images.")
	ErrUploadsDisabled  = sentinel(KindOperational, http.StatusServiceUnavailable, "Image uploads are not configured on this server.")
)

// Auth errors
var (
	ErrNotLoggedIn        = sentinel(KindAuthentication, http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
	ErrInvalidToken       = sentinel(KindAuthentication, http.StatusUnauthorized, "Invalid token. Please log in again!")
	ErrTokenExpired       = sentinel(KindAuthentication, http.StatusUnauthorized, "Your token has expired! Please log in again.")
	ErrTokenRevoked       = sentinel(KindAuthentication, http.StatusUnauthorized, "This session has been logged out. Please log in again.")
	ErrUserGone           = sentinel(KindAuthentication, http.StatusUnauthorized, "The user belonging to this token does no longer exist.")
	ErrPasswordChanged    = sentinel(KindAuthentication, http.StatusUnauthorized, "User recently changed password! Please log in again.")
	ErrInvalidCredentials = sentinel(KindAuthentication, http.StatusUnauthorized, "Incorrect email or password")
	ErrWrongPassword      = sentinel(KindAuthentication, http.StatusUnauthorized, "Your current password is wrong.")
	ErrForbidden          = sentinel(KindAuthorization, http.StatusForbidden, "You do not have permission to perform this action")
)

// User errors
var (
	ErrMissingCredentials = sentinel(KindOperational, http.StatusBadRequest, "Please provide email and password!")
	ErrNoUserWithEmail    = sentinel(KindNotFound, http.StatusNotFound, "There is no user with that email address.")
	ErrResetTokenInvalid  = sentinel(KindOperational, http.StatusBadRequest, "Token is invalid or has expired")
	ErrEmailDelivery      = sentinel(KindOperational, http.StatusInternalServerError, "There was an error sending the email. Try again later!")
	ErrPasswordRoute      = sentinel(KindOperational, http.StatusBadRequest, "This route is not for password updates. Please use /updateMyPassword.")
	ErrUseSignup          = sentinel(KindOperational, http.StatusBadRequest, "This route is not defined! Please use /signup instead")
)

// Booking errors
var (
	ErrPaymentUnavailable = sentinel(KindOperational, http.StatusServiceUnavailable, "Payments are not configured on this server.")
	ErrBookingUserUnknown = sentinel(KindNotFound, http.StatusNotFound, "No user found for the checkout email.")
)
