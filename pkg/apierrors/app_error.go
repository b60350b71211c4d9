package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an error that knows how it should be rendered over HTTP.
// Operational errors are expected failures (bad input, missing rows);
// anything else is a bug and is logged with a stack trace.
type AppError struct {
	StatusCode  int
	MessageKey  string
	Operational bool
	Err         error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%d): %v", e.MessageKey, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s (%d)", e.MessageKey, e.StatusCode)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(status int, key string, operational bool, err error) *AppError {
	return &AppError{StatusCode: status, MessageKey: key, Operational: operational, Err: err}
}

func NewValidationError(key string, err error) *AppError {
	return newAppError(http.StatusUnprocessableEntity, key, true, err)
}

func NewBadRequestError(key string, err error) *AppError {
	return newAppError(http.StatusBadRequest, key, true, err)
}

func NewNotFoundError(key string, err error) *AppError {
	return newAppError(http.StatusNotFound, key, true, err)
}

func NewUnauthorizedError(err error) *AppError {
	return newAppError(http.StatusUnauthorized, MsgUnauthorized, true, err)
}

func NewForbiddenError(err error) *AppError {
	return newAppError(http.StatusForbidden, MsgForbidden, true, err)
}

func NewConflictError(key string, err error) *AppError {
	return newAppError(http.StatusConflict, key, true, err)
}

func NewInternalServerError(err error) *AppError {
	return newAppError(http.StatusInternalServerError, MsgInternalServerError, false, err)
}

// AsAppError unwraps err into an AppError. Errors of any other kind become a
// non-operational internal server error.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalServerError(err)
}
