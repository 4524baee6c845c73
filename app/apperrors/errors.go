package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNoProfile    = "NO_PROFILE"
	CodeUnavailable  = "UNAVAILABLE"
	CodeBadRequest   = "BAD_REQUEST"
	CodeDatabase     = "DATABASE_ERROR"
)

func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// Conflict keeps 400 rather than 409: duplicate-feedback responses are
// part of the observed wire contract.
func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusBadRequest)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusForbidden)
}

func NoProfile(message string) *AppError {
	return New(CodeNoProfile, message, http.StatusBadRequest)
}

func Unavailable(message string) *AppError {
	return New(CodeUnavailable, message, http.StatusInternalServerError)
}

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

func Database(message string) *AppError {
	return New(CodeDatabase, message, http.StatusInternalServerError)
}

func Validationf(format string, args ...interface{}) *AppError {
	return Validation(fmt.Sprintf(format, args...))
}

func Is(err error) (*AppError, bool) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
