package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// Registration and login failures.

func NewInvalidInput(message string) error {
	return NewDomainError("INVALID_INPUT", message, http.StatusBadRequest, nil)
}

func NewInvalidUsername(username string) error {
	return NewDomainError("INVALID_USERNAME",
		"invalid username: must be at least 3 characters and contain only letters and numbers",
		http.StatusBadRequest, map[string]any{"username": username})
}

func NewWeakPassword() error {
	return NewDomainError("WEAK_PASSWORD",
		"password must be at least 4 characters long",
		http.StatusBadRequest, nil)
}

func NewUserExists(username string) error {
	return NewDomainError("USER_EXISTS", "user already exists",
		http.StatusConflict, map[string]any{"username": username})
}

func NewInvalidLogin() error {
	return NewDomainError("INVALID_LOGIN",
		"invalid login: check username and password",
		http.StatusUnauthorized, nil)
}

func NewNotLoggedIn() error {
	return NewDomainError("NOT_LOGGED_IN", "user not logged in", http.StatusUnauthorized, nil)
}

func NewTokenInvalid(err error) error {
	return &DomainError{
		Code:       "TOKEN_INVALID",
		Message:    "invalid or expired token",
		HTTPStatus: http.StatusUnauthorized,
		Err:        err,
	}
}

// Review mutation failures.

func NewMissingReview() error {
	return NewDomainError("MISSING_REVIEW", "review content is required", http.StatusBadRequest, nil)
}

func NewNoReviewsOnBook(isbn string) error {
	return NewDomainError("NO_REVIEWS",
		fmt.Sprintf("no reviews found for book with ISBN %s", isbn),
		http.StatusNotFound, nil)
}

func NewReviewNotFound(isbn, username string) error {
	return NewDomainError("REVIEW_NOT_FOUND",
		fmt.Sprintf("no review found for ISBN %s by user %s", isbn, username),
		http.StatusNotFound, nil)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
