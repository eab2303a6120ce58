package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("unexpected token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("not authenticated")
	ErrForbidden          = fmt.Errorf("not allowed")
	ErrNoTeamAssigned     = fmt.Errorf("no team assigned")

	// Context
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")

	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries an HTTP status alongside a client-safe message. The
// wrapped Err is logged at the boundary and never serialized.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}

func NewForbiddenError(message string) *HttpError {
	return &HttpError{Code: http.StatusForbidden, Message: message}
}

func NewConflictError(message string) *HttpError {
	return &HttpError{Code: http.StatusConflict, Message: message}
}

func NewInternalError(err error) *HttpError {
	return &HttpError{Code: http.StatusInternalServerError, Message: "server error", Err: err}
}
