package handler

import (
	"fmt"
	"net/http"
)

// HTTPError is an explicit status-plus-detail error raised by handler logic.
// Detail may be a plain string or any JSON-marshalable structure; it is
// rendered as {"detail": ...} with the carried status code. Header fields,
// if set, are attached to the response, e.g. to surface a machine-readable
// error code to the caller.
type HTTPError struct {
	Code   int
	Detail any
	Header http.Header
}

func (e HTTPError) Error() string {
	if s, ok := e.Detail.(string); ok {
		return s
	}
	return fmt.Sprintf("http error %d", e.Code)
}

// NewHTTPError creates an HTTP error with the given status code and detail.
func NewHTTPError(code int, detail any) HTTPError {
	return HTTPError{Code: code, Detail: detail}
}

// WithHeader returns a copy of the error carrying an extra response header.
func (e HTTPError) WithHeader(key, value string) HTTPError {
	h := make(http.Header, len(e.Header)+1)
	for k, v := range e.Header {
		h[k] = append([]string(nil), v...)
	}
	h.Set(key, value)
	e.Header = h
	return e
}

// Common client errors.
var (
	ErrBadRequest      = HTTPError{Code: http.StatusBadRequest, Detail: "Bad Request"}
	ErrUnauthorized    = HTTPError{Code: http.StatusUnauthorized, Detail: "Unauthorized"}
	ErrForbidden       = HTTPError{Code: http.StatusForbidden, Detail: "Forbidden"}
	ErrNotFound        = HTTPError{Code: http.StatusNotFound, Detail: "Not Found"}
	ErrConflict        = HTTPError{Code: http.StatusConflict, Detail: "Conflict"}
	ErrTooManyRequests = HTTPError{Code: http.StatusTooManyRequests, Detail: "Too Many Requests"}
)

// Common server errors.
var (
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Detail: "Internal Server Error"}
	ErrNotImplemented      = HTTPError{Code: http.StatusNotImplemented, Detail: "Not Implemented"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Detail: "Service Unavailable"}
)
