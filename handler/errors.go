package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned neither a response nor an error.
	ErrNilResponse = errors.New("handler returned nil response")
)
