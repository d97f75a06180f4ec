package handler

import (
	"net/http"

	"github.com/yegordb/bindkit/binder"
)

// HandlerFunc is a typed endpoint: it receives the validated, type-coerced
// argument set produced by the binder and returns a Response or an error.
// A returned error stops handler execution and is routed through the
// exception registry; it never reaches the transport raw.
type HandlerFunc func(ctx Context, call *binder.BoundCall) (Response, error)

// Response renders itself to an http.ResponseWriter.
// Implementations set headers, status code, and write the body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}
