package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yegordb/bindkit/binder"
)

type jsonResponse struct {
	status int
	header http.Header
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for k, values := range j.header {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets a custom HTTP status code.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithHeader adds a response header.
func WithHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		if r.header == nil {
			r.header = make(http.Header)
		}
		r.header.Add(key, value)
	}
}

// JSON creates a JSON response, 200 by default.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return *r
}

// detailEnvelope is the uniform error body: {"detail": ...}.
type detailEnvelope struct {
	Detail any `json:"detail"`
}

// Detail creates an error response with the {"detail": ...} envelope.
func Detail(status int, detail any, opts ...JSONOption) Response {
	return JSON(detailEnvelope{Detail: detail}, append([]JSONOption{WithStatus(status)}, opts...)...)
}

// validationResponse renders an aggregated binding failure as a 422 with one
// detail entry per collected field error, never just the first.
func validationResponse(verr binder.ValidationError) Response {
	return Detail(http.StatusUnprocessableEntity, []binder.FieldError(verr))
}

// httpErrorResponse renders an explicit HTTPError with its declared headers.
func httpErrorResponse(herr HTTPError) Response {
	opts := []JSONOption{WithStatus(herr.Code)}
	for k, values := range herr.Header {
		for _, v := range values {
			opts = append(opts, WithHeader(k, v))
		}
	}
	return JSON(detailEnvelope{Detail: herr.Detail}, opts...)
}
