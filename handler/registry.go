package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/yegordb/bindkit/binder"
)

// Builder turns a raised error into a Response. Builders may log; they must
// not mutate shared state and must be safe to invoke concurrently for
// unrelated requests.
type Builder func(r *http.Request, err error) Response

// Registry maps error categories to response builders. It is populated at
// process startup and read-only afterwards, safe for unlimited concurrent
// readers.
//
// Dispatch selects the most specific match: a builder registered for the
// error's exact dynamic type wins; otherwise the registered categories are
// walked in registration order with errors.As, so wrapped errors and broader
// categories act as fallbacks. Binding failures and HTTPError have
// built-in builders, and a terminal catch-all guarantees Dispatch always
// produces a response.
type Registry struct {
	log     *slog.Logger
	exact   map[reflect.Type]Builder
	chain   []chainEntry
	unknown Builder
}

type chainEntry struct {
	match func(error) bool
	build Builder
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger supplies the logger used by the built-in builders.
func WithLogger(log *slog.Logger) RegistryOption {
	return func(reg *Registry) {
		if log != nil {
			reg.log = log
		}
	}
}

// WithCatchAll replaces the terminal builder invoked for uncategorized
// errors. The builder must always produce a well-formed response.
func WithCatchAll(b Builder) RegistryOption {
	return func(reg *Registry) {
		if b != nil {
			reg.unknown = b
		}
	}
}

// NewRegistry creates an empty registry with the default built-in builders.
func NewRegistry(opts ...RegistryOption) *Registry {
	reg := &Registry{
		log:   slog.Default(),
		exact: make(map[reflect.Type]Builder),
	}
	for _, opt := range opts {
		opt(reg)
	}
	if reg.unknown == nil {
		reg.unknown = reg.defaultCatchAll
	}
	return reg
}

// On registers a builder for the error type E. Registration is meant for
// process startup; the registry must not be modified once serving.
func On[E error](reg *Registry, build func(r *http.Request, err E) Response) {
	var zero E
	typ := reflect.TypeOf(zero)

	adapted := func(r *http.Request, err error) Response {
		var target E
		if !errors.As(err, &target) {
			// Exact-type hits always satisfy errors.As; this is a guard
			// against a corrupted registry, answered by the catch-all.
			return reg.unknown(r, err)
		}
		return build(r, target)
	}

	if typ != nil {
		reg.exact[typ] = adapted
	}
	reg.chain = append(reg.chain, chainEntry{
		match: func(err error) bool {
			var target E
			return errors.As(err, &target)
		},
		build: adapted,
	})
}

// Dispatch routes a raised error to the most specific registered builder and
// returns the response it built. It never fails: anything uncategorized ends
// at the catch-all.
func (reg *Registry) Dispatch(r *http.Request, err error) Response {
	if err == nil {
		err = ErrNilResponse
	}

	if b, ok := reg.exact[reflect.TypeOf(err)]; ok {
		return b(r, err)
	}

	for _, entry := range reg.chain {
		if entry.match(err) {
			return entry.build(r, err)
		}
	}

	var verr binder.ValidationError
	if errors.As(err, &verr) {
		reg.log.LogAttrs(r.Context(), slog.LevelWarn, "request validation failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("errors", len(verr)),
		)
		return validationResponse(verr)
	}

	var herr HTTPError
	if errors.As(err, &herr) {
		level := slog.LevelWarn
		if herr.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		reg.log.LogAttrs(r.Context(), level, "http error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status_code", herr.Code),
		)
		return httpErrorResponse(herr)
	}

	return reg.unknown(r, err)
}

// defaultCatchAll is the terminal builder: it logs the failure and answers
// with a generic 500 so no raw error ever reaches the transport layer.
func (reg *Registry) defaultCatchAll(r *http.Request, err error) Response {
	reg.log.LogAttrs(r.Context(), slog.LevelError, "unhandled error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	return Detail(http.StatusInternalServerError, "Internal Server Error")
}
