package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yegordb/bindkit/binder"
)

// Route pairs a method and path pattern with a handler's field declarations
// and its callable. Routes are plain data, built once at startup.
type Route struct {
	Method  string
	Pattern string
	Fields  []binder.Field
	Handle  HandlerFunc
}

// Mount registers routes on a chi router. Every declaration set is checked
// first — cyclic structured types and constraint-violating defaults are
// configuration errors and abort mounting before anything is exposed.
//
// Each mounted endpoint binds the request, invokes the handler with the
// bound argument set, and routes any failure (binding, handler error, nil
// response, render error) through the registry.
func Mount(r chi.Router, reg *Registry, routes ...Route) error {
	if reg == nil {
		reg = NewRegistry()
	}

	for _, rt := range routes {
		if rt.Handle == nil {
			return fmt.Errorf("%w: route %s %s has no handler", binder.ErrBadDeclaration, rt.Method, rt.Pattern)
		}
		if err := binder.CheckFields(rt.Fields); err != nil {
			return fmt.Errorf("route %s %s: %w", rt.Method, rt.Pattern, err)
		}
		r.Method(rt.Method, rt.Pattern, endpoint(reg, rt))
	}
	return nil
}

func endpoint(reg *Registry, rt Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		call, err := binder.Bind(r, rt.Fields, chi.URLParam)
		if err != nil {
			render(w, r, reg, reg.Dispatch(r, err))
			return
		}

		resp, err := rt.Handle(ctx, call)
		if err != nil {
			render(w, r, reg, reg.Dispatch(r, err))
			return
		}
		if resp == nil {
			render(w, r, reg, reg.Dispatch(r, ErrNilResponse))
			return
		}

		render(w, r, reg, resp)
	}
}

// render writes the response; if rendering itself fails the headers are
// already on the wire, so the failure is only logged.
func render(w http.ResponseWriter, r *http.Request, reg *Registry, resp Response) {
	if err := resp.Render(w, r); err != nil {
		reg.log.ErrorContext(r.Context(), "failed to render response",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
}
