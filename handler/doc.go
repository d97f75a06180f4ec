// Package handler connects declarative request binding to HTTP endpoints
// and maps raised errors to responses.
//
// An endpoint is declared as data: a Route carries the method, the path
// pattern, the field declarations, and the HandlerFunc. Mount registers
// routes on a chi router, validating every declaration set up front, and
// wraps each endpoint so that binding failures, handler errors, and nil
// responses all flow through a single exception Registry.
//
//	reg := handler.NewRegistry(handler.WithLogger(log))
//	handler.On(reg, func(r *http.Request, err catalog.CursedItemError) handler.Response {
//	    return handler.Detail(http.StatusTeapot, fmt.Sprintf("item %d is cursed", err.ID))
//	})
//
//	r := chi.NewRouter()
//	if err := handler.Mount(r, reg, catalog.Routes()...); err != nil {
//	    log.Error("invalid route declarations", "error", err)
//	    os.Exit(1)
//	}
//
// The Registry picks the most specific builder for an error: exact dynamic
// type first, then errors.As against registered categories in registration
// order, then the built-in builders for binder.ValidationError (422 with the
// full per-field detail list) and HTTPError (its own status, detail and
// headers), and finally a catch-all that answers 500 without ever leaking a
// raw failure.
package handler
