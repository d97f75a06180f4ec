// Package bindkit turns HTTP handlers into typed, declared call surfaces.
//
// A handler declares every value it reads from a request — path segment,
// query parameter, header, cookie, body field, form value or uploaded
// file — as data, before any request arrives. Binding extracts, coerces and
// validates the full declaration set against each request and either hands
// the handler a complete argument set or answers 422 with one entry per
// failing field:
//
//	{"detail": [{"loc": ["query", "limit"], "msg": "...", "type": "int_parsing", "input": "abc"}]}
//
// Handlers never see a partially valid request: every declared field is
// checked independently, failures aggregate instead of short-circuiting, and
// the response lists them all in declaration order.
//
// Errors returned by handlers route through a Registry that maps concrete
// error types to responses, most specific first, with 500 as the final
// fallback. See the binder and handler packages for the full surface; this
// package re-exports the common subset.
package bindkit
