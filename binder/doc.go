// Package binder implements declarative request binding: raw values are
// extracted from their declared source (path, query, header, cookie, JSON
// body, form field, uploaded file), coerced to a target type, checked
// against per-field constraints, and merged into a single typed BoundCall.
//
// Binding never stops at the first problem. Every failing field contributes
// its FieldError entries, and the aggregated ValidationError lists them in
// declaration order with source-identified locations such as
// ["body", "items", "2", "price"].
//
// # Declarations
//
// A handler's inputs are declared as data, once, at startup:
//
//	fields := []binder.Field{
//	    binder.NewField("item_id", binder.SourcePath, binder.Int(),
//	        binder.WithGe(10), binder.WithLt(1000)),
//	    binder.NewField("needy", binder.SourceQuery, binder.List(binder.String()),
//	        binder.WithAlias("kek-lol"), binder.WithPattern("[0-9]*")),
//	    binder.NewField("q", binder.SourceQuery, binder.String(),
//	        binder.Optional(), binder.WithMinLen(2), binder.WithMaxLen(5)),
//	    binder.NewField("short", binder.SourceQuery, binder.Bool(),
//	        binder.WithDefault(false)),
//	}
//
//	call, err := binder.Bind(r, fields, chi.URLParam)
//
// Structured types nest and compose:
//
//	image := binder.NewObject("Image",
//	    binder.NewField("url", binder.SourceBody, binder.String()),
//	    binder.NewField("name", binder.SourceBody, binder.String()),
//	)
//	item := binder.NewObject("Item",
//	    binder.NewField("name", binder.SourceBody, binder.String()),
//	    binder.NewField("price", binder.SourceBody, binder.Float(), binder.WithGt(0)),
//	    binder.NewField("images", binder.SourceBody, binder.List(binder.Nested(image)), binder.Optional()),
//	)
//
// Structured types must be acyclic; CheckFields rejects cycles and defaults
// that violate their own constraints when routes are registered.
//
// # Body semantics
//
// A single body-sourced field binds the entire JSON body as its value. As
// soon as a handler declares a second top-level body field, or one field
// opts in with WithEmbed, the body is parsed as an object and each field is
// looked up under its own key.
//
// # Collections
//
// A list-typed field over query, header, cookie or form collects all
// occurrences of that name in the order they appeared. A list-of-file field
// binds every part sharing the field name. Scalar constraints apply per
// element; WithMinItems/WithMaxItems apply to the list size.
package binder
