package bindkit

import (
	"github.com/yegordb/bindkit/binder"
	"github.com/yegordb/bindkit/handler"
)

// The root package re-exports the declaration and handler surface so simple
// services import one package:
//
//	bindkit.Route{
//	    Method:  http.MethodGet,
//	    Pattern: "/items/{id}",
//	    Fields:  []bindkit.Field{bindkit.NewField("id", bindkit.SourcePath, bindkit.Int())},
//	    Handle:  getItem,
//	}

// Declaration types.
type (
	Field       = binder.Field
	FieldOption = binder.FieldOption
	Source      = binder.Source
	Type        = binder.Type
	Object      = binder.Object
	BoundCall   = binder.BoundCall
	Upload      = binder.Upload
	FieldError  = binder.FieldError

	// ValidationError is the aggregate binding failure answered with 422.
	ValidationError = binder.ValidationError
)

// Handler types.
type (
	Context     = handler.Context
	HandlerFunc = handler.HandlerFunc
	Response    = handler.Response
	Route       = handler.Route
	Registry    = handler.Registry
	HTTPError   = handler.HTTPError
)

// Sources.
const (
	SourcePath   = binder.SourcePath
	SourceQuery  = binder.SourceQuery
	SourceHeader = binder.SourceHeader
	SourceCookie = binder.SourceCookie
	SourceBody   = binder.SourceBody
	SourceForm   = binder.SourceForm
	SourceFile   = binder.SourceFile
)

// Declaration constructors.
var (
	NewField  = binder.NewField
	NewObject = binder.NewObject

	String    = binder.String
	Int       = binder.Int
	Float     = binder.Float
	Bool      = binder.Bool
	UUID      = binder.UUID
	DateTime  = binder.DateTime
	Date      = binder.Date
	TimeOfDay = binder.TimeOfDay
	Duration  = binder.Duration
	File      = binder.File
	List      = binder.List
	Nested    = binder.Nested

	WithAlias    = binder.WithAlias
	WithDefault  = binder.WithDefault
	Optional     = binder.Optional
	WithEmbed    = binder.WithEmbed
	WithGt       = binder.WithGt
	WithGe       = binder.WithGe
	WithLt       = binder.WithLt
	WithLe       = binder.WithLe
	WithMinLen   = binder.WithMinLen
	WithMaxLen   = binder.WithMaxLen
	WithPattern  = binder.WithPattern
	WithEnum     = binder.WithEnum
	WithMinItems = binder.WithMinItems
	WithMaxItems = binder.WithMaxItems
)

// Binding and routing entry points.
var (
	Bind        = binder.Bind
	CheckFields = binder.CheckFields
	NewRegistry = handler.NewRegistry
	Mount       = handler.Mount
	JSON        = handler.JSON
	Detail      = handler.Detail
)
