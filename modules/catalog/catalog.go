// Package catalog exposes the item endpoints of the demo API. Every request
// surface (path, query, body) is declared as binder fields; handlers receive
// only validated, coerced values.
package catalog

import (
	"github.com/yegordb/bindkit/binder"
)

// Structured body types shared across the catalog endpoints.
var (
	imageObject = binder.NewObject("Image",
		binder.NewField("url", binder.SourceBody, binder.String()),
		binder.NewField("name", binder.SourceBody, binder.String()),
	)

	itemObject = binder.NewObject("Item",
		binder.NewField("name", binder.SourceBody, binder.String()),
		binder.NewField("description", binder.SourceBody, binder.String(), binder.Optional()),
		binder.NewField("price", binder.SourceBody, binder.Float(), binder.WithGt(0)),
		binder.NewField("tax", binder.SourceBody, binder.Float(), binder.Optional()),
		binder.NewField("tags", binder.SourceBody, binder.List(binder.String()), binder.WithDefault([]any{})),
		binder.NewField("images", binder.SourceBody, binder.List(binder.Nested(imageObject)), binder.Optional()),
	)

	offerObject = binder.NewObject("Offer",
		binder.NewField("name", binder.SourceBody, binder.String()),
		binder.NewField("description", binder.SourceBody, binder.String(), binder.Optional()),
		binder.NewField("price", binder.SourceBody, binder.Float()),
		binder.NewField("items", binder.SourceBody, binder.List(binder.Nested(itemObject)), binder.WithMinItems(1)),
	)

	ownerObject = binder.NewObject("Owner",
		binder.NewField("username", binder.SourceBody, binder.String()),
		binder.NewField("full_name", binder.SourceBody, binder.String(), binder.Optional()),
	)
)

// fixtureItems backs the paginated listing. The demo holds no real storage.
var fixtureItems = []map[string]any{
	{"item_name": "Foo"},
	{"item_name": "Bar"},
	{"item_name": "Baz"},
}

// modelMessages maps each accepted model name to its reply.
var modelMessages = map[string]string{
	"alexnet": "Deep Learning FTW!",
	"lenet":   "LeCNN all the images",
	"resnet":  "Have some residuals",
}
