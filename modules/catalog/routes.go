package catalog

import (
	"net/http"

	"github.com/yegordb/bindkit/binder"
	"github.com/yegordb/bindkit/handler"
)

// Routes declares every catalog endpoint. Mount them with handler.Mount.
func Routes() []handler.Route {
	return []handler.Route{
		{
			Method:  http.MethodGet,
			Pattern: "/",
			Handle:  hello,
		},
		{
			Method:  http.MethodGet,
			Pattern: "/models/{model_name}",
			Fields: []binder.Field{
				binder.NewField("model_name", binder.SourcePath, binder.String(),
					binder.WithEnum("alexnet", "resnet", "lenet")),
			},
			Handle: getModel,
		},
		{
			Method:  http.MethodGet,
			Pattern: "/items",
			Fields: []binder.Field{
				binder.NewField("skip", binder.SourceQuery, binder.Int(), binder.WithDefault(0), binder.WithGe(0)),
				binder.NewField("limit", binder.SourceQuery, binder.Int(), binder.WithDefault(10), binder.WithGt(0)),
			},
			Handle: listItems,
		},
		{
			Method:  http.MethodPost,
			Pattern: "/items",
			Fields: []binder.Field{
				binder.NewField("item", binder.SourceBody, binder.Nested(itemObject), binder.WithEmbed()),
			},
			Handle: createItem,
		},
		{
			Method:  http.MethodPut,
			Pattern: "/items/{item_id}",
			Fields: []binder.Field{
				binder.NewField("item_id", binder.SourcePath, binder.Int(), binder.WithGe(0), binder.WithLe(1000)),
				binder.NewField("q", binder.SourceQuery, binder.String(), binder.Optional()),
				binder.NewField("item", binder.SourceBody, binder.Nested(itemObject)),
				binder.NewField("user", binder.SourceBody, binder.Nested(ownerObject)),
				binder.NewField("importance", binder.SourceBody, binder.Int(), binder.WithGt(5)),
			},
			Handle: replaceItem,
		},
		{
			Method:  http.MethodPost,
			Pattern: "/offers",
			Fields: []binder.Field{
				binder.NewField("offer", binder.SourceBody, binder.Nested(offerObject)),
			},
			Handle: createOffer,
		},
		{
			Method:  http.MethodGet,
			Pattern: "/item/{item_id}",
			Fields: []binder.Field{
				binder.NewField("item_id", binder.SourcePath, binder.Int(), binder.WithGe(10), binder.WithLt(1000)),
				binder.NewField("codes", binder.SourceQuery, binder.List(binder.String()),
					binder.WithAlias("kek-lol"), binder.WithPattern("[0-9]*")),
				binder.NewField("q", binder.SourceQuery, binder.String(), binder.Optional(),
					binder.WithMinLen(2), binder.WithMaxLen(5), binder.WithPattern("[a-zA-Z]*")),
				binder.NewField("short", binder.SourceQuery, binder.Bool(), binder.WithDefault(false)),
			},
			Handle: getItem,
		},
		{
			Method:  http.MethodGet,
			Pattern: "/users/{user_id}/items/{item_id}",
			Fields: []binder.Field{
				binder.NewField("user_id", binder.SourcePath, binder.Int()),
				binder.NewField("item_id", binder.SourcePath, binder.String()),
				binder.NewField("q", binder.SourceQuery, binder.String(), binder.Optional()),
				binder.NewField("short", binder.SourceQuery, binder.Bool(), binder.WithDefault(false)),
			},
			Handle: getUserItem,
		},
		{
			Method:  http.MethodPut,
			Pattern: "/data/{data_id}",
			Fields: []binder.Field{
				binder.NewField("data_id", binder.SourcePath, binder.UUID()),
				binder.NewField("start_at", binder.SourceBody, binder.DateTime(), binder.Optional()),
				binder.NewField("end_at", binder.SourceBody, binder.DateTime(), binder.Optional()),
				binder.NewField("process_after", binder.SourceBody, binder.Duration(), binder.Optional()),
				binder.NewField("repeat_at", binder.SourceBody, binder.TimeOfDay(), binder.Optional()),
			},
			Handle: scheduleData,
		},
	}
}

func hello(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	return handler.JSON(map[string]any{"message": "Hello World"}), nil
}

func getModel(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	name := call.String("model_name")
	return handler.JSON(map[string]any{
		"model_name": name,
		"message":    modelMessages[name],
	}), nil
}

func listItems(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	skip, limit := call.Int("skip"), call.Int("limit")
	if skip > len(fixtureItems) {
		skip = len(fixtureItems)
	}
	end := skip + limit
	if end > len(fixtureItems) {
		end = len(fixtureItems)
	}
	return handler.JSON(fixtureItems[skip:end]), nil
}

func createItem(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	item := call.Object("item")
	if tax, ok := item["tax"].(float64); ok {
		price, _ := item["price"].(float64)
		item["price_with_tax"] = price + tax
	}
	return handler.JSON(item, handler.WithStatus(http.StatusCreated)), nil
}

func replaceItem(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	resp := map[string]any{
		"item_id":    call.Int("item_id"),
		"item":       call.Object("item"),
		"user":       call.Object("user"),
		"importance": call.Int("importance"),
	}
	if call.Has("q") {
		resp["q"] = call.String("q")
	}
	return handler.JSON(resp), nil
}

func createOffer(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	return handler.JSON(call.Object("offer"), handler.WithStatus(http.StatusCreated)), nil
}

func getItem(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	id := call.Int("item_id")
	if id == 20 {
		return nil, CursedItemError{ID: id}
	}

	resp := map[string]any{
		"item_id": id,
		"codes":   call.Strings("codes"),
	}
	if call.Has("q") {
		resp["q"] = call.String("q")
	}
	if !call.Bool("short") {
		resp["description"] = "This is an amazing item that has a long description"
	}
	return handler.JSON(resp), nil
}

func getUserItem(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	resp := map[string]any{
		"item_id":  call.String("item_id"),
		"owner_id": call.Int("user_id"),
	}
	if call.Has("q") {
		resp["q"] = call.String("q")
	}
	if !call.Bool("short") {
		resp["description"] = "This is an amazing item that has a long description"
	}
	return handler.JSON(resp), nil
}

func scheduleData(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	resp := map[string]any{"data_id": call.UUID("data_id").String()}

	if call.Has("start_at") {
		resp["start_at"] = call.Time("start_at")
	}
	if call.Has("end_at") {
		resp["end_at"] = call.Time("end_at")
	}
	if call.Has("process_after") {
		resp["process_after"] = call.Duration("process_after").String()
	}
	if call.Has("repeat_at") {
		resp["repeat_at"] = call.Clock("repeat_at")
	}

	// The processing window derives from the declared fields: processing
	// starts after the configured delay and runs until end_at.
	if call.Has("start_at") && call.Has("process_after") {
		start := call.Time("start_at").Add(call.Duration("process_after"))
		resp["start_process"] = start
		if call.Has("end_at") {
			resp["duration"] = call.Time("end_at").Sub(start).String()
		}
	}
	return handler.JSON(resp), nil
}
