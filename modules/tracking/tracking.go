// Package tracking reads identification values from cookies and headers.
package tracking

import (
	"net/http"

	"github.com/yegordb/bindkit/binder"
	"github.com/yegordb/bindkit/handler"
)

// Routes declares the tracking endpoints.
func Routes() []handler.Route {
	return []handler.Route{
		{
			Method:  http.MethodGet,
			Pattern: "/ads",
			Fields: []binder.Field{
				binder.NewField("ads_id", binder.SourceCookie, binder.String(), binder.Optional()),
				binder.NewField("asd_token", binder.SourceHeader, binder.String(), binder.Optional()),
				binder.NewField("x_token", binder.SourceHeader, binder.List(binder.String()), binder.Optional()),
			},
			Handle: readIdentifiers,
		},
	}
}

func readIdentifiers(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	resp := map[string]any{}

	if call.Has("ads_id") {
		resp["ads_id"] = call.String("ads_id")
	} else {
		resp["ads_id"] = nil
	}
	if call.Has("asd_token") {
		resp["asd_token"] = call.String("asd_token")
	} else {
		resp["asd_token"] = nil
	}
	if call.Has("x_token") {
		resp["x_token"] = call.Strings("x_token")
	} else {
		resp["x_token"] = []string{}
	}
	return handler.JSON(resp), nil
}
