package account

import (
	"net/http"

	"github.com/yegordb/bindkit/binder"
	"github.com/yegordb/bindkit/handler"
)

// Routes declares the account endpoints.
func Routes() []handler.Route {
	return []handler.Route{
		{
			Method:  http.MethodPost,
			Pattern: "/user",
			Fields: []binder.Field{
				binder.NewField("user", binder.SourceBody, binder.Nested(userIn)),
			},
			Handle: createUser,
		},
		{
			Method:  http.MethodPost,
			Pattern: "/login",
			Fields: []binder.Field{
				binder.NewField("username", binder.SourceForm, binder.String()),
				binder.NewField("password", binder.SourceForm, binder.String()),
			},
			Handle: login,
		},
	}
}

func createUser(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	record := fakeSaveUser(call.Object("user"))
	return handler.JSON(publicView(record), handler.WithStatus(http.StatusCreated)), nil
}

func login(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	return handler.JSON(map[string]any{
		"username": call.String("username"),
	}), nil
}
