package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegordb/bindkit/binder"
	"github.com/yegordb/bindkit/handler"
)

func testRouter(t *testing.T, reg *handler.Registry, routes ...handler.Route) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	require.NoError(t, handler.Mount(r, reg, routes...))
	return r
}

func TestMount(t *testing.T) {
	readItem := handler.Route{
		Method:  http.MethodGet,
		Pattern: "/item/{item_id}",
		Fields: []binder.Field{
			binder.NewField("item_id", binder.SourcePath, binder.Int(),
				binder.WithGe(10), binder.WithLt(1000)),
			binder.NewField("short", binder.SourceQuery, binder.Bool(),
				binder.WithDefault(false)),
		},
		Handle: func(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
			id := call.Int("item_id")
			if id == 20 {
				return nil, cursedItemError{ID: id}
			}
			out := map[string]any{"item_id": id}
			if !call.Bool("short") {
				out["description"] = "This is an amazing item that has a long description"
			}
			return handler.JSON(out), nil
		},
	}

	reg := handler.NewRegistry()
	handler.On(reg, func(r *http.Request, err cursedItemError) handler.Response {
		return handler.Detail(http.StatusTeapot, map[string]any{
			"message": "that item did something",
			"item_id": err.ID,
		})
	})

	router := testRouter(t, reg, readItem)

	t.Run("valid request invokes the handler with bound arguments", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/item/42?short=true", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"item_id":42}`, rec.Body.String())
	})

	t.Run("bound violation produces a located 422", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/item/5", nil))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body struct {
			Detail []binder.FieldError `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Detail, 1)
		assert.Equal(t, []any{"path", "item_id"}, body.Detail[0].Loc)
		assert.Equal(t, "greater_than_equal", body.Detail[0].Type)
	})

	t.Run("domain error routes to its registered builder", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/item/20", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		assert.Contains(t, rec.Body.String(), `"item_id":20`)
	})

	t.Run("nil response is routed, not propagated", func(t *testing.T) {
		broken := handler.Route{
			Method:  http.MethodGet,
			Pattern: "/broken",
			Handle: func(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
				return nil, nil
			},
		}
		r := testRouter(t, handler.NewRegistry(), broken)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("cyclic declarations abort mounting", func(t *testing.T) {
		node := binder.NewObject("Node")
		node.Fields = append(node.Fields,
			binder.NewField("child", binder.SourceBody, binder.Nested(node), binder.Optional()),
		)
		bad := handler.Route{
			Method:  http.MethodPost,
			Pattern: "/nodes",
			Fields: []binder.Field{
				binder.NewField("node", binder.SourceBody, binder.Nested(node)),
			},
			Handle: func(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
				return handler.JSON(nil), nil
			},
		}

		err := handler.Mount(chi.NewRouter(), nil, bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrCyclicType)
	})

	t.Run("constraint-violating default aborts mounting", func(t *testing.T) {
		bad := handler.Route{
			Method:  http.MethodGet,
			Pattern: "/items",
			Fields: []binder.Field{
				binder.NewField("limit", binder.SourceQuery, binder.Int(),
					binder.WithGt(0), binder.WithDefault(0)),
			},
			Handle: func(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
				return handler.JSON(nil), nil
			},
		}

		err := handler.Mount(chi.NewRouter(), nil, bad)
		assert.ErrorIs(t, err, binder.ErrBadDefault)
	})

	t.Run("missing handler aborts mounting", func(t *testing.T) {
		err := handler.Mount(chi.NewRouter(), nil, handler.Route{
			Method:  http.MethodGet,
			Pattern: "/nope",
		})
		assert.ErrorIs(t, err, binder.ErrBadDeclaration)
	})

	t.Run("handler-raised HTTPError keeps its status and headers", func(t *testing.T) {
		secured := handler.Route{
			Method:  http.MethodGet,
			Pattern: "/secret",
			Handle: func(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
				return nil, handler.NewHTTPError(http.StatusUnauthorized, "token expired").
					WithHeader("WWW-Authenticate", "Bearer")
			},
		}
		r := testRouter(t, handler.NewRegistry(), secured)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.JSONEq(t, `{"detail":"token expired"}`, rec.Body.String())
	})
}
