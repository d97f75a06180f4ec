package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegordb/bindkit/binder"
	"github.com/yegordb/bindkit/handler"
)

type cursedItemError struct {
	ID int
}

func (e cursedItemError) Error() string {
	return fmt.Sprintf("item %d is cursed", e.ID)
}

type businessRuleError struct {
	Rule string
}

func (e businessRuleError) Error() string {
	return "business rule violated: " + e.Rule
}

func renderToRecorder(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	require.NoError(t, resp.Render(rec, req))
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegistryDispatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/item/20", nil)

	t.Run("exact type wins", func(t *testing.T) {
		reg := handler.NewRegistry()
		handler.On(reg, func(r *http.Request, err cursedItemError) handler.Response {
			return handler.Detail(http.StatusTeapot, fmt.Sprintf("item %d did something", err.ID))
		})

		rec := renderToRecorder(t, reg.Dispatch(req, cursedItemError{ID: 20}))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Contains(t, rec.Body.String(), "item 20")
	})

	t.Run("wrapped errors still match through errors.As", func(t *testing.T) {
		reg := handler.NewRegistry()
		handler.On(reg, func(r *http.Request, err cursedItemError) handler.Response {
			return handler.Detail(http.StatusTeapot, err.Error())
		})

		wrapped := fmt.Errorf("handling failed: %w", cursedItemError{ID: 7})
		rec := renderToRecorder(t, reg.Dispatch(req, wrapped))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("specific category beats a generic fallback", func(t *testing.T) {
		reg := handler.NewRegistry()
		handler.On(reg, func(r *http.Request, err businessRuleError) handler.Response {
			return handler.Detail(http.StatusConflict, err.Rule)
		})
		handler.On(reg, func(r *http.Request, err cursedItemError) handler.Response {
			return handler.Detail(http.StatusTeapot, err.Error())
		})

		rec := renderToRecorder(t, reg.Dispatch(req, cursedItemError{ID: 1}))
		assert.Equal(t, http.StatusTeapot, rec.Code)

		rec = renderToRecorder(t, reg.Dispatch(req, businessRuleError{Rule: "no refunds"}))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation failures render the 422 envelope", func(t *testing.T) {
		reg := handler.NewRegistry()
		verr := binder.ValidationError{
			{Loc: []any{"path", "item_id"}, Msg: "must be greater than or equal to 10", Type: "greater_than_equal", Input: "5"},
			{Loc: []any{"query", "needy"}, Msg: "field required", Type: "missing"},
		}

		rec := renderToRecorder(t, reg.Dispatch(req, verr))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeDetail(t, rec)
		detail, ok := body["detail"].([]any)
		require.True(t, ok)
		require.Len(t, detail, 2)

		first := detail[0].(map[string]any)
		assert.Equal(t, []any{"path", "item_id"}, first["loc"])
		assert.Equal(t, "greater_than_equal", first["type"])
		assert.Equal(t, "5", first["input"])
	})

	t.Run("http errors carry their status and headers", func(t *testing.T) {
		reg := handler.NewRegistry()
		err := handler.NewHTTPError(http.StatusNotFound, "Item not found").
			WithHeader("X-Error-Code", "item_missing")

		rec := renderToRecorder(t, reg.Dispatch(req, err))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "item_missing", rec.Header().Get("X-Error-Code"))

		body := decodeDetail(t, rec)
		assert.Equal(t, "Item not found", body["detail"])
	})

	t.Run("uncategorized errors end at the catch-all", func(t *testing.T) {
		reg := handler.NewRegistry()

		rec := renderToRecorder(t, reg.Dispatch(req, errors.New("database exploded")))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeDetail(t, rec)
		assert.Equal(t, "Internal Server Error", body["detail"])
		assert.NotContains(t, rec.Body.String(), "exploded")
	})

	t.Run("custom catch-all replaces the default", func(t *testing.T) {
		reg := handler.NewRegistry(handler.WithCatchAll(
			func(r *http.Request, err error) handler.Response {
				return handler.Detail(http.StatusBadGateway, "upstream sad")
			},
		))

		rec := renderToRecorder(t, reg.Dispatch(req, errors.New("boom")))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("nil error still produces a response", func(t *testing.T) {
		reg := handler.NewRegistry()
		rec := renderToRecorder(t, reg.Dispatch(req, nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestJSONResponse(t *testing.T) {
	t.Run("default status 200", func(t *testing.T) {
		rec := renderToRecorder(t, handler.JSON(map[string]string{"message": "Hello World"}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
	})

	t.Run("custom status and headers", func(t *testing.T) {
		rec := renderToRecorder(t, handler.JSON(map[string]string{"ok": "yes"},
			handler.WithStatus(http.StatusCreated),
			handler.WithHeader("X-Request-Id", "abc"),
		))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "abc", rec.Header().Get("X-Request-Id"))
	})

	t.Run("detail envelope", func(t *testing.T) {
		rec := renderToRecorder(t, handler.Detail(http.StatusTeapot, "short and stout"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.JSONEq(t, `{"detail":"short and stout"}`, rec.Body.String())
	})
}
