package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegordb/bindkit/binder"
)

func TestScalarCoercion(t *testing.T) {
	t.Run("uuid path parameter", func(t *testing.T) {
		fields := []binder.Field{
			binder.NewField("data_id", binder.SourcePath, binder.UUID()),
		}
		id := "a5ef0b6a-04a1-4a3e-8a7b-7a3f5c2a9f10"
		req := httptest.NewRequest(http.MethodPut, "/data/"+id, nil)

		call, err := binder.Bind(req, fields, pathParams(map[string]string{"data_id": id}))
		require.NoError(t, err)
		assert.Equal(t, uuid.MustParse(id), call.UUID("data_id"))
	})

	t.Run("invalid uuid reports uuid_parsing", func(t *testing.T) {
		fields := []binder.Field{
			binder.NewField("data_id", binder.SourcePath, binder.UUID()),
		}
		req := httptest.NewRequest(http.MethodPut, "/data/nope", nil)

		_, err := binder.Bind(req, fields, pathParams(map[string]string{"data_id": "nope"}))
		var verr binder.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr, 1)
		assert.Equal(t, binder.TypeUUIDParsing, verr[0].Type)
	})

	t.Run("datetime, time of day and duration from body", func(t *testing.T) {
		fields := []binder.Field{
			binder.NewField("start_datetime", binder.SourceBody, binder.DateTime(), binder.Optional()),
			binder.NewField("repeat_at", binder.SourceBody, binder.TimeOfDay(), binder.Optional()),
			binder.NewField("process_after", binder.SourceBody, binder.Duration(), binder.Optional()),
		}
		body := `{
			"start_datetime": "2026-01-02T15:04:05Z",
			"repeat_at": "13:45:00",
			"process_after": "90s"
		}`
		req := httptest.NewRequest(http.MethodPut, "/data/x", strings.NewReader(body))

		call, err := binder.Bind(req, fields, nil)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), call.Time("start_datetime"))
		assert.Equal(t, binder.Clock{Hour: 13, Minute: 45}, call.Clock("repeat_at"))
		assert.Equal(t, 90*time.Second, call.Duration("process_after"))
	})

	t.Run("duration accepts bare seconds", func(t *testing.T) {
		fields := []binder.Field{
			binder.NewField("process_after", binder.SourceQuery, binder.Duration()),
		}
		req := httptest.NewRequest(http.MethodGet, "/x?process_after=4.5", nil)

		call, err := binder.Bind(req, fields, nil)
		require.NoError(t, err)
		assert.Equal(t, 4500*time.Millisecond, call.Duration("process_after"))
	})

	t.Run("naive datetime without zone", func(t *testing.T) {
		fields := []binder.Field{
			binder.NewField("at", binder.SourceQuery, binder.DateTime()),
		}
		req := httptest.NewRequest(http.MethodGet, "/x?at=2026-01-02T15:04:05", nil)

		call, err := binder.Bind(req, fields, nil)
		require.NoError(t, err)
		assert.Equal(t, 2026, call.Time("at").Year())
	})

	t.Run("date only", func(t *testing.T) {
		fields := []binder.Field{
			binder.NewField("on", binder.SourceQuery, binder.Date()),
		}
		req := httptest.NewRequest(http.MethodGet, "/x?on=2026-08-30", nil)

		call, err := binder.Bind(req, fields, nil)
		require.NoError(t, err)
		assert.Equal(t, time.August, call.Time("on").Month())
	})

	t.Run("lenient booleans", func(t *testing.T) {
		fields := []binder.Field{
			binder.NewField("short", binder.SourceQuery, binder.Bool(), binder.WithDefault(false)),
		}
		for raw, want := range map[string]bool{
			"true": true, "1": true, "on": true, "yes": true,
			"false": false, "0": false, "off": false, "no": false,
		} {
			req := httptest.NewRequest(http.MethodGet, "/x?short="+raw, nil)
			call, err := binder.Bind(req, fields, nil)
			require.NoError(t, err, "raw=%q", raw)
			assert.Equal(t, want, call.Bool("short"), "raw=%q", raw)
		}
	})

	t.Run("unparseable boolean", func(t *testing.T) {
		fields := []binder.Field{
			binder.NewField("short", binder.SourceQuery, binder.Bool()),
		}
		req := httptest.NewRequest(http.MethodGet, "/x?short=maybe", nil)

		_, err := binder.Bind(req, fields, nil)
		var verr binder.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, binder.TypeBoolParsing, verr[0].Type)
	})
}

func TestParseClock(t *testing.T) {
	t.Run("with seconds", func(t *testing.T) {
		c, err := binder.ParseClock("13:45:30")
		require.NoError(t, err)
		assert.Equal(t, binder.Clock{Hour: 13, Minute: 45, Second: 30}, c)
	})

	t.Run("without seconds", func(t *testing.T) {
		c, err := binder.ParseClock("09:05")
		require.NoError(t, err)
		assert.Equal(t, binder.Clock{Hour: 9, Minute: 5}, c)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := binder.ParseClock("25:00")
		assert.Error(t, err)
	})

	t.Run("renders as HH:MM:SS", func(t *testing.T) {
		assert.Equal(t, "09:05:00", binder.Clock{Hour: 9, Minute: 5}.String())
	})
}
