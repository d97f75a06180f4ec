package media_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegordb/bindkit/handler"
	"github.com/yegordb/bindkit/modules/media"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()

	r := chi.NewRouter()
	require.NoError(t, handler.Mount(r, handler.NewRegistry(), media.Routes()...))
	return r
}

type part struct {
	field    string
	filename string
	content  string
}

func multipartRequest(t *testing.T, target string, fields map[string]string, parts ...part) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for _, p := range parts {
		fw, err := w.CreateFormFile(p.field, p.filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(p.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func serve(t *testing.T, r chi.Router, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestReadFilePath(t *testing.T) {
	t.Parallel()

	r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/files/home/johndoe/myfile.txt", nil)
	rec, body := serve(t, r, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "home/johndoe/myfile.txt", body["file_path"])
}

func TestReceiveFile(t *testing.T) {
	t.Parallel()

	r := newRouter(t)

	t.Run("absent file", func(t *testing.T) {
		rec, body := serve(t, r, multipartRequest(t, "/files", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "No file sent", body["message"])
	})

	t.Run("present file reports size", func(t *testing.T) {
		rec, body := serve(t, r, multipartRequest(t, "/files", nil,
			part{field: "file", filename: "a.txt", content: "hello"}))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 5, body["file_size"])
	})
}

func TestDescribeUpload(t *testing.T) {
	t.Parallel()

	r := newRouter(t)

	t.Run("metadata echo", func(t *testing.T) {
		rec, body := serve(t, r, multipartRequest(t, "/uploadfile",
			map[string]string{"token": "tok-1"},
			part{field: "file", filename: "report.csv", content: "a,b\n1,2\n"}))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "report.csv", body["filename"])
		assert.EqualValues(t, 8, body["size"])
		assert.Equal(t, "tok-1", body["token"])
		assert.NotEmpty(t, body["content_type"])
	})

	t.Run("missing file", func(t *testing.T) {
		rec, body := serve(t, r, multipartRequest(t, "/uploadfile", nil))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		detail := body["detail"].([]any)
		require.Len(t, detail, 1)
		assert.Equal(t, []any{"file", "file"}, detail[0].(map[string]any)["loc"])
		assert.Equal(t, "missing", detail[0].(map[string]any)["type"])
	})
}

func TestDescribeUploads(t *testing.T) {
	t.Parallel()

	r := newRouter(t)

	t.Run("multiple files in order", func(t *testing.T) {
		rec, body := serve(t, r, multipartRequest(t, "/uploadfiles", nil,
			part{field: "files", filename: "one.txt", content: "1"},
			part{field: "files", filename: "two.txt", content: "22"}))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []any{"one.txt", "two.txt"}, body["filenames"])
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		rec, body := serve(t, r, multipartRequest(t, "/uploadfiles", nil))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		detail := body["detail"].([]any)
		require.Len(t, detail, 1)
		assert.Equal(t, []any{"file", "files"}, detail[0].(map[string]any)["loc"])
		assert.Equal(t, "missing", detail[0].(map[string]any)["type"])
	})
}
