// Package media exposes the upload endpoints: single optional files, upload
// metadata echo and multi-file batches.
package media

import (
	"net/http"

	"github.com/yegordb/bindkit/binder"
	"github.com/yegordb/bindkit/handler"
)

// Routes declares the media endpoints.
func Routes() []handler.Route {
	return []handler.Route{
		{
			Method:  http.MethodPost,
			Pattern: "/files",
			Fields: []binder.Field{
				binder.NewField("file", binder.SourceFile, binder.File(), binder.Optional()),
			},
			Handle: receiveFile,
		},
		{
			Method:  http.MethodGet,
			Pattern: "/files/*",
			Fields: []binder.Field{
				binder.NewField("file_path", binder.SourcePath, binder.String(), binder.WithAlias("*")),
			},
			Handle: echoFilePath,
		},
		{
			Method:  http.MethodPost,
			Pattern: "/uploadfile",
			Fields: []binder.Field{
				binder.NewField("file", binder.SourceFile, binder.File()),
				binder.NewField("token", binder.SourceForm, binder.String(), binder.Optional()),
			},
			Handle: describeUpload,
		},
		{
			Method:  http.MethodPost,
			Pattern: "/uploadfiles",
			Fields: []binder.Field{
				binder.NewField("files", binder.SourceFile, binder.List(binder.File()), binder.WithMinItems(1)),
			},
			Handle: describeUploads,
		},
	}
}

func receiveFile(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	if !call.Has("file") {
		return handler.JSON(map[string]any{"message": "No file sent"}), nil
	}
	return handler.JSON(map[string]any{
		"file_size": call.File("file").Size,
	}), nil
}

func echoFilePath(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	return handler.JSON(map[string]any{"file_path": call.String("file_path")}), nil
}

func describeUpload(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	up := call.File("file")
	resp := map[string]any{
		"filename":     up.Filename,
		"content_type": up.ContentType(),
		"size":         up.Size,
	}
	if call.Has("token") {
		resp["token"] = call.String("token")
	}
	return handler.JSON(resp), nil
}

func describeUploads(ctx handler.Context, call *binder.BoundCall) (handler.Response, error) {
	files := call.Files("files")
	names := make([]string, len(files))
	for i, up := range files {
		names[i] = up.Filename
	}
	return handler.JSON(map[string]any{"filenames": names}), nil
}
