package binder

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Upload is a bound file field: the original filename, the part's MIME
// header, and the content with its byte length.
type Upload struct {
	// Filename is the original filename provided by the client.
	Filename string

	// Size is the content length in bytes.
	Size int64

	// Header contains the MIME header fields for this file part.
	Header textproto.MIMEHeader

	// Content holds the file data in memory.
	Content []byte
}

// ContentType returns the MIME type of the uploaded file. It prefers the
// part's Content-Type header and falls back to the filename extension.
func (u *Upload) ContentType() string {
	if ct := u.Header.Get("Content-Type"); ct != "" {
		mediaType, _, _ := mime.ParseMediaType(ct)
		return mediaType
	}
	return mime.TypeByExtension(filepath.Ext(u.Filename))
}

// readUpload reads one multipart file header into an Upload.
// Parts may be backed by temporary files the transport spills to disk;
// reading happens here, at bind time, not while other fields validate.
func readUpload(header *multipart.FileHeader) (*Upload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", header.Filename, err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", header.Filename, err)
	}

	return &Upload{
		Filename: header.Filename,
		Size:     int64(len(content)),
		Header:   header.Header,
		Content:  content,
	}, nil
}
