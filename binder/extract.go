package binder

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// PathParamFunc returns the named segment of the matched route, e.g.
// chi.URLParam. An empty string means the segment is absent.
type PathParamFunc func(r *http.Request, name string) string

// rawValue is what the extractor hands to coercion: the raw textual or
// binary value(s) for one field, or absence. No type coercion and no
// constraint checking happens during extraction.
type rawValue struct {
	present bool
	strings []string
	files   []*Upload
	jsonVal any
	isJSON  bool
}

// extractor pulls raw values out of one materialized request. The JSON body
// is decoded at most once and shared across all body-sourced fields.
type extractor struct {
	r         *http.Request
	pathParam PathParamFunc

	// embedBody is true when more than one top-level field reads from the
	// body (or a field opts in explicitly): the body is then parsed as an
	// object and each field is looked up under its own key. With a single
	// body field the entire body is that field's value.
	embedBody bool

	bodyOnce bool
	body     any
	bodyErr  *FieldError

	formOnce bool
	formErr  *FieldError
}

func newExtractor(r *http.Request, pathParam PathParamFunc, fields []Field) *extractor {
	bodyFields := 0
	embed := false
	for _, f := range fields {
		if f.Source == SourceBody {
			bodyFields++
			if f.Embed {
				embed = true
			}
		}
	}
	return &extractor{
		r:         r,
		pathParam: pathParam,
		embedBody: embed || bodyFields > 1,
	}
}

// extract returns the raw value for one declared field, or absence.
// The only errors it produces itself are an unreadable body or form.
func (ex *extractor) extract(f Field) (rawValue, *FieldError) {
	switch f.Source {
	case SourcePath:
		return ex.fromPath(f), nil
	case SourceQuery:
		return ex.fromQuery(f), nil
	case SourceHeader:
		return ex.fromHeader(f), nil
	case SourceCookie:
		return ex.fromCookie(f), nil
	case SourceBody:
		return ex.fromBody(f)
	case SourceForm:
		return ex.fromForm(f)
	case SourceFile:
		return ex.fromFile(f)
	default:
		return rawValue{}, fieldErr([]any{string(f.Source), f.Name}, "unknown source", TypeModelParsing, nil)
	}
}

func (f Field) lookupName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// headerName derives the wire header name: the alias verbatim, or the field
// name with underscores turned into hyphens (asd_token -> Asd-Token).
func (f Field) headerName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return strings.ReplaceAll(f.Name, "_", "-")
}

func (ex *extractor) fromPath(f Field) rawValue {
	if ex.pathParam == nil {
		return rawValue{}
	}
	v := ex.pathParam(ex.r, f.lookupName())
	if v == "" {
		// The route matched, so an empty segment is a routing-level gap,
		// reported as absence.
		return rawValue{}
	}
	return rawValue{present: true, strings: []string{v}}
}

func (ex *extractor) fromQuery(f Field) rawValue {
	values, ok := ex.r.URL.Query()[f.lookupName()]
	if !ok || len(values) == 0 {
		return rawValue{}
	}
	return rawValue{present: true, strings: values}
}

func (ex *extractor) fromHeader(f Field) rawValue {
	// Header.Values canonicalizes the name, making the lookup case-insensitive.
	values := ex.r.Header.Values(f.headerName())
	if len(values) == 0 {
		return rawValue{}
	}
	return rawValue{present: true, strings: values}
}

func (ex *extractor) fromCookie(f Field) rawValue {
	name := f.lookupName()
	var values []string
	for _, c := range ex.r.Cookies() {
		if c.Name == name {
			values = append(values, c.Value)
		}
	}
	if len(values) == 0 {
		return rawValue{}
	}
	return rawValue{present: true, strings: values}
}

func (ex *extractor) fromBody(f Field) (rawValue, *FieldError) {
	ex.parseBody()
	if ex.bodyErr != nil {
		return rawValue{}, ex.bodyErr
	}
	if ex.body == nil {
		return rawValue{}, nil
	}

	if !ex.embedBody {
		return rawValue{present: true, jsonVal: ex.body, isJSON: true}, nil
	}

	obj, ok := ex.body.(map[string]any)
	if !ok {
		return rawValue{}, fieldErr([]any{"body"}, "body must be a JSON object", TypeModelParsing, ex.body)
	}
	// An explicit JSON null reads as absence, so nullable fields bind nil
	// and defaulted fields take their default.
	v, ok := obj[f.lookupName()]
	if !ok || v == nil {
		return rawValue{}, nil
	}
	return rawValue{present: true, jsonVal: v, isJSON: true}, nil
}

func (ex *extractor) parseBody() {
	if ex.bodyOnce {
		return
	}
	ex.bodyOnce = true

	if ex.r.Body == nil {
		return
	}
	data, err := io.ReadAll(ex.r.Body)
	if err != nil {
		ex.bodyErr = fieldErr([]any{"body"}, "invalid JSON body", TypeJSONInvalid, nil)
		return
	}
	// Restore the body so binding the same request again reads the same
	// bytes and produces the same result.
	ex.r.Body = io.NopCloser(bytes.NewReader(data))

	if len(bytes.TrimSpace(data)) == 0 {
		// Empty body reads as absence for every body field.
		return
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		ex.bodyErr = fieldErr([]any{"body"}, "invalid JSON body", TypeJSONInvalid, nil)
		return
	}
	ex.body = v
}

func (ex *extractor) fromForm(f Field) (rawValue, *FieldError) {
	if fe := ex.parseForm(); fe != nil {
		return rawValue{}, fe
	}

	var values []string
	if ex.r.MultipartForm != nil {
		values = ex.r.MultipartForm.Value[f.lookupName()]
	}
	if len(values) == 0 {
		values = ex.r.PostForm[f.lookupName()]
	}
	if len(values) == 0 {
		return rawValue{}, nil
	}
	return rawValue{present: true, strings: values}, nil
}

func (ex *extractor) fromFile(f Field) (rawValue, *FieldError) {
	if fe := ex.parseForm(); fe != nil {
		return rawValue{}, fe
	}
	if ex.r.MultipartForm == nil {
		return rawValue{}, nil
	}

	headers := ex.r.MultipartForm.File[f.lookupName()]
	if len(headers) == 0 {
		return rawValue{}, nil
	}

	// Parts are read in submission order.
	uploads := make([]*Upload, 0, len(headers))
	for _, h := range headers {
		u, err := readUpload(h)
		if err != nil {
			return rawValue{}, fieldErr([]any{string(SourceFile), f.Name}, "unreadable file part", TypeModelParsing, h.Filename)
		}
		uploads = append(uploads, u)
	}
	return rawValue{present: true, files: uploads}, nil
}

func (ex *extractor) parseForm() *FieldError {
	if ex.formOnce {
		return ex.formErr
	}
	ex.formOnce = true

	ct := ex.r.Header.Get("Content-Type")
	var err error
	if strings.HasPrefix(ct, "multipart/form-data") {
		err = ex.r.ParseMultipartForm(DefaultMaxMemory)
	} else {
		err = ex.r.ParseForm()
	}
	if err != nil {
		ex.formErr = fieldErr([]any{string(SourceForm)}, "invalid form payload", TypeModelParsing, nil)
	}
	return ex.formErr
}
