package gateway

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"reflect"
	"sort"
	"strings"
)

// File is an upload carried in a multipart body.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// EncodeMultipart converts body into a multipart/form-data payload. Slice
// values expand into repeated fields under the same key. Keys are written in
// sorted order.
func EncodeMultipart(body map[string]any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", fmt.Errorf("invalid request body")
	}
	keys := make([]string, 0, len(body))
	for key := range body {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, key := range keys {
		for _, value := range expand(body[key]) {
			if err := writePart(writer, key, value); err != nil {
				return nil, "", fmt.Errorf("encode field %s: %w", key, err)
			}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

func expand(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return []any{string(v)}
	case []any:
		return v
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{value}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func writePart(writer *multipart.Writer, key string, value any) error {
	switch v := value.(type) {
	case File:
		return writeFile(writer, key, v)
	case *File:
		if v == nil {
			return nil
		}
		return writeFile(writer, key, *v)
	case string:
		return writer.WriteField(key, v)
	default:
		return writer.WriteField(key, fmt.Sprint(v))
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFile(writer *multipart.Writer, key string, file File) error {
	filename := file.Filename
	if filename == "" {
		filename = "blob"
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(key), quoteEscaper.Replace(filename)))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(file.Data)
	return err
}
