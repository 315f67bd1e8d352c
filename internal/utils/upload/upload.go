// Package upload reads the single file of a multipart upload request.
package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// FieldName is the multipart field every upload endpoint reads.
const FieldName = "file"

// headerSlack is added to the body limit to leave room for the multipart
// boundaries and part headers around the file itself.
const headerSlack = 64 << 10

// ErrTooLarge is returned when the file exceeds the configured limit.
var ErrTooLarge = errors.New("uploaded file is too large")

// File is one uploaded file.
type File struct {
	Name string
	Data []byte
}

// Read returns the file posted under FieldName. maxBytes bounds the file
// size; a larger upload yields ErrTooLarge. Any other error means the
// request itself is malformed.
func Read(w http.ResponseWriter, r *http.Request, maxBytes int64) (File, error) {
	limit := maxBytes + headerSlack
	if r.ContentLength > limit {
		return File{}, ErrTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	f, header, err := r.FormFile(FieldName)
	if err != nil {
		if isTooLarge(err) {
			return File{}, ErrTooLarge
		}
		return File{}, fmt.Errorf("upload.Read: form file %q: %w", FieldName, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return File{}, fmt.Errorf("upload.Read: read %s: %w", header.Filename, err)
	}
	if int64(len(data)) > maxBytes {
		return File{}, ErrTooLarge
	}

	return File{Name: header.Filename, Data: data}, nil
}

// Status maps an error from Read to its HTTP status code.
func Status(err error) int {
	if errors.Is(err, ErrTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
