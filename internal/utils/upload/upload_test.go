package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, name string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRead(t *testing.T) {
	req := multipartRequest(t, FieldName, "cv.txt", []byte("hello"))

	f, err := Read(httptest.NewRecorder(), req, 1<<10)
	require.NoError(t, err)
	assert.Equal(t, File{Name: "cv.txt", Data: []byte("hello")}, f)
}

func TestReadWrongField(t *testing.T) {
	req := multipartRequest(t, "attachment", "cv.txt", []byte("hello"))

	_, err := Read(httptest.NewRecorder(), req, 1<<10)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, Status(err))
}

func TestReadTooLarge(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"just over the limit", 1<<10 + 1},
		{"over the body limit", 200 << 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := multipartRequest(t, FieldName, "big.bin", bytes.Repeat([]byte("x"), tc.size))

			_, err := Read(httptest.NewRecorder(), req, 1<<10)
			require.ErrorIs(t, err, ErrTooLarge)
			assert.Equal(t, http.StatusRequestEntityTooLarge, Status(err))
		})
	}
}

func TestReadExactLimit(t *testing.T) {
	req := multipartRequest(t, FieldName, "ok.bin", bytes.Repeat([]byte("x"), 1<<10))

	f, err := Read(httptest.NewRecorder(), req, 1<<10)
	require.NoError(t, err)
	assert.Len(t, f.Data, 1<<10)
}
