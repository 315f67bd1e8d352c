// Package handlertest holds helpers shared by the handler tests.
package handlertest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
)

// Provide is a middleware that puts store on every request context, the
// way the Session middleware does for a real client.
func Provide(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), store)))
		})
	}
}

// Do serves one request on h and returns the recorder. body may be nil,
// a string sent as is, or any value sent as JSON.
func Do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Upload serves a multipart request carrying data as the "file" field.
func Upload(t *testing.T, h http.Handler, method, target, fileName string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Mutation decodes a mutation envelope from rec.
func Mutation(t *testing.T, rec *httptest.ResponseRecorder) response.Mutation {
	t.Helper()

	var m response.Mutation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
	require.Equal(t, response.StatusOK, m.Status)
	return m
}

// Error decodes an error envelope from rec.
func Error(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var e response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
	require.Equal(t, response.StatusError, e.Status)
	return e
}
