package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/careerpath/internal/types"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, http.StatusCreated, map[string]int{"n": 1}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
}

func TestWriteMutation(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteMutation(rec, "Skill added!", types.DefaultSession())

	var m Mutation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
	assert.Equal(t, StatusOK, m.Status)
	assert.Equal(t, "Skill added!", m.Message)
	assert.Equal(t, types.DefaultSession(), m.Session)
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		ok      bool
		wantErr string
	}{
		{"valid", `{"email":"a@x.com","password":"pw"}`, true, ""},
		{"empty", ``, false, "request body is empty"},
		{"wrong type", `{"email":1}`, false, "cannot unmarshal number"},
		{"missing field", `{"email":"a@x.com"}`, false, "field Password is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()

			var got types.LoginRequest
			ok := ReadJSON(rec, req, &got)
			require.Equal(t, tc.ok, ok)

			if tc.ok {
				assert.Equal(t, types.LoginRequest{Email: "a@x.com", Password: "pw"}, got)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var e Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
			assert.Equal(t, StatusError, e.Status)
			assert.Contains(t, e.Error, tc.wantErr)
		})
	}
}

func TestValidationError(t *testing.T) {
	in := struct {
		Email string `validate:"required"`
		Marks string `validate:"numeric"`
	}{Marks: "A+"}

	var verrs validator.ValidationErrors
	require.True(t, errors.As(validate.Struct(in), &verrs))

	got := ValidationError(verrs)
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, "field Email is required, field Marks is invalid", got.Error)
}
