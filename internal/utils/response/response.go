// Package response provides helpers for reading JSON requests and writing
// consistent JSON responses.
//
// Every endpoint of the portal speaks JSON. Three shapes go back to the
// client:
//
//	error     { "status": "error", "error": "field Email is required" }
//	mutation  { "status": "ok", "message": "Skill added!", "session": {...} }
//	read      any JSON value (a snapshot, a catalog listing, the dashboard)
//
// Handlers never set headers or encode by hand; they go through WriteJSON.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/careerpath/internal/types"
)

// Response is the error envelope.
type Response struct {
	Status string `json:"status"` // always StatusError here
	Error  string `json:"error"`
}

// Mutation is the envelope returned after a session change. Message is the
// confirmation shown to the user; it is empty when nothing changed.
type Mutation struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Session types.Session `json:"session"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrEmptyBody is reported by ReadJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes data as JSON with the given status code.
//
// Order matters: Header() → WriteHeader() → body. Headers set after the
// first write are silently ignored.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes err in the error envelope.
func WriteError(w http.ResponseWriter, status int, err error) {
	_ = WriteJSON(w, status, GeneralError(err))
}

// WriteMutation writes a 200 mutation envelope.
func WriteMutation(w http.ResponseWriter, message string, s types.Session) {
	_ = WriteJSON(w, http.StatusOK, Mutation{
		Status:  StatusOK,
		Message: message,
		Session: s,
	})
}

// GeneralError wraps any error into the error envelope.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError turns validator field errors into one readable message.
//
// The validator returns one FieldError per failing field; each becomes a
// sentence and they are joined with ", ":
//
//	{ "status": "error", "error": "field Email is required, field Password is required" }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}

var validate = validator.New()

// ─────────────────────────────────────────────────────────────────────────────
// ReadJSON decodes the request body into v and runs its validate tags.
//
// On failure it has already written a 400 response and returns false, so
// a handler only needs:
//
//	var req types.LoginRequest
//	if !response.ReadJSON(w, r, &req) {
//	    return
//	}
//
// ─────────────────────────────────────────────────────────────────────────────
func ReadJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		WriteError(w, http.StatusBadRequest, ErrEmptyBody)
		return false
	}
	if err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return false
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			_ = WriteJSON(w, http.StatusBadRequest, ValidationError(verrs))
			return false
		}
		WriteError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}
