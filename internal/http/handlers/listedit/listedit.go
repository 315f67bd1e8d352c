// Package listedit builds the handlers behind every editable string list
// of the session: quick-add inputs (POST) and wholesale replacement (PUT).
package listedit

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/careerpath/internal/forms"
	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/types"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
)

// Getter reads one list out of a snapshot.
type Getter func(types.Session) []string

// Setter writes one list through the matching store mutator.
type Setter func(*session.Store, []string)

// Append handles { "value": "..." }. The trimmed value is appended to the
// list; a blank value changes nothing and is answered with the current
// snapshot and an empty message.
func Append(message string, get Getter, set Setter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ItemRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		store := session.MustFromContext(r.Context())
		items, ok := forms.AppendTrimmed(get(store.Snapshot()), req.Value)
		if !ok {
			response.WriteMutation(w, "", store.Snapshot())
			return
		}

		set(store, items)
		slog.Info("list item added", slog.String("path", r.URL.Path))
		response.WriteMutation(w, message, store.Snapshot())
	}
}

// Replace handles { "items": [...] } and stores the list as given.
// A missing or null list clears it.
func Replace(message string, set Setter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}
		if req.Items == nil {
			req.Items = []string{}
		}

		store := session.MustFromContext(r.Context())
		set(store, req.Items)
		slog.Info("list replaced", slog.String("path", r.URL.Path), slog.Int("items", len(req.Items)))
		response.WriteMutation(w, message, store.Snapshot())
	}
}
