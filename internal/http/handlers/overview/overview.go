// Package overview serves the read-only views: the dashboard home and the
// landing page of each track.
package overview

import (
	"net/http"
	"time"

	"github.com/aanand-mishra/careerpath/internal/dashboard"
	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/types"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
)

// ViewParam is the query parameter that switches the dashboard between
// the student and job-seeker view.
const ViewParam = "view"

// Get handles GET /dashboard. now supplies the clock used for the greeting.
// An optional ?view=student|job-seeker overrides the session track.
func Get(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := types.TrackNone
		if v := r.URL.Query().Get(ViewParam); v != "" {
			parsed, err := types.ParseTrack(v)
			if err != nil {
				response.WriteError(w, http.StatusBadRequest, err)
				return
			}
			view = parsed
		}

		store := session.MustFromContext(r.Context())
		_ = response.WriteJSON(w, http.StatusOK, dashboard.Build(store.Snapshot(), view, now()))
	}
}

// Page handles GET on a track landing page.
func Page(track types.Track) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := session.MustFromContext(r.Context())
		_ = response.WriteJSON(w, http.StatusOK, dashboard.Page(store.Snapshot(), track))
	}
}
