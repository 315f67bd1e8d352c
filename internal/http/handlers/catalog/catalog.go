// Package catalog serves the static catalog listings: roadmap, videos,
// internships, job roles, companies and the recommendation lists.
package catalog

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/careerpath/internal/storage"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
)

// List returns a handler that writes every entry of the given catalog kind.
//
//	r.Get("/student/videos", catalog.List(st, types.KindVideos))
func List(s storage.Storage, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing catalog", slog.String("kind", kind))

		entries, err := storage.Kind(s, kind)
		if err != nil {
			slog.Error("error listing catalog",
				slog.String("kind", kind),
				slog.String("error", err.Error()))
			response.WriteError(w, http.StatusInternalServerError, err)
			return
		}

		_ = response.WriteJSON(w, http.StatusOK, entries)
	}
}
