// Package documents contains the syllabus and resume upload handlers.
//
// Both accept a multipart request with the file under the "file" field,
// turn it into text with a document.Decoder and store it whole. A second
// upload replaces the first; when two race, the one finishing last wins.
package documents

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/careerpath/internal/document"
	"github.com/aanand-mishra/careerpath/internal/metrics"
	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
	"github.com/aanand-mishra/careerpath/internal/utils/upload"
)

// Syllabus handles POST /documents/syllabus.
func Syllabus(dec *document.Decoder, maxBytes int64, m *metrics.Metrics) http.HandlerFunc {
	return handle("syllabus", "Syllabus uploaded successfully!", dec, maxBytes, m,
		(*session.Store).UploadSyllabus)
}

// Resume handles POST /documents/resume.
func Resume(dec *document.Decoder, maxBytes int64, m *metrics.Metrics) http.HandlerFunc {
	return handle("resume", "Resume uploaded successfully!", dec, maxBytes, m,
		(*session.Store).UploadResume)
}

func handle(kind, message string, dec *document.Decoder, maxBytes int64, m *metrics.Metrics,
	store func(s *session.Store, fileName, content string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := upload.Read(w, r, maxBytes)
		if err != nil {
			slog.Warn("upload rejected", slog.String("kind", kind), slog.String("error", err.Error()))
			response.WriteError(w, upload.Status(err), err)
			return
		}
		m.ObserveUpload(kind, len(f.Data))

		s := session.MustFromContext(r.Context())
		store(s, f.Name, dec.Text(f.Name, f.Data))
		slog.Info("document uploaded",
			slog.String("kind", kind),
			slog.String("file", f.Name),
			slog.Int("bytes", len(f.Data)))

		response.WriteMutation(w, message, s.Snapshot())
	}
}
