// Package router assembles the chi router serving the portal API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aanand-mishra/careerpath/internal/document"
	"github.com/aanand-mishra/careerpath/internal/http/handlers/auth"
	"github.com/aanand-mishra/careerpath/internal/http/handlers/documents"
	"github.com/aanand-mishra/careerpath/internal/http/handlers/jobseeker"
	"github.com/aanand-mishra/careerpath/internal/http/handlers/overview"
	"github.com/aanand-mishra/careerpath/internal/http/handlers/profile"
	"github.com/aanand-mishra/careerpath/internal/http/handlers/student"
	"github.com/aanand-mishra/careerpath/internal/http/middleware"
	"github.com/aanand-mishra/careerpath/internal/http/ws"
	"github.com/aanand-mishra/careerpath/internal/metrics"
	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/storage"
	"github.com/aanand-mishra/careerpath/internal/types"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
)

// Deps is everything the routes need.
type Deps struct {
	Registry      *session.Registry
	Storage       storage.Storage
	Decoder       *document.Decoder
	Metrics       *metrics.Metrics
	Gatherer      prometheus.Gatherer
	CookieName    string
	MaxUpload     int64
	AllowedOrigin string

	// Now is the dashboard clock. Nil means time.Now.
	Now func() time.Time
}

func New(d Deps) http.Handler {
	now := d.Now
	if now == nil {
		now = time.Now
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
	})
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	stream := ws.New(d.AllowedOrigin)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(d.Registry, d.CookieName))

		// ──── Auth ────
		r.Route("/auth", func(r chi.Router) {
			r.Post("/{track}/login", auth.Login())
			r.Post("/{track}/signup", auth.Signup())
			r.Post("/{track}/google", auth.Google())
			r.Post("/logout", auth.Logout())
		})

		r.Get("/session", auth.Snapshot())
		r.Get("/session/ws", stream.Handle)

		// ──── Signed-in routes ────
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated)

			r.Get("/dashboard", overview.Get(now))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profile.Form())
				r.Patch("/", profile.Update())
				r.Post("/hobbies", profile.AddHobby())
				r.Post("/skills", profile.AddSkill())
				r.Put("/picture", profile.Picture(d.MaxUpload, d.Metrics))
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/syllabus", documents.Syllabus(d.Decoder, d.MaxUpload, d.Metrics))
				r.Post("/resume", documents.Resume(d.Decoder, d.MaxUpload, d.Metrics))
			})

			r.Route("/student", func(r chi.Router) {
				r.Get("/", overview.Page(types.TrackStudent))
				r.Post("/skills", student.AddSkill())
				r.Put("/skills", student.ReplaceSkills())
				r.Post("/syllabus", student.AddSyllabusTopic())
				r.Put("/syllabus", student.ReplaceSyllabus())
				r.Put("/resume", student.UpdateResume())
				r.Get("/roadmap", student.Roadmap(d.Storage))
				r.Get("/recommendations", student.Recommendations(d.Storage))
				r.Get("/videos", student.Videos(d.Storage))
				r.Get("/internships", student.Internships(d.Storage))
			})

			r.Route("/job-seeker", func(r chi.Router) {
				r.Get("/", overview.Page(types.TrackJobSeeker))
				r.Post("/skills", jobseeker.AddSkill())
				r.Put("/skills", jobseeker.ReplaceSkills())
				r.Put("/resume", jobseeker.UpdateResume())
				r.Patch("/details", jobseeker.UpdateDetails())
				r.Get("/jobs", jobseeker.Jobs(d.Storage))
				r.Get("/companies", jobseeker.Companies(d.Storage))
				r.Get("/recommendations", jobseeker.Recommendations(d.Storage))
			})
		})
	})

	return r
}
