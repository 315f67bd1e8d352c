// Package student contains the HTTP handlers of the student track.
//
// HANDLER PATTERN: CLOSURE FACTORIES
// ──────────────────────────────────
// The router wants func(http.ResponseWriter, *http.Request). Handlers that
// need more than the request (a catalog, a limit) get it from a factory
// that runs once at startup and returns the real handler:
//
//	r.Get("/student/videos", student.Videos(storage))
//	//                       ^^^^^^^^^^^^^^^^^^^^^^^ called ONCE at startup,
//	//                       the returned func runs on EVERY request.
//
// The session store is not a factory argument. Each request carries its
// own store on the context (see package session), so the same handler
// serves every client.
package student

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/careerpath/internal/http/handlers/catalog"
	"github.com/aanand-mishra/careerpath/internal/http/handlers/listedit"
	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/storage"
	"github.com/aanand-mishra/careerpath/internal/types"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
)

func skills(s types.Session) []string   { return s.StudentSkills }
func syllabus(s types.Session) []string { return s.StudentSyllabus }

// ─────────────────────────────────────────────────────────────────────────────
// AddSkill handles POST /student/skills
//
// Request body:
//
//	{ "value": "Python" }
//
// Success response (200 OK):
//
//	{ "status": "ok", "message": "Skill added!", "session": {...} }
//
// A blank value is skipped: same snapshot, empty message.
// ─────────────────────────────────────────────────────────────────────────────
func AddSkill() http.HandlerFunc {
	return listedit.Append("Skill added!", skills, (*session.Store).UpdateStudentSkills)
}

// ReplaceSkills handles PUT /student/skills with { "items": [...] }.
func ReplaceSkills() http.HandlerFunc {
	return listedit.Replace("Skills updated!", (*session.Store).UpdateStudentSkills)
}

// AddSyllabusTopic handles POST /student/syllabus with { "value": "..." }.
func AddSyllabusTopic() http.HandlerFunc {
	return listedit.Append("Syllabus item added!", syllabus, (*session.Store).UpdateStudentSyllabus)
}

// ReplaceSyllabus handles PUT /student/syllabus with { "items": [...] }.
func ReplaceSyllabus() http.HandlerFunc {
	return listedit.Replace("Syllabus updated!", (*session.Store).UpdateStudentSyllabus)
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateResume handles PUT /student/resume
//
// Request body:
//
//	{ "text": "Final-year CS student..." }
//
// The text replaces the student resume as is, blank included.
// ─────────────────────────────────────────────────────────────────────────────
func UpdateResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("updating student resume")

		var req types.TextRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		store := session.MustFromContext(r.Context())
		store.UpdateStudentResume(req.Text)

		response.WriteMutation(w, "Resume updated!", store.Snapshot())
	}
}

// Roadmap handles GET /student/roadmap.
func Roadmap(s storage.Storage) http.HandlerFunc {
	return catalog.List(s, types.KindRoadmap)
}

// Recommendations handles GET /student/recommendations: the technology
// recommendations.
func Recommendations(s storage.Storage) http.HandlerFunc {
	return catalog.List(s, types.KindTechRecommendations)
}

// Videos handles GET /student/videos.
func Videos(s storage.Storage) http.HandlerFunc {
	return catalog.List(s, types.KindVideos)
}

// Internships handles GET /student/internships.
func Internships(s storage.Storage) http.HandlerFunc {
	return catalog.List(s, types.KindInternships)
}
