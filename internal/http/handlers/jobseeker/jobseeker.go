// Package jobseeker contains the HTTP handlers of the job-seeker track.
package jobseeker

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

func skills(s types.Session) []string { return s.JobSeekerSkills }

// AddSkill handles POST /job-seeker/skills with { "value": "..." }.
func AddSkill() http.HandlerFunc {
	return listedit.Append("Skill added!", skills, (*session.Store).UpdateJobSeekerSkills)
}

// ReplaceSkills handles PUT /job-seeker/skills with { "items": [...] }.
func ReplaceSkills() http.HandlerFunc {
	return listedit.Replace("Skills updated!", (*session.Store).UpdateJobSeekerSkills)
}

// UpdateResume handles PUT /job-seeker/resume with { "text": "..." }.
func UpdateResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("updating job seeker resume")

		var req types.TextRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		store := session.MustFromContext(r.Context())
		store.UpdateJobSeekerResume(req.Text)

		response.WriteMutation(w, "Resume updated!", store.Snapshot())
	}
}

// UpdateDetails handles PATCH /job-seeker/details.
//
//	{ "marks10th": "92%", "githubLink": "https://github.com/ann" }
//
// Fields left out of the body keep their value.
func UpdateDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("updating job seeker details")

		var patch types.JobSeekerDetailsPatch
		if !response.ReadJSON(w, r, &patch) {
			return
		}

		store := session.MustFromContext(r.Context())
		store.UpdateJobSeekerDetails(patch)

		response.WriteMutation(w, "Details updated!", store.Snapshot())
	}
}

// Jobs handles GET /job-seeker/jobs: the job roles.
func Jobs(s storage.Storage) http.HandlerFunc {
	return catalog.List(s, types.KindJobRoles)
}

// Companies handles GET /job-seeker/companies.
func Companies(s storage.Storage) http.HandlerFunc {
	return catalog.List(s, types.KindCompanies)
}

// Recommendations handles GET /job-seeker/recommendations: the career
// recommendations.
func Recommendations(s storage.Storage) http.HandlerFunc {
	return catalog.List(s, types.KindCareerRecommendations)
}
