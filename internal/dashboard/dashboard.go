// Package dashboard derives the read-only portal views from a session
// snapshot. Everything here is presentation: it never touches the store.
package dashboard

import (
	"time"

	"github.com/aanand-mishra/careerpath/internal/forms"
	"github.com/aanand-mishra/careerpath/internal/types"
)

// Overview is the dashboard home view.
type Overview struct {
	Greeting    string      `json:"greeting"`
	DisplayName string      `json:"displayName"`
	ActiveView  types.Track `json:"activeView"`
	Email       string      `json:"email"`
	PictureRef  string      `json:"profilePicture"`
	Skills      []string    `json:"skills"`
	Resume      string      `json:"resume"`
	HobbyCount  int         `json:"hobbyCount"`
	HasSyllabus bool        `json:"hasSyllabus"`
	HasResume   bool        `json:"hasResume"`
}

// Greeting picks the salutation for the local hour of now.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// DisplayName is the profile name, or "User" when it is empty.
func DisplayName(s types.Session) string {
	if s.Profile.Name == "" {
		return "User"
	}
	return s.Profile.Name
}

// ActiveView is the session track, defaulting to the student view.
func ActiveView(s types.Session) types.Track {
	if s.Track == types.TrackNone {
		return types.TrackStudent
	}
	return s.Track
}

// Skills lists the profile skills followed by the skills of view.
// Duplicates between the two lists are kept.
func Skills(s types.Session, view types.Track) []string {
	trackSkills := s.StudentSkills
	if view == types.TrackJobSeeker {
		trackSkills = s.JobSeekerSkills
	}

	out := make([]string, 0, len(s.Profile.Skills)+len(trackSkills))
	out = append(out, s.Profile.Skills...)
	return append(out, trackSkills...)
}

// EffectiveResume is the resume summary of view, or the uploaded resume
// text when that summary is empty.
func EffectiveResume(s types.Session, view types.Track) string {
	summary := s.StudentResume
	if view == types.TrackJobSeeker {
		summary = s.JobSeekerResume
	}
	if summary == "" && s.Resume != nil {
		return s.Resume.Content
	}
	return summary
}

// Build assembles the overview for s at time now. view selects which
// track the dashboard shows; TrackNone falls back to ActiveView(s).
func Build(s types.Session, view types.Track, now time.Time) Overview {
	if view == types.TrackNone {
		view = ActiveView(s)
	}
	return Overview{
		Greeting:    Greeting(now),
		DisplayName: DisplayName(s),
		ActiveView:  view,
		Email:       s.Profile.Email,
		PictureRef:  s.Profile.PictureRef,
		Skills:      Skills(s, view),
		Resume:      EffectiveResume(s, view),
		HobbyCount:  len(s.Profile.Hobbies),
		HasSyllabus: s.Syllabus != nil,
		HasResume:   s.Resume != nil,
	}
}

// Details are the job-seeker academic and link fields.
type Details struct {
	Marks10  string `json:"marks10th"`
	Marks12  string `json:"marks12th"`
	LinkedIn string `json:"linkedinProfile"`
	GitHub   string `json:"githubLink"`
}

// TrackPage is the landing page of one track.
type TrackPage struct {
	Track  types.Track `json:"track"`
	Skills []string    `json:"skills"`
	Resume string      `json:"resume"`

	// Student only.
	SyllabusTopics []string `json:"syllabusTopics,omitempty"`
	// Job seeker only.
	Details *Details `json:"details,omitempty"`
}

// Page builds the landing page of track from s.
func Page(s types.Session, track types.Track) TrackPage {
	p := TrackPage{
		Track:  track,
		Resume: EffectiveResume(s, track),
	}
	if track == types.TrackJobSeeker {
		p.Skills = s.JobSeekerSkills
		p.Details = &Details{
			Marks10:  s.Marks10,
			Marks12:  s.Marks12,
			LinkedIn: s.LinkedIn,
			GitHub:   s.GitHub,
		}
		return p
	}
	p.Skills = s.StudentSkills
	p.SyllabusTopics = s.StudentSyllabus
	return p
}

// ProfileForm pre-fills the profile edit form. Lists are comma-joined the
// way the form fields present them.
type ProfileForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Hobbies    string `json:"hobbies"`
	Skills     string `json:"skills"`
	PictureRef string `json:"profilePicture"`
}

// Form returns the profile form values for s.
func Form(s types.Session) ProfileForm {
	return ProfileForm{
		Name:       s.Profile.Name,
		Email:      s.Profile.Email,
		Hobbies:    forms.JoinList(s.Profile.Hobbies),
		Skills:     forms.JoinList(s.Profile.Skills),
		PictureRef: s.Profile.PictureRef,
	}
}
