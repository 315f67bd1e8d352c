// Package types holds the shared data structures used across the
// application: the per-session record, the patch structures that name
// exactly which fields may be partially updated, the request payloads
// accepted over HTTP, and the static catalog entities.
//
// Keeping them in one place prevents import cycles: the session store,
// the handlers, and the catalog storage can all import types without
// depending on each other.
package types

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Track is the user track chosen at login. The zero value means "no track"
// and only ever appears together with an unauthenticated session.
type Track string

const (
	TrackNone      Track = ""
	TrackStudent   Track = "student"
	TrackJobSeeker Track = "job-seeker"
)

// ParseTrack converts a route segment such as "job-seeker" into a Track.
func ParseTrack(s string) (Track, error) {
	switch Track(s) {
	case TrackStudent, TrackJobSeeker:
		return Track(s), nil
	default:
		return TrackNone, fmt.Errorf("unknown track %q: must be student or job-seeker", s)
	}
}

// MarshalJSON renders TrackNone as null.
func (t Track) MarshalJSON() ([]byte, error) {
	if t == TrackNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON accepts null, "" or a known track name.
func (t *Track) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TrackNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = TrackNone
		return nil
	}
	parsed, err := ParseTrack(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Profile is the user-editable part of the session record.
//
// PictureRef is an opaque image reference (a data URL in practice).
// The empty string means no picture has been set.
type Profile struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Hobbies    []string `json:"hobbies"`
	Skills     []string `json:"skills"`
	PictureRef string   `json:"profilePicture"`
}

// Document is an uploaded file reduced to its name and decoded text.
type Document struct {
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}

// Session is the single mutable record describing one client session.
//
// JSON names follow the wire shape the portal front end already reads.
type Session struct {
	Authenticated bool    `json:"isAuthenticated"`
	Track         Track   `json:"userType"`
	Profile       Profile `json:"profile"`

	Syllabus *Document `json:"syllabus"`
	Resume   *Document `json:"resume"`

	StudentSkills   []string `json:"studentSkills"`
	StudentSyllabus []string `json:"studentSyllabus"`
	StudentResume   string   `json:"studentResume"`

	JobSeekerSkills []string `json:"jobSeekerSkills"`
	JobSeekerResume string   `json:"jobSeekerResume"`

	Marks10  string `json:"marks10th"`
	Marks12  string `json:"marks12th"`
	LinkedIn string `json:"linkedinProfile"`
	GitHub   string `json:"githubLink"`
}

// DefaultSession returns a fresh record in its initial, unauthenticated
// state. Sequences are empty but non-nil so they encode as [] rather than
// null.
func DefaultSession() Session {
	return Session{
		Profile: Profile{
			Hobbies: []string{},
			Skills:  []string{},
		},
		StudentSkills:   []string{},
		StudentSyllabus: []string{},
		JobSeekerSkills: []string{},
	}
}

// Clone returns a deep copy of s. No slice or document pointer is shared
// between the copy and the original.
func (s Session) Clone() Session {
	out := s
	out.Profile.Hobbies = slices.Clone(s.Profile.Hobbies)
	out.Profile.Skills = slices.Clone(s.Profile.Skills)
	out.StudentSkills = slices.Clone(s.StudentSkills)
	out.StudentSyllabus = slices.Clone(s.StudentSyllabus)
	out.JobSeekerSkills = slices.Clone(s.JobSeekerSkills)
	if s.Syllabus != nil {
		doc := *s.Syllabus
		out.Syllabus = &doc
	}
	if s.Resume != nil {
		doc := *s.Resume
		out.Resume = &doc
	}
	return out
}

// ProfilePatch names the profile fields that may be merged into the
// current profile. A nil pointer or a nil slice leaves the field as it is;
// pass an empty, non-nil slice to clear a list.
type ProfilePatch struct {
	Name       *string  `json:"name,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Hobbies    []string `json:"hobbies,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	PictureRef *string  `json:"profilePicture,omitempty"`
}

// JobSeekerDetailsPatch names the job-seeker detail fields that may be
// merged into the record. Nil pointers leave the field untouched.
type JobSeekerDetailsPatch struct {
	Marks10  *string `json:"marks10th,omitempty"`
	Marks12  *string `json:"marks12th,omitempty"`
	LinkedIn *string `json:"linkedinProfile,omitempty"`
	GitHub   *string `json:"githubLink,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Request payloads
//
// validate:"required" is the only rule used: the portal never checks more
// than emptiness.
// ─────────────────────────────────────────────────────────────────────────────

// LoginRequest is the body of POST /auth/{track}/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the body of POST /auth/{track}/signup.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
}

// ItemRequest appends a single value to a list. A blank value is not an
// error; the append is simply skipped.
type ItemRequest struct {
	Value string `json:"value"`
}

// ListRequest replaces a list wholesale.
type ListRequest struct {
	Items []string `json:"items"`
}

// TextRequest replaces a free-text field wholesale.
type TextRequest struct {
	Text string `json:"text"`
}

// ProfileForm is the profile edit form. Hobbies and skills arrive as
// comma-separated text, the way the form field presents them.
type ProfileForm struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Hobbies *string `json:"hobbies,omitempty"`
	Skills  *string `json:"skills,omitempty"`
}
