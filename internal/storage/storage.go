// Package storage defines the Storage interface for the static catalog:
// job roles, companies, recommendations, videos, internships and the
// learning roadmap.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers only need "give me the job roles"; they should not know the
// catalog lives in SQLite. Depending on this interface keeps them
// backend-agnostic and lets tests pass an in-memory fake.
//
// Session state is never written here. Sessions live in memory only
// (see package session); storage holds read-only content.
package storage

import "github.com/aanand-mishra/careerpath/internal/types"

// Storage is the catalog contract.
type Storage interface {
	// Seed replaces the whole catalog with c. It is idempotent, so it is
	// safe to run on every startup.
	Seed(c types.Catalog) error

	// Each listing returns entries in catalog order, and an empty slice
	// (not nil) when there are none.
	JobRoles() ([]types.JobRole, error)
	Companies() ([]types.Company, error)
	CareerRecommendations() ([]types.CareerRecommendation, error)
	TechRecommendations() ([]types.TechRecommendation, error)
	Videos() ([]types.Video, error)
	Internships() ([]types.Internship, error)
	Roadmap() ([]types.RoadmapPhase, error)
}

// Kind returns every entry of the named catalog kind as a JSON-ready
// value. It is used by the catalog CLI command.
func Kind(s Storage, kind string) (any, error) {
	switch kind {
	case types.KindJobRoles:
		return s.JobRoles()
	case types.KindCompanies:
		return s.Companies()
	case types.KindCareerRecommendations:
		return s.CareerRecommendations()
	case types.KindTechRecommendations:
		return s.TechRecommendations()
	case types.KindVideos:
		return s.Videos()
	case types.KindInternships:
		return s.Internships()
	case types.KindRoadmap:
		return s.Roadmap()
	default:
		return nil, &UnknownKindError{Kind: kind}
	}
}

// UnknownKindError reports a catalog kind that does not exist.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return "unknown catalog kind: " + e.Kind
}
