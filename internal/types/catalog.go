package types

// Catalog kinds, used as the discriminator column in catalog storage and
// as the argument of the catalog CLI command.
const (
	KindJobRoles              = "job-roles"
	KindCompanies             = "companies"
	KindCareerRecommendations = "career-recommendations"
	KindTechRecommendations   = "tech-recommendations"
	KindVideos                = "videos"
	KindInternships           = "internships"
	KindRoadmap               = "roadmap"
)

// Kinds lists every catalog kind in display order.
var Kinds = []string{
	KindJobRoles,
	KindCompanies,
	KindCareerRecommendations,
	KindTechRecommendations,
	KindVideos,
	KindInternships,
	KindRoadmap,
}

// JobRole is an open position shown on the job-seeker track.
type JobRole struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Type     string   `json:"type"`
	Salary   string   `json:"salary"`
	Skills   []string `json:"skills"`
	Posted   string   `json:"posted"`
	Color    string   `json:"color"`
}

// Company is a hiring company card.
type Company struct {
	Name        string   `json:"name"`
	Openings    int      `json:"openings"`
	Industry    string   `json:"industry"`
	Size        string   `json:"size"`
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	Roles       []string `json:"roles"`
}

// CareerRecommendation suggests a skill direction to a job seeker.
type CareerRecommendation struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Skills        []string `json:"skills"`
	PotentialRole string   `json:"potentialRole"`
	Salary        string   `json:"salary"`
	Demand        string   `json:"demand"`
	Color         string   `json:"color"`
}

// TechRecommendation is a technology group suggested to students.
type TechRecommendation struct {
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	Reason       string   `json:"reason"`
	Color        string   `json:"color"`
}

// Video is a curated learning video.
type Video struct {
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Duration  string `json:"duration"`
	Views     string `json:"views"`
	Thumbnail string `json:"thumbnail"`
	Topic     string `json:"topic"`
}

// Internship is an internship opening on the student track.
type Internship struct {
	Company  string   `json:"company"`
	Role     string   `json:"role"`
	Location string   `json:"location"`
	Duration string   `json:"duration"`
	Stipend  string   `json:"stipend"`
	Skills   []string `json:"skills"`
	Color    string   `json:"color"`
}

// RoadmapPhase is one step of the student learning roadmap.
type RoadmapPhase struct {
	Phase    string   `json:"phase"`
	Duration string   `json:"duration"`
	Topics   []string `json:"topics"`
	Color    string   `json:"color"`
}

// Catalog bundles every static list the portal renders.
type Catalog struct {
	JobRoles              []JobRole              `json:"jobRoles"`
	Companies             []Company              `json:"companies"`
	CareerRecommendations []CareerRecommendation `json:"careerRecommendations"`
	TechRecommendations   []TechRecommendation   `json:"techRecommendations"`
	Videos                []Video                `json:"videos"`
	Internships           []Internship           `json:"internships"`
	Roadmap               []RoadmapPhase         `json:"roadmap"`
}
