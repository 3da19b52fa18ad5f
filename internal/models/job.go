package models

// Job types offered by the board.
const (
	JobTypeRemote = "Remote"
	JobTypeHybrid = "Hybrid"
	JobTypeOnsite = "Onsite"
)

// Experience levels offered by the board.
const (
	LevelInternship = "Internship"
	LevelJunior     = "Junior"
	LevelMidLevel   = "Mid-Level"
	LevelSenior     = "Senior"
)

var (
	JobTypes         = []string{JobTypeRemote, JobTypeHybrid, JobTypeOnsite}
	ExperienceLevels = []string{LevelInternship, LevelJunior, LevelMidLevel, LevelSenior}
	SkillOptions     = []string{
		"React", "TypeScript", "JavaScript", "Node.js", "Python", "Java",
		"AWS", "Docker", "GraphQL", "SQL", "HTML", "CSS",
	}
)

// Job is a single posting. Company is filled in at load time and is nil
// when the dataset has no company with CompanyID.
type Job struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	CompanyID       int      `json:"companyId"`
	Company         *Company `json:"company,omitempty"`
	Location        string   `json:"location"`
	JobType         string   `json:"jobType"`
	Salary          float64  `json:"salary"`
	ExperienceLevel string   `json:"experienceLevel"`
	Skills          []string `json:"skills"`
	PostedDate      Date     `json:"postedDate"`
}

// CompanyName returns the joined company name or "" when the relation is missing.
func (j Job) CompanyName() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.Name
}

// HasSkill reports whether skill is listed on the job (exact match).
func (j Job) HasSkill(skill string) bool {
	for _, s := range j.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// Company is reference data joined onto jobs by id.
type Company struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Size        string `json:"size"`
	Description string `json:"description"`
}
