// Package filter holds the narrowing, sorting and display criteria chosen by
// the user. State is owned by one caller and mutated only through its setters.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jimezsa/jobboard/internal/models"
)

type SortOption string

const (
	SortRecent     SortOption = "recent"
	SortSalaryDesc SortOption = "salary-desc"
	SortRelevance  SortOption = "relevance"
)

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

const (
	DefaultSalaryMin = 0
	DefaultSalaryMax = 200000

	SalaryStep        = 5000
	SalaryMinDistance = 10000
)

// SalaryRange is a closed interval.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r SalaryRange) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}

// IsDefault reports whether the range is the full default range.
func (r SalaryRange) IsDefault() bool {
	return r.Min <= DefaultSalaryMin && r.Max >= DefaultSalaryMax
}

// Criteria is a snapshot of State. An empty JobType or ExperienceLevel means unset.
type Criteria struct {
	SearchQuery     string      `json:"search_query"`
	JobType         string      `json:"job_type,omitempty"`
	ExperienceLevel string      `json:"experience_level,omitempty"`
	SelectedSkills  []string    `json:"selected_skills"`
	SalaryRange     SalaryRange `json:"salary_range"`
	SortOption      SortOption  `json:"sort_option"`
	ViewMode        ViewMode    `json:"view_mode"`
}

// DefaultCriteria returns the initial criteria.
func DefaultCriteria() Criteria {
	return Criteria{
		SelectedSkills: []string{},
		SalaryRange:    SalaryRange{Min: DefaultSalaryMin, Max: DefaultSalaryMax},
		SortOption:     SortRecent,
		ViewMode:       ViewGrid,
	}
}

// State is the mutable criteria container. Listeners registered with
// OnChange run after every setter call that changes a field.
type State struct {
	c         Criteria
	listeners []func()
}

func New() *State {
	return &State{c: DefaultCriteria()}
}

// Criteria returns a copy of the current values.
func (s *State) Criteria() Criteria {
	out := s.c
	out.SelectedSkills = slices.Clone(s.c.SelectedSkills)
	return out
}

// OnChange registers fn to run after any field changes.
func (s *State) OnChange(fn func()) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

func (s *State) SetSearchQuery(query string) {
	s.update(func(c *Criteria) { c.SearchQuery = query })
}

// SetJobType selects a job type; "" clears it.
func (s *State) SetJobType(jobType string) {
	s.update(func(c *Criteria) { c.JobType = jobType })
}

// SetExperienceLevel selects a level; "" clears it.
func (s *State) SetExperienceLevel(level string) {
	s.update(func(c *Criteria) { c.ExperienceLevel = level })
}

func (s *State) SetSelectedSkills(skills []string) {
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" || slices.Contains(cleaned, skill) {
			continue
		}
		cleaned = append(cleaned, skill)
	}
	s.update(func(c *Criteria) { c.SelectedSkills = cleaned })
}

func (s *State) SetSalaryRange(min, max float64) {
	s.update(func(c *Criteria) { c.SalaryRange = SalaryRange{Min: min, Max: max} })
}

func (s *State) SetSortOption(option SortOption) {
	s.update(func(c *Criteria) { c.SortOption = option })
}

func (s *State) SetViewMode(mode ViewMode) {
	s.update(func(c *Criteria) { c.ViewMode = mode })
}

// ClearFilters restores every field except the view mode.
func (s *State) ClearFilters() {
	s.update(func(c *Criteria) {
		view := c.ViewMode
		*c = DefaultCriteria()
		c.ViewMode = view
	})
}

// ActiveCount counts the narrowing filters that differ from their defaults.
// The search query and sort option are not counted.
func (s *State) ActiveCount() int {
	count := 0
	if s.c.JobType != "" {
		count++
	}
	if s.c.ExperienceLevel != "" {
		count++
	}
	if len(s.c.SelectedSkills) > 0 {
		count++
	}
	if s.c.SalaryRange.Min > DefaultSalaryMin || s.c.SalaryRange.Max < DefaultSalaryMax {
		count++
	}
	return count
}

func (s *State) update(mutate func(c *Criteria)) {
	before := s.Criteria()
	mutate(&s.c)
	if equal(before, s.c) {
		return
	}
	for _, fn := range s.listeners {
		fn()
	}
}

func equal(a, b Criteria) bool {
	return a.SearchQuery == b.SearchQuery &&
		a.JobType == b.JobType &&
		a.ExperienceLevel == b.ExperienceLevel &&
		slices.Equal(a.SelectedSkills, b.SelectedSkills) &&
		a.SalaryRange == b.SalaryRange &&
		a.SortOption == b.SortOption &&
		a.ViewMode == b.ViewMode
}

// ParseSortOption accepts any value; unknown options are kept verbatim and
// sort as relevance.
func ParseSortOption(value string) SortOption {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(SortRecent):
		return SortRecent
	case string(SortSalaryDesc), "salary":
		return SortSalaryDesc
	case string(SortRelevance):
		return SortRelevance
	default:
		return SortOption(strings.TrimSpace(value))
	}
}

func ParseViewMode(value string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ViewGrid):
		return ViewGrid, nil
	case string(ViewList):
		return ViewList, nil
	default:
		return "", fmt.Errorf("unknown view mode: %s", value)
	}
}

// ParseJobType maps case-insensitive input onto a known job type. "" and
// "any" clear the filter.
func ParseJobType(value string) (string, error) {
	return matchVocabulary(value, models.JobTypes, "job type")
}

// ParseExperienceLevel maps case-insensitive input onto a known level.
func ParseExperienceLevel(value string) (string, error) {
	return matchVocabulary(value, models.ExperienceLevels, "experience level")
}

func matchVocabulary(value string, vocabulary []string, kind string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "any") {
		return "", nil
	}
	for _, known := range vocabulary {
		if strings.EqualFold(known, value) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown %s: %s (expected one of %s)", kind, value, strings.Join(vocabulary, ", "))
}
