// Package listing derives the visible job list from the loaded catalog and
// the current filter criteria: narrowing, ordering and page slicing.
package listing

import (
	"sort"
	"strings"

	"github.com/jimezsa/jobboard/internal/filter"
	"github.com/jimezsa/jobboard/internal/models"
)

// Apply returns the jobs matching c in display order. The input slice is
// never reordered.
func Apply(jobs []models.Job, c filter.Criteria) []models.Job {
	result := make([]models.Job, 0, len(jobs))
	query := strings.ToLower(c.SearchQuery)
	for _, job := range jobs {
		if !matchesQuery(job, query) {
			continue
		}
		if c.JobType != "" && job.JobType != c.JobType {
			continue
		}
		if c.ExperienceLevel != "" && job.ExperienceLevel != c.ExperienceLevel {
			continue
		}
		if !hasAllSkills(job, c.SelectedSkills) {
			continue
		}
		if !c.SalaryRange.Contains(job.Salary) {
			continue
		}
		result = append(result, job)
	}

	sortJobs(result, c.SortOption)
	return result
}

func matchesQuery(job models.Job, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(job.Title), query) {
		return true
	}
	return job.Company != nil && strings.Contains(strings.ToLower(job.Company.Name), query)
}

func hasAllSkills(job models.Job, skills []string) bool {
	for _, skill := range skills {
		if !job.HasSkill(skill) {
			return false
		}
	}
	return true
}

func sortJobs(jobs []models.Job, option filter.SortOption) {
	switch option {
	case filter.SortSalaryDesc:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Salary > jobs[j].Salary
		})
	case filter.SortRecent:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].PostedDate.After(jobs[j].PostedDate.Time)
		})
	}
}

// Tracker returns the jobs whose id is bookmarked, in catalog order.
func Tracker(jobs []models.Job, isBookmarked func(id int) bool) []models.Job {
	out := make([]models.Job, 0)
	if isBookmarked == nil {
		return out
	}
	for _, job := range jobs {
		if isBookmarked(job.ID) {
			out = append(out, job)
		}
	}
	return out
}
