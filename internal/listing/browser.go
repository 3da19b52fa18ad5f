package listing

import (
	"github.com/jimezsa/jobboard/internal/filter"
	"github.com/jimezsa/jobboard/internal/models"
)

// Page is one rendered slice of the filtered list.
type Page struct {
	Jobs  []models.Job `json:"jobs"`
	Pager Pager        `json:"pager"`
	Total int          `json:"total_results"`
}

// Browser pairs a filter.State with the loaded jobs and tracks the current
// page. Any change to the state moves the browser back to page 1.
type Browser struct {
	state    *filter.State
	jobs     []models.Job
	loaded   bool
	page     int
	pageSize int
}

func NewBrowser(state *filter.State) *Browser {
	b := &Browser{state: state, page: 1, pageSize: PageSize}
	state.OnChange(b.resetPage)
	return b
}

// SetJobs installs the loaded catalog.
func (b *Browser) SetJobs(jobs []models.Job) {
	b.jobs = jobs
	b.loaded = true
	b.page = 1
}

func (b *Browser) Loaded() bool {
	return b.loaded
}

func (b *Browser) State() *filter.State {
	return b.state
}

func (b *Browser) CurrentPage() int {
	return b.page
}

// Results is the full filtered and sorted list; empty until jobs are loaded.
func (b *Browser) Results() []models.Job {
	if !b.loaded {
		return []models.Job{}
	}
	return Apply(b.jobs, b.state.Criteria())
}

func (b *Browser) Page() Page {
	results := b.Results()
	return Page{
		Jobs:  Slice(results, b.page, b.pageSize),
		Pager: Pager{Current: b.page, Total: TotalPages(len(results), b.pageSize)},
		Total: len(results),
	}
}

// Next advances one page; it is a no-op on the last page.
func (b *Browser) Next() bool {
	p := b.Page().Pager
	if !p.HasNext() {
		return false
	}
	b.page = p.Next()
	return true
}

// Prev goes back one page; it is a no-op on page 1.
func (b *Browser) Prev() bool {
	p := b.Page().Pager
	if !p.HasPrev() {
		return false
	}
	b.page = p.Prev()
	return true
}

// SetPage jumps to page for one-shot rendering. Pages outside [1,totalPages]
// reset to 1 and report false.
func (b *Browser) SetPage(page int) bool {
	total := TotalPages(len(b.Results()), b.pageSize)
	if page < 1 || page > total {
		b.page = 1
		return page == 1
	}
	b.page = page
	return true
}

func (b *Browser) resetPage() {
	b.page = 1
}
