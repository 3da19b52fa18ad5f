package listing

// PageSize is the number of jobs shown per page.
const PageSize = 10

// TotalPages returns ceil(n/size); zero when there is nothing to show.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Slice returns items in [(page-1)*size, page*size). Pages outside the result
// set yield an empty slice; callers reset the page instead of relying on clamping.
func Slice[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// Pager is the previous/next control state.
type Pager struct {
	Current int `json:"current_page"`
	Total   int `json:"total_pages"`
}

// Visible reports whether the control renders at all.
func (p Pager) Visible() bool {
	return p.Total > 1
}

func (p Pager) HasPrev() bool {
	return p.Current > 1
}

func (p Pager) HasNext() bool {
	return p.Current < p.Total
}

// Next returns the page after Current, or Current when it is the last one.
func (p Pager) Next() int {
	if !p.HasNext() {
		return p.Current
	}
	return p.Current + 1
}

// Prev returns the page before Current, or Current at page 1.
func (p Pager) Prev() int {
	if !p.HasPrev() {
		return p.Current
	}
	return p.Current - 1
}
