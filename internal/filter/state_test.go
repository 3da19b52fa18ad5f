package filter

import (
	"reflect"
	"testing"
)

func TestNewUsesDefaults(t *testing.T) {
	got := New().Criteria()
	want := DefaultCriteria()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Criteria() = %+v, want %+v", got, want)
	}
	if got.SortOption != SortRecent || got.ViewMode != ViewGrid {
		t.Fatalf("unexpected sort/view defaults: %q/%q", got.SortOption, got.ViewMode)
	}
	if got.SalaryRange != (SalaryRange{Min: 0, Max: 200000}) {
		t.Fatalf("SalaryRange = %+v, want [0,200000]", got.SalaryRange)
	}
}

func TestClearFiltersKeepsViewMode(t *testing.T) {
	s := New()
	s.SetSearchQuery("engineer")
	s.SetJobType("Remote")
	s.SetExperienceLevel("Senior")
	s.SetSelectedSkills([]string{"React", "AWS"})
	s.SetSalaryRange(50000, 90000)
	s.SetSortOption(SortSalaryDesc)
	s.SetViewMode(ViewList)

	s.ClearFilters()

	want := DefaultCriteria()
	want.ViewMode = ViewList
	if got := s.Criteria(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Criteria() after ClearFilters = %+v, want %+v", got, want)
	}
}

func TestOnChangeFiresOnlyOnRealChanges(t *testing.T) {
	s := New()
	calls := 0
	s.OnChange(func() { calls++ })

	s.SetSearchQuery("go")
	s.SetSearchQuery("go")
	s.SetSelectedSkills([]string{"SQL"})
	s.SetSelectedSkills([]string{"SQL", " SQL "})
	s.SetSortOption(SortRecent)
	s.SetViewMode(ViewList)

	if calls != 3 {
		t.Fatalf("listener calls = %d, want 3", calls)
	}
}

func TestCriteriaReturnsCopy(t *testing.T) {
	s := New()
	s.SetSelectedSkills([]string{"React"})
	c := s.Criteria()
	c.SelectedSkills[0] = "Mutated"
	if got := s.Criteria().SelectedSkills[0]; got != "React" {
		t.Fatalf("SelectedSkills[0] = %q, want %q", got, "React")
	}
}

func TestActiveCount(t *testing.T) {
	s := New()
	if s.ActiveCount() != 0 {
		t.Fatalf("ActiveCount() = %d, want 0", s.ActiveCount())
	}
	s.SetSearchQuery("ignored")
	s.SetJobType("Hybrid")
	s.SetSelectedSkills([]string{"CSS"})
	s.SetSalaryRange(0, 150000)
	if s.ActiveCount() != 3 {
		t.Fatalf("ActiveCount() = %d, want 3", s.ActiveCount())
	}
}

func TestParseSortOption(t *testing.T) {
	cases := map[string]SortOption{
		"":            SortRecent,
		"RECENT":      SortRecent,
		"salary-desc": SortSalaryDesc,
		"salary":      SortSalaryDesc,
		"relevance":   SortRelevance,
		"alphabetic":  SortOption("alphabetic"),
	}
	for input, want := range cases {
		if got := ParseSortOption(input); got != want {
			t.Errorf("ParseSortOption(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParseJobTypeAndLevel(t *testing.T) {
	got, err := ParseJobType("remote")
	if err != nil || got != "Remote" {
		t.Fatalf("ParseJobType() = %q, %v, want Remote", got, err)
	}
	got, err = ParseJobType("any")
	if err != nil || got != "" {
		t.Fatalf("ParseJobType(any) = %q, %v, want empty", got, err)
	}
	if _, err := ParseJobType("freelance"); err == nil {
		t.Fatalf("ParseJobType(freelance) error = nil, want error")
	}
	got, err = ParseExperienceLevel("mid-level")
	if err != nil || got != "Mid-Level" {
		t.Fatalf("ParseExperienceLevel() = %q, %v, want Mid-Level", got, err)
	}
}

func TestParseViewMode(t *testing.T) {
	if got, err := ParseViewMode("LIST"); err != nil || got != ViewList {
		t.Fatalf("ParseViewMode(LIST) = %q, %v", got, err)
	}
	if _, err := ParseViewMode("table"); err == nil {
		t.Fatalf("ParseViewMode(table) error = nil, want error")
	}
}

func TestSnapSalaryRange(t *testing.T) {
	got, err := SnapSalaryRange(51200, 53000)
	if err != nil {
		t.Fatalf("SnapSalaryRange() error = %v", err)
	}
	want := SalaryRange{Min: 50000, Max: 60000}
	if got != want {
		t.Fatalf("SnapSalaryRange() = %+v, want %+v", got, want)
	}

	got, err = SnapSalaryRange(198000, 250000)
	if err != nil {
		t.Fatalf("SnapSalaryRange() error = %v", err)
	}
	want = SalaryRange{Min: 190000, Max: 200000}
	if got != want {
		t.Fatalf("SnapSalaryRange() = %+v, want %+v", got, want)
	}

	if _, err := SnapSalaryRange(90000, 10000); err == nil {
		t.Fatalf("SnapSalaryRange() error = nil, want error for inverted range")
	}
}
