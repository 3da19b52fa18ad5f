package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got := ParseDate("2024-03-05")
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate() = %v, want %v", got.Time, want)
	}

	got = ParseDate("2024-03-05T10:00:00Z")
	if got.Hour() != 10 {
		t.Fatalf("ParseDate() hour = %d, want 10", got.Hour())
	}
}

func TestParseDateInvalidIsZero(t *testing.T) {
	got := ParseDate("last tuesday")
	if !got.IsZero() {
		t.Fatalf("ParseDate() = %v, want zero", got.Time)
	}
	if got.String() != "last tuesday" {
		t.Fatalf("String() = %q, want raw value", got.String())
	}
}

func TestJobJSONKeepsPostedDate(t *testing.T) {
	raw := `{"id":7,"title":"SRE","companyId":2,"salary":95000,"skills":["Go"],"postedDate":"2024-01-15"}`
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if job.PostedDate.Year() != 2024 || job.PostedDate.Month() != time.January {
		t.Fatalf("PostedDate = %v, want 2024-01-15", job.PostedDate.Time)
	}
	if job.Company != nil {
		t.Fatalf("Company = %+v, want nil before enrichment", job.Company)
	}

	out, err := json.Marshal(job)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["postedDate"] != "2024-01-15" {
		t.Fatalf("postedDate = %v, want %q", decoded["postedDate"], "2024-01-15")
	}
}
