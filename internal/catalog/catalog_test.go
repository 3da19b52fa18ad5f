package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobboard/internal/models"
	"github.com/rs/zerolog"
)

type stubSource struct {
	ds    Dataset
	err   error
	calls int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(context.Context) (Dataset, error) {
	s.calls++
	return s.ds, s.err
}

func TestEnrichJoinsCompanies(t *testing.T) {
	ds := Dataset{
		Jobs: []models.Job{
			{ID: 1, CompanyID: 2},
			{ID: 2, CompanyID: 3},
		},
		Companies: []models.Company{{ID: 2, Name: "Acme"}},
	}

	jobs := Enrich(ds)
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d, want 2", len(jobs))
	}
	if jobs[0].Company == nil || jobs[0].Company.Name != "Acme" {
		t.Fatalf("jobs[0].Company = %+v, want Acme", jobs[0].Company)
	}
	if jobs[1].Company != nil {
		t.Fatalf("jobs[1].Company = %+v, want nil for unknown company", jobs[1].Company)
	}
	if jobs[1].CompanyName() != "" {
		t.Fatalf("CompanyName() = %q, want empty", jobs[1].CompanyName())
	}
	if ds.Jobs[0].Company != nil {
		t.Fatalf("Enrich() mutated the source dataset")
	}
}

func TestRepositoryLoad(t *testing.T) {
	src := &stubSource{ds: Dataset{
		Jobs:      []models.Job{{ID: 1, CompanyID: 1}},
		Companies: []models.Company{{ID: 1, Name: "Acme"}},
	}}
	repo := NewRepository(src, 0, zerolog.Nop())

	res, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(res.Jobs) != 1 || res.Jobs[0].CompanyName() != "Acme" {
		t.Fatalf("Load() jobs = %+v", res.Jobs)
	}
	if res.Source != "stub" {
		t.Fatalf("Source = %q, want stub", res.Source)
	}
}

func TestRepositoryLoadFailureIsNotRetried(t *testing.T) {
	boom := errors.New("boom")
	src := &stubSource{err: boom}
	repo := NewRepository(src, 0, zerolog.Nop())

	_, err := repo.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Load() error = %v, want %v", err, boom)
	}
	if src.calls != 1 {
		t.Fatalf("Fetch calls = %d, want 1", src.calls)
	}
}

func TestRepositoryLoadHonorsCancellation(t *testing.T) {
	src := &stubSource{}
	repo := NewRepository(src, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}
	if src.calls != 0 {
		t.Fatalf("Fetch calls = %d, want 0", src.calls)
	}
}

func TestEmbeddedSource(t *testing.T) {
	ds, err := EmbeddedSource{}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(ds.Jobs) == 0 || len(ds.Companies) == 0 {
		t.Fatalf("embedded dataset is empty: %d jobs, %d companies", len(ds.Jobs), len(ds.Companies))
	}
	for _, job := range ds.Jobs {
		if job.PostedDate.IsZero() {
			t.Fatalf("job %d has unparsed postedDate %q", job.ID, job.PostedDate.Raw)
		}
	}
}

func TestFileSourceJSON5(t *testing.T) {
	src := FileSource{Path: filepath.Join("testdata", "dataset.json5")}
	ds, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(ds.Jobs) != 2 || len(ds.Companies) != 1 {
		t.Fatalf("Fetch() = %d jobs, %d companies, want 2/1", len(ds.Jobs), len(ds.Companies))
	}
	if got := ds.Jobs[0].PostedDate.Format("2006-01-02"); got != "2024-02-10" {
		t.Fatalf("PostedDate = %q, want 2024-02-10", got)
	}
	if ds.Jobs[1].Skills == nil || len(ds.Jobs[1].Skills) != 0 {
		t.Fatalf("Skills = %#v, want empty", ds.Jobs[1].Skills)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatalf("Fetch() error = nil, want error")
	}
}

func TestDecodeDatasetEmpty(t *testing.T) {
	if _, err := DecodeDataset([]byte("  ")); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("DecodeDataset() error = %v, want ErrEmptySource", err)
	}
}

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	return doc
}

func TestDatasetFromDocumentPrefersJobsData(t *testing.T) {
	html := `
<html><head>
  <script type="application/json">{"config": true}</script>
  <script id="jobs-data" type="application/json">
    {"jobs":[{"id":4,"title":"SRE","companyId":1,"salary":1,"skills":[],"postedDate":"2024-01-01"}],
     "companies":[{"id":1,"name":"Acme"}]}
  </script>
</head></html>`

	ds, err := datasetFromDocument(mustDoc(t, html))
	if err != nil {
		t.Fatalf("datasetFromDocument() error = %v", err)
	}
	if len(ds.Jobs) != 1 || ds.Jobs[0].Title != "SRE" {
		t.Fatalf("unexpected jobs: %+v", ds.Jobs)
	}
}

func TestDatasetFromDocumentFallsBackToAnyJSONScript(t *testing.T) {
	html := `<html><body>
  <script type="application/json">{"jobs":[{"id":1,"title":"QA","companyId":1,"salary":1,"skills":[],"postedDate":"2024-01-01"}],"companies":[]}</script>
</body></html>`

	ds, err := datasetFromDocument(mustDoc(t, html))
	if err != nil {
		t.Fatalf("datasetFromDocument() error = %v", err)
	}
	if len(ds.Jobs) != 1 {
		t.Fatalf("len(jobs) = %d, want 1", len(ds.Jobs))
	}
}

func TestDatasetFromDocumentMissing(t *testing.T) {
	_, err := datasetFromDocument(mustDoc(t, `<html><body><p>nothing</p></body></html>`))
	if !errors.Is(err, ErrEmptySource) {
		t.Fatalf("datasetFromDocument() error = %v, want ErrEmptySource", err)
	}
}

func TestIsHTML(t *testing.T) {
	if !isHTML("text/html; charset=utf-8", nil) {
		t.Fatalf("isHTML(content-type) = false")
	}
	if !isHTML("", []byte("  <!DOCTYPE html><html></html>")) {
		t.Fatalf("isHTML(sniff) = false")
	}
	if isHTML("application/json", []byte(`{"jobs":[]}`)) {
		t.Fatalf("isHTML(json) = true")
	}
}
