// Package catalog loads the job dataset and joins jobs with their companies.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/rs/zerolog"
)

// DefaultLatency is the artificial delay applied before every load.
const DefaultLatency = 500 * time.Millisecond

var ErrEmptySource = errors.New("catalog source returned no data")

// Dataset is the raw data contract: jobs without the company join.
type Dataset struct {
	Jobs      []models.Job     `json:"jobs"`
	Companies []models.Company `json:"companies"`
}

// Source fetches a Dataset.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Dataset, error)
}

// Result is a loaded, enriched catalog.
type Result struct {
	Jobs      []models.Job
	Companies []models.Company
	Source    string
	LoadedAt  time.Time
}

type Repository struct {
	source  Source
	latency time.Duration
	logger  zerolog.Logger
	clock   func() time.Time
}

func NewRepository(source Source, latency time.Duration, logger zerolog.Logger) *Repository {
	if latency < 0 {
		latency = 0
	}
	return &Repository{
		source:  source,
		latency: latency,
		logger:  logger.With().Str("component", "catalog").Logger(),
		clock:   time.Now,
	}
}

// Load waits for the configured latency, fetches the dataset once and
// enriches it. There is no retry.
func (r *Repository) Load(ctx context.Context) (Result, error) {
	if r.source == nil {
		return Result{}, ErrEmptySource
	}
	if err := wait(ctx, r.latency); err != nil {
		return Result{}, err
	}

	start := r.clock()
	ds, err := r.source.Fetch(ctx)
	if err != nil {
		r.logger.Error().Err(err).Str("source", r.source.Name()).Msg("load failed")
		return Result{}, fmt.Errorf("load %s: %w", r.source.Name(), err)
	}

	jobs := Enrich(ds)
	r.logger.Debug().
		Str("source", r.source.Name()).
		Int("jobs", len(jobs)).
		Int("companies", len(ds.Companies)).
		Dur("took", r.clock().Sub(start)).
		Msg("catalog loaded")

	return Result{
		Jobs:      jobs,
		Companies: ds.Companies,
		Source:    r.source.Name(),
		LoadedAt:  r.clock(),
	}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Enrich copies the jobs and attaches each one's company. Jobs whose company
// id is unknown keep a nil Company.
func Enrich(ds Dataset) []models.Job {
	byID := make(map[int]*models.Company, len(ds.Companies))
	for i := range ds.Companies {
		company := ds.Companies[i]
		byID[company.ID] = &company
	}

	jobs := make([]models.Job, 0, len(ds.Jobs))
	for _, job := range ds.Jobs {
		job.Company = byID[job.CompanyID]
		jobs = append(jobs, job)
	}
	return jobs
}
