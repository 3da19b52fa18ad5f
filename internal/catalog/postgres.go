package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimezsa/jobboard/internal/models"
)

const (
	selectCompanies = `SELECT id, name, COALESCE(size, ''), COALESCE(description, '') FROM companies ORDER BY id`
	selectJobs      = `
		SELECT id, title, company_id, COALESCE(location, ''), job_type, salary,
		       experience_level, COALESCE(skills, '{}'::text[]), posted_date
		FROM jobs
		ORDER BY id`
)

// PostgresSource reads the jobs and companies tables.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresPool creates and verifies a pgxpool connection pool.
func NewPostgresPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return pool, nil
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

func (s *PostgresSource) Name() string {
	return "postgres"
}

func (s *PostgresSource) Fetch(ctx context.Context) (Dataset, error) {
	companies, err := s.companies(ctx)
	if err != nil {
		return Dataset{}, err
	}
	jobs, err := s.jobs(ctx)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Jobs: jobs, Companies: companies}, nil
}

func (s *PostgresSource) companies(ctx context.Context) ([]models.Company, error) {
	rows, err := s.pool.Query(ctx, selectCompanies)
	if err != nil {
		return nil, fmt.Errorf("companies query: %w", err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0)
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Size, &c.Description); err != nil {
			return nil, fmt.Errorf("companies scan: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("companies rows: %w", err)
	}
	return companies, nil
}

func (s *PostgresSource) jobs(ctx context.Context) ([]models.Job, error) {
	rows, err := s.pool.Query(ctx, selectJobs)
	if err != nil {
		return nil, fmt.Errorf("jobs query: %w", err)
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		var (
			j      models.Job
			posted *time.Time
		)
		if err := rows.Scan(
			&j.ID, &j.Title, &j.CompanyID, &j.Location, &j.JobType, &j.Salary,
			&j.ExperienceLevel, &j.Skills, &posted,
		); err != nil {
			return nil, fmt.Errorf("jobs scan: %w", err)
		}
		if posted != nil {
			j.PostedDate = models.Date{Time: *posted, Raw: posted.Format("2006-01-02")}
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("jobs rows: %w", err)
	}
	return jobs, nil
}
