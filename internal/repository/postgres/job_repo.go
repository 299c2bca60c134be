package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, employer_id, title, description, COALESCE(requirements, ''),
	COALESCE(salary_range, ''), location, COALESCE(job_type, 'Full-time'), is_active, created_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobOpening) error {
	query := `INSERT INTO job_openings
		(employer_id, title, description, requirements, salary_range, location, job_type, is_active)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Requirements,
		job.SalaryRange, job.Location, job.JobType, job.IsActive,
	).Scan(&job.ID, &job.CreatedAt)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobOpening, error) {
	query := `SELECT ` + jobColumns + ` FROM job_openings WHERE id = $1`
	var j domain.JobOpening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Requirements,
		&j.SalaryRange, &j.Location, &j.JobType, &j.IsActive, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) ListActive(ctx context.Context) ([]domain.JobOpening, error) {
	query := `SELECT ` + jobColumns + ` FROM job_openings WHERE is_active ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *jobRepo) ListAll(ctx context.Context) ([]domain.JobOpening, error) {
	query := `SELECT ` + jobColumns + ` FROM job_openings ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *jobRepo) ListByEmployer(ctx context.Context, employerID int64) ([]domain.JobOpening, error) {
	query := `SELECT ` + jobColumns + ` FROM job_openings WHERE employer_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, employerID)
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM job_openings WHERE id = $1`, id)
	return err
}

func (r *jobRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.JobOpening, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobOpening{}
	for rows.Next() {
		var j domain.JobOpening
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Requirements,
			&j.SalaryRange, &j.Location, &j.JobType, &j.IsActive, &j.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
