package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const candidateColumns = `id, name, email, password, phone, nationality, location,
	qualification, experience, role, skills, COALESCE(resume_path, ''), COALESCE(photo_path, ''),
	plan, is_placed, created_at`

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	query := `INSERT INTO candidates
		(name, email, password, phone, nationality, location, qualification,
		 experience, role, skills, resume_path, photo_path, plan, is_placed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13, $14)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		c.Name, c.Email, c.Password, c.Phone, c.Nationality, c.Location,
		c.Qualification, c.Experience, c.Role, pq.Array(c.Skills),
		c.ResumePath, c.PhotoPath, c.Plan, c.IsPlaced,
	).Scan(&c.ID, &c.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("An account with this email already exists.")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *candidateRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *candidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) UpdateSkills(ctx context.Context, id int64, skills []string) error {
	_, err := r.db.Exec(ctx, `UPDATE candidates SET skills = $2 WHERE id = $1`, id, pq.Array(skills))
	return err
}

func (r *candidateRepo) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	_, err := r.db.Exec(ctx, `UPDATE candidates SET password = $2 WHERE id = $1`, id, hashed)
	return err
}

func (r *candidateRepo) SetPlaced(ctx context.Context, id int64, placed bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE candidates SET is_placed = $2 WHERE id = $1`, id, placed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Candidate not found")
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	return err
}

func (r *candidateRepo) scanOne(row pgx.Row) (*domain.Candidate, error) {
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var skills []string
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Password, &c.Phone, &c.Nationality,
		&c.Location, &c.Qualification, &c.Experience, &c.Role,
		pq.Array(&skills), &c.ResumePath, &c.PhotoPath,
		&c.Plan, &c.IsPlaced, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Skills = skills
	return &c, nil
}
