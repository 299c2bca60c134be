package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employerColumns = `id, company_name, email, password, phone,
	COALESCE(company_description, ''), location, industry, COALESCE(logo_path, ''), created_at`

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Create(ctx context.Context, e *domain.Employer) error {
	query := `INSERT INTO employers
		(company_name, email, password, phone, company_description, location, industry, logo_path)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, NULLIF($8, ''))
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		e.CompanyName, e.Email, e.Password, e.Phone,
		e.CompanyDescription, e.Location, e.Industry, e.LogoPath,
	).Scan(&e.ID, &e.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("An account with this email already exists.")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE id = $1`
	return scanEmployerRow(r.db.QueryRow(ctx, query, id))
}

func (r *employerRepo) GetByEmail(ctx context.Context, email string) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE email = $1`
	return scanEmployerRow(r.db.QueryRow(ctx, query, email))
}

func (r *employerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *employerRepo) List(ctx context.Context) ([]domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers ORDER BY id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employers := []domain.Employer{}
	for rows.Next() {
		var e domain.Employer
		if err := rows.Scan(
			&e.ID, &e.CompanyName, &e.Email, &e.Password, &e.Phone,
			&e.CompanyDescription, &e.Location, &e.Industry, &e.LogoPath, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		employers = append(employers, e)
	}
	return employers, rows.Err()
}

func (r *employerRepo) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	_, err := r.db.Exec(ctx, `UPDATE employers SET password = $2 WHERE id = $1`, id, hashed)
	return err
}

// Delete removes the employer; job openings and interests referencing it go
// with it via ON DELETE CASCADE.
func (r *employerRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM employers WHERE id = $1`, id)
	return err
}

func scanEmployerRow(row pgx.Row) (*domain.Employer, error) {
	var e domain.Employer
	err := row.Scan(
		&e.ID, &e.CompanyName, &e.Email, &e.Password, &e.Phone,
		&e.CompanyDescription, &e.Location, &e.Industry, &e.LogoPath, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
