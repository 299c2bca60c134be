package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interestRepo struct {
	db *pgxpool.Pool
}

func NewInterestRepository(db *pgxpool.Pool) domain.InterestRepository {
	return &interestRepo{db: db}
}

// CreateEmployerInterest inserts the (employer, candidate) pair. The unique
// constraint is the enforcement mechanism; a duplicate surfaces as Conflict
// and the usecase converts it to an idempotent success.
func (r *interestRepo) CreateEmployerInterest(ctx context.Context, employerID, candidateID int64) error {
	query := `INSERT INTO employer_interests (employer_id, candidate_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, employerID, candidateID)
	return mapInterestError(err)
}

func (r *interestRepo) CreateCandidateInterest(ctx context.Context, candidateID, jobID int64) error {
	query := `INSERT INTO candidate_interests (candidate_id, job_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, candidateID, jobID)
	return mapInterestError(err)
}

func (r *interestRepo) CountEmployerInterests(ctx context.Context, employerID, candidateID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM employer_interests WHERE employer_id = $1 AND candidate_id = $2`,
		employerID, candidateID,
	).Scan(&count)
	return count, err
}

func (r *interestRepo) CountCandidateInterests(ctx context.Context, candidateID, jobID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM candidate_interests WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID,
	).Scan(&count)
	return count, err
}

func mapInterestError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperror.Conflict("Interest already recorded.")
	}
	return apperror.Internal(err)
}
