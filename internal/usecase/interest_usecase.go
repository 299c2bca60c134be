package usecase

import (
	"context"
	"errors"
	"net/http"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type interestUsecase struct {
	interests  domain.InterestRepository
	candidates domain.CandidateRepository
	employers  domain.EmployerRepository
	jobs       domain.JobRepository
}

func NewInterestUsecase(
	interests domain.InterestRepository,
	candidates domain.CandidateRepository,
	employers domain.EmployerRepository,
	jobs domain.JobRepository,
) domain.InterestUsecase {
	return &interestUsecase{
		interests:  interests,
		candidates: candidates,
		employers:  employers,
		jobs:       jobs,
	}
}

// ExpressEmployerInterest records the pair once. A repeat expression is not an
// error: the count check skips the insert for a pair already on record, and
// for the concurrent case the unique constraint rejects the insert and the
// conflict is absorbed here, so the caller sees the same success either way.
func (u *interestUsecase) ExpressEmployerInterest(ctx context.Context, employerID, candidateID int64) error {
	candidate, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return apperror.Internal(err)
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found.")
	}

	count, err := u.interests.CountEmployerInterests(ctx, employerID, candidateID)
	if err != nil {
		return apperror.Internal(err)
	}
	if count > 0 {
		return nil
	}

	return absorbDuplicate(u.interests.CreateEmployerInterest(ctx, employerID, candidateID))
}

func (u *interestUsecase) ExpressCandidateInterest(ctx context.Context, candidateID, jobID int64) error {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if job == nil || !job.IsActive {
		return apperror.NotFound("Job opening not found.")
	}

	count, err := u.interests.CountCandidateInterests(ctx, candidateID, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if count > 0 {
		return nil
	}

	return absorbDuplicate(u.interests.CreateCandidateInterest(ctx, candidateID, jobID))
}

func absorbDuplicate(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code == http.StatusConflict {
		return nil
	}
	return err
}
