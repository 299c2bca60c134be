package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobs     domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobs domain.JobRepository) domain.JobUsecase {
	v := validator.New()
	validation.RegisterValidators(v)
	return &jobUsecase{jobs: jobs, validate: v}
}

func (u *jobUsecase) CreateJob(ctx context.Context, employerID int64, job *domain.JobOpening) error {
	job.EmployerID = employerID
	job.IsActive = true
	if job.JobType == "" {
		job.JobType = "Full-time"
	}

	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest("Please check the job posting fields and try again.")
	}

	if err := u.jobs.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// DeleteJob removes an opening, but only for the employer that owns it.
func (u *jobUsecase) DeleteJob(ctx context.Context, employerID, jobID int64) error {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if job == nil {
		return apperror.NotFound("Job opening not found.")
	}
	if job.EmployerID != employerID {
		return apperror.Forbidden("You can only delete your own job openings.")
	}

	if err := u.jobs.Delete(ctx, jobID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) ListActiveJobs(ctx context.Context) ([]domain.JobOpening, error) {
	jobs, err := u.jobs.ListActive(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListEmployerJobs(ctx context.Context, employerID int64) ([]domain.JobOpening, error) {
	jobs, err := u.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
