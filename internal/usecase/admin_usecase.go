package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/hash"

	"github.com/golang-jwt/jwt/v5"
)

// AdminConfig is the single staff account plus token signing material.
type AdminConfig struct {
	Email        string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

type adminUsecase struct {
	cfg        AdminConfig
	candidates domain.CandidateRepository
	employers  domain.EmployerRepository
	jobs       domain.JobRepository
	contacts   domain.ContactRepository
}

func NewAdminUsecase(
	cfg AdminConfig,
	candidates domain.CandidateRepository,
	employers domain.EmployerRepository,
	jobs domain.JobRepository,
	contacts domain.ContactRepository,
) domain.AdminUsecase {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 12 * time.Hour
	}
	return &adminUsecase{
		cfg:        cfg,
		candidates: candidates,
		employers:  employers,
		jobs:       jobs,
		contacts:   contacts,
	}
}

func (u *adminUsecase) Login(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(u.cfg.Email)) == 1
	if !emailOK || !hash.Verify(password, u.cfg.PasswordHash) {
		return "", apperror.Unauthorized(invalidCredentials)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.cfg.Email,
		"role": domain.RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(u.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", apperror.Internal(err)
	}
	return signed, nil
}

func (u *adminUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := u.candidates.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

func (u *adminUsecase) ListEmployers(ctx context.Context) ([]domain.Employer, error) {
	employers, err := u.employers.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return employers, nil
}

func (u *adminUsecase) ListJobs(ctx context.Context) ([]domain.JobOpening, error) {
	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *adminUsecase) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	messages, err := u.contacts.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}

// CreateJob posts an opening on behalf of an employer.
func (u *adminUsecase) CreateJob(ctx context.Context, job *domain.JobOpening) error {
	employer, err := u.employers.GetByID(ctx, job.EmployerID)
	if err != nil {
		return apperror.Internal(err)
	}
	if employer == nil {
		return apperror.NotFound("Employer not found.")
	}

	job.IsActive = true
	if job.JobType == "" {
		job.JobType = "Full-time"
	}
	if err := u.jobs.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *adminUsecase) DeleteJob(ctx context.Context, jobID int64) error {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if job == nil {
		return apperror.NotFound("Job opening not found.")
	}
	if err := u.jobs.Delete(ctx, jobID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// DeleteCandidate removes the account; its interest records go with it via
// the schema's cascade.
func (u *adminUsecase) DeleteCandidate(ctx context.Context, candidateID int64) error {
	candidate, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return apperror.Internal(err)
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found.")
	}
	if err := u.candidates.Delete(ctx, candidateID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// DeleteEmployer removes the account; its job openings and interest records
// go with it via the schema's cascade.
func (u *adminUsecase) DeleteEmployer(ctx context.Context, employerID int64) error {
	employer, err := u.employers.GetByID(ctx, employerID)
	if err != nil {
		return apperror.Internal(err)
	}
	if employer == nil {
		return apperror.NotFound("Employer not found.")
	}
	if err := u.employers.Delete(ctx, employerID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *adminUsecase) DeleteContact(ctx context.Context, contactID int64) error {
	if err := u.contacts.Delete(ctx, contactID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// TogglePlaced flips the placement flag and returns the new state.
func (u *adminUsecase) TogglePlaced(ctx context.Context, candidateID int64) (bool, error) {
	candidate, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	if candidate == nil {
		return false, apperror.NotFound("Candidate not found.")
	}

	placed := !candidate.IsPlaced
	if err := u.candidates.SetPlaced(ctx, candidateID, placed); err != nil {
		return false, apperror.Internal(err)
	}
	return placed, nil
}
