package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/hash"
	"jobboard-backend/pkg/storage"
	"jobboard-backend/pkg/validation"
)

const logoDir = "logos"

type employerUsecase struct {
	employers  domain.EmployerRepository
	candidates domain.CandidateRepository
	files      *storage.Store
}

func NewEmployerUsecase(
	employers domain.EmployerRepository,
	candidates domain.CandidateRepository,
	files *storage.Store,
) domain.EmployerUsecase {
	return &employerUsecase{
		employers:  employers,
		candidates: candidates,
		files:      files,
	}
}

func validateEmployerInput(input *domain.EmployerRegisterInput) error {
	checks := []error{
		validation.CompanyName(input.CompanyName),
		validation.SafeEmail(input.Email),
		validation.PhoneNumber(input.Phone),
		validation.TextInput(input.Location, 2, 100),
		validation.TextInput(input.Industry, 2, 100),
		validation.TextInput(input.CompanyDescription, 0, 2000),
	}
	for _, err := range checks {
		if err != nil {
			return apperror.BadRequest(err.Error())
		}
	}
	return nil
}

func (u *employerUsecase) Register(ctx context.Context, input domain.EmployerRegisterInput) (*domain.Employer, error) {
	if err := validateEmployerInput(&input); err != nil {
		return nil, err
	}
	if err := validatePasswordShape(input.Password); err != nil {
		return nil, err
	}

	exists, err := u.employers.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("An account with this email already exists. Please login.")
	}

	hashed, err := hash.Password(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	employer := &domain.Employer{
		CompanyName:        input.CompanyName,
		Email:              input.Email,
		Password:           hashed,
		Phone:              input.Phone,
		CompanyDescription: input.CompanyDescription,
		Location:           input.Location,
		Industry:           input.Industry,
	}

	if input.Logo != nil {
		employer.LogoPath, err = u.files.Save(logoDir, uniqueName(input.Logo.Filename), input.Logo.Content)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if err := u.employers.Create(ctx, employer); err != nil {
		_ = u.files.Remove(employer.LogoPath)
		return nil, err
	}
	return employer, nil
}

func (u *employerUsecase) GetDashboard(ctx context.Context, employerID int64) (*domain.EmployerDashboard, error) {
	employer, err := u.employers.GetByID(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if employer == nil {
		return nil, apperror.NotFound("Employer not found.")
	}

	candidates, err := u.candidates.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.EmployerDashboard{Employer: employer, Candidates: candidates}, nil
}
