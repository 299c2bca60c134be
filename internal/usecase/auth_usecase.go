package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/session"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/hash"
)

// Lookup failure and wrong password produce the same message so the endpoint
// cannot be used as an account-existence oracle.
const invalidCredentials = "Invalid email or password."

type authUsecase struct {
	candidates domain.CandidateRepository
	employers  domain.EmployerRepository
	sessions   session.Store
}

func NewAuthUsecase(
	candidates domain.CandidateRepository,
	employers domain.EmployerRepository,
	sessions session.Store,
) domain.AuthUsecase {
	return &authUsecase{
		candidates: candidates,
		employers:  employers,
		sessions:   sessions,
	}
}

func (u *authUsecase) LoginCandidate(ctx context.Context, sessionID, email, password string) (*domain.SessionIdentity, error) {
	candidate, err := u.candidates.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil || !hash.Verify(password, candidate.Password) {
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	identity := &domain.SessionIdentity{
		UserID:   candidate.ID,
		Name:     candidate.Name,
		UserType: domain.RoleEmployee,
	}
	if err := u.writeIdentity(ctx, sessionID, identity); err != nil {
		return nil, apperror.Internal(err)
	}
	return identity, nil
}

func (u *authUsecase) LoginEmployer(ctx context.Context, sessionID, email, password string) (*domain.SessionIdentity, error) {
	employer, err := u.employers.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if employer == nil || !hash.Verify(password, employer.Password) {
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	identity := &domain.SessionIdentity{
		UserID:   employer.ID,
		Name:     employer.CompanyName,
		UserType: domain.RoleEmployer,
	}
	if err := u.writeIdentity(ctx, sessionID, identity); err != nil {
		return nil, apperror.Internal(err)
	}
	return identity, nil
}

func (u *authUsecase) writeIdentity(ctx context.Context, sessionID string, identity *domain.SessionIdentity) error {
	if err := u.sessions.Set(ctx, sessionID, domain.SessionKeyUserType, identity.UserType); err != nil {
		return err
	}
	if err := u.sessions.Set(ctx, sessionID, domain.SessionKeyUserID, identity.UserID); err != nil {
		return err
	}
	return u.sessions.Set(ctx, sessionID, domain.SessionKeyUserName, identity.Name)
}

// Logout clears every identity key whether or not a login happened. Repeat
// calls are harmless.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	err := u.sessions.Delete(ctx, sessionID,
		domain.SessionKeyUserType,
		domain.SessionKeyUserID,
		domain.SessionKeyUserName,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
