package domain

import "context"

// SessionIdentity is the typed identity established on login.
type SessionIdentity struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
}

type AuthUsecase interface {
	// LoginCandidate and LoginEmployer verify email + password and write the
	// identity into the session. Lookup failure and password mismatch are
	// indistinguishable to the caller.
	LoginCandidate(ctx context.Context, sessionID, email, password string) (*SessionIdentity, error)
	LoginEmployer(ctx context.Context, sessionID, email, password string) (*SessionIdentity, error)

	// Logout clears all identity keys unconditionally; idempotent.
	Logout(ctx context.Context, sessionID string) error
}

// AdminUsecase is the staff surface behind the dashboard.
type AdminUsecase interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	ListCandidates(ctx context.Context) ([]Candidate, error)
	ListEmployers(ctx context.Context) ([]Employer, error)
	ListJobs(ctx context.Context) ([]JobOpening, error)
	ListContacts(ctx context.Context) ([]ContactMessage, error)
	CreateJob(ctx context.Context, job *JobOpening) error
	DeleteJob(ctx context.Context, jobID int64) error
	DeleteCandidate(ctx context.Context, candidateID int64) error
	DeleteEmployer(ctx context.Context, employerID int64) error
	DeleteContact(ctx context.Context, contactID int64) error
	TogglePlaced(ctx context.Context, candidateID int64) (bool, error)
}
